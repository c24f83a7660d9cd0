// types.go implements the type half of C5: the structural matcher of
// spec.md §4.5 plus the canonical type-spec splitting helpers the parser
// and matcher both need. The matcher takes the alias registry explicitly
// as a parameter rather than reaching for a package-level interpreter
// pointer — spec.md §9 calls this out by name ("Global interpreter
// pointer... maps to passing the registry explicitly into the matcher").
package axo

import "strconv"

// TypeRegistry resolves a user-defined type alias name to its canonical
// spec string. It is satisfied by *Interpreter.
type TypeRegistry interface {
	ResolveTypeAlias(name string) (string, bool)
}

// isComplexTypeSpec reports whether t is "complex" per spec.md §4.5's
// write-time policy: contains '|', '[', '{', or is exactly "any".
func isComplexTypeSpec(t string) bool {
	if t == "any" {
		return true
	}
	for _, r := range t {
		if r == '|' || r == '[' || r == '{' {
			return true
		}
	}
	return false
}

// MatchesType reports whether v inhabits the canonical type spec t,
// resolving user-defined aliases through reg. This implements the
// resolution order of spec.md §4.5 steps 1-9.
func MatchesType(v Value, t string, reg TypeRegistry) bool {
	t = trimSpaces(t)
	if t == "" {
		return false
	}

	// 6. any matches anything.
	if t == "any" {
		return true
	}

	// 1. user-defined alias.
	if spec, ok := reg.ResolveTypeAlias(t); ok {
		return MatchesType(v, spec, reg)
	}

	// 2. top-level union: split on '|' outside [] {} and accept any branch.
	// Must run before the array/object bracket checks below — a spec like
	// "[int]|[string]" starts with '[' and ends with ']' but is a union of
	// two array types, not one array type, so the union split has to see it
	// first.
	if branches := splitTopLevel(t, '|'); len(branches) > 1 {
		for _, b := range branches {
			if MatchesType(v, trimSpaces(b), reg) {
				return true
			}
		}
		return false
	}

	// 3. array / tuple type: "[inner]"
	if t[0] == '[' && t[len(t)-1] == ']' {
		return matchArrayType(v, t[1:len(t)-1], reg)
	}

	// 4. object/shape type: "{f1:T1,f2:T2,...}"
	if t[0] == '{' && t[len(t)-1] == '}' {
		return matchObjectType(v, t[1:len(t)-1], reg)
	}

	// 5. literal specs.
	if len(t) >= 2 && t[0] == '"' && t[len(t)-1] == '"' {
		return v.Tag == VTStr && v.AsStr() == t[1:len(t)-1]
	}
	if t == "true" {
		return v.Tag == VTBool && v.AsBool()
	}
	if t == "false" {
		return v.Tag == VTBool && !v.AsBool()
	}
	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return v.Tag == VTInt && v.AsInt() == n
	}

	// 7. nominal scalar/object tags.
	switch t {
	case "int":
		return v.Tag == VTInt
	case "float":
		return v.Tag == VTFloat
	case "string":
		return v.Tag == VTStr
	case "bool":
		return v.Tag == VTBool
	case "object":
		return v.Tag == VTObject
	case "void":
		return false
	}

	// 8. func / function-type spec: matches any callable regardless of
	// declared arity/return (spec.md §9 Open Question 3).
	if t == "func" || isFuncTypeSpec(t) {
		return v.Tag == VTFuncRef || v.Tag == VTLitFuncRef
	}

	// 9. no other spec matches.
	return false
}

func matchArrayType(v Value, inner string, reg TypeRegistry) bool {
	if v.Tag != VTArray {
		return false
	}
	elems := v.AsArray().Elems
	slots := splitTopLevel(inner, ',')
	if len(slots) > 1 {
		// fixed-length tuple
		if len(elems) != len(slots) {
			return false
		}
		for i, slot := range slots {
			if !MatchesType(elems[i], trimSpaces(slot), reg) {
				return false
			}
		}
		return true
	}
	for _, e := range elems {
		if !MatchesType(e, inner, reg) {
			return false
		}
	}
	return true
}

func matchObjectType(v Value, fieldsSpec string, reg TypeRegistry) bool {
	if v.Tag != VTObject {
		return false
	}
	fields := v.AsObject().Fields
	if trimSpaces(fieldsSpec) == "" {
		return true
	}
	for _, entry := range splitTopLevel(fieldsSpec, ',') {
		name, typ := splitFieldEntry(entry)
		fv, ok := fields[name]
		if !ok {
			return false
		}
		if !MatchesType(fv, typ, reg) {
			return false
		}
	}
	return true
}

func splitFieldEntry(entry string) (name, typ string) {
	entry = trimSpaces(entry)
	idx := -1
	depth := 0
	for i, r := range entry {
		switch r {
		case '[', '{', '(':
			depth++
		case ']', '}', ')':
			depth--
		case ':':
			if depth == 0 {
				idx = i
			}
		}
		if idx != -1 {
			break
		}
	}
	if idx == -1 {
		return trimSpaces(entry), "any"
	}
	return trimSpaces(entry[:idx]), trimSpaces(entry[idx+1:])
}

// isFuncTypeSpec reports whether t looks like "(T1,T2)->T3" (a parenthesized
// function type). Arity/param types are intentionally not inspected;
// spec.md §9 Open Question 3 says matching stays non-structural for now.
func isFuncTypeSpec(t string) bool {
	return len(t) > 0 && t[0] == '(' && containsTopLevelArrow(t)
}

func containsTopLevelArrow(t string) bool {
	depth := 0
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '-':
			if depth == 0 && i+1 < len(t) && t[i+1] == '>' {
				return true
			}
		}
	}
	return false
}

// splitTopLevel splits s on sep, ignoring occurrences of sep nested inside
// (), [], {} — required so that e.g. "{a:[int,string]}|bool" splits on the
// outer '|' without being fooled by the comma inside the array type
// (spec.md §4.5: "naive comma splits are incorrect").
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	inStr := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			if c == '"' {
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		default:
			if c == sep && depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

func trimSpaces(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}
