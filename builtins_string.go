// builtins_string.go implements the string-manipulation slice of spec.md
// §4.8, grounded on the teacher's builtin_strings.go (same function names,
// same "first argument is always the receiver" calling convention).
package axo

import "strings"

func init() {
	registerBuiltin("substr", builtinSubstr)
	registerBuiltin("toUpper", builtinToUpper)
	registerBuiltin("toLower", builtinToLower)
	registerBuiltin("indexOf", builtinIndexOf)
	registerBuiltin("contains", builtinContains)
	registerBuiltin("startsWith", builtinStartsWith)
	registerBuiltin("endsWith", builtinEndsWith)
	registerBuiltin("trim", builtinTrim)
	registerBuiltin("repeat", builtinRepeat)
	registerBuiltin("replace", builtinReplace)
	registerBuiltin("split", builtinSplit)
	registerBuiltin("charAt", builtinCharAt)
	registerBuiltin("charCodeAt", builtinCharCodeAt)
}

func builtinSubstr(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return Value{}, newRuntimeError(pos, "substr expects 2 or 3 argument(s), got %d", len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "substr", 0, "string", args[0])
	}
	start, ok := wantInt(args[1])
	if !ok {
		return Value{}, typeErr(pos, "substr", 1, "int", args[1])
	}
	if start < 0 {
		start = 0
	}
	if start > int64(len(s)) {
		start = int64(len(s))
	}
	end := int64(len(s))
	if len(args) == 3 {
		n, ok := wantInt(args[2])
		if !ok {
			return Value{}, typeErr(pos, "substr", 2, "int", args[2])
		}
		end = start + n
	}
	if end > int64(len(s)) {
		end = int64(len(s))
	}
	if end < start {
		end = start
	}
	return StrVal(s[start:end]), nil
}

func builtinToUpper(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "toUpper", 1, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "toUpper", 0, "string", args[0])
	}
	return StrVal(strings.ToUpper(s)), nil
}

func builtinToLower(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "toLower", 1, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "toLower", 0, "string", args[0])
	}
	return StrVal(strings.ToLower(s)), nil
}

func builtinIndexOf(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "indexOf", 2, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "indexOf", 0, "string", args[0])
	}
	sub, ok := wantStr(args[1])
	if !ok {
		return Value{}, typeErr(pos, "indexOf", 1, "string", args[1])
	}
	return IntVal(int64(strings.Index(s, sub))), nil
}

func builtinContains(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "contains", 2, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "contains", 0, "string", args[0])
	}
	sub, ok := wantStr(args[1])
	if !ok {
		return Value{}, typeErr(pos, "contains", 1, "string", args[1])
	}
	return BoolVal(strings.Contains(s, sub)), nil
}

func builtinStartsWith(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "startsWith", 2, len(args))
	}
	s, _ := wantStr(args[0])
	sub, _ := wantStr(args[1])
	return BoolVal(strings.HasPrefix(s, sub)), nil
}

func builtinEndsWith(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "endsWith", 2, len(args))
	}
	s, _ := wantStr(args[0])
	sub, _ := wantStr(args[1])
	return BoolVal(strings.HasSuffix(s, sub)), nil
}

func builtinTrim(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "trim", 1, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "trim", 0, "string", args[0])
	}
	return StrVal(strings.TrimSpace(s)), nil
}

func builtinRepeat(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "repeat", 2, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "repeat", 0, "string", args[0])
	}
	n, ok := wantInt(args[1])
	if !ok || n < 0 {
		return Value{}, typeErr(pos, "repeat", 1, "non-negative int", args[1])
	}
	return StrVal(strings.Repeat(s, int(n))), nil
}

func builtinReplace(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 3 {
		return Value{}, argErr(pos, "replace", 3, len(args))
	}
	s, _ := wantStr(args[0])
	old, _ := wantStr(args[1])
	new, _ := wantStr(args[2])
	return StrVal(strings.ReplaceAll(s, old, new)), nil
}

func builtinSplit(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "split", 2, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "split", 0, "string", args[0])
	}
	sep, ok := wantStr(args[1])
	if !ok {
		return Value{}, typeErr(pos, "split", 1, "string", args[1])
	}
	parts := strings.Split(s, sep)
	out := make([]Value, len(parts))
	for i, p := range parts {
		out[i] = StrVal(p)
	}
	return ArrayVal(out), nil
}

func builtinCharAt(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "charAt", 2, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "charAt", 0, "string", args[0])
	}
	i, ok := wantInt(args[1])
	if !ok || i < 0 || int(i) >= len(s) {
		return StrVal(""), nil
	}
	return StrVal(string(s[i])), nil
}

func builtinCharCodeAt(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "charCodeAt", 2, len(args))
	}
	s, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "charCodeAt", 0, "string", args[0])
	}
	i, ok := wantInt(args[1])
	if !ok || i < 0 || int(i) >= len(s) {
		return IntVal(-1), nil
	}
	return IntVal(int64(s[i])), nil
}
