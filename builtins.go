// builtins.go declares the fixed built-in function library of spec.md
// §4.8: a name-indexed dispatch table consulted before program/function/
// value lookup (spec.md §4.6's resolution order). The table itself is
// package-level and populated by init() in each builtins_*.go file, one
// file per concern, grounded file-for-file on the teacher's own split
// (builtin_strings.go, builtin_misc.go, builtin_file.go, builtin_core.go).
package axo

// builtinFunc is the shape every built-in implements: the interpreter (for
// recursive calls, e.g. a `sort` comparator that is itself an Axo
// function), the already-evaluated argument list, and the call site's
// position for error messages.
type builtinFunc func(ip *Interpreter, args []Value, pos Pos) (Value, error)

var builtinTable = map[string]builtinFunc{}

func registerBuiltin(name string, fn builtinFunc) {
	builtinTable[name] = fn
}

func argErr(pos Pos, name string, want int, got int) error {
	return newRuntimeError(pos, "%s expects %d argument(s), got %d", name, want, got)
}

func typeErr(pos Pos, name string, argIdx int, want string, got Value) error {
	return newRuntimeError(pos, "%s argument %d: expected %s, got %s", name, argIdx+1, want, got.TagName())
}

func wantInt(v Value) (int64, bool) {
	if v.Tag != VTInt {
		return 0, false
	}
	return v.AsInt(), true
}

func wantStr(v Value) (string, bool) {
	if v.Tag != VTStr {
		return "", false
	}
	return v.AsStr(), true
}

func wantArray(v Value) (*ArrayObj, bool) {
	if v.Tag != VTArray {
		return nil, false
	}
	return v.AsArray(), true
}

func wantObject(v Value) (*MapObj, bool) {
	if v.Tag != VTObject {
		return nil, false
	}
	return v.AsObject(), true
}
