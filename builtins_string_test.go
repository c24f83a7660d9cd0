package axo

import "testing"

func callBuiltin(t *testing.T, name string, args ...Value) (Value, error) {
	t.Helper()
	fn, ok := builtinTable[name]
	if !ok {
		t.Fatalf("no builtin registered as %q", name)
	}
	return fn(NewInterpreter(), args, Pos{Line: 1, Col: 1})
}

func TestBuiltinSubstr(t *testing.T) {
	v, err := callBuiltin(t, "substr", StrVal("hello world"), IntVal(6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsStr() != "world" {
		t.Fatalf("got %q", v.AsStr())
	}

	v, err = callBuiltin(t, "substr", StrVal("hello world"), IntVal(0), IntVal(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsStr() != "hello" {
		t.Fatalf("got %q", v.AsStr())
	}
}

func TestBuiltinSubstrClampsOutOfRange(t *testing.T) {
	v, err := callBuiltin(t, "substr", StrVal("hi"), IntVal(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsStr() != "" {
		t.Fatalf("got %q", v.AsStr())
	}
}

func TestBuiltinUpperLower(t *testing.T) {
	v, _ := callBuiltin(t, "toUpper", StrVal("AbC"))
	if v.AsStr() != "ABC" {
		t.Fatalf("got %q", v.AsStr())
	}
	v, _ = callBuiltin(t, "toLower", StrVal("AbC"))
	if v.AsStr() != "abc" {
		t.Fatalf("got %q", v.AsStr())
	}
}

func TestBuiltinIndexOfAndContains(t *testing.T) {
	v, _ := callBuiltin(t, "indexOf", StrVal("hello"), StrVal("ll"))
	if v.AsInt() != 2 {
		t.Fatalf("got %d", v.AsInt())
	}
	v, _ = callBuiltin(t, "indexOf", StrVal("hello"), StrVal("zz"))
	if v.AsInt() != -1 {
		t.Fatalf("got %d", v.AsInt())
	}
	v, _ = callBuiltin(t, "contains", StrVal("hello"), StrVal("ell"))
	if !v.AsBool() {
		t.Fatal("expected true")
	}
}

func TestBuiltinStartsEndsWith(t *testing.T) {
	v, _ := callBuiltin(t, "startsWith", StrVal("hello"), StrVal("he"))
	if !v.AsBool() {
		t.Fatal("expected true")
	}
	v, _ = callBuiltin(t, "endsWith", StrVal("hello"), StrVal("lo"))
	if !v.AsBool() {
		t.Fatal("expected true")
	}
}

func TestBuiltinTrim(t *testing.T) {
	v, _ := callBuiltin(t, "trim", StrVal("  hi  "))
	if v.AsStr() != "hi" {
		t.Fatalf("got %q", v.AsStr())
	}
}

func TestBuiltinRepeat(t *testing.T) {
	v, _ := callBuiltin(t, "repeat", StrVal("ab"), IntVal(3))
	if v.AsStr() != "ababab" {
		t.Fatalf("got %q", v.AsStr())
	}
}

func TestBuiltinReplace(t *testing.T) {
	v, _ := callBuiltin(t, "replace", StrVal("a-b-c"), StrVal("-"), StrVal("_"))
	if v.AsStr() != "a_b_c" {
		t.Fatalf("got %q", v.AsStr())
	}
}

func TestBuiltinSplit(t *testing.T) {
	v, err := callBuiltin(t, "split", StrVal("a,b,c"), StrVal(","))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := v.AsArray().Elems
	if len(arr) != 3 || arr[0].AsStr() != "a" || arr[2].AsStr() != "c" {
		t.Fatalf("got %v", arr)
	}
}

func TestBuiltinCharAtAndCharCodeAt(t *testing.T) {
	v, _ := callBuiltin(t, "charAt", StrVal("hi"), IntVal(1))
	if v.AsStr() != "i" {
		t.Fatalf("got %q", v.AsStr())
	}
	v, _ = callBuiltin(t, "charAt", StrVal("hi"), IntVal(5))
	if v.AsStr() != "" {
		t.Fatalf("out-of-range charAt should return empty string, got %q", v.AsStr())
	}
	v, _ = callBuiltin(t, "charCodeAt", StrVal("A"), IntVal(0))
	if v.AsInt() != 65 {
		t.Fatalf("got %d", v.AsInt())
	}
}

func TestBuiltinStringArityErrors(t *testing.T) {
	if _, err := callBuiltin(t, "toUpper"); err == nil {
		t.Fatal("expected an arity error")
	}
	if _, err := callBuiltin(t, "toUpper", IntVal(1)); err == nil {
		t.Fatal("expected a type error for a non-string argument")
	}
}
