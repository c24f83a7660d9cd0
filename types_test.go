package axo

import "testing"

type fakeRegistry map[string]string

func (r fakeRegistry) ResolveTypeAlias(name string) (string, bool) {
	s, ok := r[name]
	return s, ok
}

func TestMatchesTypeScalars(t *testing.T) {
	reg := fakeRegistry{}
	cases := []struct {
		v    Value
		t    string
		want bool
	}{
		{IntVal(1), "int", true},
		{IntVal(1), "float", false},
		{FloatVal(1.5), "float", true},
		{StrVal("x"), "string", true},
		{BoolVal(true), "bool", true},
		{IntVal(1), "any", true},
		{ObjectVal(map[string]Value{}), "any", true},
	}
	for _, c := range cases {
		if got := MatchesType(c.v, c.t, reg); got != c.want {
			t.Errorf("MatchesType(%v, %q) = %v, want %v", c.v, c.t, got, c.want)
		}
	}
}

func TestMatchesTypeUnion(t *testing.T) {
	reg := fakeRegistry{}
	if !MatchesType(IntVal(1), "int|string", reg) {
		t.Error("int should match int|string")
	}
	if !MatchesType(StrVal("ok"), "int|string", reg) {
		t.Error("string should match int|string")
	}
	if MatchesType(BoolVal(true), "int|string", reg) {
		t.Error("bool should not match int|string")
	}
}

func TestMatchesTypeArray(t *testing.T) {
	reg := fakeRegistry{}
	homog := ArrayVal([]Value{IntVal(1), IntVal(2), IntVal(3)})
	if !MatchesType(homog, "[int]", reg) {
		t.Error("homogeneous int array should match [int]")
	}
	if MatchesType(homog, "[string]", reg) {
		t.Error("int array should not match [string]")
	}
}

func TestMatchesTypeTuple(t *testing.T) {
	reg := fakeRegistry{}
	tuple := ArrayVal([]Value{IntVal(1), StrVal("x")})
	if !MatchesType(tuple, "[int,string]", reg) {
		t.Error("tuple (1, \"x\") should match [int,string]")
	}
	if MatchesType(tuple, "[string,int]", reg) {
		t.Error("tuple order matters for a fixed-length tuple type")
	}
	wrongLen := ArrayVal([]Value{IntVal(1)})
	if MatchesType(wrongLen, "[int,string]", reg) {
		t.Error("wrong-length array should not match a fixed tuple type")
	}
}

func TestMatchesTypeObjectShape(t *testing.T) {
	reg := fakeRegistry{}
	obj := ObjectVal(map[string]Value{"name": StrVal("a"), "age": IntVal(5)})
	if !MatchesType(obj, "{name:string,age:int}", reg) {
		t.Error("object should match its exact shape")
	}
	if MatchesType(obj, "{name:string,age:string}", reg) {
		t.Error("field type mismatch should fail")
	}
	missing := ObjectVal(map[string]Value{"name": StrVal("a")})
	if MatchesType(missing, "{name:string,age:int}", reg) {
		t.Error("a shape requiring a missing field should fail")
	}
}

func TestMatchesTypeNestedCommaInsideArrayDoesNotConfuseUnionSplit(t *testing.T) {
	reg := fakeRegistry{}
	tuple := ArrayVal([]Value{IntVal(1), StrVal("x")})
	if !MatchesType(tuple, "[int,string]|bool", reg) {
		t.Error("the inner comma must not split the top-level union")
	}
	if !MatchesType(BoolVal(true), "[int,string]|bool", reg) {
		t.Error("the bool branch should still match")
	}
}

func TestMatchesTypeLiteralSpecs(t *testing.T) {
	reg := fakeRegistry{}
	if !MatchesType(StrVal("none"), `"none"`, reg) {
		t.Error(`"none" literal spec should match the string "none"`)
	}
	if MatchesType(StrVal("other"), `"none"`, reg) {
		t.Error("a different string must not match the literal spec")
	}
	if !MatchesType(BoolVal(true), "true", reg) {
		t.Error("true literal spec should match true")
	}
	if !MatchesType(IntVal(7), "7", reg) {
		t.Error("int literal spec should match 7")
	}
	if MatchesType(IntVal(8), "7", reg) {
		t.Error("int literal spec should not match a different int")
	}
}

func TestMatchesTypeUserDefinedAlias(t *testing.T) {
	reg := fakeRegistry{"Point": "{x:int,y:int}"}
	p := ObjectVal(map[string]Value{"x": IntVal(1), "y": IntVal(2)})
	if !MatchesType(p, "Point", reg) {
		t.Error("object matching the alias's resolved shape should match the alias name")
	}
	if !MatchesType(p, "Point|bool", reg) {
		t.Error("alias should resolve inside a union too")
	}
}

func TestMatchesTypeFunc(t *testing.T) {
	reg := fakeRegistry{}
	fd := &FunctionDecl{Name: "f", Params: []Param{{Name: "a", Type: "int"}}, RetType: "int"}
	fn := FuncRefVal(fd)
	if !MatchesType(fn, "func", reg) {
		t.Error("a function value should match the func spec")
	}
	if !MatchesType(fn, "(int)->int", reg) {
		t.Error("a parenthesized function-type spec matches any callable regardless of declared arity")
	}
	if MatchesType(IntVal(1), "func", reg) {
		t.Error("a non-function value must not match func")
	}
}

func TestMatchesTypeVoidNeverMatches(t *testing.T) {
	reg := fakeRegistry{}
	if MatchesType(EmptyString, "void", reg) {
		t.Error("void should never match any runtime value")
	}
}

func TestIsComplexTypeSpec(t *testing.T) {
	cases := map[string]bool{
		"int":          false,
		"string":       false,
		"any":          true,
		"int|string":   true,
		"[int]":        true,
		"{a:int}":      true,
	}
	for spec, want := range cases {
		if got := isComplexTypeSpec(spec); got != want {
			t.Errorf("isComplexTypeSpec(%q) = %v, want %v", spec, got, want)
		}
	}
}
