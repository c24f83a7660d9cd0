package axo

import "testing"

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v\nsource:\n%s", err, src)
	}
	return prog
}

func mustParseErr(t *testing.T, src string) {
	t.Helper()
	_, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error, got none\nsource:\n%s", src)
	}
}

func TestParseVarDecl(t *testing.T) {
	prog := mustParse(t, `var x: int = 5;`)
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	vd, ok := prog.Stmts[0].(*VarDecl)
	if !ok {
		t.Fatalf("expected *VarDecl, got %T", prog.Stmts[0])
	}
	if vd.Name != "x" || vd.TypeSpec != "int" || vd.Const {
		t.Fatalf("unexpected var decl: %+v", vd)
	}
	lit, ok := vd.Init.(*IntLit)
	if !ok || lit.Value != 5 {
		t.Fatalf("expected init IntLit(5), got %+v", vd.Init)
	}
}

func TestParseVarDeclNoType(t *testing.T) {
	prog := mustParse(t, `var x = "hi";`)
	vd := prog.Stmts[0].(*VarDecl)
	if vd.TypeSpec != "any" {
		t.Fatalf("expected default type 'any', got %q", vd.TypeSpec)
	}
}

func TestParseConstDecl(t *testing.T) {
	prog := mustParse(t, `const pi: float = 3.14;`)
	vd := prog.Stmts[0].(*VarDecl)
	if !vd.Const {
		t.Fatalf("expected const=true")
	}
}

func TestParseArrayTypeSpec(t *testing.T) {
	prog := mustParse(t, `var xs: [int] = [1, 2, 3];`)
	vd := prog.Stmts[0].(*VarDecl)
	if vd.TypeSpec != "[int]" {
		t.Fatalf("expected '[int]', got %q", vd.TypeSpec)
	}
	arr, ok := vd.Init.(*ArrayLit)
	if !ok || len(arr.Elems) != 3 {
		t.Fatalf("expected 3-elem array literal, got %+v", vd.Init)
	}
}

func TestParseTupleTypeSpec(t *testing.T) {
	prog := mustParse(t, `var pair: [int,string];`)
	vd := prog.Stmts[0].(*VarDecl)
	if vd.TypeSpec != "[int,string]" {
		t.Fatalf("expected '[int,string]', got %q", vd.TypeSpec)
	}
}

func TestParseObjectTypeSpec(t *testing.T) {
	prog := mustParse(t, `var p: {name:string,age:int};`)
	vd := prog.Stmts[0].(*VarDecl)
	if vd.TypeSpec != "{name:string,age:int}" {
		t.Fatalf("unexpected canonical form: %q", vd.TypeSpec)
	}
}

func TestParseUnionTypeSpec(t *testing.T) {
	prog := mustParse(t, `var v: int|float|"none";`)
	vd := prog.Stmts[0].(*VarDecl)
	if vd.TypeSpec != `int|float|"none"` {
		t.Fatalf("unexpected canonical form: %q", vd.TypeSpec)
	}
}

func TestParseFuncTypeSpec(t *testing.T) {
	prog := mustParse(t, `var cmp: (int,int)->bool;`)
	vd := prog.Stmts[0].(*VarDecl)
	if vd.TypeSpec != "(int,int)->bool" {
		t.Fatalf("unexpected canonical form: %q", vd.TypeSpec)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	prog := mustParse(t, `var r = 1 + 2 * 3;`)
	vd := prog.Stmts[0].(*VarDecl)
	bin, ok := vd.Init.(*BinaryOp)
	if !ok || bin.Op != PLUS {
		t.Fatalf("expected top-level '+', got %+v", vd.Init)
	}
	rhs, ok := bin.Right.(*BinaryOp)
	if !ok || rhs.Op != STAR {
		t.Fatalf("expected '*' nested on the right, got %+v", bin.Right)
	}
}

func TestParseLogicalNonShortCircuitPrecedence(t *testing.T) {
	prog := mustParse(t, `var r = a || b && c;`)
	vd := prog.Stmts[0].(*VarDecl)
	top, ok := vd.Init.(*BinaryOp)
	if !ok || top.Op != OR_OR {
		t.Fatalf("expected top-level '||', got %+v", vd.Init)
	}
	if _, ok := top.Right.(*BinaryOp); !ok {
		t.Fatalf("expected '&&' nested on the right")
	}
}

func TestParseAssignmentRewrite(t *testing.T) {
	prog := mustParse(t, `
var x = 0;
x = 1;
a[0] = 1;
obj.field = 1;
`)
	if _, ok := prog.Stmts[1].(*ExprStmt).Expr.(*Assign); !ok {
		t.Fatalf("expected *Assign")
	}
	if _, ok := prog.Stmts[2].(*ExprStmt).Expr.(*IndexAssign); !ok {
		t.Fatalf("expected *IndexAssign")
	}
	if _, ok := prog.Stmts[3].(*ExprStmt).Expr.(*FieldAssign); !ok {
		t.Fatalf("expected *FieldAssign")
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	mustParseErr(t, `1 + 1 = 2;`)
}

func TestParseIfElseIfElse(t *testing.T) {
	prog := mustParse(t, `
if (a) {
  b;
} else if (c) {
  d;
} else {
  e;
}
`)
	top := prog.Stmts[0].(*If)
	elseIf, ok := top.Else.(*If)
	if !ok {
		t.Fatalf("expected chained *If for else-if, got %T", top.Else)
	}
	if _, ok := elseIf.Else.(*Block); !ok {
		t.Fatalf("expected trailing *Block for else, got %T", elseIf.Else)
	}
}

func TestParseWhileFor(t *testing.T) {
	prog := mustParse(t, `
while (i < 10) { i = i + 1; }
for (var i = 0; i < 10; i = i + 1) { x; }
`)
	if _, ok := prog.Stmts[0].(*While); !ok {
		t.Fatalf("expected *While")
	}
	forNode, ok := prog.Stmts[1].(*For)
	if !ok {
		t.Fatalf("expected *For")
	}
	if _, ok := forNode.Init.(*VarDecl); !ok {
		t.Fatalf("expected *VarDecl for-init")
	}
}

func TestParseTryCatchFinally(t *testing.T) {
	prog := mustParse(t, `
try {
  throw "boom";
} catch (e) {
  print(e);
} finally {
  cleanup();
}
`)
	tr := prog.Stmts[0].(*Try)
	if tr.CatchVar != "e" || tr.Catch == nil || tr.Finally == nil {
		t.Fatalf("unexpected try node: %+v", tr)
	}
}

func TestParseSwitch(t *testing.T) {
	prog := mustParse(t, `
switch (x) {
  case 1:
    a;
  case 2:
    b;
  default:
    c;
}
`)
	sw := prog.Stmts[0].(*Switch)
	if len(sw.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(sw.Cases))
	}
	if sw.Cases[2].Value != nil {
		t.Fatalf("expected default case to have nil Value")
	}
}

func TestParseFunctionDecl(t *testing.T) {
	prog := mustParse(t, `
func add(a: int, b: int) -> int {
  return a + b;
}
`)
	fn := prog.Stmts[0].(*FunctionDecl)
	if fn.Name != "add" || len(fn.Params) != 2 || fn.RetType != "int" {
		t.Fatalf("unexpected function decl: %+v", fn)
	}
}

func TestParseProgramDecl(t *testing.T) {
	prog := mustParse(t, `
program worker(n: int) {
  return n * 2;
}
`)
	pd := prog.Stmts[0].(*ProgramDecl)
	if pd.Name != "worker" || len(pd.Params) != 1 {
		t.Fatalf("unexpected program decl: %+v", pd)
	}
}

func TestParseTypeAlias(t *testing.T) {
	prog := mustParse(t, `type Point = {x:int,y:int};`)
	td := prog.Stmts[0].(*TypeDecl)
	if td.Name != "Point" || td.TypeSpec != "{x:int,y:int}" {
		t.Fatalf("unexpected type decl: %+v", td)
	}
}

func TestParseImportForms(t *testing.T) {
	prog := mustParse(t, `
import Foo from "./foo";
import {a, b} from "./bar";
import "./baz";
`)
	i1 := prog.Stmts[0].(*Import)
	if i1.Default != "Foo" || i1.Path != "./foo" {
		t.Fatalf("unexpected default import: %+v", i1)
	}
	i2 := prog.Stmts[1].(*Import)
	if len(i2.Named) != 2 || i2.Named[0] != "a" || i2.Named[1] != "b" {
		t.Fatalf("unexpected named import: %+v", i2)
	}
	i3 := prog.Stmts[2].(*Import)
	if i3.Default != "" || len(i3.Named) != 0 || i3.Path != "./baz" {
		t.Fatalf("unexpected side-effect import: %+v", i3)
	}
}

func TestParseUse(t *testing.T) {
	prog := mustParse(t, `use "./setup";`)
	u := prog.Stmts[0].(*Use)
	if u.Path != "./setup" {
		t.Fatalf("unexpected use decl: %+v", u)
	}
}

func TestParseExportForms(t *testing.T) {
	prog := mustParse(t, `
export func greet() { return "hi"; }
export default func() { return 1; }
export {a, b};
`)
	e1 := prog.Stmts[0].(*Export)
	if _, ok := e1.Inner.(*FunctionDecl); !ok || e1.Default {
		t.Fatalf("unexpected export: %+v", e1)
	}
	e2 := prog.Stmts[1].(*Export)
	if !e2.Default {
		t.Fatalf("expected export default")
	}
	e3 := prog.Stmts[2].(*Export)
	if len(e3.Named) != 2 {
		t.Fatalf("expected 2 named exports, got %+v", e3)
	}
}

func TestParseFunctionLiteralAndCall(t *testing.T) {
	prog := mustParse(t, `
var f = func(x: int) -> int { return x; };
f(5);
`)
	vd := prog.Stmts[0].(*VarDecl)
	if _, ok := vd.Init.(*FunctionLit); !ok {
		t.Fatalf("expected *FunctionLit, got %T", vd.Init)
	}
	call := prog.Stmts[1].(*ExprStmt).Expr.(*Call)
	if call.Name != "f" || len(call.Args) != 1 {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestParseAwaitRequiresCall(t *testing.T) {
	mustParse(t, `var r = await worker(1);`)
	mustParseErr(t, `var r = await 1;`)
}

func TestParseIndexAndFieldChain(t *testing.T) {
	prog := mustParse(t, `var v = a[0].b[1];`)
	vd := prog.Stmts[0].(*VarDecl)
	idx, ok := vd.Init.(*IndexAccess)
	if !ok {
		t.Fatalf("expected outer *IndexAccess, got %T", vd.Init)
	}
	field, ok := idx.Receiver.(*FieldAccess)
	if !ok || field.Name != "b" {
		t.Fatalf("expected *FieldAccess('b'), got %+v", idx.Receiver)
	}
}

func TestParseObjectLiteral(t *testing.T) {
	prog := mustParse(t, `var o = {x: 1, y: 2};`)
	vd := prog.Stmts[0].(*VarDecl)
	lit, ok := vd.Init.(*ObjectLit)
	if !ok || len(lit.Fields) != 2 {
		t.Fatalf("unexpected object literal: %+v", vd.Init)
	}
}

func TestParseStringInterpolationFlag(t *testing.T) {
	prog := mustParse(t, `var s = "hello ${name}";`)
	vd := prog.Stmts[0].(*VarDecl)
	sl, ok := vd.Init.(*StringLit)
	if !ok || !sl.HasInterpolation {
		t.Fatalf("expected HasInterpolation=true, got %+v", vd.Init)
	}
}

func TestParseUnterminatedBlockIsError(t *testing.T) {
	mustParseErr(t, `func f() { return 1;`)
}
