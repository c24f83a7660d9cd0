// eval_expr.go implements the expression half of C6: evaluating every Expr
// node from ast.go against an *Environment. Grounded on the teacher's
// interpreter_exec.go (the file that walks S-expressions and dispatches on
// the leading tag); here dispatch is a Go type switch over the concrete AST
// node types instead, since ast.go already gives each node its own type.
package axo

import (
	"strconv"
	"strings"
)

// evalExpr is the expression dispatcher. Every case returns either a Value
// or a *RuntimeError; there is no other error type once parsing succeeds.
func (ip *Interpreter) evalExpr(e Expr, env *Environment) (Value, error) {
	switch n := e.(type) {
	case *IntLit:
		return IntVal(n.Value), nil
	case *FloatLit:
		return FloatVal(n.Value), nil
	case *BoolLit:
		return BoolVal(n.Value), nil
	case *StringLit:
		if !n.HasInterpolation {
			return StrVal(n.Raw), nil
		}
		return ip.evalInterpolatedString(n, env)
	case *Ident:
		v, err := env.Get(n.Name)
		if err != nil {
			return Value{}, ip.fatalf(n.Pos, "%s", err.Error())
		}
		return v, nil
	case *ArrayLit:
		elems := make([]Value, len(n.Elems))
		for i, el := range n.Elems {
			v, err := ip.evalExpr(el, env)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return ArrayVal(elems), nil
	case *ObjectLit:
		fields := make(map[string]Value, len(n.Fields))
		for _, f := range n.Fields {
			v, err := ip.evalExpr(f.Expr, env)
			if err != nil {
				return Value{}, err
			}
			fields[f.Name] = v
		}
		return ObjectVal(fields), nil
	case *FunctionLit:
		return LitFuncRefVal(n, fromFrames(env.snapshotFrames())), nil
	case *UnaryOp:
		return ip.evalUnary(n, env)
	case *BinaryOp:
		return ip.evalBinary(n, env)
	case *Call:
		return ip.evalCall(n, env)
	case *Await:
		return ip.evalAwait(n, env)
	case *IndexAccess:
		return ip.evalIndexAccess(n, env)
	case *FieldAccess:
		return ip.evalFieldAccess(n, env)
	case *Assign:
		return ip.evalAssign(n, env)
	case *IndexAssign:
		return ip.evalIndexAssign(n, env)
	case *FieldAssign:
		return ip.evalFieldAssign(n, env)
	}
	return Value{}, ip.fatalf(e.At(), "unhandled expression node %T", e)
}

// evalInterpolatedString splices `${expr}` substrings found in n.Raw,
// stringifying each embedded expression's value with StringForm. An
// unmatched '${' with no closing '}' aborts evaluation with a RuntimeError
// (spec.md §4.6).
func (ip *Interpreter) evalInterpolatedString(n *StringLit, env *Environment) (Value, error) {
	var b strings.Builder
	s := n.Raw
	for i := 0; i < len(s); {
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end == -1 {
				return Value{}, ip.fatalf(n.Pos, "unterminated ${...} in string literal")
			}
			inner := s[i+2 : i+2+end]
			sub, err := Parse("var __interp = " + inner + ";")
			if err != nil {
				return Value{}, ip.fatalf(n.Pos, "invalid interpolation expression: %s", inner)
			}
			vd := sub.Stmts[0].(*VarDecl)
			v, err := ip.evalExpr(vd.Init, env)
			if err != nil {
				return Value{}, err
			}
			b.WriteString(v.StringForm())
			i += 2 + end + 1
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return StrVal(b.String()), nil
}

func (ip *Interpreter) evalUnary(n *UnaryOp, env *Environment) (Value, error) {
	if n.Op == KW_TYPEOF {
		v, err := ip.evalExpr(n.Operand, env)
		if err != nil {
			return Value{}, err
		}
		if id, ok := n.Operand.(*Ident); ok {
			if variable, found := env.GetVar(id.Name); found && variable.TypeSpec != "" && variable.TypeSpec != "any" {
				return StrVal(variable.TypeSpec), nil
			}
		}
		return StrVal(v.TagName()), nil
	}
	v, err := ip.evalExpr(n.Operand, env)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case BANG:
		return BoolVal(!v.Truthy()), nil
	case MINUS:
		switch v.Tag {
		case VTInt:
			return IntVal(-v.AsInt()), nil
		case VTFloat:
			return FloatVal(-v.AsFloat()), nil
		}
		return Value{}, ip.fatalf(n.Pos, "unary '-' requires int or float, got %s", v.TagName())
	}
	return Value{}, ip.fatalf(n.Pos, "unhandled unary operator")
}

// evalBinary implements spec.md §4.6's arithmetic/comparison/logical
// operator table. Per spec.md §9 Open Question, && and || are NOT
// short-circuiting here: both operands are always evaluated, matching the
// teacher's own non-short-circuit boolean builtins.
func (ip *Interpreter) evalBinary(n *BinaryOp, env *Environment) (Value, error) {
	l, err := ip.evalExpr(n.Left, env)
	if err != nil {
		return Value{}, err
	}
	r, err := ip.evalExpr(n.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case AND_AND:
		return BoolVal(l.Truthy() && r.Truthy()), nil
	case OR_OR:
		return BoolVal(l.Truthy() || r.Truthy()), nil
	case EQ:
		return BoolVal(l.StringForm() == r.StringForm()), nil
	case NEQ:
		return BoolVal(l.StringForm() != r.StringForm()), nil
	}

	if n.Op == PLUS && (l.Tag == VTStr || r.Tag == VTStr) {
		return StrVal(l.StringForm() + r.StringForm()), nil
	}

	if l.Tag == VTInt && r.Tag == VTInt {
		a, b := l.AsInt(), r.AsInt()
		switch n.Op {
		case PLUS:
			return IntVal(a + b), nil
		case MINUS:
			return IntVal(a - b), nil
		case STAR:
			return IntVal(a * b), nil
		case SLASH:
			if b == 0 {
				return Value{}, ip.fatalf(n.Pos, "division by zero")
			}
			return IntVal(a / b), nil
		case PERCENT:
			if b == 0 {
				return Value{}, ip.fatalf(n.Pos, "division by zero")
			}
			return IntVal(a % b), nil
		case LT:
			return BoolVal(a < b), nil
		case GT:
			return BoolVal(a > b), nil
		case LE:
			return BoolVal(a <= b), nil
		case GE:
			return BoolVal(a >= b), nil
		}
	}

	if (l.Tag == VTInt || l.Tag == VTFloat) && (r.Tag == VTInt || r.Tag == VTFloat) {
		a, b := toFloat(l), toFloat(r)
		switch n.Op {
		case PLUS:
			return FloatVal(a + b), nil
		case MINUS:
			return FloatVal(a - b), nil
		case STAR:
			return FloatVal(a * b), nil
		case SLASH:
			if b == 0 {
				return Value{}, ip.fatalf(n.Pos, "division by zero")
			}
			return FloatVal(a / b), nil
		case PERCENT:
			if b == 0 {
				return Value{}, ip.fatalf(n.Pos, "division by zero")
			}
			return FloatVal(float32(int64(a) % int64(b))), nil
		case LT:
			return BoolVal(a < b), nil
		case GT:
			return BoolVal(a > b), nil
		case LE:
			return BoolVal(a <= b), nil
		case GE:
			return BoolVal(a >= b), nil
		}
	}

	return Value{}, ip.fatalf(n.Pos, "operator not defined for %s and %s", l.TagName(), r.TagName())
}

func toFloat(v Value) float32 {
	if v.Tag == VTInt {
		return float32(v.AsInt())
	}
	return v.AsFloat()
}

// valuesEqual is a structural element comparison used by built-ins like
// includes/find that need to compare array elements directly rather than by
// string form (== and !=, and switch-case matching, use StringForm instead —
// see evalBinary and execSwitch).
func valuesEqual(l, r Value) bool {
	if (l.Tag == VTInt || l.Tag == VTFloat) && (r.Tag == VTInt || r.Tag == VTFloat) {
		return toFloat(l) == toFloat(r)
	}
	if l.Tag != r.Tag {
		return false
	}
	switch l.Tag {
	case VTStr:
		return l.AsStr() == r.AsStr()
	case VTBool:
		return l.AsBool() == r.AsBool()
	case VTArray:
		a, b := l.AsArray().Elems, r.AsArray().Elems
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !valuesEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	case VTObject:
		a, b := l.AsObject().Fields, r.AsObject().Fields
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
		return true
	case VTFuncRef:
		return l.Data.(*FunctionDecl) == r.Data.(*FunctionDecl)
	case VTLitFuncRef:
		return l.Data.(*funcRefLit) == r.Data.(*funcRefLit)
	}
	return false
}

func (ip *Interpreter) evalIndexAccess(n *IndexAccess, env *Environment) (Value, error) {
	recv, err := ip.evalExpr(n.Receiver, env)
	if err != nil {
		return Value{}, err
	}
	idx, err := ip.evalExpr(n.Index, env)
	if err != nil {
		return Value{}, err
	}
	if recv.Tag != VTArray {
		return Value{}, ip.fatalf(n.Pos, "cannot index a %s", recv.TagName())
	}
	if idx.Tag != VTInt {
		return Value{}, ip.fatalf(n.Pos, "array index must be an int, got %s", idx.TagName())
	}
	elems := recv.AsArray().Elems
	i := idx.AsInt()
	if i < 0 || int(i) >= len(elems) {
		return Value{}, ip.fatalf(n.Pos, "array index %d out of bounds (length %d)", i, len(elems))
	}
	return elems[i], nil
}

// evalFieldAccess returns the empty string for a missing field rather than
// raising an error (spec.md §9 Open Question 1: reads of an absent field
// are not fatal).
func (ip *Interpreter) evalFieldAccess(n *FieldAccess, env *Environment) (Value, error) {
	recv, err := ip.evalExpr(n.Receiver, env)
	if err != nil {
		return Value{}, err
	}
	if recv.Tag != VTObject {
		return Value{}, ip.fatalf(n.Pos, "cannot access field %q on a %s", n.Name, recv.TagName())
	}
	if v, ok := recv.AsObject().Fields[n.Name]; ok {
		return v, nil
	}
	return EmptyString, nil
}

func (ip *Interpreter) evalAssign(n *Assign, env *Environment) (Value, error) {
	v, err := ip.evalExpr(n.Value, env)
	if err != nil {
		return Value{}, err
	}
	variable, ok := env.GetVar(n.Name)
	if !ok {
		return Value{}, ip.fatalf(n.Pos, "undefined variable: %s", n.Name)
	}
	// Only complex specs (union, array, object, any) are checked on
	// assignment; a plain nominal spec admits any value.
	if isComplexTypeSpec(variable.TypeSpec) && !MatchesType(v, variable.TypeSpec, ip) {
		return Value{}, ip.fatalf(n.Pos, "cannot assign %s to variable %q declared as %s", v.TagName(), n.Name, variable.TypeSpec)
	}
	if err := env.Set(n.Name, v); err != nil {
		return Value{}, ip.fatalf(n.Pos, "%s", err.Error())
	}
	return v, nil
}

func (ip *Interpreter) evalIndexAssign(n *IndexAssign, env *Environment) (Value, error) {
	recv, err := ip.evalExpr(n.Receiver, env)
	if err != nil {
		return Value{}, err
	}
	idx, err := ip.evalExpr(n.Index, env)
	if err != nil {
		return Value{}, err
	}
	v, err := ip.evalExpr(n.Value, env)
	if err != nil {
		return Value{}, err
	}
	if recv.Tag != VTArray {
		return Value{}, ip.fatalf(n.Pos, "cannot index-assign a %s", recv.TagName())
	}
	if idx.Tag != VTInt {
		return Value{}, ip.fatalf(n.Pos, "array index must be an int, got %s", idx.TagName())
	}
	arr := recv.AsArray()
	i := idx.AsInt()
	if i < 0 || int(i) >= len(arr.Elems) {
		return Value{}, ip.fatalf(n.Pos, "array index %d out of bounds (length %d)", i, len(arr.Elems))
	}
	arr.Elems[i] = v
	return v, nil
}

func (ip *Interpreter) evalFieldAssign(n *FieldAssign, env *Environment) (Value, error) {
	recv, err := ip.evalExpr(n.Receiver, env)
	if err != nil {
		return Value{}, err
	}
	v, err := ip.evalExpr(n.Value, env)
	if err != nil {
		return Value{}, err
	}
	if recv.Tag != VTObject {
		return Value{}, ip.fatalf(n.Pos, "cannot set field %q on a %s", n.Name, recv.TagName())
	}
	recv.AsObject().Fields[n.Name] = v
	return v, nil
}

func parseNumLexeme(s string) (Value, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntVal(n), true
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil {
		return FloatVal(float32(f)), true
	}
	return Value{}, false
}
