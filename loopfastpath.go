// loopfastpath.go implements C9: a closed-form accelerator for the narrow
// class of counting loops the original implementation recognized well
// enough to hand to its LLVM loop JIT (original_source/src/jit.cpp). Axo
// has no LLVM dependency, so this reimplements the same *contract*
// (isCompilable / compileAndExecute: try a fast path, silently fall back to
// full interpretation on any mismatch) as ordinary Go arithmetic — spec.md
// §9 is explicit that C9 is "a closed-form accelerator, not a requirement
// to embed an LLVM JIT".
//
// Recognized shape:
//
//	for (var i = <int>; i < N; i = i + k) {
//	    x = x + c;   // any number of such constant-step assignments
//	    ...
//	}
//
// where N is a loop-invariant int expression evaluated once, k > 0 is a
// literal step, and every statement in the body is a plain
// `name = name +/- <int literal>` assignment to a variable already bound
// outside the loop. Any other shape falls back to normal interpretation
// silently (applied=false, err=nil) — this is a pure optimization, never a
// semantic difference (spec.md §8: "identical observable results to full
// interpretation").
package axo

// tryLoopFastPath attempts the closed-form rewrite described above. env's
// For-scope (pushed by execFor) has already had Init executed against it.
func (ip *Interpreter) tryLoopFastPath(s *For, env *Environment) (bool, error) {
	loopVar, step, bound, ok := ip.matchCountingLoop(s, env)
	if !ok {
		return false, nil
	}

	deltas, ok := matchConstantStepBody(s.Body, loopVar)
	if !ok {
		return false, nil
	}

	i0, err := env.Get(loopVar)
	if err != nil || i0.Tag != VTInt {
		return false, nil
	}

	start := i0.AsInt()
	iterations := int64(0)
	if step > 0 && bound > start {
		iterations = (bound - start + step - 1) / step
	}
	if iterations <= 0 {
		return true, nil
	}

	// Check every target before writing any, so a fallback never leaves
	// some variables already advanced.
	for name := range deltas {
		cur, err := env.Get(name)
		if err != nil || (cur.Tag != VTInt && cur.Tag != VTFloat) {
			return false, nil
		}
	}

	for name, delta := range deltas {
		cur, err := env.Get(name)
		if err != nil {
			return false, nil
		}
		switch cur.Tag {
		case VTInt:
			if err := env.Set(name, IntVal(cur.AsInt()+delta*iterations)); err != nil {
				return false, err
			}
		case VTFloat:
			if err := env.Set(name, FloatVal(cur.AsFloat()+float32(delta*iterations))); err != nil {
				return false, err
			}
		default:
			return false, nil
		}
	}

	finalI := start + step*iterations
	if err := env.Set(loopVar, IntVal(finalI)); err != nil {
		return false, err
	}
	return true, nil
}

// matchCountingLoop recognizes `i < N` / `N > i` conditions paired with a
// `i = i + k` update on the same variable, k a positive int literal. N is
// evaluated once (it must not itself depend on the loop body to stay
// loop-invariant; this implementation simply evaluates it before the loop
// starts, matching "N is a loop-invariant int expression").
func (ip *Interpreter) matchCountingLoop(s *For, env *Environment) (loopVar string, step, bound int64, ok bool) {
	bin, isBin := s.Cond.(*BinaryOp)
	if !isBin {
		return "", 0, 0, false
	}

	var varExpr Expr
	var boundExpr Expr
	switch bin.Op {
	case LT:
		varExpr, boundExpr = bin.Left, bin.Right
	case GT:
		varExpr, boundExpr = bin.Right, bin.Left
	default:
		return "", 0, 0, false
	}
	ident, isIdent := varExpr.(*Ident)
	if !isIdent {
		return "", 0, 0, false
	}

	boundVal, err := ip.evalExpr(boundExpr, env)
	if err != nil || boundVal.Tag != VTInt {
		return "", 0, 0, false
	}

	updStmt, isExprStmt := s.Update.(*ExprStmt)
	if !isExprStmt {
		return "", 0, 0, false
	}
	assign, isAssign := updStmt.Expr.(*Assign)
	if !isAssign || assign.Name != ident.Name {
		return "", 0, 0, false
	}
	stepVal, ok := matchConstantStep(assign.Value, ident.Name)
	if !ok || stepVal <= 0 {
		return "", 0, 0, false
	}

	return ident.Name, stepVal, boundVal.AsInt(), true
}

// matchConstantStep recognizes `name + k` / `name - k` with k an int
// literal, returning the signed delta.
func matchConstantStep(e Expr, name string) (int64, bool) {
	bin, ok := e.(*BinaryOp)
	if !ok {
		return 0, false
	}
	lhs, ok := bin.Left.(*Ident)
	if !ok || lhs.Name != name {
		return 0, false
	}
	lit, ok := bin.Right.(*IntLit)
	if !ok {
		return 0, false
	}
	switch bin.Op {
	case PLUS:
		return lit.Value, true
	case MINUS:
		return -lit.Value, true
	}
	return 0, false
}

// matchConstantStepBody requires every statement in body to be a
// `name = name +/- <int literal>` assignment to a variable other than the
// loop variable itself (the loop variable's own progression is handled
// separately by the caller), returning the accumulated per-iteration delta
// for each such variable. Any other statement shape fails the match.
func matchConstantStepBody(body *Block, loopVar string) (map[string]int64, bool) {
	deltas := make(map[string]int64)
	for _, st := range body.Items {
		exprStmt, ok := st.(*ExprStmt)
		if !ok {
			return nil, false
		}
		assign, ok := exprStmt.Expr.(*Assign)
		if !ok || assign.Name == loopVar {
			return nil, false
		}
		delta, ok := matchConstantStep(assign.Value, assign.Name)
		if !ok {
			return nil, false
		}
		deltas[assign.Name] += delta
	}
	return deltas, true
}
