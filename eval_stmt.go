// eval_stmt.go implements the statement half of C6. Control flow
// (return/break/continue/throw) is modeled as a distinguished result value
// returned alongside a normal error, not as a Go panic (spec.md §9: "Go
// panic/recover for control flow... maps to a typed result value threaded
// through every exec call instead"). This mirrors the teacher's own
// interpreter_ops.go convention of returning an explicit signal struct from
// every statement executor rather than using panic/recover for control
// transfer.
package axo

// ctrlKind classifies how a block of statements stopped executing.
type ctrlKind int

const (
	ctrlNone ctrlKind = iota
	ctrlReturn
	ctrlBreak
	ctrlContinue
	ctrlThrow
)

// ctrlSignal is the non-error result of executing a statement or block:
// ctrlNone means "ran to completion, keep going"; any other Kind means a
// control transfer is in flight and the caller must propagate it upward
// (after running any enclosing `finally`, per spec.md §4.6) rather than
// continue with the next statement.
type ctrlSignal struct {
	Kind  ctrlKind
	Value Value // the returned or thrown value; unused for break/continue
}

func (ip *Interpreter) execBlock(b *Block, env *Environment) (ctrlSignal, error) {
	env.PushScope()
	defer env.PopScope()
	for _, st := range b.Items {
		sig, err := ip.execStmt(st, env)
		if err != nil {
			return ctrlSignal{}, err
		}
		if sig.Kind != ctrlNone {
			return sig, nil
		}
	}
	return ctrlSignal{}, nil
}

func (ip *Interpreter) execStmt(st Stmt, env *Environment) (ctrlSignal, error) {
	switch s := st.(type) {
	case *Block:
		return ip.execBlock(s, env)
	case *VarDecl:
		return ctrlSignal{}, ip.execVarDecl(s, env)
	case *ExprStmt:
		_, err := ip.evalExpr(s.Expr, env)
		return ctrlSignal{}, err
	case *If:
		return ip.execIf(s, env)
	case *While:
		return ip.execWhile(s, env)
	case *For:
		return ip.execFor(s, env)
	case *Return:
		if s.Value == nil {
			return ctrlSignal{Kind: ctrlReturn, Value: EmptyString}, nil
		}
		v, err := ip.evalExpr(s.Value, env)
		if err != nil {
			return ctrlSignal{}, err
		}
		return ctrlSignal{Kind: ctrlReturn, Value: v}, nil
	case *Throw:
		v, err := ip.evalExpr(s.Value, env)
		if err != nil {
			return ctrlSignal{}, err
		}
		return ctrlSignal{Kind: ctrlThrow, Value: v}, nil
	case *Try:
		return ip.execTry(s, env)
	case *Break:
		return ctrlSignal{Kind: ctrlBreak}, nil
	case *Continue:
		return ctrlSignal{Kind: ctrlContinue}, nil
	case *Switch:
		return ip.execSwitch(s, env)
	case *FunctionDecl:
		ip.functions[s.Name] = s
		env.Define(s.Name, Variable{Value: FuncRefVal(s), TypeSpec: "func"})
		return ctrlSignal{}, nil
	case *ProgramDecl:
		ip.programs[s.Name] = s
		return ctrlSignal{}, nil
	case *TypeDecl:
		ip.typeAliases[s.Name] = s.TypeSpec
		return ctrlSignal{}, nil
	case *Import, *Use, *Export:
		return ctrlSignal{}, ip.fatalf(st.At(), "declaration not permitted here")
	}
	return ctrlSignal{}, ip.fatalf(st.At(), "unhandled statement node %T", st)
}

// execVarDecl binds Name in the innermost scope, running the write-time
// type gate of spec.md §4.5 against the declared TypeSpec.
func (ip *Interpreter) execVarDecl(s *VarDecl, env *Environment) error {
	var v Value = EmptyString
	if s.Init != nil {
		var err error
		v, err = ip.evalExpr(s.Init, env)
		if err != nil {
			return err
		}
	}
	if s.TypeSpec != "any" && s.Init != nil && !MatchesType(v, s.TypeSpec, ip) {
		return ip.fatalf(s.Pos, "cannot initialize variable %q declared as %s with a %s", s.Name, s.TypeSpec, v.TagName())
	}
	env.Define(s.Name, Variable{Value: v, TypeSpec: s.TypeSpec, Const: s.Const})
	return nil
}

func (ip *Interpreter) execIf(s *If, env *Environment) (ctrlSignal, error) {
	cond, err := ip.evalExpr(s.Cond, env)
	if err != nil {
		return ctrlSignal{}, err
	}
	if cond.Truthy() {
		return ip.execBlock(s.Then, env)
	}
	if s.Else != nil {
		return ip.execStmt(s.Else, env)
	}
	return ctrlSignal{}, nil
}

func (ip *Interpreter) execWhile(s *While, env *Environment) (ctrlSignal, error) {
	for {
		cond, err := ip.evalExpr(s.Cond, env)
		if err != nil {
			return ctrlSignal{}, err
		}
		if !cond.Truthy() {
			return ctrlSignal{}, nil
		}
		sig, err := ip.execBlock(s.Body, env)
		if err != nil {
			return ctrlSignal{}, err
		}
		switch sig.Kind {
		case ctrlBreak:
			return ctrlSignal{}, nil
		case ctrlReturn, ctrlThrow:
			return sig, nil
		}
	}
}

// execFor opens the loop's own scope for Init before each fast-path or
// interpreted pass (spec.md §4.6: "for introduces an extra scope around its
// init clause"), and tries the closed-form accelerator (C9) before falling
// back to ordinary interpretation.
func (ip *Interpreter) execFor(s *For, env *Environment) (ctrlSignal, error) {
	env.PushScope()
	defer env.PopScope()

	if s.Init != nil {
		if _, err := ip.execStmt(s.Init, env); err != nil {
			return ctrlSignal{}, err
		}
	}

	if ip.loopFastPath {
		if applied, err := ip.tryLoopFastPath(s, env); err != nil {
			return ctrlSignal{}, err
		} else if applied {
			return ctrlSignal{}, nil
		}
	}

	for {
		cond, err := ip.evalExpr(s.Cond, env)
		if err != nil {
			return ctrlSignal{}, err
		}
		if !cond.Truthy() {
			return ctrlSignal{}, nil
		}
		sig, err := ip.execBlock(s.Body, env)
		if err != nil {
			return ctrlSignal{}, err
		}
		if sig.Kind == ctrlBreak {
			return ctrlSignal{}, nil
		}
		if sig.Kind == ctrlReturn || sig.Kind == ctrlThrow {
			return sig, nil
		}
		if s.Update != nil {
			if _, err := ip.execStmt(s.Update, env); err != nil {
				return ctrlSignal{}, err
			}
		}
	}
}

// execTry runs Body, routing a ctrlThrow (or a fatal *RuntimeError with a
// Thrown payload) to Catch when present, and always running Finally exactly
// once regardless of which path was taken (spec.md §4.6).
func (ip *Interpreter) execTry(s *Try, env *Environment) (ctrlSignal, error) {
	sig, err := ip.execBlock(s.Body, env)

	if (sig.Kind == ctrlThrow || isThrown(err)) && s.Catch != nil {
		caught := sig.Value
		if rerr, ok := err.(*RuntimeError); ok && rerr.Thrown != nil {
			caught = *rerr.Thrown
		}
		env.PushScope()
		if s.CatchVar != "" {
			env.Define(s.CatchVar, Variable{Value: caught, TypeSpec: "any"})
		}
		sig, err = ip.execBlock(s.Catch, env)
		env.PopScope()
	}

	if s.Finally != nil {
		finSig, finErr := ip.execBlock(s.Finally, env)
		if finErr != nil {
			return ctrlSignal{}, finErr
		}
		if finSig.Kind != ctrlNone {
			return finSig, nil
		}
	}

	return sig, err
}

func isThrown(err error) bool {
	rerr, ok := err.(*RuntimeError)
	return ok && rerr.Thrown != nil
}

// execSwitch implements C-style fallthrough: once a matching case (or the
// default clause) is found, execution continues through every subsequent
// case's statements until a break (spec.md §4.6).
func (ip *Interpreter) execSwitch(s *Switch, env *Environment) (ctrlSignal, error) {
	disc, err := ip.evalExpr(s.Disc, env)
	if err != nil {
		return ctrlSignal{}, err
	}

	matchedIdx := -1
	defaultIdx := -1
	for i, c := range s.Cases {
		if c.Value == nil {
			defaultIdx = i
			continue
		}
		cv, err := ip.evalExpr(c.Value, env)
		if err != nil {
			return ctrlSignal{}, err
		}
		if disc.StringForm() == cv.StringForm() {
			matchedIdx = i
			break
		}
	}
	if matchedIdx == -1 {
		matchedIdx = defaultIdx
	}
	if matchedIdx == -1 {
		return ctrlSignal{}, nil
	}

	env.PushScope()
	defer env.PopScope()
	for i := matchedIdx; i < len(s.Cases); i++ {
		for _, st := range s.Cases[i].Body {
			sig, err := ip.execStmt(st, env)
			if err != nil {
				return ctrlSignal{}, err
			}
			if sig.Kind == ctrlBreak {
				return ctrlSignal{}, nil
			}
			if sig.Kind != ctrlNone {
				return sig, nil
			}
		}
	}
	return ctrlSignal{}, nil
}
