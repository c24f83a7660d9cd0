// functions.go implements call dispatch for C6: resolving a Call node to a
// builtin, program, function, or first-class value (spec.md §4.6 resolution
// order), binding arguments into a fresh call frame, and running the body.
// Grounded on the teacher's interpreter_exec.go `applyArgsScoped`, adapted
// to the Environment frame-stack model instead of a parent-linked *Env.
package axo

func (ip *Interpreter) evalCall(n *Call, env *Environment) (Value, error) {
	args, err := ip.evalArgs(n.Args, env)
	if err != nil {
		return Value{}, err
	}

	if n.Name != "" {
		target, ok := ip.lookupCallable(n.Name, env)
		if !ok {
			return Value{}, ip.fatalf(n.Pos, "undefined function: %s", n.Name)
		}
		return ip.invoke(target, args, n.Pos)
	}

	calleeVal, err := ip.evalExpr(n.Callee, env)
	if err != nil {
		return Value{}, err
	}
	return ip.invoke(callTarget{value: &calleeVal}, args, n.Pos)
}

func (ip *Interpreter) evalArgs(exprs []Expr, env *Environment) ([]Value, error) {
	args := make([]Value, len(exprs))
	for i, a := range exprs {
		v, err := ip.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// invoke dispatches a resolved callTarget (interpreter.go) to its concrete
// executor.
func (ip *Interpreter) invoke(t callTarget, args []Value, pos Pos) (Value, error) {
	switch {
	case t.builtin != nil:
		return t.builtin(ip, args, pos)
	case t.program != nil:
		return ip.callFunctionDecl(programAsFunctionDecl(t.program), args, pos, ip.Global)
	case t.function != nil:
		return ip.callFunctionDecl(t.function, args, pos, ip.Global)
	case t.value != nil:
		return ip.callValue(*t.value, args, pos)
	}
	return Value{}, ip.fatalf(pos, "value is not callable")
}

func (ip *Interpreter) callValue(v Value, args []Value, pos Pos) (Value, error) {
	switch v.Tag {
	case VTFuncRef:
		return ip.callFunctionDecl(v.Data.(*FunctionDecl), args, pos, ip.Global)
	case VTLitFuncRef:
		ref := v.Data.(*funcRefLit)
		return ip.callFunctionLit(ref.Lit, ref.Closure, args, pos)
	}
	return Value{}, ip.fatalf(pos, "cannot call a %s", v.TagName())
}

// programAsFunctionDecl adapts a ProgramDecl to the FunctionDecl shape so a
// direct (non-await) call to a program runs through the same binder as an
// ordinary function — spec.md §5: "calling a program by name behaves like
// calling a function; `await` is what additionally dispatches it to a
// worker". The adapter is rebuilt per call rather than cached since
// ProgramDecl bodies are declared once and never mutated.
func programAsFunctionDecl(pd *ProgramDecl) *FunctionDecl {
	return &FunctionDecl{base: pd.base, Name: pd.Name, Params: pd.Params, RetType: "any", Body: pd.Body}
}

// callFunctionDecl binds args into a fresh frame chained off closureEnv and
// runs the declared body, per spec.md §4.6's call semantics: arity is
// checked, each argument is matched against its parameter's declared type,
// and a bare `return;`/fallthrough both yield the empty string.
func (ip *Interpreter) callFunctionDecl(fd *FunctionDecl, args []Value, pos Pos, closureEnv *Environment) (Value, error) {
	if len(args) != len(fd.Params) {
		return Value{}, ip.fatalf(pos, "%s expects %d argument(s), got %d", fd.Name, len(fd.Params), len(args))
	}
	callEnv := fromFrames(closureEnv.snapshotFrames())
	callEnv.PushScope()
	for i, p := range fd.Params {
		if p.Type != "any" && !MatchesType(args[i], p.Type, ip) {
			return Value{}, ip.fatalf(pos, "argument %d to %s: expected %s, got %s", i+1, fd.Name, p.Type, args[i].TagName())
		}
		callEnv.Define(p.Name, Variable{Value: args[i], TypeSpec: p.Type})
	}
	sig, err := ip.execBlock(fd.Body, callEnv)
	if err != nil {
		return Value{}, err
	}
	switch sig.Kind {
	case ctrlReturn:
		return sig.Value, nil
	case ctrlThrow:
		return Value{}, &RuntimeError{Line: pos.Line, Col: pos.Col, Msg: "uncaught throw from " + fd.Name, Thrown: &sig.Value}
	default:
		return EmptyString, nil
	}
}

func (ip *Interpreter) callFunctionLit(lit *FunctionLit, closure *Environment, args []Value, pos Pos) (Value, error) {
	if len(args) != len(lit.Params) {
		return Value{}, ip.fatalf(pos, "function literal expects %d argument(s), got %d", len(lit.Params), len(args))
	}
	callEnv := fromFrames(closure.snapshotFrames())
	callEnv.PushScope()
	for i, p := range lit.Params {
		if p.Type != "any" && !MatchesType(args[i], p.Type, ip) {
			return Value{}, ip.fatalf(pos, "argument %d to function literal: expected %s, got %s", i+1, p.Type, args[i].TagName())
		}
		callEnv.Define(p.Name, Variable{Value: args[i], TypeSpec: p.Type})
	}
	sig, err := ip.execBlock(lit.Body, callEnv)
	if err != nil {
		return Value{}, err
	}
	switch sig.Kind {
	case ctrlReturn:
		return sig.Value, nil
	case ctrlThrow:
		return Value{}, &RuntimeError{Line: pos.Line, Col: pos.Col, Msg: "uncaught throw from function literal", Thrown: &sig.Value}
	default:
		return EmptyString, nil
	}
}

// evalAwait dispatches n.Call's target to a worker goroutine via
// invocationTable (program.go) and blocks for its result, deep-copying the
// arguments on the way in so the worker cannot observe the caller's later
// mutations of them. Only the arguments are copied: a program body runs
// against the interpreter's own global scope, so its writes to globals are
// visible to the caller once the await returns.
func (ip *Interpreter) evalAwait(n *Await, env *Environment) (Value, error) {
	call := n.Call
	args, err := ip.evalArgs(call.Args, env)
	if err != nil {
		return Value{}, err
	}
	copied := make([]Value, len(args))
	for i, a := range args {
		copied[i] = deepCopyValue(a)
	}

	var target callTarget
	if call.Name != "" {
		var ok bool
		target, ok = ip.lookupCallable(call.Name, env)
		if !ok {
			return Value{}, ip.fatalf(call.Pos, "undefined function: %s", call.Name)
		}
	} else {
		calleeVal, err := ip.evalExpr(call.Callee, env)
		if err != nil {
			return Value{}, err
		}
		target = callTarget{value: &calleeVal}
	}

	id := ip.invocations.dispatch(func() (Value, error) {
		v, err := ip.invoke(target, copied, call.Pos)
		if err != nil {
			return Value{}, err
		}
		if target.program != nil {
			// an awaited program yields no value to the caller (spec.md
			// glossary / §4.6); its return is only meaningful to itself.
			return EmptyString, nil
		}
		return v, nil
	})
	return ip.invocations.join(id)
}
