// interpreter.go — SINGLE PUBLIC API SURFACE for the Axo interpreter.
//
// OVERVIEW
// ========
// This file exposes the entire public surface of the Axo runtime: the
// Interpreter type, its registries (user functions, programs, type aliases,
// module exports), and the handful of entry points a host program needs —
// Run/RunFile for a whole source unit, Eval for a single expression inside
// an existing environment, and the TypeRegistry methods the matcher in
// types.go calls back into. Everything else (eval_expr.go, eval_stmt.go,
// modules.go, program.go, builtins*.go) is wired together here but kept
// private.
//
// Axo code evaluates inside an *Environment, a stack of scope frames
// (environment.go). A fresh Interpreter starts with one global frame;
// running a source unit pushes and pops additional frames as blocks,
// function calls, and for-loops are entered and left (spec.md §8 invariant
// 1: the stack returns to its starting depth after every statement).
package axo

import (
	"os"
	"path/filepath"
)

// Interpreter owns all registries a running Axo program consults: declared
// functions and programs (by name — Axo has no overloading), resolvable
// type aliases, and the state of any modules imported so far. It also holds
// the join table for in-flight `program` invocations (program.go) and the
// output sink `print` writes to, which tests redirect to capture output.
type Interpreter struct {
	Global *Environment

	functions   map[string]*FunctionDecl
	programs    map[string]*ProgramDecl
	typeAliases map[string]string

	modules       *moduleTable
	loadingModule *moduleRecord

	invocations *invocationTable

	Stdout        writer
	baseDir       string
	loopFastPath  bool
}

// writer is the minimal interface `print` needs; satisfied by *os.File and
// by any bytes.Buffer/strings.Builder a test hands in.
type writer interface {
	Write(p []byte) (n int, err error)
}

// NewInterpreter returns an Interpreter with an empty global scope, no
// declared functions/programs/aliases, output wired to os.Stdout, and the
// closed-form loop accelerator (C9) enabled.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		Global:       NewEnvironment(),
		functions:    make(map[string]*FunctionDecl),
		programs:     make(map[string]*ProgramDecl),
		typeAliases:  make(map[string]string),
		modules:      newModuleTable(),
		invocations:  newInvocationTable(),
		Stdout:       os.Stdout,
		loopFastPath: true,
	}
	return ip
}

// DisableLoopFastPath turns off C9 so tests can compare interpreted and
// fast-path execution of the same loop for parity (spec.md §8: "identical
// observable results to full interpretation").
func (ip *Interpreter) DisableLoopFastPath() { ip.loopFastPath = false }

// Run parses and executes a complete source unit in the interpreter's
// global scope and returns the value of the last top-level expression
// statement, or an empty string Value if the unit ended in a declaration.
// Any *LexError/*ParseError/*RuntimeError returned is pre-rendered with
// WrapErrorWithSource so callers can print it directly.
func (ip *Interpreter) Run(src string) (Value, error) {
	prog, err := Parse(src)
	if err != nil {
		return Value{}, WrapErrorWithSource(err, src)
	}
	v, err := ip.RunProgram(prog)
	if err != nil {
		return Value{}, WrapErrorWithSource(err, src)
	}
	return v, nil
}

// RunFile loads path from disk and runs it; relative imports inside it
// resolve against the file's own directory (spec.md §4.7).
func (ip *Interpreter) RunFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	ip.baseDir = filepath.Dir(path)
	return ip.Run(string(data))
}

// RunProgram executes an already-parsed Program against the interpreter's
// global scope, without the source-snippet error wrapping Run applies.
func (ip *Interpreter) RunProgram(prog *Program) (Value, error) {
	last := EmptyString
	for _, stmt := range prog.Stmts {
		sig, v, err := ip.execTopLevel(stmt)
		if err != nil {
			return Value{}, err
		}
		if sig.Kind != ctrlNone {
			return Value{}, newRuntimeError(stmt.At(), "control-flow statement at top level")
		}
		if _, isExpr := stmt.(*ExprStmt); isExpr {
			last = v
		} else {
			last = EmptyString
		}
	}
	return last, nil
}

// execTopLevel runs one top-level statement, additionally handling the
// declaration forms (import/use/export/type/func/program) that are only
// legal at that level.
func (ip *Interpreter) execTopLevel(stmt Stmt) (ctrlSignal, Value, error) {
	switch s := stmt.(type) {
	case *Import:
		return ctrlSignal{}, Value{}, ip.execImport(s)
	case *Use:
		return ctrlSignal{}, Value{}, ip.execUse(s)
	case *Export:
		return ctrlSignal{}, Value{}, ip.execExport(s)
	case *FunctionDecl:
		ip.functions[s.Name] = s
		ip.Global.Define(s.Name, Variable{Value: FuncRefVal(s), TypeSpec: "func"})
		return ctrlSignal{}, Value{}, nil
	case *ProgramDecl:
		ip.programs[s.Name] = s
		return ctrlSignal{}, Value{}, nil
	case *TypeDecl:
		ip.typeAliases[s.Name] = s.TypeSpec
		return ctrlSignal{}, Value{}, nil
	case *ExprStmt:
		v, err := ip.evalExpr(s.Expr, ip.Global)
		return ctrlSignal{}, v, err
	default:
		sig, err := ip.execStmt(stmt, ip.Global)
		return sig, Value{}, err
	}
}

// Eval evaluates a single expression against env, exposed for builtins and
// tests that need to run an ad hoc expression without a whole program.
func (ip *Interpreter) Eval(e Expr, env *Environment) (Value, error) {
	return ip.evalExpr(e, env)
}

// ResolveTypeAlias implements TypeRegistry so types.go's matcher can
// resolve user-defined `type` names without an import cycle.
func (ip *Interpreter) ResolveTypeAlias(name string) (string, bool) {
	spec, ok := ip.typeAliases[name]
	return spec, ok
}

// lookupCallable implements the call-resolution order of spec.md §4.6: a
// bare name is first a builtin, then a declared program, then a declared
// function, then a first-class value visible in env.
func (ip *Interpreter) lookupCallable(name string, env *Environment) (callTarget, bool) {
	if b, ok := builtinTable[name]; ok {
		return callTarget{builtin: b}, true
	}
	if pd, ok := ip.programs[name]; ok {
		return callTarget{program: pd}, true
	}
	if fd, ok := ip.functions[name]; ok {
		return callTarget{function: fd}, true
	}
	if v, ok := env.GetVar(name); ok {
		return callTarget{value: &v.Value}, true
	}
	return callTarget{}, false
}

type callTarget struct {
	builtin  builtinFunc
	program  *ProgramDecl
	function *FunctionDecl
	value    *Value
}

func (ip *Interpreter) fatalf(pos Pos, format string, args ...any) error {
	return newRuntimeError(pos, format, args...)
}
