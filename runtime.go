// runtime.go implements the standard runtime wiring against the stable
// engine surface defined in interpreter.go, mirroring the teacher's own
// split between "the engine" (interpreter.go/eval_*.go) and "the runtime"
// (this file, builtins_*.go). Axo has no prelude to load (spec.md's
// built-in library is the fixed table in builtins.go, not a second Axo
// source file evaluated into Core), so NewRuntime has nothing left to wire
// beyond NewInterpreter's own construction — it is kept as the documented,
// stable constructor a host program should call instead of reaching for
// NewInterpreter directly, in case that changes in the future.
package axo

// NewRuntime returns a fully-initialized interpreter with the standard
// built-in library installed and the closed-form loop accelerator enabled.
func NewRuntime() *Interpreter {
	return NewInterpreter()
}
