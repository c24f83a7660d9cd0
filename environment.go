// environment.go implements the Environment half of C5: a stack of scope
// frames per spec.md §3/§4.4. This departs deliberately from the teacher's
// parent-linked *Env (interpreter.go) because spec.md explicitly models a
// push_scope/pop_scope *stack*, not a tree of closures — Axo closures
// instead capture a *snapshot slice* of frames at definition time (see the
// FunctionLit case of evalExpr in eval_expr.go, which calls snapshotFrames
// and fromFrames), which is what lets a FunctionLit value
// outlive the scope it was written in.
package axo

// Variable is a single binding: its value, its declared type spec string
// (spec.md §3), and whether it was declared const (informational only —
// see spec.md §9 Open Question 2).
type Variable struct {
	Value    Value
	TypeSpec string
	Const    bool
}

type scopeFrame map[string]*Variable

// Environment is a stack of scope frames. Frame 0 is the outermost
// (globals); the last frame is innermost. Lookup walks innermost-first.
type Environment struct {
	frames []scopeFrame
}

// NewEnvironment returns an environment with a single global frame.
func NewEnvironment() *Environment {
	return &Environment{frames: []scopeFrame{make(scopeFrame)}}
}

// PushScope opens a new innermost frame.
func (e *Environment) PushScope() {
	e.frames = append(e.frames, make(scopeFrame))
}

// PopScope discards the innermost frame. Callers must balance every
// PushScope with exactly one PopScope (spec.md §8 invariant 1), including
// on every signaled exit path (return/break/continue/throw).
func (e *Environment) PopScope() {
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth reports the current frame count, used by tests to assert the
// scope-stack-depth invariant (spec.md §8 property 1).
func (e *Environment) Depth() int { return len(e.frames) }

// Define writes name into the innermost frame, overwriting any existing
// binding of the same name in that frame.
func (e *Environment) Define(name string, v Variable) {
	cp := v
	e.frames[len(e.frames)-1][name] = &cp
}

// lookup returns the nearest binding for name, innermost-first, or nil.
func (e *Environment) lookup(name string) *Variable {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v
		}
	}
	return nil
}

// Get returns the value bound to name, or an error if undefined.
func (e *Environment) Get(name string) (Value, error) {
	if v := e.lookup(name); v != nil {
		return v.Value, nil
	}
	return Value{}, errUndefinedVariable(name)
}

// GetVar returns the full Variable record (value + declared type + const),
// used by the evaluator to read a variable's declared type for typeof and
// for the write-time type gate.
func (e *Environment) GetVar(name string) (*Variable, bool) {
	v := e.lookup(name)
	return v, v != nil
}

// Has reports whether name is visible from the innermost frame.
func (e *Environment) Has(name string) bool {
	return e.lookup(name) != nil
}

// Set updates the nearest binding of name to value, after the caller has
// already run the declared-type gate (§4.5's write-time policy lives in the
// evaluator, not here, since it needs the type-alias registry). Set fails
// if name is undefined anywhere in the stack.
func (e *Environment) Set(name string, value Value) error {
	v := e.lookup(name)
	if v == nil {
		return errUndefinedVariable(name)
	}
	v.Value = value
	return nil
}

func errUndefinedVariable(name string) error {
	return &RuntimeError{Msg: "undefined variable: " + name}
}

// snapshotFrames returns a shallow copy of the frame stack — a new slice of
// the same frame maps, not copies of the maps — for use as a function
// closure's captured lexical chain. Since the frame maps themselves are
// shared, later writes to an outer scope through the closure are visible to
// the defining scope and vice versa, matching ordinary lexical closure
// semantics.
func (e *Environment) snapshotFrames() []scopeFrame {
	cp := make([]scopeFrame, len(e.frames))
	copy(cp, e.frames)
	return cp
}

// fromFrames builds an Environment over a copy of a captured closure chain,
// with room reserved for one more frame. It pushes no frame itself; the
// caller pushes the call frame, so parameters/locals of the call do not
// leak back into the closure's frames.
func fromFrames(frames []scopeFrame) *Environment {
	cp := make([]scopeFrame, len(frames), len(frames)+1)
	copy(cp, frames)
	return &Environment{frames: cp}
}

// deepCopyValue returns a value with any Array/Object payload deep-copied,
// used when dispatching a `program` invocation to a worker goroutine so the
// worker cannot observe later mutation of the caller's collections
// (spec.md §5 "recommended choice is deep-copy on dispatch").
func deepCopyValue(v Value) Value {
	switch v.Tag {
	case VTArray:
		src := v.AsArray().Elems
		dst := make([]Value, len(src))
		for i, e := range src {
			dst[i] = deepCopyValue(e)
		}
		return ArrayVal(dst)
	case VTObject:
		src := v.AsObject().Fields
		dst := make(map[string]Value, len(src))
		for k, e := range src {
			dst[k] = deepCopyValue(e)
		}
		return ObjectVal(dst)
	default:
		return v
	}
}
