// builtins_math.go implements the numeric slice of spec.md §4.8, grounded
// on the teacher's builtin_misc.go math wrappers over the Go "math"
// package.
package axo

import "math"

func init() {
	registerBuiltin("abs", builtinAbs)
	registerBuiltin("floor", builtinFloor)
	registerBuiltin("ceil", builtinCeil)
	registerBuiltin("round", builtinRound)
	registerBuiltin("sqrt", builtinSqrt)
	registerBuiltin("pow", builtinPow)
	registerBuiltin("min", builtinMin)
	registerBuiltin("max", builtinMax)
}

func builtinAbs(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "abs", 1, len(args))
	}
	switch args[0].Tag {
	case VTInt:
		n := args[0].AsInt()
		if n < 0 {
			n = -n
		}
		return IntVal(n), nil
	case VTFloat:
		return FloatVal(float32(math.Abs(float64(args[0].AsFloat())))), nil
	}
	return Value{}, typeErr(pos, "abs", 0, "int or float", args[0])
}

func builtinFloor(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "floor", 1, len(args))
	}
	return IntVal(int64(math.Floor(float64(toFloat(args[0]))))), nil
}

func builtinCeil(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "ceil", 1, len(args))
	}
	return IntVal(int64(math.Ceil(float64(toFloat(args[0]))))), nil
}

func builtinRound(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "round", 1, len(args))
	}
	return IntVal(int64(math.Round(float64(toFloat(args[0]))))), nil
}

func builtinSqrt(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "sqrt", 1, len(args))
	}
	return FloatVal(float32(math.Sqrt(float64(toFloat(args[0]))))), nil
}

func builtinPow(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "pow", 2, len(args))
	}
	return FloatVal(float32(math.Pow(float64(toFloat(args[0])), float64(toFloat(args[1]))))), nil
}

func builtinMin(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) < 1 {
		return Value{}, newRuntimeError(pos, "min expects at least 1 argument, got %d", len(args))
	}
	best := args[0]
	for _, a := range args[1:] {
		if toFloat(a) < toFloat(best) {
			best = a
		}
	}
	return best, nil
}

func builtinMax(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) < 1 {
		return Value{}, newRuntimeError(pos, "max expects at least 1 argument, got %d", len(args))
	}
	best := args[0]
	for _, a := range args[1:] {
		if toFloat(a) > toFloat(best) {
			best = a
		}
	}
	return best, nil
}
