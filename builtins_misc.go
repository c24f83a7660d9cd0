// builtins_misc.go implements the remaining general-purpose slice of
// spec.md §4.8: print, len (generic over string/array/object), the
// to*-conversion family, and assert/error.
package axo

import "strconv"

func init() {
	registerBuiltin("print", builtinPrint)
	registerBuiltin("len", builtinLen)
	registerBuiltin("toString", builtinToString)
	registerBuiltin("toInt", builtinToInt)
	registerBuiltin("toFloat", builtinToFloat)
	registerBuiltin("toBool", builtinToBool)
	registerBuiltin("assert", builtinAssert)
	registerBuiltin("error", builtinError)
}

// builtinPrint writes each argument's StringForm space-separated followed
// by a newline to ip.Stdout, returning the empty string.
func builtinPrint(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	for i, a := range args {
		if i > 0 {
			ip.Stdout.Write([]byte(" "))
		}
		ip.Stdout.Write([]byte(a.StringForm()))
	}
	ip.Stdout.Write([]byte("\n"))
	return EmptyString, nil
}

func builtinLen(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "len", 1, len(args))
	}
	switch args[0].Tag {
	case VTStr:
		return IntVal(int64(len(args[0].AsStr()))), nil
	case VTArray:
		return IntVal(int64(len(args[0].AsArray().Elems))), nil
	case VTObject:
		return IntVal(int64(len(args[0].AsObject().Fields))), nil
	}
	return Value{}, typeErr(pos, "len", 0, "string, array, or object", args[0])
}

func builtinToString(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "toString", 1, len(args))
	}
	return StrVal(args[0].StringForm()), nil
}

func builtinToInt(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "toInt", 1, len(args))
	}
	switch args[0].Tag {
	case VTInt:
		return args[0], nil
	case VTFloat:
		return IntVal(int64(args[0].AsFloat())), nil
	case VTBool:
		if args[0].AsBool() {
			return IntVal(1), nil
		}
		return IntVal(0), nil
	case VTStr:
		n, err := strconv.ParseInt(args[0].AsStr(), 10, 64)
		if err != nil {
			return Value{}, newRuntimeError(pos, "toInt: %q is not a valid integer", args[0].AsStr())
		}
		return IntVal(n), nil
	}
	return Value{}, typeErr(pos, "toInt", 0, "int, float, bool, or string", args[0])
}

func builtinToFloat(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "toFloat", 1, len(args))
	}
	switch args[0].Tag {
	case VTFloat:
		return args[0], nil
	case VTInt:
		return FloatVal(float32(args[0].AsInt())), nil
	case VTStr:
		f, err := strconv.ParseFloat(args[0].AsStr(), 32)
		if err != nil {
			return Value{}, newRuntimeError(pos, "toFloat: %q is not a valid number", args[0].AsStr())
		}
		return FloatVal(float32(f)), nil
	}
	return Value{}, typeErr(pos, "toFloat", 0, "int, float, or string", args[0])
}

func builtinToBool(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "toBool", 1, len(args))
	}
	return BoolVal(args[0].Truthy()), nil
}

// builtinAssert raises a RuntimeError carrying the optional message when
// its first argument is falsy, and otherwise returns it unchanged.
func builtinAssert(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return Value{}, newRuntimeError(pos, "assert expects 1 or 2 argument(s), got %d", len(args))
	}
	if args[0].Truthy() {
		return args[0], nil
	}
	msg := "assertion failed"
	if len(args) == 2 {
		msg = args[1].StringForm()
	}
	return Value{}, newRuntimeError(pos, "%s", msg)
}

// builtinError raises a throwable RuntimeError carrying a string value,
// equivalent to `throw <message>` but usable as an expression.
func builtinError(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "error", 1, len(args))
	}
	msg, ok := wantStr(args[0])
	if !ok {
		msg = args[0].StringForm()
	}
	v := StrVal(msg)
	return Value{}, &RuntimeError{Line: pos.Line, Col: pos.Col, Msg: msg, Thrown: &v}
}
