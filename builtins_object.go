// builtins_object.go implements the object slice of spec.md §4.8.
package axo

func init() {
	registerBuiltin("keys", builtinKeys)
	registerBuiltin("values", builtinValues)
	registerBuiltin("hasKey", builtinHasKey)
	registerBuiltin("merge", builtinMerge)
	registerBuiltin("clone", builtinClone)
}

func builtinKeys(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "keys", 1, len(args))
	}
	obj, ok := wantObject(args[0])
	if !ok {
		return Value{}, typeErr(pos, "keys", 0, "object", args[0])
	}
	out := make([]Value, 0, len(obj.Fields))
	for k := range obj.Fields {
		out = append(out, StrVal(k))
	}
	return ArrayVal(out), nil
}

func builtinValues(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "values", 1, len(args))
	}
	obj, ok := wantObject(args[0])
	if !ok {
		return Value{}, typeErr(pos, "values", 0, "object", args[0])
	}
	out := make([]Value, 0, len(obj.Fields))
	for _, v := range obj.Fields {
		out = append(out, v)
	}
	return ArrayVal(out), nil
}

func builtinHasKey(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "hasKey", 2, len(args))
	}
	obj, ok := wantObject(args[0])
	if !ok {
		return Value{}, typeErr(pos, "hasKey", 0, "object", args[0])
	}
	key, ok := wantStr(args[1])
	if !ok {
		return Value{}, typeErr(pos, "hasKey", 1, "string", args[1])
	}
	_, found := obj.Fields[key]
	return BoolVal(found), nil
}

// builtinMerge returns a new object with b's fields overlaid onto a's;
// neither input is mutated.
func builtinMerge(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "merge", 2, len(args))
	}
	a, ok := wantObject(args[0])
	if !ok {
		return Value{}, typeErr(pos, "merge", 0, "object", args[0])
	}
	b, ok := wantObject(args[1])
	if !ok {
		return Value{}, typeErr(pos, "merge", 1, "object", args[1])
	}
	out := make(map[string]Value, len(a.Fields)+len(b.Fields))
	for k, v := range a.Fields {
		out[k] = v
	}
	for k, v := range b.Fields {
		out[k] = v
	}
	return ObjectVal(out), nil
}

// builtinClone deep-copies an array or object so the result shares no
// backing storage with the original.
func builtinClone(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "clone", 1, len(args))
	}
	if args[0].Tag != VTArray && args[0].Tag != VTObject {
		return Value{}, typeErr(pos, "clone", 0, "array or object", args[0])
	}
	return deepCopyValue(args[0]), nil
}
