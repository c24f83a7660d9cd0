// builtins_array.go implements the array slice of spec.md §4.8. push/pop
// mutate the receiver in place (arrays are shared by reference, value.go),
// matching spec.md §3's "shared mutable sequence" semantics.
package axo

import "sort"

func init() {
	registerBuiltin("push", builtinPush)
	registerBuiltin("pop", builtinPop)
	registerBuiltin("slice", builtinSlice)
	registerBuiltin("reverse", builtinReverse)
	registerBuiltin("join", builtinJoin)
	registerBuiltin("sort", builtinSort)
	registerBuiltin("find", builtinFind)
	registerBuiltin("includes", builtinIncludes)
}

func builtinPush(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "push", 2, len(args))
	}
	arr, ok := wantArray(args[0])
	if !ok {
		return Value{}, typeErr(pos, "push", 0, "array", args[0])
	}
	arr.Elems = append(arr.Elems, args[1])
	return args[0], nil
}

func builtinPop(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "pop", 1, len(args))
	}
	arr, ok := wantArray(args[0])
	if !ok {
		return Value{}, typeErr(pos, "pop", 0, "array", args[0])
	}
	if len(arr.Elems) == 0 {
		return EmptyString, nil
	}
	last := arr.Elems[len(arr.Elems)-1]
	arr.Elems = arr.Elems[:len(arr.Elems)-1]
	return last, nil
}

func builtinSlice(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return Value{}, newRuntimeError(pos, "slice expects 2 or 3 argument(s), got %d", len(args))
	}
	arr, ok := wantArray(args[0])
	if !ok {
		return Value{}, typeErr(pos, "slice", 0, "array", args[0])
	}
	start, ok := wantInt(args[1])
	if !ok {
		return Value{}, typeErr(pos, "slice", 1, "int", args[1])
	}
	end := int64(len(arr.Elems))
	if len(args) == 3 {
		end, ok = wantInt(args[2])
		if !ok {
			return Value{}, typeErr(pos, "slice", 2, "int", args[2])
		}
	}
	n := int64(len(arr.Elems))
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	out := make([]Value, end-start)
	copy(out, arr.Elems[start:end])
	return ArrayVal(out), nil
}

func builtinReverse(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "reverse", 1, len(args))
	}
	arr, ok := wantArray(args[0])
	if !ok {
		return Value{}, typeErr(pos, "reverse", 0, "array", args[0])
	}
	out := make([]Value, len(arr.Elems))
	for i, v := range arr.Elems {
		out[len(out)-1-i] = v
	}
	return ArrayVal(out), nil
}

func builtinJoin(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "join", 2, len(args))
	}
	arr, ok := wantArray(args[0])
	if !ok {
		return Value{}, typeErr(pos, "join", 0, "array", args[0])
	}
	sep, ok := wantStr(args[1])
	if !ok {
		return Value{}, typeErr(pos, "join", 1, "string", args[1])
	}
	parts := make([]string, len(arr.Elems))
	for i, v := range arr.Elems {
		parts[i] = v.StringForm()
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return StrVal(out), nil
}

// builtinSort sorts a copy of the array. With one argument it requires
// int/float/string elements and sorts ascending by value; with two
// arguments the second is an Axo comparator function called as
// cmp(a, b) -> int, matching the convention spec.md §4.8 sets out for
// `sort`.
func builtinSort(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return Value{}, newRuntimeError(pos, "sort expects 1 or 2 argument(s), got %d", len(args))
	}
	arr, ok := wantArray(args[0])
	if !ok {
		return Value{}, typeErr(pos, "sort", 0, "array", args[0])
	}
	out := make([]Value, len(arr.Elems))
	copy(out, arr.Elems)

	if len(args) == 2 {
		var sortErr error
		sort.SliceStable(out, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			r, err := ip.callValue(args[1], []Value{out[i], out[j]}, pos)
			if err != nil {
				sortErr = err
				return false
			}
			n, _ := wantInt(r)
			return n < 0
		})
		if sortErr != nil {
			return Value{}, sortErr
		}
		return ArrayVal(out), nil
	}

	sort.SliceStable(out, func(i, j int) bool {
		return compareOrdered(out[i], out[j]) < 0
	})
	return ArrayVal(out), nil
}

func compareOrdered(a, b Value) int {
	if a.Tag == VTStr && b.Tag == VTStr {
		switch {
		case a.AsStr() < b.AsStr():
			return -1
		case a.AsStr() > b.AsStr():
			return 1
		default:
			return 0
		}
	}
	af, bf := toFloat(a), toFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

// builtinFind returns the first element for which the predicate function
// returns truthy, or the empty string if none matches.
func builtinFind(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "find", 2, len(args))
	}
	arr, ok := wantArray(args[0])
	if !ok {
		return Value{}, typeErr(pos, "find", 0, "array", args[0])
	}
	for _, v := range arr.Elems {
		r, err := ip.callValue(args[1], []Value{v}, pos)
		if err != nil {
			return Value{}, err
		}
		if r.Truthy() {
			return v, nil
		}
	}
	return EmptyString, nil
}

func builtinIncludes(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "includes", 2, len(args))
	}
	arr, ok := wantArray(args[0])
	if !ok {
		return Value{}, typeErr(pos, "includes", 0, "array", args[0])
	}
	for _, v := range arr.Elems {
		if valuesEqual(v, args[1]) {
			return BoolVal(true), nil
		}
	}
	return BoolVal(false), nil
}
