// value.go implements the Value half of C5: the tagged runtime domain of
// spec.md §3. Grounded on the teacher's Value{Tag, Data} idiom
// (interpreter.go), narrowed to the eight variants Axo's spec names —
// there is no VTModule/VTType/VTHandle here, since Axo modules/types are
// not first-class runtime values, only evaluator-registry entries.
//
// Arrays and Objects are shared by reference: two Values holding the same
// *ArrayObj/*MapObj alias, so mutation through one binding is visible
// through another (spec.md §3 "shared mutable sequence/map").
package axo

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueTag discriminates which case of Value.Data is active.
type ValueTag int

const (
	VTInt ValueTag = iota
	VTFloat
	VTStr
	VTBool
	VTArray
	VTObject
	VTFuncRef    // *FunctionDecl
	VTLitFuncRef // *funcRefLit
)

// Value is the universal runtime carrier. Data holds, by Tag:
// VTInt->int64, VTFloat->float32, VTStr->string, VTBool->bool,
// VTArray->*ArrayObj, VTObject->*MapObj, VTFuncRef->*FunctionDecl,
// VTLitFuncRef->*funcRefLit (the FunctionLit plus its capturing closure).
type Value struct {
	Tag  ValueTag
	Data any
}

// ArrayObj is the shared backing store for an Array value.
type ArrayObj struct {
	Elems []Value
}

// MapObj is the shared backing store for an Object value. Field order is
// not guaranteed to be preserved (spec.md §3: "insertion order need not be
// preserved"), so it is stored in an ordinary Go map.
type MapObj struct {
	Fields map[string]Value
}

// funcRefLit pairs a FunctionLit with the environment captured at the point
// it was evaluated, so a function literal assigned to a variable remains a
// proper closure.
type funcRefLit struct {
	Lit     *FunctionLit
	Closure *Environment
}

func IntVal(n int64) Value    { return Value{Tag: VTInt, Data: n} }
func FloatVal(f float32) Value { return Value{Tag: VTFloat, Data: f} }
func StrVal(s string) Value   { return Value{Tag: VTStr, Data: s} }
func BoolVal(b bool) Value    { return Value{Tag: VTBool, Data: b} }

func ArrayVal(elems []Value) Value {
	return Value{Tag: VTArray, Data: &ArrayObj{Elems: elems}}
}

func ObjectVal(fields map[string]Value) Value {
	return Value{Tag: VTObject, Data: &MapObj{Fields: fields}}
}

func FuncRefVal(d *FunctionDecl) Value { return Value{Tag: VTFuncRef, Data: d} }

func LitFuncRefVal(lit *FunctionLit, closure *Environment) Value {
	return Value{Tag: VTLitFuncRef, Data: &funcRefLit{Lit: lit, Closure: closure}}
}

// EmptyString is the Axo "absent" value: spec.md §3 has no null variant, so
// zero, false, "", an empty array, and an empty object all serve that role.
var EmptyString = StrVal("")

func (v Value) AsInt() int64      { return v.Data.(int64) }
func (v Value) AsFloat() float32  { return v.Data.(float32) }
func (v Value) AsStr() string     { return v.Data.(string) }
func (v Value) AsBool() bool      { return v.Data.(bool) }
func (v Value) AsArray() *ArrayObj { return v.Data.(*ArrayObj) }
func (v Value) AsObject() *MapObj  { return v.Data.(*MapObj) }

// TagName returns the runtime tag name used by typeof/error messages
// (spec.md §4.6: "int|float|string|bool|array|object|function|unknown").
func (v Value) TagName() string {
	switch v.Tag {
	case VTInt:
		return "int"
	case VTFloat:
		return "float"
	case VTStr:
		return "string"
	case VTBool:
		return "bool"
	case VTArray:
		return "array"
	case VTObject:
		return "object"
	case VTFuncRef, VTLitFuncRef:
		return "function"
	default:
		return "unknown"
	}
}

// StringForm renders v the way the evaluator does for string concatenation,
// `print`, and `==`/`!=` string-form comparison (spec.md §4.6 / §9).
func (v Value) StringForm() string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case VTFloat:
		return strconv.FormatFloat(float64(v.AsFloat()), 'g', -1, 32)
	case VTStr:
		return v.AsStr()
	case VTBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case VTArray:
		arr := v.AsArray()
		parts := make([]string, len(arr.Elems))
		for i, e := range arr.Elems {
			parts[i] = e.StringForm()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case VTObject:
		obj := v.AsObject()
		parts := make([]string, 0, len(obj.Fields))
		for k, e := range obj.Fields {
			parts = append(parts, fmt.Sprintf("%s: %s", k, e.StringForm()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case VTFuncRef:
		return "<func " + v.Data.(*FunctionDecl).Name + ">"
	case VTLitFuncRef:
		return "<func>"
	default:
		return ""
	}
}

// Truthy implements spec.md §4.6's truthiness rules.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTBool:
		return v.AsBool()
	case VTInt:
		return v.AsInt() != 0
	case VTFloat:
		return v.AsFloat() != 0
	case VTStr:
		return v.AsStr() != ""
	case VTArray:
		return len(v.AsArray().Elems) > 0
	case VTObject:
		return len(v.AsObject().Fields) > 0
	case VTFuncRef, VTLitFuncRef:
		return true
	default:
		return false
	}
}
