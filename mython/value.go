package mython

import (
	"fmt"
	"strconv"
)

// ValueKind identifies the concrete type carried by a Value. The set is
// closed and fixed: Value is a single struct switched on Kind rather than
// an interface with one implementation per kind.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindClass
	KindInstance
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindClass:
		return "Class"
	case KindInstance:
		return "ClassInstance"
	default:
		return "Unknown"
	}
}

// Value is a mython runtime value. There is no separate "holder" wrapper
// type: a Value that wraps an *Instance already aliases it — assigning the
// Value into another Closure slot copies the pointer, and Go's garbage
// collector keeps the instance alive for as long as any Value still
// references it. See SPEC_FULL.md §3 for the full translation note.
type Value struct {
	kind ValueKind
	data any
}

// NewNone returns the None value.
func NewNone() Value { return Value{kind: KindNone} }

// NewBool wraps b.
func NewBool(b bool) Value { return Value{kind: KindBool, data: b} }

// NewNumber wraps n.
func NewNumber(n int64) Value { return Value{kind: KindNumber, data: n} }

// NewString wraps s.
func NewString(s string) Value { return Value{kind: KindString, data: s} }

// NewClassValue wraps a class definition as a first-class value, the result
// of evaluating a ClassDefinition statement.
func NewClassValue(c *Class) Value { return Value{kind: KindClass, data: c} }

// NewInstanceValue wraps an instance pointer. Every Value built from the same
// *Instance aliases that instance; mutating its fields through one Value is
// visible through all others.
func NewInstanceValue(i *Instance) Value { return Value{kind: KindInstance, data: i} }

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns v's payload; callers must check Kind() first.
func (v Value) Bool() bool { return v.data.(bool) }

// Number returns v's payload; callers must check Kind() first.
func (v Value) Number() int64 { return v.data.(int64) }

// Str returns v's payload; callers must check Kind() first.
func (v Value) Str() string { return v.data.(string) }

// Class returns v's payload; callers must check Kind() first.
func (v Value) Class() *Class { return v.data.(*Class) }

// Instance returns v's payload; callers must check Kind() first.
func (v Value) Instance() *Instance { return v.data.(*Instance) }

// IsTrue reports whether v is truthy: None is always false, Bool is itself,
// Number is truthy when nonzero, String is truthy when non-empty, and
// Class/ClassInstance are always false (the language defines no truthiness
// on objects).
func IsTrue(v Value) bool {
	switch v.kind {
	case KindNone:
		return false
	case KindBool:
		return v.Bool()
	case KindNumber:
		return v.Number() != 0
	case KindString:
		return v.Str() != ""
	default:
		return false
	}
}

// Render produces the text Print would emit for v: primitive values use
// their built-in forms, and a ClassInstance defers to __str__ if it defines
// one with zero parameters, falling back to a stable debug token otherwise.
func Render(v Value, ctx *Context) (string, error) {
	switch v.kind {
	case KindNone:
		return "None", nil
	case KindBool:
		if v.Bool() {
			return "True", nil
		}
		return "False", nil
	case KindNumber:
		return strconv.FormatInt(v.Number(), 10), nil
	case KindString:
		return v.Str(), nil
	case KindClass:
		return "Class " + v.Class().Name, nil
	case KindInstance:
		inst := v.Instance()
		if m := inst.Class.Method(dunderStr); m != nil && len(m.Params) == 0 {
			result, err := inst.Call(dunderStr, nil, ctx)
			if err != nil {
				return "", err
			}
			return Render(result, ctx)
		}
		return fmt.Sprintf("%p", inst), nil
	default:
		return "", fmt.Errorf("cannot render value of kind %s", v.kind)
	}
}

const (
	dunderInit = "__init__"
	dunderStr  = "__str__"
	dunderEq   = "__eq__"
	dunderLt   = "__lt__"
	dunderAdd  = "__add__"
)
