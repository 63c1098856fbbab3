package mython

import (
	"bytes"
	"testing"
)

func TestHasMethodIsArityAware(t *testing.T) {
	m := &Method{Name: "greet", Params: []string{"who"}}
	inst := NewInstance(NewClass("C", nil, []*Method{m}))
	if !inst.HasMethod("greet", 1) {
		t.Fatalf("expected a method with 1 param to match argCount 1")
	}
	if inst.HasMethod("greet", 0) {
		t.Fatalf("expected a method with 1 param not to match argCount 0")
	}
	if inst.HasMethod("missing", 0) {
		t.Fatalf("expected an unresolved method to not be found")
	}
}

func TestInstanceCallBindsSelfAndParams(t *testing.T) {
	body := &MethodBody{Body: &Return{Arg: &FieldAccess{Object: &VariableValue{Name: "self"}, Field: "x"}}}
	init := &Method{Name: dunderInit, Params: []string{"v"}, Body: &MethodBody{Body: &FieldAssignment{
		Object: &VariableValue{Name: "self"}, Field: "x", RHS: &VariableValue{Name: "v"},
	}}}
	getX := &Method{Name: "getX", Body: body}
	class := NewClass("C", nil, []*Method{init, getX})
	inst := NewInstance(class)
	ctx := NewContext(&bytes.Buffer{})

	if _, err := inst.Call(dunderInit, []Value{NewNumber(42)}, ctx); err != nil {
		t.Fatalf("__init__ call failed: %v", err)
	}
	result, err := inst.Call("getX", nil, ctx)
	if err != nil {
		t.Fatalf("getX call failed: %v", err)
	}
	if result.Kind() != KindNumber || result.Number() != 42 {
		t.Fatalf("expected 42, got %#v", result)
	}
}

func TestInstanceCallMissingMethodIsRuntimeError(t *testing.T) {
	inst := NewInstance(NewClass("C", nil, nil))
	_, err := inst.Call("missing", nil, NewContext(&bytes.Buffer{}))
	if err == nil {
		t.Fatalf("expected an error calling a missing method")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
}

func TestInstanceAliasing(t *testing.T) {
	class := NewClass("C", nil, nil)
	inst := NewInstance(class)
	h1 := NewInstanceValue(inst)
	h2 := h1

	h1.Instance().Fields["x"] = NewNumber(1)
	if h2.Instance().Fields["x"].Number() != 1 {
		t.Fatalf("expected a mutation through h1 to be observable through h2")
	}
}

func TestInstanceCallWithoutReturnYieldsNone(t *testing.T) {
	// A method body that never reaches a Return must fall through to None,
	// not to whatever its last statement happened to evaluate to.
	m := &Method{Name: "f", Body: &MethodBody{Body: &Compound{Stmts: []Node{
		&Assignment{Name: "x", RHS: &NumberLiteral{Value: 1}},
	}}}}
	class := NewClass("C", nil, []*Method{m})
	inst := NewInstance(class)
	ctx := NewContext(&bytes.Buffer{})

	result, err := inst.Call("f", nil, ctx)
	if err != nil {
		t.Fatalf("f call failed: %v", err)
	}
	if result.Kind() != KindNone {
		t.Fatalf("expected KindNone for a method without an explicit return, got %#v", result)
	}
}

func TestInstanceCallBuildsFreshClosurePerCall(t *testing.T) {
	// A method's formal parameter list must never be mutated by a call, so
	// two calls with different arguments must not interfere with each other.
	m := &Method{Name: "identity", Params: []string{"v"}, Body: &MethodBody{Body: &Return{Arg: &VariableValue{Name: "v"}}}}
	class := NewClass("C", nil, []*Method{m})
	inst := NewInstance(class)
	ctx := NewContext(&bytes.Buffer{})

	r1, err := inst.Call("identity", []Value{NewNumber(1)}, ctx)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	r2, err := inst.Call("identity", []Value{NewNumber(2)}, ctx)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if r1.Number() != 1 || r2.Number() != 2 {
		t.Fatalf("expected calls to be independent, got %d and %d", r1.Number(), r2.Number())
	}
	if len(m.Params) != 1 || m.Params[0] != "v" {
		t.Fatalf("expected the method's parameter list to be untouched, got %v", m.Params)
	}
}
