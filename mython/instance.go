package mython

import "fmt"

// Instance is a live object: a reference to its class plus the Closure that
// owns its field bindings. Instances are always referenced through a Value
// built by NewInstanceValue, which is what gives them shared, aliasing
// semantics (see value.go).
type Instance struct {
	Class  *Class
	Fields Closure
}

// NewInstance allocates a fresh, fieldless instance of cls.
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Fields: NewClosure()}
}

// HasMethod reports whether cls resolves name to a method whose formal
// parameter count equals argCount.
func (i *Instance) HasMethod(name string, argCount int) bool {
	m := i.Class.Method(name)
	return m != nil && len(m.Params) == argCount
}

// Call looks up name via HasMethod, builds a fresh Closure binding "self" to
// this instance and each formal parameter to the matching actual argument,
// and executes the method body. A missing method of matching arity is a
// runtime error; callers that want the "yields None instead" behavior
// (MethodCall, NewInstance) must check HasMethod themselves first.
func (i *Instance) Call(name string, args []Value, ctx *Context) (Value, error) {
	if !i.HasMethod(name, len(args)) {
		return Value{}, &RuntimeError{Msg: fmt.Sprintf("method not found: %s/%d", name, len(args))}
	}
	m := i.Class.Method(name)

	frame := NewClosure()
	frame["self"] = NewInstanceValue(i)
	for idx, param := range m.Params {
		frame[param] = args[idx]
	}

	// Every parsed method body is wrapped in a MethodBody (parseMethodDefinition),
	// which already catches and unwraps returnSignal, so m.Body.Execute never
	// surfaces one here.
	return m.Body.Execute(frame, ctx)
}
