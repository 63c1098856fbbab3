package mython

// VariableValue looks up a bare name in the closure: the current call's
// self/params frame for a method body, or the program's global closure at
// top level. An unresolved name is a runtime error; there is no implicit
// None for a missing variable.
type VariableValue struct {
	basePos
	Name string
}

func (v *VariableValue) Execute(closure Closure, ctx *Context) (Value, error) {
	val, ok := closure[v.Name]
	if !ok {
		return Value{}, newRuntimeError(v.pos, "unknown variable: %s", v.Name)
	}
	return val, nil
}

// Assignment binds the result of RHS to Name in closure and yields that
// value. As the "self name" hack, it records Name as the context's pending
// self-name hint before evaluating RHS so a NewInstanceExpr nested directly
// inside RHS can pre-bind the instance under that name before its arguments
// and __init__ run; the hint is always cleared by whoever consumes it, or by us once
// RHS has finished evaluating.
type Assignment struct {
	basePos
	Name string
	RHS  Node
}

func (a *Assignment) Execute(closure Closure, ctx *Context) (Value, error) {
	ctx.selfName = a.Name
	val, err := a.RHS.Execute(closure, ctx)
	ctx.selfName = ""
	if err != nil {
		return Value{}, err
	}
	closure[a.Name] = val
	return val, nil
}

// FieldAssignment evaluates Object (expected to yield a ClassInstance),
// then binds the result of RHS into that instance's Fields closure under
// Field. Assigning through a non-instance value is a runtime error.
type FieldAssignment struct {
	basePos
	Object Node
	Field  string
	RHS    Node
}

func (f *FieldAssignment) Execute(closure Closure, ctx *Context) (Value, error) {
	objVal, err := f.Object.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	if objVal.Kind() != KindInstance {
		return Value{}, newRuntimeError(f.pos, "cannot assign field %s on a %s", f.Field, objVal.Kind())
	}
	val, err := f.RHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	objVal.Instance().Fields[f.Field] = val
	return val, nil
}
