package mython

// ClassDefinition evaluates to a Class value and, as a side effect, binds
// Name to it in closure so later statements in that closure can refer to it
// by name. Method bodies run in their own frame and do not see it. ParentExpr
// is nil for a class with no explicit parent; otherwise it must evaluate to
// a Class value, and that class becomes Parent.
type ClassDefinition struct {
	basePos
	Name       string
	ParentExpr Node
	Methods    []*Method
}

func (c *ClassDefinition) Execute(closure Closure, ctx *Context) (Value, error) {
	var parent *Class
	if c.ParentExpr != nil {
		parentVal, err := c.ParentExpr.Execute(closure, ctx)
		if err != nil {
			return Value{}, err
		}
		if parentVal.Kind() != KindClass {
			return Value{}, newRuntimeError(c.pos, "cannot inherit from a %s", parentVal.Kind())
		}
		parent = parentVal.Class()
	}

	class := NewClass(c.Name, parent, c.Methods)
	val := NewClassValue(class)
	closure[c.Name] = val
	return val, nil
}

// NewInstanceExpr evaluates ClassExpr to a Class value, allocates a fresh
// Instance of it, and runs __init__ against Args if the class defines one
// of matching arity (a class with no matching __init__ simply skips the
// call).
//
// The "self name" hack: if ctx.selfName is set (meaning we are the direct
// RHS of an Assignment), the new instance is pre-bound into closure under
// that name, and the hint is cleared, before Args and __init__ run. Args are
// evaluated in closure, so they can refer to the variable being assigned —
// for example passing the not-yet-fully-initialized instance to its own
// __init__. The __init__ body itself runs in a fresh frame and sees the
// instance only as self.
type NewInstanceExpr struct {
	basePos
	ClassExpr Node
	Args      []Node
}

func (n *NewInstanceExpr) Execute(closure Closure, ctx *Context) (Value, error) {
	classVal, err := n.ClassExpr.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	if classVal.Kind() != KindClass {
		return Value{}, newRuntimeError(n.pos, "cannot instantiate a %s", classVal.Kind())
	}

	inst := NewInstance(classVal.Class())
	instVal := NewInstanceValue(inst)

	if ctx.selfName != "" {
		closure[ctx.selfName] = instVal
		ctx.selfName = ""
	}

	if !inst.HasMethod(dunderInit, len(n.Args)) {
		return instVal, nil
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		args[i], err = a.Execute(closure, ctx)
		if err != nil {
			return Value{}, err
		}
	}
	if _, err := inst.Call(dunderInit, args, ctx); err != nil {
		return Value{}, err
	}
	return instVal, nil
}
