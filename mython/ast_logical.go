package mython

// And and Or short-circuit: the RHS is only evaluated when the LHS doesn't
// already determine the result. Both yield a Bool built from IsTrue
// coercion of whichever operand's value decided the outcome, matching the
// language's boolean-operator semantics rather than Python-style
// value-passthrough.
type And struct {
	basePos
	LHS, RHS Node
}

func (a *And) Execute(closure Closure, ctx *Context) (Value, error) {
	lhs, err := a.LHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	if !IsTrue(lhs) {
		return NewBool(false), nil
	}
	rhs, err := a.RHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	return NewBool(IsTrue(rhs)), nil
}

type Or struct {
	basePos
	LHS, RHS Node
}

func (o *Or) Execute(closure Closure, ctx *Context) (Value, error) {
	lhs, err := o.LHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	if IsTrue(lhs) {
		return NewBool(true), nil
	}
	rhs, err := o.RHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	return NewBool(IsTrue(rhs)), nil
}

// Not evaluates Arg and yields the negation of its truthiness.
type Not struct {
	basePos
	Arg Node
}

func (n *Not) Execute(closure Closure, ctx *Context) (Value, error) {
	val, err := n.Arg.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	return NewBool(!IsTrue(val)), nil
}
