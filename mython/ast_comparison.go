package mython

// Comparator is the shape shared by Equal, NotEqual, Less, Greater,
// LessOrEqual, and GreaterOrEqual, letting Comparison wrap any one of them
// without six near-identical node types.
type Comparator func(lhs, rhs Value, ctx *Context) (bool, error)

// Comparison evaluates LHS and RHS and applies Op, yielding a Bool. The
// parser selects which package-level comparator function to plug in for
// Op based on the operator token.
type Comparison struct {
	basePos
	LHS, RHS Node
	Op       Comparator
}

func (c *Comparison) Execute(closure Closure, ctx *Context) (Value, error) {
	lhs, err := c.LHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	rhs, err := c.RHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	result, err := c.Op(lhs, rhs, ctx)
	if err != nil {
		if re, ok := err.(*RuntimeError); ok && re.Pos.Line == 0 {
			re.Pos = c.pos
		}
		return Value{}, err
	}
	return NewBool(result), nil
}
