package mython

// NumberLiteral, StringLiteral, BoolLiteral, and NoneLiteral are the
// constant leaves of the expression grammar: evaluating one never touches
// the closure and never fails.

type NumberLiteral struct {
	basePos
	Value int64
}

func (n *NumberLiteral) Execute(closure Closure, ctx *Context) (Value, error) {
	return NewNumber(n.Value), nil
}

type StringLiteral struct {
	basePos
	Value string
}

func (n *StringLiteral) Execute(closure Closure, ctx *Context) (Value, error) {
	return NewString(n.Value), nil
}

type BoolLiteral struct {
	basePos
	Value bool
}

func (n *BoolLiteral) Execute(closure Closure, ctx *Context) (Value, error) {
	return NewBool(n.Value), nil
}

type NoneLiteral struct {
	basePos
}

func (n *NoneLiteral) Execute(closure Closure, ctx *Context) (Value, error) {
	return NewNone(), nil
}
