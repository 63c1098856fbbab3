package mython

// Node is the uniform AST contract: every statement and expression evaluates
// itself against a Closure and a Context and produces a Value (statements
// that "do not return a value" produce None). There is no separate Eval
// function; each node carries its own evaluation logic.
type Node interface {
	Execute(closure Closure, ctx *Context) (Value, error)
	Pos() Position
}

// basePos is embedded in every node so it can report the source position it
// was parsed from without repeating the field and accessor on each type.
type basePos struct {
	pos Position
}

func (b basePos) Pos() Position { return b.pos }
