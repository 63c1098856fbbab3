package mython

// Compound runs Stmts in order against the same closure, discarding each
// one's result, and always yields None. It is the body of a class method, an
// if/else branch, or the top level of a program.
type Compound struct {
	basePos
	Stmts []Node
}

func (c *Compound) Execute(closure Closure, ctx *Context) (Value, error) {
	for _, stmt := range c.Stmts {
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return Value{}, err
		}
	}
	return NewNone(), nil
}

// IfElse evaluates Cond and runs Then if it is truthy, Else otherwise. Else
// may be nil, in which case a false Cond yields None.
type IfElse struct {
	basePos
	Cond Node
	Then Node
	Else Node
}

func (i *IfElse) Execute(closure Closure, ctx *Context) (Value, error) {
	cond, err := i.Cond.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	if IsTrue(cond) {
		return i.Then.Execute(closure, ctx)
	}
	if i.Else != nil {
		return i.Else.Execute(closure, ctx)
	}
	return NewNone(), nil
}

// Return evaluates Arg (or yields None if Arg is nil) and unwinds out of
// the enclosing method body by raising a returnSignal, caught by
// MethodBody.Execute. The parser accepts a return at top level too; nothing
// catches the returnSignal there, so Program.Run fails with it as its error.
type Return struct {
	basePos
	Arg Node
}

func (r *Return) Execute(closure Closure, ctx *Context) (Value, error) {
	val := NewNone()
	if r.Arg != nil {
		var err error
		val, err = r.Arg.Execute(closure, ctx)
		if err != nil {
			return Value{}, err
		}
	}
	return Value{}, &returnSignal{value: val}
}

// MethodBody wraps a method's Compound and is the sole place a returnSignal
// is caught: a Return nested arbitrarily deep inside ifs and nested blocks
// unwinds straight here without unwinding past it, mirroring the teacher's
// errLoopBreak/errLoopNext catch points in execution.go.
type MethodBody struct {
	basePos
	Body Node
}

func (m *MethodBody) Execute(closure Closure, ctx *Context) (Value, error) {
	result, err := m.Body.Execute(closure, ctx)
	if err != nil {
		if rs, ok := err.(*returnSignal); ok {
			return rs.value, nil
		}
		return Value{}, err
	}
	return result, nil
}
