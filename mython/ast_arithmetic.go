package mython

// Add implements +: Number+Number is arithmetic, String+String is
// concatenation, and ClassInstance+anything delegates to __add__/1; any
// other combination is a runtime error. Sub, Mult, and Div are arithmetic
// only and reject every other kind, including instances, since the
// language defines no __sub__/__mul__/__div__ hooks.
type Add struct {
	basePos
	LHS, RHS Node
}

func (a *Add) Execute(closure Closure, ctx *Context) (Value, error) {
	lhs, err := a.LHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	rhs, err := a.RHS.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	switch {
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return NewNumber(lhs.Number() + rhs.Number()), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return NewString(lhs.Str() + rhs.Str()), nil
	case lhs.Kind() == KindInstance && lhs.Instance().HasMethod(dunderAdd, 1):
		return lhs.Instance().Call(dunderAdd, []Value{rhs}, ctx)
	default:
		return Value{}, newRuntimeError(a.pos, "cannot add %s and %s", lhs.Kind(), rhs.Kind())
	}
}

type Sub struct {
	basePos
	LHS, RHS Node
}

func (s *Sub) Execute(closure Closure, ctx *Context) (Value, error) {
	lhs, rhs, err := evalNumericPair(closure, ctx, s.LHS, s.RHS, s.pos, "subtract")
	if err != nil {
		return Value{}, err
	}
	return NewNumber(lhs - rhs), nil
}

type Mult struct {
	basePos
	LHS, RHS Node
}

func (m *Mult) Execute(closure Closure, ctx *Context) (Value, error) {
	lhs, rhs, err := evalNumericPair(closure, ctx, m.LHS, m.RHS, m.pos, "multiply")
	if err != nil {
		return Value{}, err
	}
	return NewNumber(lhs * rhs), nil
}

type Div struct {
	basePos
	LHS, RHS Node
}

func (d *Div) Execute(closure Closure, ctx *Context) (Value, error) {
	lhs, rhs, err := evalNumericPair(closure, ctx, d.LHS, d.RHS, d.pos, "divide")
	if err != nil {
		return Value{}, err
	}
	if rhs == 0 {
		return Value{}, newRuntimeError(d.pos, "division by zero")
	}
	return NewNumber(lhs / rhs), nil
}

func evalNumericPair(closure Closure, ctx *Context, lhsNode, rhsNode Node, pos Position, verb string) (int64, int64, error) {
	lhs, err := lhsNode.Execute(closure, ctx)
	if err != nil {
		return 0, 0, err
	}
	rhs, err := rhsNode.Execute(closure, ctx)
	if err != nil {
		return 0, 0, err
	}
	if lhs.Kind() != KindNumber || rhs.Kind() != KindNumber {
		return 0, 0, newRuntimeError(pos, "cannot %s %s and %s", verb, lhs.Kind(), rhs.Kind())
	}
	return lhs.Number(), rhs.Number(), nil
}
