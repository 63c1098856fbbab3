package mython

// This file implements the built-in comparison functions the evaluator uses
// for Comparison nodes, exposed at package level so the embedder (and tests)
// can call them directly. The truthiness function IsTrue is in value.go.

// Equal implements the Equal comparator: both Bool, both Number, or both
// String compare with Go's underlying ==; a ClassInstance with __eq__/1
// delegates to it; two None values compare equal; any other combination is
// a runtime error.
func Equal(lhs, rhs Value, ctx *Context) (bool, error) {
	switch {
	case lhs.Kind() == KindNone && rhs.Kind() == KindNone:
		return true, nil
	case lhs.Kind() == KindBool && rhs.Kind() == KindBool:
		return lhs.Bool() == rhs.Bool(), nil
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return lhs.Number() == rhs.Number(), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return lhs.Str() == rhs.Str(), nil
	case lhs.Kind() == KindInstance && lhs.Instance().HasMethod(dunderEq, 1):
		result, err := lhs.Instance().Call(dunderEq, []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	default:
		return false, newRuntimeError(Position{}, "cannot compare objects for equality")
	}
}

// Less implements the Less comparator, following the same pattern as Equal
// (False orders before True) but delegating to __lt__/1 for class instances.
// Two None values have no order and are a runtime error.
func Less(lhs, rhs Value, ctx *Context) (bool, error) {
	switch {
	case lhs.Kind() == KindBool && rhs.Kind() == KindBool:
		return !lhs.Bool() && rhs.Bool(), nil
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return lhs.Number() < rhs.Number(), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return lhs.Str() < rhs.Str(), nil
	case lhs.Kind() == KindInstance && lhs.Instance().HasMethod(dunderLt, 1):
		result, err := lhs.Instance().Call(dunderLt, []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	default:
		return false, newRuntimeError(Position{}, "cannot compare objects for ordering")
	}
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are all derived from
// Equal and Less, which guarantees their negation relationships to Equal and
// Less hold by construction.

func NotEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs Value, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !(lt || eq), nil
}

func LessOrEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
