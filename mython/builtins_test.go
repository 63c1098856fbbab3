package mython

import (
	"bytes"
	"testing"
)

func TestEqualPrimitives(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	cases := []struct {
		lhs, rhs Value
		want     bool
	}{
		{NewNone(), NewNone(), true},
		{NewBool(true), NewBool(true), true},
		{NewBool(true), NewBool(false), false},
		{NewNumber(3), NewNumber(3), true},
		{NewNumber(3), NewNumber(4), false},
		{NewString("a"), NewString("a"), true},
		{NewString("a"), NewString("b"), false},
	}
	for _, c := range cases {
		got, err := Equal(c.lhs, c.rhs, ctx)
		if err != nil {
			t.Fatalf("Equal failed: %v", err)
		}
		if got != c.want {
			t.Fatalf("Equal(%#v, %#v) = %v, want %v", c.lhs, c.rhs, got, c.want)
		}
	}
}

func TestEqualMismatchedKindsIsError(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	if _, err := Equal(NewNumber(1), NewString("1"), ctx); err == nil {
		t.Fatalf("expected an error comparing a Number and a String for equality")
	}
}

func TestLessPrimitives(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	got, err := Less(NewNumber(1), NewNumber(2), ctx)
	if err != nil || !got {
		t.Fatalf("Less(1, 2) = %v, %v, want true, nil", got, err)
	}
	got, err = Less(NewString("a"), NewString("b"), ctx)
	if err != nil || !got {
		t.Fatalf("Less(\"a\", \"b\") = %v, %v, want true, nil", got, err)
	}
}

func TestEqualDelegatesToDunderEq(t *testing.T) {
	eqMethod := &Method{Name: dunderEq, Params: []string{"o"}, Body: &MethodBody{Body: &Return{Arg: &BoolLiteral{Value: true}}}}
	class := NewClass("C", nil, []*Method{eqMethod})
	a := NewInstanceValue(NewInstance(class))
	b := NewInstanceValue(NewInstance(class))
	got, err := Equal(a, b, NewContext(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("Equal failed: %v", err)
	}
	if !got {
		t.Fatalf("expected __eq__ delegation to report equal")
	}
}

func TestLessDelegatesToDunderLt(t *testing.T) {
	ltMethod := &Method{Name: dunderLt, Params: []string{"o"}, Body: &MethodBody{Body: &Return{Arg: &BoolLiteral{Value: false}}}}
	class := NewClass("C", nil, []*Method{ltMethod})
	a := NewInstanceValue(NewInstance(class))
	b := NewInstanceValue(NewInstance(class))
	got, err := Less(a, b, NewContext(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("Less failed: %v", err)
	}
	if got {
		t.Fatalf("expected __lt__ delegation to report false")
	}
}

// TestNegatedComparatorsAreConsistent exercises spec's symmetry invariant:
// NotEqual = !Equal, Greater = !(Less||Equal), LessOrEqual = !Greater,
// GreaterOrEqual = !Less, over every ordered pair drawn from a small set of
// numbers.
func TestNegatedComparatorsAreConsistent(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	nums := []int64{-1, 0, 1, 2}
	for _, a := range nums {
		for _, b := range nums {
			lhs, rhs := NewNumber(a), NewNumber(b)
			eq, _ := Equal(lhs, rhs, ctx)
			lt, _ := Less(lhs, rhs, ctx)

			neq, _ := NotEqual(lhs, rhs, ctx)
			if neq != !eq {
				t.Fatalf("NotEqual(%d,%d) = %v, want %v", a, b, neq, !eq)
			}
			gt, _ := Greater(lhs, rhs, ctx)
			if gt != !(lt || eq) {
				t.Fatalf("Greater(%d,%d) = %v, want %v", a, b, gt, !(lt || eq))
			}
			lte, _ := LessOrEqual(lhs, rhs, ctx)
			if lte != !gt {
				t.Fatalf("LessOrEqual(%d,%d) = %v, want %v", a, b, lte, !gt)
			}
			gte, _ := GreaterOrEqual(lhs, rhs, ctx)
			if gte != !lt {
				t.Fatalf("GreaterOrEqual(%d,%d) = %v, want %v", a, b, gte, !lt)
			}
		}
	}
}
