package frac

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// The checked helpers compute in T and detect wrap-around afterwards. Go
// integer arithmetic wraps instead of trapping, so the result is only
// committed by callers once ok is true.

func checkedMul[T constraints.Signed](a, b T) (r T, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if b == -1 {
		return checkedNeg(a)
	}
	r = a * b
	return r, r/b == a
}

func checkedAdd[T constraints.Signed](a, b T) (r T, ok bool) {
	r = a + b
	if b > 0 {
		return r, r > a
	}
	if b < 0 {
		return r, r < a
	}
	return r, true
}

func checkedSub[T constraints.Signed](a, b T) (r T, ok bool) {
	r = a - b
	if b > 0 {
		return r, r < a
	}
	if b < 0 {
		return r, r > a
	}
	return r, true
}

func checkedNeg[T constraints.Signed](a T) (r T, ok bool) {
	r = -a
	return r, !(a < 0 && r < 0)
}

func mul32(a, b int32) (int32, error) {
	r, ok := checkedMul(a, b)
	if !ok {
		return 0, overflow(fmt.Sprintf("%d * %d", a, b))
	}
	return r, nil
}

func add32(a, b int32) (int32, error) {
	r, ok := checkedAdd(a, b)
	if !ok {
		return 0, overflow(fmt.Sprintf("%d + %d", a, b))
	}
	return r, nil
}

func sub32(a, b int32) (int32, error) {
	r, ok := checkedSub(a, b)
	if !ok {
		return 0, overflow(fmt.Sprintf("%d - %d", a, b))
	}
	return r, nil
}

func neg32(a int32) (int32, error) {
	r, ok := checkedNeg(a)
	if !ok {
		return 0, overflow(fmt.Sprintf("-(%d)", a))
	}
	return r, nil
}

// narrow converts a wider signed integer to int32.
func narrow[T constraints.Signed](v T) (int32, error) {
	r := int32(v)
	if T(r) != v {
		return 0, overflow(fmt.Sprintf("%d does not fit in int32", v))
	}
	return r, nil
}
