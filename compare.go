package frac

// Cmp compares f and n and returns -1, 0 or +1.
//
// The cross products Top*n.Bottom and n.Top*Bottom are formed in int64,
// where any pair of int32 products fits, so the comparison is exact for all
// valid fractions whether or not they are simplified. A negative denominator
// flips the direction of the cross-multiplied inequality and is accounted
// for.
func (f Frac) Cmp(n Frac) int {
	l := int64(f.Top) * int64(n.Bottom)
	r := int64(n.Top) * int64(f.Bottom)
	if (f.Bottom < 0) != (n.Bottom < 0) {
		l, r = r, l
	}
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// Equal reports whether f and n have the same value, so 2/4 equals 1/2.
func (f Frac) Equal(n Frac) bool { return f.Cmp(n) == 0 }

// NotEqual reports whether f and n have different values.
func (f Frac) NotEqual(n Frac) bool { return f.Cmp(n) != 0 }

// Less reports whether f < n.
func (f Frac) Less(n Frac) bool { return f.Cmp(n) < 0 }

// LessEq reports whether f <= n.
func (f Frac) LessEq(n Frac) bool { return f.Cmp(n) <= 0 }

// Greater reports whether f > n.
func (f Frac) Greater(n Frac) bool { return f.Cmp(n) > 0 }

// GreaterEq reports whether f >= n.
func (f Frac) GreaterEq(n Frac) bool { return f.Cmp(n) >= 0 }

// Compare converts a and b and compares them like Cmp.
func Compare[A, B Operand](a A, b B) (int, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f Frac) Sign() int {
	switch {
	case f.Top == 0:
		return 0
	case (f.Top < 0) == (f.Bottom < 0):
		return 1
	}
	return -1
}
