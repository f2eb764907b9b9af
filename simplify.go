package frac

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
// The result is computed in int64 so that |math.MinInt32| is representable;
// GCD(math.MinInt32, 0) therefore does not fit and is reported as 0.
func GCD(a, b int32) int32 {
	g := gcd64(int64(a), int64(b))
	if g > 1<<31-1 {
		return 0
	}
	return int32(g)
}

func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// 約分
func (f Frac) approx() (Frac, error) {
	if f.Bottom == 0 {
		return f, nil
	}

	top, bottom := int64(f.Top), int64(f.Bottom)
	if g := gcd64(top, bottom); g > 1 {
		top /= g
		bottom /= g
	}

	if bottom < 0 {
		top, bottom = -top, -bottom
	}

	t, err := narrow(top)
	if err != nil {
		return Frac{}, overflow("cannot move sign of " + f.String() + " into the numerator")
	}
	b, err := narrow(bottom)
	if err != nil {
		return Frac{}, overflow("cannot move sign of " + f.String() + " into the numerator")
	}
	return Frac{Top: t, Bottom: b}, nil
}

// Simplify reduces f in place to lowest terms with a positive denominator.
// f is unchanged on error.
func (f *Frac) Simplify() error {
	g, err := f.approx()
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// Simplified returns f reduced to lowest terms with a positive denominator.
//
// The only failure is a fraction whose sign cannot be moved into the
// numerator, such as 1/math.MinInt32.
func (f Frac) Simplified() (Frac, error) {
	return f.approx()
}
