// Package frac implements exact fractions over bounded int32 numerators and
// denominators. Every arithmetic step is overflow-checked and failures are
// reported as *Error values instead of wrapping or rounding.
package frac

// Frac is a fraction Top/Bottom.
//
// Bottom is never zero for values produced by this package. Fractions are
// not reduced automatically: 2/4 is a valid value and compares equal to 1/2
// through Equal and Cmp. The == operator compares the raw fields.
type Frac struct {
	Top    int32
	Bottom int32
}

// Zero returns 0/1.
func Zero() Frac {
	return Frac{Top: 0, Bottom: 1}
}

// Int returns n/1.
func Int(n int32) Frac {
	return Frac{Top: n, Bottom: 1}
}

// New returns top/bottom as given.
func New(top, bottom int32) (Frac, error) {
	if bottom == 0 {
		return Frac{}, zeroDivisor("denominator cannot be zero")
	}
	return Frac{Top: top, Bottom: bottom}, nil
}

// NewSimplified returns top/bottom reduced to lowest terms.
func NewSimplified(top, bottom int32) (Frac, error) {
	f, err := New(top, bottom)
	if err != nil {
		return Frac{}, err
	}
	return f.Simplified()
}

// MustNew is like New but panics on a zero denominator.
func MustNew(top, bottom int32) Frac {
	f, err := New(top, bottom)
	if err != nil {
		panic(err)
	}
	return f
}

// Valid reports whether f has a non-zero denominator.
func (f Frac) Valid() bool {
	return f.Bottom != 0
}

func (f Frac) check() error {
	if f.Bottom == 0 {
		return zeroDivisor("fraction has a zero denominator")
	}
	return nil
}

// Set copies g into f.
func (f *Frac) Set(g Frac) error {
	if err := g.check(); err != nil {
		return err
	}
	*f = g
	return nil
}

// SetInt sets f to n/1.
func (f *Frac) SetInt(n int32) {
	*f = Int(n)
}

// SetFloat64 sets f to the simplified approximation of x.
// f is unchanged on error.
func (f *Frac) SetFloat64(x float64) error {
	g, err := Float2Frac(x)
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// SetString sets f to the value of s as read by Parse.
// f is unchanged on error.
func (f *Frac) SetString(s string) error {
	g, err := Parse(s)
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// Assign sets f from any supported operand.
// f is unchanged on error.
func Assign[T Operand](f *Frac, v T) error {
	g, err := From(v)
	if err != nil {
		return err
	}
	*f = g
	return nil
}
