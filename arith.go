package frac

import (
	"fmt"
	"math"
)

// Operand is anything the arithmetic and comparison functions accept in
// place of a Frac. Integers are n/1, floats go through Float2Frac and
// strings through Parse.
type Operand interface {
	Frac | int | int32 | int64 | float32 | float64 | string
}

// From converts v to a Frac. It is the single conversion path used by every
// mixed-operand function in this package.
func From[T Operand](v T) (Frac, error) {
	switch x := any(v).(type) {
	case Frac:
		return x, x.check()
	case int32:
		return Int(x), nil
	case int:
		n, err := narrow(x)
		if err != nil {
			return Frac{}, err
		}
		return Int(n), nil
	case int64:
		n, err := narrow(x)
		if err != nil {
			return Frac{}, err
		}
		return Int(n), nil
	case float32:
		return Float2Frac(float64(x))
	case float64:
		return Float2Frac(x)
	case string:
		return Parse(x)
	}
	panic(fmt.Sprintf("frac: unsupported operand %T", v))
}

func operands[A, B Operand](a A, b B) (Frac, Frac, error) {
	x, err := From(a)
	if err != nil {
		return Frac{}, Frac{}, err
	}
	y, err := From(b)
	if err != nil {
		return Frac{}, Frac{}, err
	}
	return x, y, nil
}

// cross returns a*d and c*b for a/b and c/d.
func cross(f, n Frac) (int32, int32, error) {
	ad, err := mul32(f.Top, n.Bottom)
	if err != nil {
		return 0, 0, err
	}
	cb, err := mul32(n.Top, f.Bottom)
	if err != nil {
		return 0, 0, err
	}
	return ad, cb, nil
}

// Add returns (a*d + c*b) / (b*d). The result is not simplified.
func (f Frac) Add(n Frac) (Frac, error) {
	if err := checkPair(f, n); err != nil {
		return Frac{}, err
	}
	ad, cb, err := cross(f, n)
	if err != nil {
		return Frac{}, err
	}
	top, err := add32(ad, cb)
	if err != nil {
		return Frac{}, err
	}
	bottom, err := mul32(f.Bottom, n.Bottom)
	if err != nil {
		return Frac{}, err
	}
	return Frac{Top: top, Bottom: bottom}, nil
}

// Sub returns (a*d - c*b) / (b*d). The result is not simplified.
func (f Frac) Sub(n Frac) (Frac, error) {
	if err := checkPair(f, n); err != nil {
		return Frac{}, err
	}
	ad, cb, err := cross(f, n)
	if err != nil {
		return Frac{}, err
	}
	top, err := sub32(ad, cb)
	if err != nil {
		return Frac{}, err
	}
	bottom, err := mul32(f.Bottom, n.Bottom)
	if err != nil {
		return Frac{}, err
	}
	return Frac{Top: top, Bottom: bottom}, nil
}

// Mul returns (a*c) / (b*d). The result is not simplified.
func (f Frac) Mul(n Frac) (Frac, error) {
	if err := checkPair(f, n); err != nil {
		return Frac{}, err
	}
	top, err := mul32(f.Top, n.Top)
	if err != nil {
		return Frac{}, err
	}
	bottom, err := mul32(f.Bottom, n.Bottom)
	if err != nil {
		return Frac{}, err
	}
	return Frac{Top: top, Bottom: bottom}, nil
}

// Div returns (a*d) / (b*c). Dividing by a fraction with a zero numerator
// fails with ZeroDivisor. The result is not simplified.
func (f Frac) Div(n Frac) (Frac, error) {
	if err := checkPair(f, n); err != nil {
		return Frac{}, err
	}
	if n.Top == 0 {
		return Frac{}, zeroDivisor("division by " + n.String())
	}
	top, err := mul32(f.Top, n.Bottom)
	if err != nil {
		return Frac{}, err
	}
	bottom, err := mul32(f.Bottom, n.Top)
	if err != nil {
		return Frac{}, err
	}
	return Frac{Top: top, Bottom: bottom}, nil
}

func checkPair(f, n Frac) error {
	if err := f.check(); err != nil {
		return err
	}
	return n.check()
}

// Add returns a + b for any pair of operands.
func Add[A, B Operand](a A, b B) (Frac, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return Frac{}, err
	}
	return x.Add(y)
}

// Sub returns a - b for any pair of operands.
func Sub[A, B Operand](a A, b B) (Frac, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return Frac{}, err
	}
	return x.Sub(y)
}

// Mul returns a * b for any pair of operands.
func Mul[A, B Operand](a A, b B) (Frac, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return Frac{}, err
	}
	return x.Mul(y)
}

// Div returns a / b for any pair of operands.
func Div[A, B Operand](a A, b B) (Frac, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return Frac{}, err
	}
	return x.Div(y)
}

func assign[T Operand](f *Frac, v T, op func(Frac, Frac) (Frac, error)) error {
	n, err := From(v)
	if err != nil {
		return err
	}
	r, err := op(*f, n)
	if err != nil {
		return err
	}
	*f = r
	return nil
}

// AddAssign sets f to f + v. f is unchanged on error.
func AddAssign[T Operand](f *Frac, v T) error {
	return assign(f, v, Frac.Add)
}

// SubAssign sets f to f - v. f is unchanged on error.
func SubAssign[T Operand](f *Frac, v T) error {
	return assign(f, v, Frac.Sub)
}

// MulAssign sets f to f * v. f is unchanged on error.
func MulAssign[T Operand](f *Frac, v T) error {
	return assign(f, v, Frac.Mul)
}

// DivAssign sets f to f / v. f is unchanged on error.
func DivAssign[T Operand](f *Frac, v T) error {
	return assign(f, v, Frac.Div)
}

// Inc adds one whole to f, which is adding Bottom to Top.
func (f *Frac) Inc() error {
	if err := f.check(); err != nil {
		return err
	}
	top, err := add32(f.Top, f.Bottom)
	if err != nil {
		return err
	}
	f.Top = top
	return nil
}

// Dec subtracts one whole from f.
func (f *Frac) Dec() error {
	if err := f.check(); err != nil {
		return err
	}
	top, err := sub32(f.Top, f.Bottom)
	if err != nil {
		return err
	}
	f.Top = top
	return nil
}

// PostInc is Inc returning the value f held before the call.
func (f *Frac) PostInc() (Frac, error) {
	old := *f
	if err := f.Inc(); err != nil {
		return Frac{}, err
	}
	return old, nil
}

// PostDec is Dec returning the value f held before the call.
func (f *Frac) PostDec() (Frac, error) {
	old := *f
	if err := f.Dec(); err != nil {
		return Frac{}, err
	}
	return old, nil
}

// Neg returns -Top/Bottom.
//
// math.MinInt32 has no int32 negation and is returned as is; use Mul with -1
// for a checked negation.
func (f Frac) Neg() Frac {
	return Frac{Top: -f.Top, Bottom: f.Bottom}
}

// Abs returns |f|.
func (f Frac) Abs() (Frac, error) {
	top, bottom := f.Top, f.Bottom
	var err error
	if top < 0 {
		if top, err = neg32(top); err != nil {
			return Frac{}, err
		}
	}
	if bottom < 0 {
		if bottom, err = neg32(bottom); err != nil {
			return Frac{}, err
		}
	}
	return Frac{Top: top, Bottom: bottom}, nil
}

// Reciprocal returns Bottom/Top.
func (f Frac) Reciprocal() (Frac, error) {
	if f.Top == 0 {
		return Frac{}, zeroDivisor("reciprocal of " + f.String())
	}
	return Frac{Top: f.Bottom, Bottom: f.Top}, nil
}

// Pow returns f raised to n. Negative exponents raise the reciprocal.
// f^0 is 1/1.
func (f Frac) Pow(n int) (Frac, error) {
	if err := f.check(); err != nil {
		return Frac{}, err
	}
	if n == math.MinInt {
		return Frac{}, overflow(fmt.Sprintf("exponent %d", n))
	}
	if n < 0 {
		r, err := f.Reciprocal()
		if err != nil {
			return Frac{}, err
		}
		return r.Pow(-n)
	}

	// 0, 1 and -1 only cycle with the exponent's parity.
	if n > 2 && -1 <= f.Top && f.Top <= 1 && -1 <= f.Bottom && f.Bottom <= 1 {
		n = 2 - n%2
	}

	top, bottom := int32(1), int32(1)
	var err error
	for i := 0; i < n; i++ {
		if top, err = mul32(top, f.Top); err != nil {
			return Frac{}, err
		}
		if bottom, err = mul32(bottom, f.Bottom); err != nil {
			return Frac{}, err
		}
	}
	return Frac{Top: top, Bottom: bottom}, nil
}
