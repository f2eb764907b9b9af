package frac

import (
	"fmt"
	"strconv"
)

// String renders f as "Top/Bottom" without simplifying it.
func (f Frac) String() string {
	return fmt.Sprintf("%d/%d", f.Top, f.Bottom)
}

// Float returns the float64 nearest to f.
func (f Frac) Float() float64 {
	return float64(f.Top) / float64(f.Bottom)
}

// Float32 returns f as a float32.
func (f Frac) Float32() float32 {
	return float32(f.Top) / float32(f.Bottom)
}

// IsInt reports whether f is a whole number.
func (f Frac) IsInt() bool {
	return f.Bottom != 0 && f.Top%f.Bottom == 0
}

// Mixed renders f as a simplified mixed number: "3 1/2", "-3 1/2", "1/2"
// or "3". The output is accepted by Parse.
func (f Frac) Mixed() (string, error) {
	if err := f.check(); err != nil {
		return "", err
	}

	top, bottom := int64(f.Top), int64(f.Bottom)
	if bottom < 0 {
		top, bottom = -top, -bottom
	}
	if g := gcd64(top, bottom); g > 1 {
		top /= g
		bottom /= g
	}

	sign := ""
	if top < 0 {
		sign = "-"
		top = -top
	}
	whole, rest := top/bottom, top%bottom
	switch {
	case rest == 0:
		return sign + strconv.FormatInt(whole, 10), nil
	case whole == 0:
		return fmt.Sprintf("%s%d/%d", sign, rest, bottom), nil
	}
	return fmt.Sprintf("%s%d %d/%d", sign, whole, rest, bottom), nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Frac) MarshalText() ([]byte, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLine.
func (f *Frac) UnmarshalText(text []byte) error {
	g, err := ParseLine(string(text))
	if err != nil {
		return err
	}
	*f = g
	return nil
}
