package calc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/aatomu/frac"
)

// Demo walks through the library's features and prints each intermediate
// value to w.
func Demo(w io.Writer) error {
	show := func(msg string, f frac.Frac) {
		fmt.Fprintf(w, "%s: %s\n", msg, f)
	}

	f, err := frac.Float2Frac(0.5)
	if err != nil {
		return err
	}
	show("Construction by decimal", f)

	steps := []struct {
		msg string
		run func() error
	}{
		{"Reassigned by decimal", func() error { return frac.Assign(&f, 0.6) }},
		{"Reassigned by string", func() error { return frac.Assign(&f, "1/2") }},
		{"Arithmetic (fraction + fraction)", func() error { return frac.AddAssign(&f, frac.MustNew(1, 2)) }},
		{"Arithmetic (fraction + string)", func() error { return frac.AddAssign(&f, "1/2") }},
		{"Arithmetic (fraction * decimal)", func() error { return frac.MulAssign(&f, 0.2) }},
		{"Arithmetic (fraction * decimal(mixed))", func() error { return frac.MulAssign(&f, 1.2) }},
		{"Arithmetic (fraction + string(mixed))", func() error { return frac.AddAssign(&f, "2 1/2") }},
		{"Arithmetic (decimal / fraction) - simplified", func() (err error) {
			if f, err = frac.Div(0.5, f); err != nil {
				return err
			}
			return f.Simplify()
		}},
		{"Arithmetic (string - fraction) - simplified", func() (err error) {
			if f, err = frac.Sub("1/2", f); err != nil {
				return err
			}
			return f.Simplify()
		}},
		{"Prefix Increment", f.Inc},
		{"Prefix Decrement", f.Dec},
		{"Postfix Increment", func() error { _, err := f.PostInc(); return err }},
		{"Postfix Decrement", func() error { _, err := f.PostDec(); return err }},
		{"Compound Arithmetic (fraction *= -1) - flips sign", func() error { return frac.MulAssign(&f, -1) }},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return errors.Wrap(err, s.msg)
		}
		show(s.msg, f)
	}

	if f.Equal(f) {
		show("Equality", f)
	}
	if c, err := frac.Compare(f, "2/92"); err != nil {
		return err
	} else if c != 0 {
		show("Inequality 2/92 not equal to", f)
	}
	if c, err := frac.Compare(2.6, f); err != nil {
		return err
	} else if c > 0 {
		show("Relational 2 3/5 greater than", f)
	}
	return nil
}
