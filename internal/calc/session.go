package calc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/aatomu/frac"
)

// Session evaluates expressions line by line and remembers the last value
// as "ans".
type Session struct {
	Simplify bool
	Mixed    bool
	Logger   log.Logger

	ans   frac.Frac
	red   *color.Color
	green *color.Color
}

// NewSession returns a Session with ans set to 0/1.
func NewSession(logger log.Logger, colored bool) *Session {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	s := &Session{
		Logger: logger,
		ans:    frac.Zero(),
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
	}
	if colored {
		s.red.EnableColor()
		s.green.EnableColor()
	} else {
		s.red.DisableColor()
		s.green.DisableColor()
	}
	return s
}

// Ans returns the last fraction produced by the session.
func (s *Session) Ans() frac.Frac {
	return s.ans
}

// Format renders f according to the session's Simplify and Mixed settings.
func (s *Session) Format(f frac.Frac) (string, error) {
	if s.Simplify {
		var err error
		if f, err = f.Simplified(); err != nil {
			return "", err
		}
	}
	if s.Mixed {
		return f.Mixed()
	}
	return f.String(), nil
}

// Line evaluates one expression and writes its result to w. Evaluation
// errors are written to w and logged; they are returned so callers can count
// them, and ans is left unchanged.
func (s *Session) Line(line string, w io.Writer) error {
	res, err := Eval(line, s.ans)
	if err != nil {
		return s.fail(line, w, err)
	}
	if res.IsTruth {
		fmt.Fprintln(w, res.Truth)
		return nil
	}
	out, err := s.Format(res.Value)
	if err != nil {
		return s.fail(line, w, err)
	}
	s.ans = res.Value
	s.green.Fprintln(w, out)
	return nil
}

func (s *Session) fail(line string, w io.Writer, err error) error {
	level.Warn(s.Logger).Log("msg", "evaluation failed", "expr", line, "kind", frac.KindOf(err), "err", err)
	s.red.Fprintf(w, "error: %v\n", err)
	return err
}

// Run evaluates every non-blank line of r that does not start with '#'. It
// keeps going after failed lines and returns the number of failures.
func (s *Session) Run(r io.Reader, w io.Writer) (int, error) {
	failed := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.Line(line, w); err != nil {
			failed++
		}
	}
	if err := sc.Err(); err != nil {
		return failed, errors.Wrap(err, "read input")
	}
	return failed, nil
}

// Sum adds one fraction per line of r. Lines that fail to parse are logged
// and skipped; an arithmetic failure stops the sum.
func Sum(r io.Reader, logger log.Logger) (frac.Frac, int, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	total := frac.Zero()
	skipped := 0
	d := frac.NewDecoder(r)
	for line := 1; ; line++ {
		var f frac.Frac
		err := d.Decode(&f)
		if err == io.EOF {
			return total, skipped, nil
		}
		if err != nil {
			if errors.Is(err, frac.ErrInvalidFormat) {
				level.Warn(logger).Log("msg", "extraction failed", "line", line, "kind", frac.KindOf(err), "err", err)
				skipped++
				d.Clear()
				continue
			}
			return total, skipped, errors.Wrapf(err, "line %d", line)
		}
		if err := frac.AddAssign(&total, f); err != nil {
			return total, skipped, errors.Wrapf(err, "line %d", line)
		}
		if err := total.Simplify(); err != nil {
			return total, skipped, errors.Wrapf(err, "line %d", line)
		}
		level.Debug(logger).Log("msg", "added", "line", line, "value", f, "total", total)
	}
}
