package calc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatomu/frac"
)

func TestEval(t *testing.T) {
	ans := frac.MustNew(1, 4)
	testcases := []struct {
		expr string
		want Result
	}{
		{expr: "1/2", want: Result{Value: frac.MustNew(1, 2)}},
		{expr: "3 1/2", want: Result{Value: frac.MustNew(7, 2)}},
		{expr: "0.75", want: Result{Value: frac.MustNew(3, 4)}},
		{expr: "1/2 + 1/3", want: Result{Value: frac.MustNew(5, 6)}},
		{expr: "3 1/2 - 1/2", want: Result{Value: frac.MustNew(12, 4)}},
		{expr: "1 - -1/2", want: Result{Value: frac.MustNew(3, 2)}},
		{expr: "-1/2 * 0.5", want: Result{Value: frac.MustNew(-1, 4)}},
		{expr: "1/2 / 1/4", want: Result{Value: frac.MustNew(4, 2)}},
		{expr: "ans + 1", want: Result{Value: frac.MustNew(5, 4)}},
		{expr: "ans", want: Result{Value: frac.MustNew(1, 4)}},
		{expr: "2/4 == 1/2", want: Result{Truth: true, IsTruth: true}},
		{expr: "2/4 != 1/2", want: Result{Truth: false, IsTruth: true}},
		{expr: "2.6 > 2 1/2", want: Result{Truth: true, IsTruth: true}},
		{expr: "1/3 <= 1/3", want: Result{Truth: true, IsTruth: true}},
		{expr: "1/3 >= 1/2", want: Result{Truth: false, IsTruth: true}},
		{expr: "1/3 < ans", want: Result{Truth: false, IsTruth: true}},
	}
	for _, tc := range testcases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Eval(tc.expr, ans)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	testcases := []struct {
		expr string
		kind frac.Kind
	}{
		{expr: "", kind: 0},
		{expr: "1/2 +", kind: 0},
		{expr: "abc", kind: frac.InvalidFormat},
		{expr: "1/ + 1", kind: frac.InvalidFormat},
		{expr: "1/2 + x", kind: frac.InvalidFormat},
		{expr: "1/2 / 0", kind: frac.ZeroDivisor},
		{expr: "2147483647 + 1", kind: frac.Overflow},
	}
	for _, tc := range testcases {
		t.Run(tc.expr, func(t *testing.T) {
			_, err := Eval(tc.expr, frac.Zero())
			require.Error(t, err)
			assert.Equal(t, tc.kind, frac.KindOf(err))
		})
	}
}

func TestSessionRun(t *testing.T) {
	var logs bytes.Buffer
	s := NewSession(log.NewLogfmtLogger(&logs), false)
	s.Simplify = true

	in := strings.Join([]string{
		"# running total",
		"1/2 + 1/2",
		"",
		"ans + 1/4",
		"ans / 0",
		"ans > 1",
		"2147483647 + 1",
	}, "\n")

	var out bytes.Buffer
	failed, err := s.Run(strings.NewReader(in), &out)
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "1/1", lines[0])
	assert.Equal(t, "5/4", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "error: "), lines[2])
	assert.Equal(t, "true", lines[3])
	assert.Contains(t, lines[4], "overflow")

	assert.Equal(t, frac.MustNew(20, 16), s.Ans())
	assert.Contains(t, logs.String(), `msg="evaluation failed"`)
	assert.Contains(t, logs.String(), "kind=\"zero divisor\"")
}

func TestSessionFormat(t *testing.T) {
	s := NewSession(nil, false)

	out, err := s.Format(frac.MustNew(14, 4))
	require.NoError(t, err)
	assert.Equal(t, "14/4", out)

	s.Simplify = true
	out, err = s.Format(frac.MustNew(14, 4))
	require.NoError(t, err)
	assert.Equal(t, "7/2", out)

	s.Mixed = true
	out, err = s.Format(frac.MustNew(14, 4))
	require.NoError(t, err)
	assert.Equal(t, "3 1/2", out)
}

func TestSessionColor(t *testing.T) {
	s := NewSession(nil, true)
	var out bytes.Buffer
	require.NoError(t, s.Line("1/2", &out))
	assert.Contains(t, out.String(), "\x1b[32m")
}

func TestSum(t *testing.T) {
	var logs bytes.Buffer
	in := "1/2\n0.25\n\noops\n1 1/4\n"

	total, skipped, err := Sum(strings.NewReader(in), log.NewLogfmtLogger(&logs))
	require.NoError(t, err)
	assert.Equal(t, frac.MustNew(2, 1), total)
	assert.Equal(t, 2, skipped)
	assert.Contains(t, logs.String(), `msg="extraction failed"`)
}

func TestSumStopsOnOverflow(t *testing.T) {
	total, _, err := Sum(strings.NewReader("2147483647\n1\n5\n"), nil)
	require.ErrorIs(t, err, frac.ErrOverflow)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, frac.MustNew(2147483647, 1), total)
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Demo(&out))

	want := []string{
		"Construction by decimal: 1/2",
		"Reassigned by decimal: 3/5",
		"Reassigned by string: 1/2",
		"Arithmetic (fraction + fraction): 4/4",
		"Arithmetic (fraction + string): 12/8",
		"Arithmetic (fraction * decimal): 12/40",
		"Arithmetic (fraction * decimal(mixed)): 72/200",
		"Arithmetic (fraction + string(mixed)): 1144/400",
		"Arithmetic (decimal / fraction) - simplified: 25/143",
		"Arithmetic (string - fraction) - simplified: 93/286",
		"Prefix Increment: 379/286",
		"Prefix Decrement: 93/286",
		"Postfix Increment: 379/286",
		"Postfix Decrement: 93/286",
		"Compound Arithmetic (fraction *= -1) - flips sign: -93/286",
		"Equality: -93/286",
		"Inequality 2/92 not equal to: -93/286",
		"Relational 2 3/5 greater than: -93/286",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSpace(out.String()), "\n"))
}
