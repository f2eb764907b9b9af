package frac

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	testcases := []struct {
		a, b, want int32
	}{
		{12, 18, 6},
		{18, 12, 6},
		{-12, 18, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{math.MinInt32, math.MinInt32 / 2, 1 << 30},
		{math.MinInt32, 0, 0},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.want, GCD(tc.a, tc.b), "GCD(%d, %d)", tc.a, tc.b)
	}
}

func TestSimplify(t *testing.T) {
	testcases := []struct {
		in, want Frac
	}{
		{Frac{2, 4}, Frac{1, 2}},
		{Frac{-2, 4}, Frac{-1, 2}},
		{Frac{2, -4}, Frac{-1, 2}},
		{Frac{-2, -4}, Frac{1, 2}},
		{Frac{0, -7}, Frac{0, 1}},
		{Frac{7, 7}, Frac{1, 1}},
		{Frac{3, 5}, Frac{3, 5}},
		{Frac{math.MinInt32, 2}, Frac{math.MinInt32 / 2, 1}},
		{Frac{math.MinInt32, math.MinInt32}, Frac{1, 1}},
		{Frac{math.MaxInt32, -1}, Frac{-math.MaxInt32, 1}},
	}
	for _, tc := range testcases {
		t.Run(tc.in.String(), func(t *testing.T) {
			f := tc.in
			require.NoError(t, f.Simplify())
			assert.Equal(t, tc.want, f)

			g, err := tc.in.Simplified()
			require.NoError(t, err)
			assert.Equal(t, tc.want, g)
		})
	}
}

func TestSimplifyOverflow(t *testing.T) {
	for _, in := range []Frac{{1, math.MinInt32}, {math.MinInt32, -1}} {
		f := in
		require.ErrorIs(t, f.Simplify(), ErrOverflow)
		assert.Equal(t, in, f)
	}
}

func TestSimplifyZeroDenominatorNoop(t *testing.T) {
	f := Frac{Top: 4}
	require.NoError(t, f.Simplify())
	assert.Equal(t, Frac{Top: 4}, f)
}

func TestSimplifyIdempotent(t *testing.T) {
	for n := int32(-30); n <= 30; n++ {
		for d := int32(-30); d <= 30; d++ {
			if d == 0 {
				continue
			}
			f := MustNew(n, d)
			once, err := f.Simplified()
			require.NoError(t, err)
			twice, err := once.Simplified()
			require.NoError(t, err)
			require.Equal(t, once, twice, fmt.Sprintf("%d/%d", n, d))
			require.True(t, f.Equal(once))
			require.Positive(t, once.Bottom)
			require.Equal(t, int32(1), GCD(once.Top, once.Bottom))
		}
	}
}

func TestSimplifiedLeavesInput(t *testing.T) {
	f := MustNew(10, 20)
	_, err := f.Simplified()
	require.NoError(t, err)
	assert.Equal(t, MustNew(10, 20), f)
}
