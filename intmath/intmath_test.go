package intmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wxcodec/g2complex/intmath"
)

func TestIlog2Ceil(t *testing.T) {
	cases := []struct {
		n    uint32
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{255, 8},
		{256, 9},
		{1023, 10},
	}
	for _, c := range cases {
		require.Equal(t, c.want, intmath.Ilog2Ceil(c.n), "n=%d", c.n)
	}
}

func TestBitsForSpan(t *testing.T) {
	require.Equal(t, 0, intmath.BitsForSpan(5, 5))
	require.Equal(t, 8, intmath.BitsForSpan(0, 255))
	require.Panics(t, func() { intmath.BitsForSpan(5, 4) })
}
