package ieee32_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wxcodec/g2complex/ieee32"
)

func TestRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 3.14159, -9.999e20, 1e-30, math.MaxFloat32} {
		bits := ieee32.WriteIEEE(v)
		require.Equal(t, v, ieee32.ReadIEEE(bits))
	}
}

func TestAppendDecode(t *testing.T) {
	buf := ieee32.Append(nil, 5.0)
	require.Len(t, buf, 4)
	require.Equal(t, float32(5.0), ieee32.Decode(buf))
}

func TestNaNAndInfDoNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		_ = ieee32.ReadIEEE(ieee32.WriteIEEE(float32(math.NaN())))
		_ = ieee32.ReadIEEE(ieee32.WriteIEEE(float32(math.Inf(1))))
		_ = ieee32.ReadIEEE(ieee32.WriteIEEE(float32(math.Inf(-1))))
	})
}

func TestZeroAndSubnormal(t *testing.T) {
	require.Equal(t, float32(0), ieee32.ReadIEEE(0))

	sub := math.Float32frombits(1) // smallest positive subnormal
	require.Equal(t, sub, ieee32.ReadIEEE(ieee32.WriteIEEE(sub)))
}
