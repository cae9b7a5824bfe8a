package g2complex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wxcodec/g2complex/complexpack"
)

func TestPackUnpackComplex_RoundTrip(t *testing.T) {
	fld := make([]float32, 64)
	for i := range fld {
		fld[i] = float32(i) * 0.5
	}

	payload, desc, err := PackComplex(fld, 2, Request{DecScale: 1})
	require.NoError(t, err)

	out, err := UnpackComplex(payload, desc, len(fld))
	require.NoError(t, err)
	require.Len(t, out, len(fld))
	for i, v := range out {
		require.InDelta(t, fld[i], v, 0.01)
	}
}

func TestPackComplex_WithMinPackOption(t *testing.T) {
	fld := make([]float32, 40)
	for i := range fld {
		fld[i] = float32(i)
	}

	_, _, err := PackComplex(fld, 2, Request{DecScale: 0}, complexpack.WithMinPack(5))
	require.NoError(t, err)
}
