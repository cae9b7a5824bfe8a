package complexpack

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wxcodec/g2complex/template"
)

func TestPackUnpack_ConstantField(t *testing.T) {
	fld := make([]float32, 200)
	for i := range fld {
		fld[i] = 5.0
	}

	payload, desc, err := Pack(fld, 2, Request{DecScale: 2})
	require.NoError(t, err)
	require.Empty(t, payload)

	d52, ok := desc.(template.DRT52)
	require.True(t, ok)
	require.Equal(t, int32(0), d52.NGroups)
	// Ref is carried in the 10^D-scaled domain: 5.0 * 10^2.
	require.InDelta(t, 500.0, d52.Ref, 1e-4)

	out, err := Unpack(payload, desc, len(fld))
	require.NoError(t, err)
	for _, v := range out {
		require.InDelta(t, 5.0, v, 1e-4)
	}
}

func TestPackUnpack_LinearRampDRT53SecondOrder(t *testing.T) {
	n := 500
	fld := make([]float32, n)
	for i := range fld {
		fld[i] = float32(i) * 0.25
	}

	payload, desc, err := Pack(fld, 3, Request{
		DecScale:     2,
		SpatialOrder: template.SpatialSecondOrder,
	})
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	d53, ok := desc.(template.DRT53)
	require.True(t, ok)
	require.Equal(t, template.SpatialSecondOrder, d53.SpatialOrder)

	out, err := Unpack(payload, desc, n)
	require.NoError(t, err)
	require.Len(t, out, n)
	for i, v := range out {
		require.InDelta(t, fld[i], v, 0.01)
	}
}

func TestPackUnpack_RandomGaussianRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 2000
	fld := make([]float32, n)
	for i := range fld {
		fld[i] = float32(rng.NormFloat64()*10 + 100)
	}

	payload, desc, err := Pack(fld, 2, Request{DecScale: 2})
	require.NoError(t, err)

	out, err := Unpack(payload, desc, n)
	require.NoError(t, err)
	require.Len(t, out, n)

	for i, v := range out {
		require.InDelta(t, fld[i], v, 0.01)
	}

	compressedBits := len(payload) * 8
	rawBits := n * 32
	require.Less(t, compressedBits, rawBits)
}

func TestPackUnpack_PrimaryMissingRoundTrip(t *testing.T) {
	const missVal = float32(-9999)
	n := 300
	fld := make([]float32, n)
	for i := range fld {
		if i%7 == 0 {
			fld[i] = missVal
		} else {
			fld[i] = float32(i) * 0.1
		}
	}

	payload, desc, err := Pack(fld, 2, Request{
		DecScale:    2,
		MissMgmt:    template.MissOne,
		PrimaryMiss: missVal,
	})
	require.NoError(t, err)

	// Scattered single missing values (never two in a row here) must be
	// absorbed into the surrounding real-data groups, not each isolated
	// into its own group — otherwise this would produce roughly n/7 groups
	// instead of a handful.
	d52, ok := desc.(template.DRT52)
	require.True(t, ok)
	require.Less(t, int(d52.NGroups), 10)

	out, err := Unpack(payload, desc, n)
	require.NoError(t, err)
	require.Len(t, out, n)

	for i, v := range out {
		if i%7 == 0 {
			require.Equal(t, missVal, v)
		} else {
			require.InDelta(t, fld[i], v, 0.01)
		}
	}
}

func TestPackUnpack_TwoSentinelMissingRoundTrip(t *testing.T) {
	const primary = float32(-9999)
	const secondary = float32(-8888)
	n := 400
	fld := make([]float32, n)
	for i := range fld {
		switch {
		case i%11 == 0:
			fld[i] = primary
		case i%13 == 0:
			fld[i] = secondary
		default:
			fld[i] = float32(math.Sin(float64(i)/10)) * 50
		}
	}

	payload, desc, err := Pack(fld, 3, Request{
		DecScale:      2,
		MissMgmt:      template.MissTwo,
		PrimaryMiss:   primary,
		SecondaryMiss: secondary,
		SpatialOrder:  template.SpatialFirstOrder,
	})
	require.NoError(t, err)

	// As in the one-sentinel case, scattered single missing values of both
	// kinds must be absorbed into surrounding real-data groups rather than
	// each isolated into its own group.
	d53, ok := desc.(template.DRT53)
	require.True(t, ok)
	require.Less(t, int(d53.NGroups), 20)

	out, err := Unpack(payload, desc, n)
	require.NoError(t, err)

	for i, v := range out {
		switch {
		case i%11 == 0:
			require.Equal(t, primary, v)
		case i%13 == 0:
			require.Equal(t, secondary, v)
		default:
			require.InDelta(t, fld[i], v, 0.02)
		}
	}
}

func TestPack_RejectsInvalidMissMgmt(t *testing.T) {
	_, _, err := Pack([]float32{1, 2, 3}, 2, Request{MissMgmt: 7})
	require.Error(t, err)
}

func TestPack_RejectsUnsupportedTemplate(t *testing.T) {
	_, _, err := Pack([]float32{1, 2, 3}, 9, Request{})
	require.Error(t, err)
}

func TestPack_IdempotentReencode(t *testing.T) {
	fld := make([]float32, 128)
	for i := range fld {
		fld[i] = float32(i%17) * 1.5
	}

	req := Request{DecScale: 1}

	payload1, desc1, err := Pack(fld, 2, req)
	require.NoError(t, err)
	out1, err := Unpack(payload1, desc1, len(fld))
	require.NoError(t, err)

	payload2, desc2, err := Pack(out1, 2, req)
	require.NoError(t, err)
	out2, err := Unpack(payload2, desc2, len(out1))
	require.NoError(t, err)

	require.Equal(t, out1, out2)
	require.Equal(t, desc1, desc2)
}

func TestPack_EmptyField(t *testing.T) {
	payload, desc, err := Pack(nil, 2, Request{})
	require.NoError(t, err)
	require.Empty(t, payload)

	out, err := Unpack(payload, desc, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}
