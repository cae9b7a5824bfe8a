package template_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wxcodec/g2complex/template"
)

func TestDRT52_MarshalUnmarshal_RoundTrip(t *testing.T) {
	d := template.DRT52{
		Ref:         5.0,
		BinScale:    2,
		DecScale:    3,
		NBitsRef:    12,
		OrigType:    0,
		SplitMethod: 1,
		MissMgmt:    template.MissOne,
		PrimaryMiss: 9.999e20,
		NGroups:     7,
		WidthRef:    1,
		NBitsWidth:  4,
		LengthRef:   10,
		LengthIncr:  1,
		LastLength:  13,
		NBitsLen:    5,
	}

	m := d.Marshal()
	require.Len(t, m, 16)

	got := template.UnmarshalDRT52(m)
	require.Equal(t, d, got)
}

func TestDRT53_MarshalUnmarshal_RoundTrip(t *testing.T) {
	d := template.DRT53{
		DRT52: template.DRT52{
			Ref:      1.5,
			BinScale: 0,
			DecScale: 0,
			NBitsRef: 8,
		},
		SpatialOrder: template.SpatialSecondOrder,
		OctetsD:      2,
	}

	m := d.Marshal()
	require.Len(t, m, 18)

	got := template.UnmarshalDRT53(m)
	require.Equal(t, d, got)
	require.Equal(t, 3, got.DRTNum())
}

func TestDRT51_MarshalUnmarshal_RoundTrip(t *testing.T) {
	d := template.DRT51{
		Ref:         0,
		BinScale:    0,
		DecScale:    0,
		NBits:       12,
		LaplacianT6: 0,
		Js:          3,
		Ks:          3,
		Ms:          3,
		Ts:          6,
		FloatSize:   1,
	}

	got := template.UnmarshalDRT51(d.Marshal())
	require.Equal(t, d, got)
	require.InDelta(t, 0.0, got.LaplacianT(), 1e-12)
}
