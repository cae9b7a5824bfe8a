package spectral

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wxcodec/g2complex/template"
)

func TestCountPairs_Triangular(t *testing.T) {
	// JJ=KK=MM=10 triangular truncation: sum_{m=0}^{10} (10-m+1) = 66.
	require.Equal(t, 66, CountPairs(10, 10, 10))
}

func TestCountPairs_Rhomboidal(t *testing.T) {
	// JJ=10, MM=5, KK=JJ+MM=15: Nm = JJ+m, so each m contributes JJ+1 pairs.
	// sum_{m=0}^{5} (JJ+1) = 6*11 = 66.
	require.Equal(t, 66, CountPairs(10, 15, 5))
}

func TestTraverse_VisitOrderIsMMajor(t *testing.T) {
	var ms, ns []int
	Traverse(3, 3, 3, func(m, n int) {
		ms = append(ms, m)
		ns = append(ns, n)
	})

	require.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 2, 2, 3}, ms)
	require.Equal(t, []int{0, 1, 2, 3, 1, 2, 3, 2, 3, 3}, ns)
}

func TestLaplacianScale_ZeroDegreeIsUnscaled(t *testing.T) {
	require.Equal(t, 1.0, laplacianScale(0, 1e-6))
}

func TestPackUnpack_AllVerbatim(t *testing.T) {
	// JJ=KK=MM=3 triangular truncation (10 pairs); subset Js=Ks=Ms=3 covers
	// every (m,n) the grid visits, so the packed branch is never exercised
	// here — see TestPackUnpack_SubsetPlacementWithPackedRemainder for that.
	var coeffs []Coeff
	Traverse(3, 3, 3, func(m, n int) {
		coeffs = append(coeffs, Coeff{
			M: m, N: n,
			Real: float32(10*m + n),
			Im:   float32(m) - float32(n)*0.25,
		})
	})

	payload, desc, err := Pack(coeffs, 3, 3, 3, 0, 3, 1e-6)
	require.NoError(t, err)
	require.EqualValues(t, len(coeffs)*2, desc.Ts)

	out, err := Unpack(payload, desc, 3, 3, 3, len(coeffs)*2)
	require.NoError(t, err)
	require.Len(t, out, len(coeffs))
	for i := range coeffs {
		require.Equal(t, coeffs[i].M, out[i].M)
		require.Equal(t, coeffs[i].N, out[i].N)
		require.InDelta(t, coeffs[i].Real, out[i].Real, 1e-4)
		require.InDelta(t, coeffs[i].Im, out[i].Im, 1e-4)
	}
}

func TestPackUnpack_SubsetPlacementWithPackedRemainder(t *testing.T) {
	// JJ=KK=MM=4 triangular truncation (15 pairs). Subset truncation
	// Js=Ks=2, Ms=1 selects only {(m,n): m<=1, n<=2} — 5 of the 15 pairs,
	// interleaved with the rest rather than a leading prefix — leaving 10
	// pairs to go through the Laplacian-scaled quantized branch with a
	// non-zero T.
	var coeffs []Coeff
	Traverse(4, 4, 4, func(m, n int) {
		coeffs = append(coeffs, Coeff{
			M: m, N: n,
			Real: float32(10*m + n),
			Im:   float32(m) - float32(n)*0.25,
		})
	})

	const laplacianT = 0.5
	payload, desc, err := Pack(coeffs, 2, 2, 1, 0, 4, laplacianT)
	require.NoError(t, err)
	require.EqualValues(t, 5*2, desc.Ts)
	require.NotZero(t, desc.NBits)

	out, err := Unpack(payload, desc, 4, 4, 4, len(coeffs)*2)
	require.NoError(t, err)
	require.Len(t, out, len(coeffs))

	verbatim := map[[2]int]bool{
		{0, 0}: true, {0, 1}: true, {0, 2}: true,
		{1, 1}: true, {1, 2}: true,
	}

	for i, c := range coeffs {
		require.Equal(t, c.M, out[i].M)
		require.Equal(t, c.N, out[i].N)
		if verbatim[[2]int{c.M, c.N}] {
			require.InDelta(t, c.Real, out[i].Real, 1e-4)
			require.InDelta(t, c.Im, out[i].Im, 1e-4)
		} else {
			require.InDelta(t, c.Real, out[i].Real, 1e-2)
			require.InDelta(t, c.Im, out[i].Im, 1e-2)
		}
	}
}

func TestUnpack_RejectsNonIEEEPrecision(t *testing.T) {
	desc := template.DRT51{FloatSize: 2}
	_, err := Unpack(nil, desc, 3, 3, 1, 6)
	require.Error(t, err)
}
