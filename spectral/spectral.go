// Package spectral implements Data Representation Template 5.51: complex
// packing of spherical-harmonic (spectral) coefficients. Coefficients whose
// (m,n) falls inside the unpacked-subset truncation Js/Ks/Ms are stored
// verbatim as IEEE floats; the remainder are packed with a per-degree
// Laplacian scale factor applied before the common reference/bin-scale/
// dec-scale quantization law.
package spectral

import (
	"fmt"
	"math"

	"github.com/wxcodec/g2complex/bitio"
	"github.com/wxcodec/g2complex/errs"
	"github.com/wxcodec/g2complex/ieee32"
	"github.com/wxcodec/g2complex/intmath"
	"github.com/wxcodec/g2complex/template"
)

// Coeff is one (real, imaginary) spherical-harmonic coefficient pair at
// zonal wavenumber m and total wavenumber n.
type Coeff struct {
	M, N     int
	Real, Im float32
}

// Traverse walks the (m,n) coefficient grid in the same m-major, n-minor
// order the packed stream uses: for each zonal wavenumber m from 0 to MM,
// n runs from m to Nm(m). JJ/KK/MM are the usual truncation triple; the
// traversal is triangular when JJ == KK (JJ == MM too, for a standard
// triangular truncation) and rhomboidal when KK == JJ+MM, per Design Notes'
// generalized upper limit Nm = min(JJ, KK-m)+m style bound folded into
// nMax.
func Traverse(jj, kk, mm int, visit func(m, n int)) {
	for m := 0; m <= mm; m++ {
		for n := m; n <= nMax(jj, kk, mm, m); n++ {
			visit(m, n)
		}
	}
}

// nMax returns the largest total wavenumber n visited for zonal wavenumber
// m. Rhomboidal truncation (KK == JJ+MM) yields Nm = JJ+m; triangular and
// trapezoidal truncations yield Nm = JJ (assumes JJ == KK, the case this
// module packs).
func nMax(jj, kk, mm, m int) int {
	if kk == jj+mm {
		return jj + m
	}

	return jj
}

// CountPairs returns the total number of (m,n) coefficient pairs Traverse
// visits for the given truncation triple.
func CountPairs(jj, kk, mm int) int {
	n := 0
	Traverse(jj, kk, mm, func(int, int) { n++ })

	return n
}

// laplacianScale returns P(n) = (n(n+1))^-T, the Laplacian-scale weight
// applied to total wavenumber n before quantization. P(0) is defined as 1
// since n(n+1) == 0 there and no scaling should be applied to the mean
// term.
func laplacianScale(n int, t float64) float64 {
	if n == 0 || t == 0 {
		return 1
	}

	return math.Pow(float64(n*(n+1)), -t)
}

// inSubset reports whether (m,n) falls in the verbatim-unpacked subset
// {(m,n): m<=Ms, n<=Ns(m)}, where Ns(m) is the same rhomboidal-or-not upper
// bound nMax computes, applied to the subset truncation triple (js,ks,ms)
// instead of the grid's own (jj,kk,mm).
func inSubset(m, n, js, ks, ms int) bool {
	return m <= ms && n <= nMax(js, ks, ms, m)
}

// Unpack decodes a DRT 5.51 payload into ndpts/2 (real,imag) coefficient
// pairs in traversal order. Coefficients in the subset {(m,n): m<=Ms,
// n<=Ns} — Ns derived from Js/Ks/Ms the same way nMax derives JJ/KK/MM's own
// upper bound — are read verbatim as IEEE floats, in the order they occur
// in the traversal; every other coefficient is dequantized with the
// Laplacian scale factor undone.
func Unpack(payload []byte, desc template.DRT51, jj, kk, mm, ndpts int) ([]Coeff, error) {
	if desc.FloatSize != 1 {
		return nil, fmt.Errorf("%w: float size %d", errs.ErrUnsupportedPrecision, desc.FloatSize)
	}

	pairs := ndpts / 2
	if pairs != CountPairs(jj, kk, mm) {
		return nil, fmt.Errorf("%w: ndpts/2 = %d does not match truncation pair count", errs.ErrInvalidTemplate, pairs)
	}

	js, ks, ms := int(desc.Js), int(desc.Ks), int(desc.Ms)

	verbatimCount := 0
	Traverse(jj, kk, mm, func(m, n int) {
		if inSubset(m, n, js, ks, ms) {
			verbatimCount++
		}
	})
	unpacked := int(desc.Ts) / 2
	if verbatimCount != unpacked {
		return nil, fmt.Errorf("%w: Ts/2 = %d does not match subset size %d", errs.ErrInvalidTemplate, unpacked, verbatimCount)
	}

	out := make([]Coeff, 0, pairs)
	t := desc.LaplacianT()
	nbits := int(desc.NBits)

	vpos := 0
	bitPos := unpacked * 8 * 8
	var walkErr error

	Traverse(jj, kk, mm, func(m, n int) {
		if walkErr != nil {
			return
		}

		if inSubset(m, n, js, ks, ms) {
			re := ieee32.Decode(payload[vpos:])
			vpos += 4
			im := ieee32.Decode(payload[vpos:])
			vpos += 4
			out = append(out, Coeff{M: m, N: n, Real: re, Im: im})

			return
		}

		reRaw, err := bitio.GetOne(payload, bitPos, nbits)
		if err != nil {
			walkErr = err

			return
		}
		bitPos += nbits
		imRaw, err := bitio.GetOne(payload, bitPos, nbits)
		if err != nil {
			walkErr = err

			return
		}
		bitPos += nbits

		scale := laplacianScale(n, t)
		re := dequantize(int64(reRaw), desc.Ref, desc.BinScale, desc.DecScale) / float32(scale)
		im := dequantize(int64(imRaw), desc.Ref, desc.BinScale, desc.DecScale) / float32(scale)

		out = append(out, Coeff{M: m, N: n, Real: re, Im: im})
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return out, nil
}

func dequantize(v int64, ref float32, binScale, decScale int32) float32 {
	decFactor := math.Pow(10, float64(-decScale))
	binFactor := math.Pow(2, float64(-binScale))

	return float32((float64(v)*binFactor + float64(ref)) * decFactor)
}

// Pack encodes coefficients (already in Traverse order for the grid they
// came from) into a DRT 5.51 payload. js/ks/ms is the unpacked-subset
// truncation triple (§4.7 step 5): a coefficient at (m,n) is stored
// verbatim when m<=ms and n<=Ns(m) (Ns derived from js/ks/ms exactly as
// nMax derives the grid's own upper bound), and quantized with the
// Laplacian scale factor and the given (E,D) pair otherwise. It returns
// the payload and the filled descriptor, with NBits sized to hold the
// largest quantized packed value after the reference is subtracted.
func Pack(coeffs []Coeff, js, ks, ms int, binScale, decScale int32, laplacianT float64) ([]byte, template.DRT51, error) {
	verbatim := make([]Coeff, 0, len(coeffs))
	packed := make([]Coeff, 0, len(coeffs))
	for _, c := range coeffs {
		if inSubset(c.M, c.N, js, ks, ms) {
			verbatim = append(verbatim, c)
		} else {
			packed = append(packed, c)
		}
	}

	scaled := make([]float64, 0, len(packed)*2)
	for _, c := range packed {
		scale := laplacianScale(c.N, laplacianT)
		scaled = append(scaled, float64(c.Real)*scale, float64(c.Im)*scale)
	}

	ref := 0.0
	if len(scaled) > 0 {
		ref = scaled[0]
		for _, v := range scaled[1:] {
			if v < ref {
				ref = v
			}
		}
	}
	decFactor := math.Pow(10, float64(decScale))
	binFactor := math.Pow(2, float64(binScale))
	refQ := math.Round(ref * decFactor)

	quantized := make([]int64, len(scaled))
	maxQ := int64(0)
	for i, v := range scaled {
		q := int64(math.Round((v*decFactor - refQ) * binFactor))
		quantized[i] = q
		if q > maxQ {
			maxQ = q
		}
	}
	nbits := intmath.Ilog2Ceil(uint64(maxQ))

	headerBits := len(verbatim) * 8 * 8
	totalBits := bitio.PadToOctet(headerBits + len(quantized)*nbits)
	buf := make([]byte, bitio.ByteLen(totalBits))

	pos := 0
	for _, c := range verbatim {
		copy(buf[pos:], ieee32.Append(nil, c.Real))
		pos += 4
		copy(buf[pos:], ieee32.Append(nil, c.Im))
		pos += 4
	}

	bitPos := pos * 8
	for _, q := range quantized {
		if err := bitio.PutBits(buf, uint32(q), bitPos, nbits); err != nil {
			return nil, template.DRT51{}, err
		}
		bitPos += nbits
	}

	desc := template.DRT51{
		Ref:         float32(refQ),
		BinScale:    binScale,
		DecScale:    decScale,
		NBits:       int32(nbits),
		LaplacianT6: int32(math.Round(laplacianT * 1e6)),
		Js:          int32(js),
		Ks:          int32(ks),
		Ms:          int32(ms),
		Ts:          int32(len(verbatim) * 2),
		FloatSize:   1,
	}

	return buf, desc, nil
}
