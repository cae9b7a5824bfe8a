// Package g2complex implements GRIB2 Data Representation Templates 5.2,
// 5.3, and 5.51: adaptive complex packing (with optional spatial
// differencing) of a real grid, and spectral complex packing of
// spherical-harmonic coefficients.
//
// # Basic Usage
//
// Packing a grid with DRT 5.2 (no spatial differencing):
//
//	import "github.com/wxcodec/g2complex"
//
//	payload, desc, err := g2complex.PackComplex(fld, 2, g2complex.Request{DecScale: 2})
//
// Packing with DRT 5.3 second-order spatial differencing and one missing
// value sentinel:
//
//	payload, desc, err := g2complex.PackComplex(fld, 3, g2complex.Request{
//	    DecScale:     2,
//	    SpatialOrder: template.SpatialSecondOrder,
//	    MissMgmt:     template.MissOne,
//	    PrimaryMiss:  -9999,
//	})
//
// Unpacking is symmetric:
//
//	fld, err := g2complex.UnpackComplex(payload, desc, ndpts)
//
// # Package Structure
//
// This package provides top-level wrappers around complexpack and
// spectral. For fine-grained control — custom minimum group length, a
// non-default spatial order, or direct access to the group partitioner —
// use those packages directly.
package g2complex

import (
	"github.com/wxcodec/g2complex/complexpack"
	"github.com/wxcodec/g2complex/spectral"
	"github.com/wxcodec/g2complex/template"
)

// Request is an alias for complexpack.Request, re-exported so callers who
// only need the top-level wrappers don't have to import complexpack
// directly.
type Request = complexpack.Request

// Option is an alias for complexpack.Option.
type Option = complexpack.Option

// PackComplex encodes fld using DRT 2 or 3.
func PackComplex(fld []float32, drt int, req Request, opts ...Option) ([]byte, template.Descriptor, error) {
	return complexpack.Pack(fld, drt, req, opts...)
}

// UnpackComplex decodes a DRT 5.2/5.3 payload back into ndpts real values.
func UnpackComplex(payload []byte, desc template.Descriptor, ndpts int) ([]float32, error) {
	return complexpack.Unpack(payload, desc, ndpts)
}

// UnpackSpectral decodes a DRT 5.51 payload into (real, imaginary)
// spherical-harmonic coefficient pairs, walking the (m,n) grid implied by
// the triangular/rhomboidal truncation triple (jj, kk, mm).
func UnpackSpectral(payload []byte, desc template.DRT51, jj, kk, mm, ndpts int) ([]spectral.Coeff, error) {
	return spectral.Unpack(payload, desc, jj, kk, mm, ndpts)
}
