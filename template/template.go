// Package template replaces the positional idrstmpl[*] integer-array
// convention (Design Notes item 2) with tagged, named Go records — one per
// Data Representation Template this module supports — that marshal to and
// from that same positional layout only at the GRIB2 section-5 framing
// boundary, which lives outside this module (§1, out of scope).
package template

import "github.com/wxcodec/g2complex/ieee32"

// MissMgmt is the missing-value management mode carried in template
// descriptor slot [7].
type MissMgmt int32

const (
	MissNone MissMgmt = 0
	MissOne  MissMgmt = 1
	MissTwo  MissMgmt = 2
)

// SpatialOrder is the spatial-differencing order carried in DRT 5.3's
// template descriptor slot [17].
type SpatialOrder int32

const (
	SpatialFirstOrder  SpatialOrder = 1
	SpatialSecondOrder SpatialOrder = 2
)

// Descriptor is satisfied by every template this module supports. DRTNum
// identifies which Data Representation Template the record belongs to
// (2, 3, or 51), and Marshal/int32-slice round-trips it through the
// positional layout §3 specifies.
type Descriptor interface {
	DRTNum() int
	Marshal() []int32
}

// DRT52 is the template descriptor for DRT 5.2: complex packing without
// spatial differencing.
//
// Field order mirrors §3's table exactly ([1]..[16]; [17]/[18] are DRT
// 5.3-only and therefore absent here), so Marshal/Unmarshal never need a
// lookup table.
type DRT52 struct {
	Ref           float32  // [1] reference value
	BinScale      int32    // [2] binary scale E
	DecScale      int32    // [3] decimal scale D
	NBitsRef      int32    // [4] bits used to encode each group reference
	OrigType      int32    // [5] original field type, always 0 (real)
	SplitMethod   int32    // [6] splitting method, always 1 (Glahn)
	MissMgmt      MissMgmt // [7]
	PrimaryMiss   float32  // [8]
	SecondaryMiss float32  // [9]
	NGroups       int32    // [10]
	WidthRef      int32    // [11]
	NBitsWidth    int32    // [12]
	LengthRef     int32    // [13]
	LengthIncr    int32    // [14] always 1
	LastLength    int32    // [15]
	NBitsLen      int32    // [16]
}

func (d DRT52) DRTNum() int { return 2 }

// Marshal returns d as the 16-element positional layout of §3 slots [1]..[16].
func (d DRT52) Marshal() []int32 {
	return []int32{
		int32(ieee32.WriteIEEE(d.Ref)),
		d.BinScale,
		d.DecScale,
		d.NBitsRef,
		d.OrigType,
		d.SplitMethod,
		int32(d.MissMgmt),
		int32(ieee32.WriteIEEE(d.PrimaryMiss)),
		int32(ieee32.WriteIEEE(d.SecondaryMiss)),
		d.NGroups,
		d.WidthRef,
		d.NBitsWidth,
		d.LengthRef,
		d.LengthIncr,
		d.LastLength,
		d.NBitsLen,
	}
}

// UnmarshalDRT52 reconstructs a DRT52 from its positional layout. tmpl must
// have at least 16 elements.
func UnmarshalDRT52(tmpl []int32) DRT52 {
	return DRT52{
		Ref:           ieee32.ReadIEEE(uint32(tmpl[0])),
		BinScale:      tmpl[1],
		DecScale:      tmpl[2],
		NBitsRef:      tmpl[3],
		OrigType:      tmpl[4],
		SplitMethod:   tmpl[5],
		MissMgmt:      MissMgmt(tmpl[6]),
		PrimaryMiss:   ieee32.ReadIEEE(uint32(tmpl[7])),
		SecondaryMiss: ieee32.ReadIEEE(uint32(tmpl[8])),
		NGroups:       tmpl[9],
		WidthRef:      tmpl[10],
		NBitsWidth:    tmpl[11],
		LengthRef:     tmpl[12],
		LengthIncr:    tmpl[13],
		LastLength:    tmpl[14],
		NBitsLen:      tmpl[15],
	}
}

// DRT53 is the template descriptor for DRT 5.3: complex packing with first-
// or second-order spatial differencing. It carries everything DRT52 does
// plus the two DRT-5.3-specific slots [17]/[18].
type DRT53 struct {
	DRT52
	SpatialOrder SpatialOrder // [17] 1 or 2
	OctetsD      int32        // [18] nbitsd/8: octets used for v1/v2/m_sd
}

func (d DRT53) DRTNum() int { return 3 }

// Marshal returns d as the 18-element positional layout of §3 slots [1]..[18].
func (d DRT53) Marshal() []int32 {
	return append(d.DRT52.Marshal(), int32(d.SpatialOrder), d.OctetsD)
}

// UnmarshalDRT53 reconstructs a DRT53 from its positional layout. tmpl must
// have at least 18 elements.
func UnmarshalDRT53(tmpl []int32) DRT53 {
	return DRT53{
		DRT52:        UnmarshalDRT52(tmpl),
		SpatialOrder: SpatialOrder(tmpl[16]),
		OctetsD:      tmpl[17],
	}
}

// DRT51 is the template descriptor for DRT 5.51: spectral complex packing
// of spherical-harmonic coefficients.
type DRT51 struct {
	Ref          float32 // [1]
	BinScale     int32   // [2] E
	DecScale     int32   // [3] D
	NBits        int32   // [4] bits per packed coefficient
	LaplacianT6  int32   // [5] T * 10^6, integer-stored Laplacian scale exponent
	Js           int32   // [6] unpacked-subset truncation J
	Ks           int32   // [7] unpacked-subset truncation K
	Ms           int32   // [8] unpacked-subset truncation M
	Ts           int32   // [9] count of unpacked (real,imag) coefficients, = 2*|subset|
	FloatSize    int32   // [10] 1 == 32-bit IEEE; anything else is unsupported
}

func (d DRT51) DRTNum() int { return 51 }

// Marshal returns d as the 10-element positional layout §4.7 describes.
func (d DRT51) Marshal() []int32 {
	return []int32{
		int32(ieee32.WriteIEEE(d.Ref)),
		d.BinScale,
		d.DecScale,
		d.NBits,
		d.LaplacianT6,
		d.Js,
		d.Ks,
		d.Ms,
		d.Ts,
		d.FloatSize,
	}
}

// UnmarshalDRT51 reconstructs a DRT51 from its positional layout. tmpl must
// have at least 10 elements.
func UnmarshalDRT51(tmpl []int32) DRT51 {
	return DRT51{
		Ref:         ieee32.ReadIEEE(uint32(tmpl[0])),
		BinScale:    tmpl[1],
		DecScale:    tmpl[2],
		NBits:       tmpl[3],
		LaplacianT6: tmpl[4],
		Js:          tmpl[5],
		Ks:          tmpl[6],
		Ms:          tmpl[7],
		Ts:          tmpl[8],
		FloatSize:   tmpl[9],
	}
}

// LaplacianT returns the decoded Laplacian scale exponent T = LaplacianT6 * 10^-6.
func (d DRT51) LaplacianT() float64 {
	return float64(d.LaplacianT6) * 1e-6
}
