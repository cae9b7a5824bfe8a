package complexpack

import (
	"fmt"

	"github.com/wxcodec/g2complex/bitio"
	"github.com/wxcodec/g2complex/errs"
	"github.com/wxcodec/g2complex/template"
)

// Unpack decodes a payload produced by Pack (or a wire-compatible peer
// encoder) back into ndpts real values, using desc to interpret the bit
// layout. desc must be a template.DRT52 or template.DRT53.
func Unpack(payload []byte, desc template.Descriptor, ndpts int) ([]float32, error) {
	base, order, ndBits, err := splitDescriptor(desc)
	if err != nil {
		return nil, err
	}
	if base.MissMgmt != template.MissNone && base.MissMgmt != template.MissOne && base.MissMgmt != template.MissTwo {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidMissMgmt, base.MissMgmt)
	}

	if ndpts == 0 {
		return []float32{}, nil
	}

	if base.NGroups == 0 {
		out := make([]float32, ndpts)
		v := dequantize(0, base.Ref, base.BinScale, base.DecScale)
		for i := range out {
			out[i] = v
		}

		return out, nil
	}

	var v1, v2, msd int64
	pos := bitio.PadToOctet(spatialHeaderBits(ndBits, order))
	if order > 0 {
		v1, v2, msd, err = readSpatialHeader(payload, ndBits, order)
		if err != nil {
			return nil, err
		}
	}

	ngroups := int(base.NGroups)
	nbitsRef := int(base.NBitsRef)

	refsRaw, err := bitio.GetBits(payload, pos, nbitsRef, 0, ngroups)
	if err != nil {
		return nil, err
	}
	pos = bitio.PadToOctet(pos + ngroups*nbitsRef)

	widths := make([]int32, ngroups)
	if base.NBitsWidth > 0 {
		deltas, err := bitio.GetBits(payload, pos, int(base.NBitsWidth), 0, ngroups)
		if err != nil {
			return nil, err
		}
		pos = bitio.PadToOctet(pos + ngroups*int(base.NBitsWidth))
		for i, d := range deltas {
			widths[i] = base.WidthRef + int32(d)
		}
	} else {
		for i := range widths {
			widths[i] = base.WidthRef
		}
	}

	lens := make([]int, ngroups)
	if ngroups > 1 {
		if base.NBitsLen > 0 {
			deltas, err := bitio.GetBits(payload, pos, int(base.NBitsLen), 0, ngroups-1)
			if err != nil {
				return nil, err
			}
			pos = bitio.PadToOctet(pos + (ngroups-1)*int(base.NBitsLen))
			for i, d := range deltas {
				lens[i] = int(base.LengthRef) + int(d)
			}
		} else {
			for i := 0; i < ngroups-1; i++ {
				lens[i] = int(base.LengthRef)
			}
		}
	}
	lens[ngroups-1] = int(base.LastLength)

	total := 0
	for _, l := range lens {
		total += l
	}
	if total != ndpts {
		return nil, fmt.Errorf("%w: group lengths sum to %d, want %d", errs.ErrInvalidTemplate, total, ndpts)
	}

	ifldOut := make([]int64, ndpts)
	sentinelAt := make([]int8, ndpts)

	top := int64(1) << nbitsRef
	off := 0
	for g := 0; g < ngroups; g++ {
		ref := int64(refsRaw[g])
		width := int(widths[g])
		length := lens[g]

		resid := make([]uint32, length)
		if width > 0 {
			resid, err = bitio.GetBits(payload, pos, width, 0, length)
			if err != nil {
				return nil, err
			}
			pos += length * width
		}

		switch {
		case base.MissMgmt != template.MissNone && ref == top-1:
			for i := 0; i < length; i++ {
				sentinelAt[off+i] = 1
			}
		case base.MissMgmt == template.MissTwo && ref == top-2:
			for i := 0; i < length; i++ {
				sentinelAt[off+i] = 2
			}
		case base.MissMgmt == template.MissTwo && ref == top-3:
			for i := 0; i < length; i++ {
				if resid[i] == 1 {
					sentinelAt[off+i] = 2
				} else {
					sentinelAt[off+i] = 1
				}
			}
		default:
			for i := 0; i < length; i++ {
				r := int64(resid[i])
				switch {
				case base.MissMgmt != template.MissNone && width > 0 && r == (int64(1)<<uint(width))-1:
					sentinelAt[off+i] = 1
				case base.MissMgmt == template.MissTwo && width > 0 && r == (int64(1)<<uint(width))-2:
					sentinelAt[off+i] = 2
				default:
					ifldOut[off+i] = ref + r
				}
			}
		}

		off += length
	}

	out := make([]float32, ndpts)

	if base.MissMgmt == template.MissNone {
		if order > 0 {
			inverseDiff(ifldOut, order, v1, v2, msd)
		}
		for i, v := range ifldOut {
			out[i] = dequantize(v, base.Ref, base.BinScale, base.DecScale)
		}

		return out, nil
	}

	compact := make([]int64, 0, ndpts)
	for i := 0; i < ndpts; i++ {
		if sentinelAt[i] == 0 {
			compact = append(compact, ifldOut[i])
		}
	}
	if order > 0 && len(compact) > 0 {
		inverseDiff(compact, order, v1, v2, msd)
	}

	j := 0
	for i := 0; i < ndpts; i++ {
		switch sentinelAt[i] {
		case 1:
			out[i] = base.PrimaryMiss
		case 2:
			out[i] = base.SecondaryMiss
		default:
			out[i] = dequantize(compact[j], base.Ref, base.BinScale, base.DecScale)
			j++
		}
	}

	return out, nil
}

// splitDescriptor normalizes a DRT52 or DRT53 descriptor into its common
// DRT52 fields plus the spatial-differencing order and header octet width
// (both zero for DRT52).
func splitDescriptor(desc template.Descriptor) (base template.DRT52, order, ndBits int, err error) {
	switch d := desc.(type) {
	case template.DRT52:
		return d, 0, 0, nil
	case template.DRT53:
		return d.DRT52, int(d.SpatialOrder), int(d.OctetsD) * 8, nil
	default:
		return template.DRT52{}, 0, 0, fmt.Errorf("%w: unsupported descriptor type %T", errs.ErrInvalidTemplate, desc)
	}
}
