// Package complexpack implements Data Representation Templates 5.2 and 5.3:
// adaptive complex packing of a real grid into bit-packed groups, with
// optional first- or second-order spatial differencing (DRT 5.3) and
// optional one- or two-sentinel missing-value management.
package complexpack

import (
	"fmt"

	"github.com/wxcodec/g2complex/bitio"
	"github.com/wxcodec/g2complex/errs"
	"github.com/wxcodec/g2complex/group"
	"github.com/wxcodec/g2complex/internal/options"
	"github.com/wxcodec/g2complex/internal/pool"
	"github.com/wxcodec/g2complex/template"
)

// Request carries the caller-supplied packing parameters that in the
// source sit in the input slots of idrstmpl[*] (§6): the scaling pair
// (E,D), missing-value management mode and sentinels, and — for DRT 5.3 —
// the spatial-differencing order.
type Request struct {
	BinScale      int32
	DecScale      int32
	MissMgmt      template.MissMgmt
	PrimaryMiss   float32
	SecondaryMiss float32
	SpatialOrder  template.SpatialOrder // DRT 5.3 only; 0 means "use the default".
}

// Pack encodes fld using DRT drt (2 or 3) and the given request, returning
// the bit-packed payload and the filled-in template descriptor.
func Pack(fld []float32, drt int, req Request, opts ...Option) ([]byte, template.Descriptor, error) {
	if req.MissMgmt != template.MissNone && req.MissMgmt != template.MissOne && req.MissMgmt != template.MissTwo {
		return nil, nil, fmt.Errorf("%w: %d", errs.ErrInvalidMissMgmt, req.MissMgmt)
	}
	if drt != 2 && drt != 3 {
		return nil, nil, fmt.Errorf("%w: unsupported DRT %d", errs.ErrInvalidTemplate, drt)
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, nil, err
	}

	order := 0
	if drt == 3 {
		order = int(req.SpatialOrder)
		if order != 1 && order != 2 {
			order = cfg.DefaultSpatialOrder
		}
	}

	plan, err := buildPlan(fld, req, order)
	if err != nil {
		return nil, nil, err
	}

	if plan.constant {
		return nil, plan.descriptor(drt, order), nil
	}

	lens := group.Partition(plan.ifld, plan.groupMiss, plan.miss1, plan.miss2, cfg.MinPack).GroupLen
	stats, resid := reduceGroups(plan.ifld, lens, req.MissMgmt, plan.miss1, plan.miss2)

	payload, err := packPayload(plan, stats, resid, order)
	if err != nil {
		return nil, nil, err
	}

	desc := plan.descriptorFromGroups(drt, order, stats)

	return payload, desc, nil
}

// packPayload implements §3's bit-contiguous payload layout.
func packPayload(plan *packPlan, stats []groupStat, resid []int64, order int) ([]byte, error) {
	ngroups := len(stats)

	widthRef, nbitsWidth, maxWidth := groupWidthFields(stats)
	lengthRef, nbitsLen, lastLength := groupLengthFields(stats)
	nbitsRef := NBitsRef(stats)

	ndBits := 0
	if order > 0 {
		ndBits = nbitsD(plan.v1, plan.v2, plan.msd, order == 2)
	}

	totalBits := spatialHeaderBits(ndBits, order)
	totalBits = bitio.PadToOctet(totalBits)

	refStart := totalBits
	totalBits = bitio.PadToOctet(refStart + ngroups*nbitsRef)

	widthStart := totalBits
	if nbitsWidth > 0 {
		totalBits = bitio.PadToOctet(widthStart + ngroups*nbitsWidth)
	}

	lenStart := totalBits
	nLenFields := ngroups - 1
	if nbitsLen > 0 && nLenFields > 0 {
		totalBits = bitio.PadToOctet(lenStart + nLenFields*nbitsLen)
	}

	residStart := totalBits
	residBits := 0
	for _, s := range stats {
		residBits += int(s.width) * s.len
	}
	totalBits = bitio.PadToOctet(residStart + residBits)

	nbytes := bitio.ByteLen(totalBits)

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)
	buf.Grow(nbytes)
	buf.SetLength(nbytes)
	for i := range buf.B {
		buf.B[i] = 0
	}

	if order > 0 {
		if err := writeSpatialHeader(buf.B, plan.v1, plan.v2, plan.msd, ndBits, order); err != nil {
			return nil, err
		}
	}

	pos := refStart
	for _, s := range stats {
		if err := bitio.PutBits(buf.B, uint32(s.ref), pos, nbitsRef); err != nil {
			return nil, err
		}
		pos += nbitsRef
	}

	if nbitsWidth > 0 {
		pos = widthStart
		for _, s := range stats {
			if err := bitio.PutBits(buf.B, uint32(int32(s.width)-widthRef), pos, nbitsWidth); err != nil {
				return nil, err
			}
			pos += nbitsWidth
		}
	}
	_ = maxWidth

	if nbitsLen > 0 && nLenFields > 0 {
		pos = lenStart
		for _, s := range stats[:ngroups-1] {
			if err := bitio.PutBits(buf.B, uint32(int32(s.len)-lengthRef), pos, nbitsLen); err != nil {
				return nil, err
			}
			pos += nbitsLen
		}
	}
	_ = lastLength

	pos = residStart
	off := 0
	for _, s := range stats {
		for i := 0; i < s.len; i++ {
			if err := bitio.PutBits(buf.B, uint32(resid[off+i]), pos, int(s.width)); err != nil {
				return nil, err
			}
			pos += int(s.width)
		}
		off += s.len
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)

	return out, nil
}

func groupWidthFields(stats []groupStat) (widthRef int32, nbitsWidth int, maxWidth int32) {
	if len(stats) == 0 {
		return 0, 0, 0
	}

	widthRef, maxWidth = stats[0].width, stats[0].width
	for _, s := range stats[1:] {
		if s.width < widthRef {
			widthRef = s.width
		}
		if s.width > maxWidth {
			maxWidth = s.width
		}
	}
	if maxWidth == widthRef {
		return widthRef, 0, maxWidth
	}

	return widthRef, ilog2CeilI32(maxWidth - widthRef), maxWidth
}

func groupLengthFields(stats []groupStat) (lengthRef int32, nbitsLen int, lastLength int32) {
	n := len(stats)
	if n == 0 {
		return 0, 0, 0
	}
	lastLength = int32(stats[n-1].len)
	if n == 1 {
		return 0, 0, lastLength
	}

	lengthRef = int32(stats[0].len)
	maxLen := lengthRef
	for _, s := range stats[:n-1] {
		l := int32(s.len)
		if l < lengthRef {
			lengthRef = l
		}
		if l > maxLen {
			maxLen = l
		}
	}
	if maxLen == lengthRef {
		return lengthRef, 0, lastLength
	}

	return lengthRef, ilog2CeilI32(maxLen - lengthRef), lastLength
}
