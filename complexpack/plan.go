package complexpack

import (
	"github.com/wxcodec/g2complex/group"
	"github.com/wxcodec/g2complex/intmath"
	"github.com/wxcodec/g2complex/template"
)

// packPlan is the working state shared by Pack's quantize/diff/partition
// stages and the two descriptor-building helpers below. Building it is
// §4.4/§4.5's steps 1-3; everything after group.Partition is step 5 on.
type packPlan struct {
	ifld []int64
	ref  float32

	binScale, decScale int32

	missMgmt      template.MissMgmt
	primaryMiss   float32
	secondaryMiss float32
	groupMiss     group.MissMode
	miss1, miss2  int64

	v1, v2, msd int64

	constant bool
}

// buildPlan implements §4.4 steps 1-3 (no missing values) and §4.5 steps
// 1-3 (with missing values): quantize, optionally compact/re-expand around
// sentinel codes, and apply spatial differencing.
func buildPlan(fld []float32, req Request, order int) (*packPlan, error) {
	p := &packPlan{
		binScale:      req.BinScale,
		decScale:      req.DecScale,
		missMgmt:      req.MissMgmt,
		primaryMiss:   req.PrimaryMiss,
		secondaryMiss: req.SecondaryMiss,
	}

	if req.MissMgmt == template.MissNone {
		p.ifld, p.ref = quantize(fld, req.BinScale, req.DecScale)
		p.groupMiss = group.MissNone

		if order == 0 && isConstant(p.ifld) {
			p.constant = true
		} else if order > 0 {
			p.v1, p.v2, p.msd = forwardDiff(p.ifld, order)
		}

		return p, nil
	}

	isPrimary := func(v float32) bool { return v == req.PrimaryMiss }
	isSecondary := func(v float32) bool { return req.MissMgmt == template.MissTwo && v == req.SecondaryMiss }

	nonMissing := make([]float32, 0, len(fld))
	missingIdx := make([]int, len(fld))
	for i, v := range fld {
		switch {
		case isPrimary(v):
			missingIdx[i] = 1
		case isSecondary(v):
			missingIdx[i] = 2
		default:
			missingIdx[i] = 0
			nonMissing = append(nonMissing, v)
		}
	}

	var jfld []int64
	if len(nonMissing) > 0 {
		jfld, p.ref = quantize(nonMissing, req.BinScale, req.DecScale)
	}

	if order > 0 && len(jfld) > 0 {
		p.v1, p.v2, p.msd = forwardDiff(jfld, order)
	}

	miss1 := int64(-1)
	if len(jfld) > 0 {
		miss1 = minInt64(jfld) - 1
	}
	miss2 := miss1 - 1

	p.miss1, p.miss2 = miss1, miss2
	if req.MissMgmt == template.MissTwo {
		p.groupMiss = group.MissTwo
	} else {
		p.groupMiss = group.MissOne
	}

	p.ifld = make([]int64, len(fld))
	j := 0
	for i, code := range missingIdx {
		switch code {
		case 1:
			p.ifld[i] = miss1
		case 2:
			p.ifld[i] = miss2
		default:
			p.ifld[i] = jfld[j]
			j++
		}
	}

	return p, nil
}

func isConstant(ifld []int64) bool {
	for _, v := range ifld {
		if v != 0 {
			return false
		}
	}

	return true
}

func minInt64(xs []int64) int64 {
	m := xs[0]
	for _, v := range xs[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// descriptor builds the degenerate ngroups=0, nbits_ref=0 template for a
// field that quantizes to all zeros. The reference travels in the
// descriptor; Pack returns an empty payload alongside it.
func (p *packPlan) descriptor(drt, order int) template.Descriptor {
	base := template.DRT52{
		Ref:           p.ref,
		BinScale:      p.binScale,
		DecScale:      p.decScale,
		NBitsRef:      0,
		OrigType:      0,
		SplitMethod:   1,
		MissMgmt:      p.missMgmt,
		PrimaryMiss:   p.primaryMiss,
		SecondaryMiss: p.secondaryMiss,
		NGroups:       0,
		WidthRef:      0,
		NBitsWidth:    0,
		LengthRef:     0,
		LengthIncr:    1,
		LastLength:    0,
		NBitsLen:      0,
	}

	if drt != 3 {
		return base
	}

	return template.DRT53{DRT52: base, SpatialOrder: template.SpatialOrder(order), OctetsD: 0}
}

// descriptorFromGroups builds the template descriptor for the common case:
// a field that was actually partitioned into one or more groups.
func (p *packPlan) descriptorFromGroups(drt, order int, stats []groupStat) template.Descriptor {
	widthRef, nbitsWidth, _ := groupWidthFields(stats)
	lengthRef, nbitsLen, lastLength := groupLengthFields(stats)

	base := template.DRT52{
		Ref:           p.ref,
		BinScale:      p.binScale,
		DecScale:      p.decScale,
		NBitsRef:      int32(NBitsRef(stats)),
		OrigType:      0,
		SplitMethod:   1,
		MissMgmt:      p.missMgmt,
		PrimaryMiss:   p.primaryMiss,
		SecondaryMiss: p.secondaryMiss,
		NGroups:       int32(len(stats)),
		WidthRef:      widthRef,
		NBitsWidth:    int32(nbitsWidth),
		LengthRef:     lengthRef,
		LengthIncr:    1,
		LastLength:    lastLength,
		NBitsLen:      int32(nbitsLen),
	}

	if drt != 3 {
		return base
	}

	nd := 0
	if order > 0 {
		nd = nbitsD(p.v1, p.v2, p.msd, order == 2)
	}

	return template.DRT53{DRT52: base, SpatialOrder: template.SpatialOrder(order), OctetsD: int32(nd / 8)}
}

// spatialHeaderBits returns the total bit width of the v1[,v2],m_sd header
// DRT 5.3 prepends to the payload.
func spatialHeaderBits(nbitsD, order int) int {
	switch order {
	case 1:
		return nbitsD * 2
	case 2:
		return nbitsD * 3
	default:
		return 0
	}
}

// writeSpatialHeader writes the v1[,v2],m_sd header at the start of buf.
func writeSpatialHeader(buf []byte, v1, v2, msd int64, nbitsD, order int) error {
	if err := putSigned(buf, v1, 0, nbitsD); err != nil {
		return err
	}

	pos := nbitsD
	if order == 2 {
		if err := putSigned(buf, v2, pos, nbitsD); err != nil {
			return err
		}
		pos += nbitsD
	}

	return putSigned(buf, msd, pos, nbitsD)
}

// readSpatialHeader reads the v1[,v2],m_sd header back out of buf.
func readSpatialHeader(buf []byte, nbitsD, order int) (v1, v2, msd int64, err error) {
	v1, err = getSigned(buf, 0, nbitsD)
	if err != nil {
		return 0, 0, 0, err
	}

	pos := nbitsD
	if order == 2 {
		v2, err = getSigned(buf, pos, nbitsD)
		if err != nil {
			return 0, 0, 0, err
		}
		pos += nbitsD
	}

	msd, err = getSigned(buf, pos, nbitsD)
	if err != nil {
		return 0, 0, 0, err
	}

	return v1, v2, msd, nil
}

func ilog2CeilI32(x int32) int {
	return intmath.Ilog2Ceil(uint32(x))
}
