package complexpack

import (
	"github.com/wxcodec/g2complex/intmath"
	"github.com/wxcodec/g2complex/template"
)

// groupStat is a single group's (reference, width, length) triple, §3's
// group descriptor.
type groupStat struct {
	ref   int64
	width int32
	len   int
}

// reduceGroups implements §4.4 step 5 (no missing values) and §4.5 steps
// 5-6 (missing values): it turns the partitioned, (possibly differenced)
// quantized field into per-group reference/width descriptors and a
// residual array ready for bit-packing. group.Partition only isolates a
// sentinel run into its own group when that run is at least minpk long
// (worth its own zero-width group); shorter runs stay embedded in the
// surrounding real-data group. For a group that ends up entirely sentinel,
// ref gets the special -1/-2/-3 encoding of §4.5 step 5, rewritten into the
// unsigned nbits_ref domain once every group has been reduced. For an
// ordinary group, width is raised by missMgmt's sentinel count so the top
// 1-2 codepoints stay free for any sentinel embedded in it (§4.5 step 6);
// residual values of miss1/miss2 members are written as those raised
// codepoints instead of ref-subtracted values.
func reduceGroups(ifld []int64, lens []int, missMgmt template.MissMgmt, miss1, miss2 int64) (stats []groupStat, resid []int64) {
	resid = make([]int64, len(ifld))
	stats = make([]groupStat, len(lens))

	off := 0
	for g, l := range lens {
		members := ifld[off : off+l]

		if missMgmt != template.MissNone && allSentinel(members, missMgmt, miss1, miss2) {
			stats[g] = reduceSentinelGroup(members, miss1, miss2, resid[off:off+l])
			off += l

			continue
		}

		stats[g] = reduceRealGroup(members, missMgmt, miss1, miss2, resid[off:off+l])
		off += l
	}

	rewriteSentinelRefs(stats, missMgmt)

	return stats, resid
}

func allSentinel(members []int64, missMgmt template.MissMgmt, miss1, miss2 int64) bool {
	for _, v := range members {
		if v == miss1 {
			continue
		}
		if missMgmt == template.MissTwo && v == miss2 {
			continue
		}

		return false
	}

	return true
}

// reduceSentinelGroup handles a run that is entirely primary and/or
// secondary missing codes.
func reduceSentinelGroup(members []int64, miss1, miss2 int64, out []int64) groupStat {
	hasPrimary, hasSecondary := false, false
	for _, v := range members {
		if v == miss1 {
			hasPrimary = true
		} else if v == miss2 {
			hasSecondary = true
		}
	}

	switch {
	case hasPrimary && !hasSecondary:
		return groupStat{ref: -1, width: 0, len: len(members)}
	case hasSecondary && !hasPrimary:
		return groupStat{ref: -2, width: 0, len: len(members)}
	default:
		// Mixed primary/secondary within one sentinel-only group: width 1,
		// residual 0 marks primary, 1 marks secondary. ref is a third
		// out-of-band marker (-3, rewritten to top-3) rather than 0, so it
		// can't be confused with a genuine two-valued real group.
		for i, v := range members {
			if v == miss2 {
				out[i] = 1
			} else {
				out[i] = 0
			}
		}

		return groupStat{ref: -3, width: 1, len: len(members)}
	}
}

func reduceRealGroup(members []int64, missMgmt template.MissMgmt, miss1, miss2 int64, out []int64) groupStat {
	isMiss := func(v int64) bool {
		return (missMgmt != template.MissNone && v == miss1) || (missMgmt == template.MissTwo && v == miss2)
	}

	ref, maxV, seen := int64(0), int64(0), false
	for _, v := range members {
		if isMiss(v) {
			continue
		}
		if !seen || v < ref {
			ref = v
		}
		if !seen || v > maxV {
			maxV = v
		}
		seen = true
	}

	offset := int64(0)
	if missMgmt != template.MissNone {
		offset = int64(missMgmt)
	}
	width := intmath.BitsForSpan(0, maxV-ref+offset)

	for i, v := range members {
		switch {
		case missMgmt != template.MissNone && v == miss1:
			out[i] = (int64(1) << width) - 1
		case missMgmt == template.MissTwo && v == miss2:
			out[i] = (int64(1) << width) - 2
		default:
			out[i] = v - ref
		}
	}

	return groupStat{ref: ref, width: int32(width), len: len(members)}
}

// sentinelReserve is how many codepoints above the largest real group
// reference must stay free for whole-group sentinel markers: one for a
// primary-only run, and for two-sentinel mode a second for secondary-only
// and a third for a run mixing both.
func sentinelReserve(missMgmt template.MissMgmt) int64 {
	switch missMgmt {
	case template.MissOne:
		return 1
	case template.MissTwo:
		return 3
	default:
		return 0
	}
}

// rewriteSentinelRefs implements §4.5 step 5's final rewrite: nbits_ref is
// sized to hold both the largest real ref and the sentinel markers, then
// the -1/-2/-3 sentinel refs are remapped into that unsigned domain's top
// codepoints.
func rewriteSentinelRefs(stats []groupStat, missMgmt template.MissMgmt) {
	if missMgmt == template.MissNone {
		return
	}

	maxRealRef := int64(0)
	for _, s := range stats {
		if s.ref >= 0 && s.ref > maxRealRef {
			maxRealRef = s.ref
		}
	}

	nbitsRef := intmath.BitsForSpan(0, maxRealRef+sentinelReserve(missMgmt))
	top := int64(1) << nbitsRef

	for i, s := range stats {
		switch s.ref {
		case -1:
			stats[i].ref = top - 1
		case -2:
			stats[i].ref = top - 2
		case -3:
			stats[i].ref = top - 3
		}
	}
}

// NBitsRef returns the bit width needed to hold every group's reference in
// stats, which by the time rewriteSentinelRefs has run already accounts
// for sentinel markers.
func NBitsRef(stats []groupStat) int {
	maxRef := int64(0)
	for _, s := range stats {
		if s.ref > maxRef {
			maxRef = s.ref
		}
	}

	return intmath.BitsForSpan(0, maxRef)
}
