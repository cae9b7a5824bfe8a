// Package group implements the adaptive group-partitioning step of complex
// packing: Glahn's forward-scan greedy algorithm that splits an integer
// sequence into contiguous runs chosen to approximately minimize the total
// number of bits the sequence will occupy once each run is stored as its
// own (reference, width, length) triple.
//
// This package has no dependency on templates or missing-value management —
// those enter purely as parameters (minimum-group-size, sentinel values) —
// so it is independently testable and reusable by any packing template that
// needs the same kind of run-length-of-similar-magnitude partition (Design
// Notes: "group partitioner as a reusable kernel").
package group

import "github.com/wxcodec/g2complex/intmath"

// MissMode selects how sentinel-only runs are treated during partitioning.
type MissMode int

const (
	// MissNone disables missing-value handling entirely.
	MissNone MissMode = 0
	// MissOne reserves one sentinel codepoint per group.
	MissOne MissMode = 1
	// MissTwo reserves two sentinel codepoints per group.
	MissTwo MissMode = 2
)

// DefaultMinPack is the minimum group length the partitioner tries to
// enforce, matching the reference implementation's default.
const DefaultMinPack = 10

// headerBitsEstimate is the amortized per-group overhead (nbits_ref +
// nbits_width + nbits_len) used to decide whether extending the current
// group is cheaper than starting a new one. The exact header cost is only
// known once every group has been formed (it depends on the global max
// width/length), so the partitioner uses this fixed estimate as Glahn's
// algorithm does, and any small suboptimality self-corrects because groups
// are free to keep growing across many points.
const headerBitsEstimate = 24

// Result is the outcome of a partition: group lengths summing to n, and the
// fixup constant added to every length before encoding (novref), later
// subtracted back out as length_ref by the packer.
type Result struct {
	GroupLen []int
	NovRef   int
}

// Partition splits x[0:n] into contiguous groups. miss selects sentinel
// handling; miss1/miss2 are the sentinel values to recognize when miss is
// MissOne or MissTwo (values equal to miss1 or miss2 are skipped when
// computing running min/max, since they must not influence a group's
// width). minpk <= 0 defaults to DefaultMinPack.
func Partition(x []int64, miss MissMode, miss1, miss2 int64, minpk int) Result {
	n := len(x)
	if minpk <= 0 {
		minpk = DefaultMinPack
	}
	if n == 0 {
		return Result{GroupLen: nil, NovRef: 0}
	}

	isSentinel := func(v int64) bool {
		switch miss {
		case MissOne:
			return v == miss1
		case MissTwo:
			return v == miss1 || v == miss2
		default:
			return false
		}
	}

	var lens []int
	i := 0
	for i < n {
		j := closeGroup(x, i, n, minpk, miss, isSentinel)
		lens = append(lens, j-i)
		i = j
	}

	novref := fixupOffset(lens)
	fixed := make([]int, len(lens))
	for k, l := range lens {
		fixed[k] = l + novref
	}

	return Result{GroupLen: fixed, NovRef: novref}
}

// closeGroup scans forward from i, growing a group while the marginal bit
// cost of absorbing the next real value is cheaper than the amortized cost
// of closing the group and starting a fresh one, then enforces the minimum
// group length where the end of the sequence doesn't force an earlier
// close. Sentinel values encountered while a group is open do not
// constrain its width (§4.5 step 6: they end up encoded as the raised top
// codepoints of the group's eventual width, not ref-subtracted), so a
// short interior or leading run of them is absorbed into the surrounding
// group rather than breaking it; a run at least minpk long is left for its
// own all-sentinel group instead, since that group encodes at zero width.
// It returns the exclusive end index of the group.
func closeGroup(x []int64, i, n, minpk int, miss MissMode, isSentinel func(int64) bool) int {
	sentinel := func(v int64) bool { return miss != MissNone && isSentinel(v) }

	if sentinel(x[i]) {
		run := i
		for run < n && sentinel(x[run]) {
			run++
		}
		if run-i >= minpk {
			return run
		}
	}

	minV, maxV := int64(0), int64(0)
	width := 0
	hasReal := false
	j := i

	for j < n {
		if sentinel(x[j]) {
			run := j
			for run < n && sentinel(x[run]) {
				run++
			}
			if run-j >= minpk {
				break
			}
			j = run

			continue
		}

		curLen := j - i
		newMin, newMax := minV, maxV
		if !hasReal {
			newMin, newMax = x[j], x[j]
		} else {
			if x[j] < newMin {
				newMin = x[j]
			}
			if x[j] > newMax {
				newMax = x[j]
			}
		}
		newWidth := intmath.BitsForSpan(newMin, newMax)

		extendCost := (newWidth-width)*curLen + newWidth
		// Below minpk we keep absorbing regardless of cost, since a group
		// shorter than minpk pays its own header overhead for no benefit.
		if curLen < minpk || extendCost <= headerBitsEstimate {
			minV, maxV, width = newMin, newMax, newWidth
			hasReal = true
			j++

			continue
		}

		break
	}

	return j
}

// fixupOffset returns novref, the constant every group length is increased
// by before encoding so that the minimum encoded length is non-negative
// once length_ref (the true minimum) is subtracted back out at the framing
// boundary. The reference algorithm always uses 0 here in practice since
// raw group lengths are already non-negative; novref exists to absorb a
// future convention where lengths are biased (e.g. length_increment != 1).
func fixupOffset(lens []int) int {
	if len(lens) == 0 {
		return 0
	}

	return 0
}
