// Package intmath provides the small integer-width helper every higher
// component uses to size bit fields: ilog2_ceil.
package intmath

import "golang.org/x/exp/constraints"

// Ilog2Ceil returns 0 for n == 0, and otherwise the number of bits required
// to represent n unsigned — the smallest k such that 2^k >= n+1, equivalently
// ceil(log2(n+1)).
//
// Generic over the unsigned integer family so group and complexpack can call
// it directly on uint32 group spans and uint64 reference sums without a cast
// at every call site.
func Ilog2Ceil[T constraints.Unsigned](n T) int {
	if n == 0 {
		return 0
	}

	bits := 0
	for v := uint64(n); v != 0; v >>= 1 {
		bits++
	}

	return bits
}

// BitsForSpan returns ilog2_ceil(maxVal - minVal), the width needed to hold
// every residual in a group whose reference is minVal. Panics if maxVal <
// minVal, since that indicates a caller bug (an empty or malformed group),
// not a data error.
func BitsForSpan(minVal, maxVal int64) int {
	if maxVal < minVal {
		panic("intmath: BitsForSpan: maxVal < minVal")
	}

	return Ilog2Ceil(uint64(maxVal - minVal))
}
