package complexpack

import (
	"github.com/wxcodec/g2complex/bitio"
	"github.com/wxcodec/g2complex/intmath"
)

// nbitsD computes §4.4 step 3's nbitsd: the width needed to hold
// max(|v1|,|v2|,|msd|) plus a sign bit, rounded up to a whole number of
// octets (a multiple of 8 bits, at least 8) as both the reference encoder
// and decoder require (Open
// Questions: "nbitsd is rounded up to a multiple of 8 in encode ... keep
// the rounding or the payload is unreadable by peer implementations").
func nbitsD(v1, v2, msd int64, hasV2 bool) int {
	maxAbs := absInt64(v1)
	if hasV2 {
		if a := absInt64(v2); a > maxAbs {
			maxAbs = a
		}
	}
	if a := absInt64(msd); a > maxAbs {
		maxAbs = a
	}

	bits := intmath.Ilog2Ceil(uint64(maxAbs)) + 1 // +1 for the sign bit.
	if bits < 8 {
		bits = 8
	}

	return ((bits + 7) / 8) * 8
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// putSigned writes v into nbits bits at bitOffset using the §3 convention:
// a negative value is a 1 sign bit followed by |v| in the remaining
// nbits-1 bits; a non-negative value is written with the sign bit clear.
func putSigned(buf []byte, v int64, bitOffset, nbits int) error {
	if v < 0 {
		return bitio.PutBits(buf, uint32(1<<(nbits-1))|uint32(-v), bitOffset, nbits)
	}

	return bitio.PutBits(buf, uint32(v), bitOffset, nbits)
}

// getSigned reads a §3-convention signed value from nbits bits at bitOffset.
func getSigned(buf []byte, bitOffset, nbits int) (int64, error) {
	raw, err := bitio.GetOne(buf, bitOffset, nbits)
	if err != nil {
		return 0, err
	}

	signMask := uint32(1) << (nbits - 1)
	if raw&signMask != 0 {
		return -int64(raw &^ signMask), nil
	}

	return int64(raw), nil
}
