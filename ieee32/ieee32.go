// Package ieee32 converts between host float32 values and their 32-bit
// IEEE-754 big-endian wire representation, independent of host endianness.
//
// Go's float32 is already IEEE-754 single precision, so the conversion
// itself is a bit-cast (math.Float32bits / math.Float32frombits); this
// package only fixes the on-wire byte order, per §4.2 of the packing spec.
package ieee32

import (
	"encoding/binary"
	"math"
)

// WriteIEEE converts v to its 32-bit IEEE-754 representation. The caller
// decides how to place the returned bits into a byte buffer (big-endian,
// per GRIB2 convention); use Append for that directly.
func WriteIEEE(v float32) uint32 {
	return math.Float32bits(v)
}

// ReadIEEE reconstructs a float32 from its 32-bit IEEE-754 representation.
// Sign, biased exponent, and mantissa round-trip exactly; NaN and ±Inf
// inputs do not panic but are not guaranteed to round-trip bit-for-bit.
func ReadIEEE(bits uint32) float32 {
	return math.Float32frombits(bits)
}

// Append encodes v as big-endian IEEE-754 bytes and appends them to buf.
func Append(buf []byte, v float32) []byte {
	return binary.BigEndian.AppendUint32(buf, WriteIEEE(v))
}

// Decode reads a big-endian IEEE-754 float32 from the first 4 bytes of buf.
// Callers must ensure len(buf) >= 4; this mirrors the teacher's
// endian.EndianEngine contract of trusting the caller for bounds.
func Decode(buf []byte) float32 {
	return ReadIEEE(binary.BigEndian.Uint32(buf))
}
