// Package format holds the small wire-level enumerations shared by the
// archive package, kept separate so a framing consumer can depend on the
// type without pulling in codec implementations.
package format

// CompressionType selects the general-purpose compression algorithm an
// archive bundle applies to its whole framed contents (every entry's
// directory fields and packed payload together), on top of whatever space
// complexpack's own bit-packing already recovered.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone applies no further compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd applies Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 applies S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 applies LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
