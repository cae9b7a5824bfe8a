package archive

// ZstdCompressor applies Zstandard compression across a whole bundle's
// framed fields, useful for cold-storage archives of many related grids
// (e.g. an ensemble's members, or a forecast cycle's full set of lead
// times) where cross-field redundancy is worth paying extra CPU to find.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
