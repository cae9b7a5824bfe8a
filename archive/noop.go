package archive

// NoOpCompressor bypasses compression, used when a bundle's packed fields
// are already dense enough that another compression pass isn't worth the
// CPU (e.g. random-looking Gaussian fields near their entropy floor).
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a compressor that returns its input unchanged.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
