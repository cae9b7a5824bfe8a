// Package archive bundles multiple packed GRIB2 fields — each the payload
// and template descriptor complexpack or spectral produced — into a single
// framed, optionally compressed, content-fingerprinted blob (§4.8).
package archive

import (
	"fmt"

	"github.com/wxcodec/g2complex/format"
)

// Compressor compresses a bundle payload before it is framed.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every archive.Bundle carries exactly one
// Codec, chosen when the bundle is created and recorded in its header so a
// reader knows which one to reach for.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the built-in Codec for compressionType.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("archive: invalid compression type: %s", compressionType)
	}
}
