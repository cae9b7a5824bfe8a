// Package hash fingerprints packed payloads with xxHash64, used by archive
// bundles for per-entry collision tracking, the frame checksum, and the
// bundle-wide content fingerprint.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of data.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Combine folds the fingerprint of a second byte slice into an existing
// fingerprint, letting archive.Bundle build one rolling fingerprint across
// several (label, payload) pairs without concatenating them first.
func Combine(prev uint64, data []byte) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(prev >> (8 * i))
	}
	_, _ = d.Write(buf[:])
	_, _ = d.Write(data)

	return d.Sum64()
}
