// Package archive's compression layer.
//
// # Overview
//
// A Bundle collects several packed GRIB2 fields, frames them with a small
// directory (label, DRT number, template, payload length), and compresses
// the whole frame with one of four codecs:
//
//   - None:  zero overhead, for fields already near their entropy floor
//   - Zstd:  best ratio, good for cold storage and cross-field redundancy
//   - S2:    balanced ratio/speed, good for active ingest pipelines
//   - LZ4:   fastest decompression, good for read-heavy serving paths
//
// # Fingerprinting
//
// Every Marshal call writes an xxHash64 fingerprint of the uncompressed
// frame ahead of the compressed bytes, independent of whatever integrity
// checking the codec itself
// provides, so UnmarshalBundle can distinguish "codec decoded fine but the
// bytes are still wrong" from "codec choked outright." Bundle.Fingerprint
// additionally exposes a rolling fingerprint over label+payload pairs alone
// — useful for confirming two bundles carry the same content regardless of
// codec or framing, as the bundle round-trip test does.
package archive
