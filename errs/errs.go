// Package errs defines sentinel errors shared by every g2complex package.
//
// Callers should compare against these with errors.Is, since call sites wrap
// them with fmt.Errorf("%w: ...") to attach the detail that triggered them.
package errs

import "errors"

var (
	// ErrInvalidMissMgmt is returned when a missing-value management mode
	// outside {0, 1, 2} is requested on encode or decode.
	ErrInvalidMissMgmt = errors.New("invalid missing-value management mode")

	// ErrUnsupportedPrecision is returned by spectral decode when the
	// template requests a float size other than 32-bit.
	ErrUnsupportedPrecision = errors.New("unsupported float precision")

	// ErrBufferOverrun is returned when a bit read or write would cross the
	// end of the supplied payload.
	ErrBufferOverrun = errors.New("bit offset exceeds buffer length")

	// ErrInvalidTemplate is returned when a template descriptor carries
	// inconsistent group counts or a negative bit width.
	ErrInvalidTemplate = errors.New("inconsistent template descriptor")

	// ErrShortField is returned when the caller-supplied field slice does
	// not have ndpts elements.
	ErrShortField = errors.New("field length does not match ndpts")

	// ErrUnknownCodec is returned by archive.UnmarshalBundle for an
	// unrecognized compression codec byte.
	ErrUnknownCodec = errors.New("unknown archive codec")

	// ErrCorruptBundle is returned when an archive bundle's framing is
	// truncated or its fingerprint does not match its contents.
	ErrCorruptBundle = errors.New("corrupt archive bundle")
)
