// Package format defines the OPTM binary container layout: a fixed 64-byte
// header, a table of 16-byte draw-group records, and two codec-compressed
// payload sections (vertices, then indices).
//
// All multi-byte fields are little-endian. Records are packed field by field
// rather than through struct memory layout, so the on-disk format is stable
// across architectures.
package format

import "errors"

const (
	// HeaderSize is the encoded size of EncodeHeader in bytes.
	HeaderSize = 64
	// ObjectSize is the encoded size of EncodeObject in bytes.
	ObjectSize = 16

	// MinBits and MaxBits bound the quantization bit depth. Zero bits would
	// divide by zero during scale normalization; 32 or more overflows the
	// step-count shift.
	MinBits = 1
	MaxBits = 31
)

// Magic identifies OPTM containers (ASCII "OPTM").
var Magic = [4]byte{'O', 'P', 'T', 'M'}

var (
	ErrInvalidMagic = errors.New("invalid magic tag")
	ErrInvalidBits  = errors.New("quantization bit depth must be in [1, 31]")
	ErrShortBuffer  = errors.New("buffer too small for record")
	ErrSizeMismatch = errors.New("section size does not match header")
)
