// Package codec defines the compression boundary for OPTM vertex and index
// streams and ships the built-in implementations.
//
// The interface mirrors a native compression library: encode operations
// report bytes written and are guaranteed never to exceed the corresponding
// bound for the same parameters; decode operations return a status code
// where zero means success. Status codes are codec-private and surfaced
// verbatim to callers, never reinterpreted.
package codec

// Codec compresses and decompresses vertex and index streams.
// Implementations must be safe for concurrent use.
type Codec interface {
	// IndexEncodeBound returns an upper bound on the encoded size of an
	// index stream with the given element and vertex counts.
	IndexEncodeBound(indexCount, vertexCount int) int

	// IndexEncode compresses src into dst, which must be at least
	// IndexEncodeBound(len(src), vertexCount) bytes. Returns bytes written.
	IndexEncode(dst []byte, src []uint32) int

	// IndexDecode decompresses src into dst, a buffer of len(dst)/indexWidth
	// elements of 2 or 4 bytes each. Returns 0 on success.
	IndexDecode(dst []byte, indexWidth int, src []byte) int

	// VertexEncodeBound returns an upper bound on the encoded size of a
	// vertex stream of vertexCount elements of elementWidth bytes.
	VertexEncodeBound(vertexCount, elementWidth int) int

	// VertexEncode compresses src (vertexCount*elementWidth bytes of packed
	// records) into dst. Returns bytes written.
	VertexEncode(dst, src []byte, elementWidth int) int

	// VertexDecode decompresses src into dst
	// (vertexCount*elementWidth bytes). Returns 0 on success.
	VertexDecode(dst []byte, elementWidth int, src []byte) int

	// Name returns the codec's stable name.
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = LZ4{}

// ByName returns a built-in codec by its stable name.
//
// This is used by callers that store the codec name alongside a container so
// the payload stays self-describing.
func ByName(name string) (Codec, bool) {
	switch name {
	case "raw":
		return Raw{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return ZSTD{}, true
	default:
		return nil, false
	}
}

// Decode status codes for the built-in codecs. Zero is success; the rest are
// private failure codes.
const (
	statusOK           = 0
	statusMalformed    = -1
	statusSizeMismatch = -2
	statusIndexRange   = -3
)
