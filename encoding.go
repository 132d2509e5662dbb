package optmesh

import (
	"unsafe"

	"github.com/hupe1980/optmesh/codec"
)

// EncodeIndexBuffer compresses an index stream through c.
//
// The result buffer is sized by the codec's own bound, then truncated to the
// bytes actually written. The bound is a hard guarantee, so encoding has no
// failure path of its own.
func EncodeIndexBuffer(c codec.Codec, indices []uint32, vertexCount int) ([]byte, error) {
	bound := c.IndexEncodeBound(len(indices), vertexCount)
	result := make([]byte, bound)
	size := c.IndexEncode(result, indices)
	return result[:size], nil
}

// DecodeIndexBuffer decompresses an index stream into indexCount elements of
// type T, which must be 2 or 4 bytes wide (16-bit or 32-bit indices). Any
// other width returns a *MemoryError before the codec is invoked; a nonzero
// codec status is returned as a *NativeError.
func DecodeIndexBuffer[T any](c codec.Codec, encoded []byte, indexCount int) ([]T, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if width != 2 && width != 4 {
		return nil, &MemoryError{Msg: "size of result type must be 2 or 4 bytes wide"}
	}

	result := make([]T, indexCount)
	if status := c.IndexDecode(byteView(result, width), width, encoded); status != 0 {
		return nil, &NativeError{Code: int32(status)}
	}
	return result, nil
}

// EncodeVertexBuffer compresses a vertex stream of fixed-stride records
// through c. T may be any fixed-size element type (e.g. a packed
// position+normal+UV struct); its size determines the element width.
func EncodeVertexBuffer[T any](c codec.Codec, vertices []T) ([]byte, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))

	bound := c.VertexEncodeBound(len(vertices), width)
	result := make([]byte, bound)
	size := c.VertexEncode(result, byteView(vertices, width), width)
	return result[:size], nil
}

// DecodeVertexBuffer decompresses a vertex stream into vertexCount elements
// of type T. Unlike index decoding there is no width restriction. A nonzero
// codec status is returned as a *NativeError.
func DecodeVertexBuffer[T any](c codec.Codec, encoded []byte, vertexCount int) ([]T, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))

	result := make([]T, vertexCount)
	if status := c.VertexDecode(byteView(result, width), width, encoded); status != 0 {
		return nil, &NativeError{Code: int32(status)}
	}
	return result, nil
}

// byteView returns the raw bytes backing a typed slice without copying.
func byteView[T any](s []T, width int) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*width)
}
