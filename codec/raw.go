package codec

import "encoding/binary"

// Raw stores both streams uncompressed: indices as little-endian uint32,
// vertices as their packed bytes. Bounds are exact, which makes Raw the
// deterministic baseline for testing orchestration and for payloads that are
// already compressed upstream.
type Raw struct{}

// Name implements Codec.
func (Raw) Name() string { return "raw" }

// IndexEncodeBound implements Codec.
func (Raw) IndexEncodeBound(indexCount, vertexCount int) int {
	return indexCount * 4
}

// IndexEncode implements Codec.
func (Raw) IndexEncode(dst []byte, src []uint32) int {
	for i, idx := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], idx)
	}
	return len(src) * 4
}

// IndexDecode implements Codec.
func (Raw) IndexDecode(dst []byte, indexWidth int, src []byte) int {
	if len(src)%4 != 0 {
		return statusMalformed
	}
	count := len(src) / 4
	if count*indexWidth != len(dst) {
		return statusSizeMismatch
	}

	for i := 0; i < count; i++ {
		v := binary.LittleEndian.Uint32(src[i*4:])
		if status := putIndex(dst, i, indexWidth, v); status != statusOK {
			return status
		}
	}
	return statusOK
}

// VertexEncodeBound implements Codec.
func (Raw) VertexEncodeBound(vertexCount, elementWidth int) int {
	return vertexCount * elementWidth
}

// VertexEncode implements Codec.
func (Raw) VertexEncode(dst, src []byte, elementWidth int) int {
	return copy(dst, src)
}

// VertexDecode implements Codec.
func (Raw) VertexDecode(dst []byte, elementWidth int, src []byte) int {
	if len(src) != len(dst) {
		return statusSizeMismatch
	}
	copy(dst, src)
	return statusOK
}
