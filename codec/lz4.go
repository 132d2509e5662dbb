package codec

import (
	"github.com/pierrec/lz4/v4"
)

// LZ4 block-compresses both streams. Index streams are delta+zigzag
// transformed first so the block compressor sees small clustered values.
// Incompressible blocks fall back to stored form, keeping the encoded size
// within the bound.
type LZ4 struct{}

// Name implements Codec.
func (LZ4) Name() string { return "lz4" }

// IndexEncodeBound implements Codec.
func (LZ4) IndexEncodeBound(indexCount, vertexCount int) int {
	return blockHeaderSize + lz4.CompressBlockBound(indexCount*4)
}

// IndexEncode implements Codec.
func (LZ4) IndexEncode(dst []byte, src []uint32) int {
	return lz4EncodeBlock(dst, indexDeltaEncode(src))
}

// IndexDecode implements Codec.
func (LZ4) IndexDecode(dst []byte, indexWidth int, src []byte) int {
	raw, status := lz4DecodeBlock(src)
	if status != statusOK {
		return status
	}
	return indexDeltaDecode(raw, dst, indexWidth)
}

// VertexEncodeBound implements Codec.
func (LZ4) VertexEncodeBound(vertexCount, elementWidth int) int {
	return blockHeaderSize + lz4.CompressBlockBound(vertexCount*elementWidth)
}

// VertexEncode implements Codec.
func (LZ4) VertexEncode(dst, src []byte, elementWidth int) int {
	return lz4EncodeBlock(dst, src)
}

// VertexDecode implements Codec.
func (LZ4) VertexDecode(dst []byte, elementWidth int, src []byte) int {
	raw, status := lz4DecodeBlock(src)
	if status != statusOK {
		return status
	}
	if len(raw) != len(dst) {
		return statusSizeMismatch
	}
	copy(dst, raw)
	return statusOK
}

func lz4EncodeBlock(dst, raw []byte) int {
	compressed := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, compressed, nil)
	if err != nil || n == 0 || n >= len(raw) {
		// Incompressible (or empty): store raw.
		return putFrameStored(dst, raw)
	}
	return putFrameCompressed(dst, len(raw), compressed[:n])
}

func lz4DecodeBlock(src []byte) ([]byte, int) {
	rawSize, compSize, payload, ok := parseFrame(src)
	if !ok {
		return nil, statusMalformed
	}
	if compSize == 0 {
		return payload, statusOK
	}

	raw := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(payload, raw)
	if err != nil {
		return nil, statusMalformed
	}
	if n != rawSize {
		return nil, statusSizeMismatch
	}
	return raw, statusOK
}
