package codec

import (
	"encoding/binary"
	"math"
)

// Compressed payload frame shared by the LZ4 and ZSTD codecs:
// [RawSize uint32][CompressedSize uint32][Data...].
// CompressedSize == 0 means the data is stored uncompressed, which caps the
// encoded size at blockHeaderSize+len(raw) even for incompressible input.
const blockHeaderSize = 8

func putFrameStored(dst, raw []byte) int {
	binary.LittleEndian.PutUint32(dst[0:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(dst[4:], 0)
	copy(dst[blockHeaderSize:], raw)
	return blockHeaderSize + len(raw)
}

func putFrameCompressed(dst []byte, rawSize int, compressed []byte) int {
	binary.LittleEndian.PutUint32(dst[0:], uint32(rawSize))
	binary.LittleEndian.PutUint32(dst[4:], uint32(len(compressed)))
	copy(dst[blockHeaderSize:], compressed)
	return blockHeaderSize + len(compressed)
}

func parseFrame(src []byte) (rawSize, compSize int, payload []byte, ok bool) {
	if len(src) < blockHeaderSize {
		return 0, 0, nil, false
	}
	rawSize = int(binary.LittleEndian.Uint32(src[0:]))
	compSize = int(binary.LittleEndian.Uint32(src[4:]))

	n := compSize
	if compSize == 0 {
		n = rawSize
	}
	if len(src) < blockHeaderSize+n {
		return 0, 0, nil, false
	}
	return rawSize, compSize, src[blockHeaderSize : blockHeaderSize+n], true
}

// indexDeltaEncode rewrites an index stream as zigzag-encoded deltas between
// consecutive indices. Triangle list indices are locally clustered, so the
// deltas are small and compress far better than the raw values. The
// transform is bijective; order and values survive a round trip exactly.
func indexDeltaEncode(src []uint32) []byte {
	out := make([]byte, len(src)*4)
	var prev uint32
	for i, idx := range src {
		d := int32(idx) - int32(prev)
		zz := uint32((d << 1) ^ (d >> 31))
		binary.LittleEndian.PutUint32(out[i*4:], zz)
		prev = idx
	}
	return out
}

// indexDeltaDecode reverses indexDeltaEncode, writing indices into dst at
// the requested element width.
func indexDeltaDecode(raw, dst []byte, width int) int {
	count := len(raw) / 4
	if count*width != len(dst) {
		return statusSizeMismatch
	}

	var prev uint32
	for i := 0; i < count; i++ {
		zz := binary.LittleEndian.Uint32(raw[i*4:])
		d := int32(zz>>1) ^ -int32(zz&1)
		idx := uint32(int32(prev) + d)
		if status := putIndex(dst, i, width, idx); status != statusOK {
			return status
		}
		prev = idx
	}
	return statusOK
}

// putIndex stores one decoded index at the given width, rejecting values
// that do not fit a 16-bit target.
func putIndex(dst []byte, i, width int, v uint32) int {
	switch width {
	case 2:
		if v > math.MaxUint16 {
			return statusIndexRange
		}
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(dst[i*4:], v)
	default:
		return statusMalformed
	}
	return statusOK
}
