package format

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeHeader is the fixed 64-byte record at the start of every container.
//
// The stored scales are pre-normalized: PosScale is the raw shared position
// scale divided by (2^posBits - 1), and each UVScale axis is the raw UV
// scale divided by (2^uvBits - 1). Decoders reconstruct coordinates as
// offset + code*scale without knowing the bit depth.
type EncodeHeader struct {
	Magic [4]byte

	GroupCount     uint32
	VertexCount    uint32
	IndexCount     uint32
	VertexDataSize uint32
	IndexDataSize  uint32

	PosOffset [3]float32
	PosScale  float32
	UVOffset  [2]float32
	UVScale   [2]float32

	Reserved [2]uint32 // written as zero, tolerated nonzero on read
}

// NewEncodeHeader builds a header from already-computed counts and raw
// bounds, normalizing the scales by the quantization step count.
//
// posScale and uvScale are the raw values from the quantization package;
// posBits and uvBits must be in [MinBits, MaxBits].
func NewEncodeHeader(
	groupCount, vertexCount, indexCount uint32,
	vertexDataSize, indexDataSize uint32,
	posOffset [3]float32, posScale float32,
	uvOffset, uvScale [2]float32,
	posBits, uvBits uint32,
) (*EncodeHeader, error) {
	if posBits < MinBits || posBits > MaxBits {
		return nil, fmt.Errorf("%w: pos_bits=%d", ErrInvalidBits, posBits)
	}
	if uvBits < MinBits || uvBits > MaxBits {
		return nil, fmt.Errorf("%w: uv_bits=%d", ErrInvalidBits, uvBits)
	}

	posSteps := float32((uint32(1) << posBits) - 1)
	uvSteps := float32((uint32(1) << uvBits) - 1)

	return &EncodeHeader{
		Magic:          Magic,
		GroupCount:     groupCount,
		VertexCount:    vertexCount,
		IndexCount:     indexCount,
		VertexDataSize: vertexDataSize,
		IndexDataSize:  indexDataSize,
		PosOffset:      posOffset,
		PosScale:       posScale / posSteps,
		UVOffset:       uvOffset,
		UVScale: [2]float32{
			uvScale[0] / uvSteps,
			uvScale[1] / uvSteps,
		},
	}, nil
}

// MarshalBinary encodes the header into its fixed little-endian layout.
func (h *EncodeHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], h.Magic[:])

	binary.LittleEndian.PutUint32(buf[4:], h.GroupCount)
	binary.LittleEndian.PutUint32(buf[8:], h.VertexCount)
	binary.LittleEndian.PutUint32(buf[12:], h.IndexCount)
	binary.LittleEndian.PutUint32(buf[16:], h.VertexDataSize)
	binary.LittleEndian.PutUint32(buf[20:], h.IndexDataSize)

	binary.LittleEndian.PutUint32(buf[24:], math.Float32bits(h.PosOffset[0]))
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(h.PosOffset[1]))
	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(h.PosOffset[2]))
	binary.LittleEndian.PutUint32(buf[36:], math.Float32bits(h.PosScale))
	binary.LittleEndian.PutUint32(buf[40:], math.Float32bits(h.UVOffset[0]))
	binary.LittleEndian.PutUint32(buf[44:], math.Float32bits(h.UVOffset[1]))
	binary.LittleEndian.PutUint32(buf[48:], math.Float32bits(h.UVScale[0]))
	binary.LittleEndian.PutUint32(buf[52:], math.Float32bits(h.UVScale[1]))

	binary.LittleEndian.PutUint32(buf[56:], h.Reserved[0])
	binary.LittleEndian.PutUint32(buf[60:], h.Reserved[1])

	return buf, nil
}

// UnmarshalBinary decodes a header, validating the magic tag. Nonzero
// reserved words are preserved, never rejected, so newer writers stay
// readable.
func (h *EncodeHeader) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", ErrShortBuffer, HeaderSize, len(data))
	}

	copy(h.Magic[:], data[0:4])
	if h.Magic != Magic {
		return fmt.Errorf("%w: got %q", ErrInvalidMagic, h.Magic[:])
	}

	h.GroupCount = binary.LittleEndian.Uint32(data[4:])
	h.VertexCount = binary.LittleEndian.Uint32(data[8:])
	h.IndexCount = binary.LittleEndian.Uint32(data[12:])
	h.VertexDataSize = binary.LittleEndian.Uint32(data[16:])
	h.IndexDataSize = binary.LittleEndian.Uint32(data[20:])

	h.PosOffset[0] = math.Float32frombits(binary.LittleEndian.Uint32(data[24:]))
	h.PosOffset[1] = math.Float32frombits(binary.LittleEndian.Uint32(data[28:]))
	h.PosOffset[2] = math.Float32frombits(binary.LittleEndian.Uint32(data[32:]))
	h.PosScale = math.Float32frombits(binary.LittleEndian.Uint32(data[36:]))
	h.UVOffset[0] = math.Float32frombits(binary.LittleEndian.Uint32(data[40:]))
	h.UVOffset[1] = math.Float32frombits(binary.LittleEndian.Uint32(data[44:]))
	h.UVScale[0] = math.Float32frombits(binary.LittleEndian.Uint32(data[48:]))
	h.UVScale[1] = math.Float32frombits(binary.LittleEndian.Uint32(data[52:]))

	h.Reserved[0] = binary.LittleEndian.Uint32(data[56:])
	h.Reserved[1] = binary.LittleEndian.Uint32(data[60:])

	return nil
}

// EncodeObject is one draw-group record; GroupCount of them follow the
// header. IndexOffset/IndexCount slice the shared decoded index buffer;
// MaterialLength is the byte length of a material name stored out of band.
type EncodeObject struct {
	IndexOffset    uint32
	IndexCount     uint32
	MaterialLength uint32
	Reserved       uint32
}

// MarshalBinary encodes the object record.
func (o *EncodeObject) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ObjectSize)
	binary.LittleEndian.PutUint32(buf[0:], o.IndexOffset)
	binary.LittleEndian.PutUint32(buf[4:], o.IndexCount)
	binary.LittleEndian.PutUint32(buf[8:], o.MaterialLength)
	binary.LittleEndian.PutUint32(buf[12:], o.Reserved)
	return buf, nil
}

// UnmarshalBinary decodes an object record.
func (o *EncodeObject) UnmarshalBinary(data []byte) error {
	if len(data) < ObjectSize {
		return fmt.Errorf("%w: object needs %d bytes, got %d", ErrShortBuffer, ObjectSize, len(data))
	}
	o.IndexOffset = binary.LittleEndian.Uint32(data[0:])
	o.IndexCount = binary.LittleEndian.Uint32(data[4:])
	o.MaterialLength = binary.LittleEndian.Uint32(data[8:])
	o.Reserved = binary.LittleEndian.Uint32(data[12:])
	return nil
}
