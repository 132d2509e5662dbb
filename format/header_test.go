package format

import (
	"errors"
	"testing"
)

func TestNewEncodeHeader_ScaleNormalization(t *testing.T) {
	// 255 / (2^8 - 1) == 1.
	h, err := NewEncodeHeader(
		1, 100, 300, 512, 256,
		[3]float32{0, 0, 0}, 255.0,
		[2]float32{0, 0}, [2]float32{255.0, 510.0},
		8, 8,
	)
	if err != nil {
		t.Fatalf("NewEncodeHeader failed: %v", err)
	}

	if h.PosScale != 1.0 {
		t.Errorf("Expected PosScale=1.0, got %f", h.PosScale)
	}
	if h.UVScale[0] != 1.0 || h.UVScale[1] != 2.0 {
		t.Errorf("Expected UVScale=(1,2), got %v", h.UVScale)
	}
	if h.Magic != Magic {
		t.Errorf("Expected magic %q, got %q", Magic[:], h.Magic[:])
	}
	if h.Reserved != [2]uint32{} {
		t.Errorf("Expected zero reserved words, got %v", h.Reserved)
	}
}

func TestNewEncodeHeader_OneBit(t *testing.T) {
	// (2^1 - 1) == 1: stored scale equals raw scale unchanged.
	h, err := NewEncodeHeader(
		0, 1, 0, 0, 0,
		[3]float32{}, 7.5,
		[2]float32{}, [2]float32{3, 4},
		1, 1,
	)
	if err != nil {
		t.Fatalf("NewEncodeHeader failed: %v", err)
	}

	if h.PosScale != 7.5 {
		t.Errorf("Expected PosScale=7.5, got %f", h.PosScale)
	}
	if h.UVScale != [2]float32{3, 4} {
		t.Errorf("Expected UVScale=(3,4), got %v", h.UVScale)
	}
}

func TestNewEncodeHeader_InvalidBits(t *testing.T) {
	cases := []struct {
		name    string
		posBits uint32
		uvBits  uint32
	}{
		{"pos zero", 0, 8},
		{"pos overflow", 32, 8},
		{"uv zero", 8, 0},
		{"uv overflow", 8, 32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEncodeHeader(
				0, 0, 0, 0, 0,
				[3]float32{}, 1,
				[2]float32{}, [2]float32{1, 1},
				tc.posBits, tc.uvBits,
			)
			if !errors.Is(err, ErrInvalidBits) {
				t.Errorf("Expected ErrInvalidBits, got %v", err)
			}
		})
	}
}

func TestEncodeHeader_MarshalRoundTrip(t *testing.T) {
	h, err := NewEncodeHeader(
		2, 1000, 3000, 4096, 2048,
		[3]float32{-1.5, 0, 2.25}, 12.0,
		[2]float32{0.5, -0.5}, [2]float32{2.0, 4.0},
		14, 12,
	)
	if err != nil {
		t.Fatalf("NewEncodeHeader failed: %v", err)
	}

	data, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if len(data) != HeaderSize {
		t.Fatalf("Expected %d header bytes, got %d", HeaderSize, len(data))
	}

	var got EncodeHeader
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if got != *h {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, *h)
	}
}

func TestEncodeHeader_InvalidMagic(t *testing.T) {
	data := make([]byte, HeaderSize)
	copy(data, "NOPE")

	var h EncodeHeader
	err := h.UnmarshalBinary(data)
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("Expected ErrInvalidMagic, got %v", err)
	}
}

func TestEncodeHeader_ShortBuffer(t *testing.T) {
	var h EncodeHeader
	err := h.UnmarshalBinary(make([]byte, HeaderSize-1))
	if !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer, got %v", err)
	}
}

func TestEncodeHeader_ReservedTolerated(t *testing.T) {
	h, err := NewEncodeHeader(
		0, 1, 0, 0, 0,
		[3]float32{}, 1,
		[2]float32{}, [2]float32{1, 1},
		8, 8,
	)
	if err != nil {
		t.Fatalf("NewEncodeHeader failed: %v", err)
	}

	data, _ := h.MarshalBinary()
	// A future writer may use the reserved words; readers must not reject.
	data[56] = 0xAB
	data[60] = 0xCD

	var got EncodeHeader
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary rejected nonzero reserved words: %v", err)
	}
	if got.Reserved[0] != 0xAB || got.Reserved[1] != 0xCD {
		t.Errorf("Expected reserved words preserved, got %v", got.Reserved)
	}
}

func TestEncodeObject_MarshalRoundTrip(t *testing.T) {
	obj := EncodeObject{
		IndexOffset:    300,
		IndexCount:     150,
		MaterialLength: 12,
	}

	data, err := obj.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if len(data) != ObjectSize {
		t.Fatalf("Expected %d object bytes, got %d", ObjectSize, len(data))
	}

	var got EncodeObject
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if got != obj {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, obj)
	}
}
