package format

import (
	"bytes"
	"errors"
	"testing"
)

func testContainer(t *testing.T) *Container {
	t.Helper()

	h, err := NewEncodeHeader(
		2, 4, 6, 8, 5,
		[3]float32{0, 0, 0}, 1.0,
		[2]float32{0, 0}, [2]float32{1, 1},
		14, 12,
	)
	if err != nil {
		t.Fatalf("NewEncodeHeader failed: %v", err)
	}

	return &Container{
		Header: *h,
		Objects: []EncodeObject{
			{IndexOffset: 0, IndexCount: 3, MaterialLength: 5},
			{IndexOffset: 3, IndexCount: 3, MaterialLength: 0},
		},
		VertexData: []byte{1, 2, 3, 4, 5, 6, 7, 8},
		IndexData:  []byte{9, 10, 11, 12, 13},
	}
}

func TestContainer_WriteReadRoundTrip(t *testing.T) {
	c := testContainer(t)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	wantLen := int64(HeaderSize + 2*ObjectSize + len(c.VertexData) + len(c.IndexData))
	if n != wantLen {
		t.Errorf("Expected %d bytes written, got %d", wantLen, n)
	}
	if int64(buf.Len()) != wantLen {
		t.Errorf("Expected buffer length %d, got %d", wantLen, buf.Len())
	}

	got, err := ReadContainer(&buf)
	if err != nil {
		t.Fatalf("ReadContainer failed: %v", err)
	}

	if got.Header != c.Header {
		t.Errorf("Header mismatch:\n got %+v\nwant %+v", got.Header, c.Header)
	}
	if len(got.Objects) != len(c.Objects) {
		t.Fatalf("Expected %d objects, got %d", len(c.Objects), len(got.Objects))
	}
	for i := range c.Objects {
		if got.Objects[i] != c.Objects[i] {
			t.Errorf("Object %d mismatch: got %+v, want %+v", i, got.Objects[i], c.Objects[i])
		}
	}
	if !bytes.Equal(got.VertexData, c.VertexData) {
		t.Errorf("Vertex payload mismatch")
	}
	if !bytes.Equal(got.IndexData, c.IndexData) {
		t.Errorf("Index payload mismatch")
	}
}

func TestContainer_WriteTo_SizeMismatch(t *testing.T) {
	c := testContainer(t)
	c.VertexData = c.VertexData[:4] // disagrees with VertexDataSize

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Expected ErrSizeMismatch, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written on validation failure, got %d bytes", buf.Len())
	}
}

func TestContainer_WriteTo_GroupCountMismatch(t *testing.T) {
	c := testContainer(t)
	c.Objects = c.Objects[:1]

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Expected ErrSizeMismatch, got %v", err)
	}
}

func TestReadContainer_Truncated(t *testing.T) {
	c := testContainer(t)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	truncated := buf.Bytes()[:buf.Len()-3]
	if _, err := ReadContainer(bytes.NewReader(truncated)); err == nil {
		t.Error("Expected error for truncated container, got nil")
	}
}

func TestReadContainer_BadMagic(t *testing.T) {
	c := testContainer(t)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	data := buf.Bytes()
	copy(data[0:4], "JUNK")
	if _, err := ReadContainer(bytes.NewReader(data)); !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("Expected ErrInvalidMagic, got %v", err)
	}
}
