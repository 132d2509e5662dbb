package format

import (
	"bufio"
	"fmt"
	"io"
)

// Container holds a fully assembled OPTM container: header, object table,
// and the two compressed payload sections.
type Container struct {
	Header     EncodeHeader
	Objects    []EncodeObject
	VertexData []byte
	IndexData  []byte
}

// WriteTo writes the container in its on-disk order: header, GroupCount
// object records, vertex payload, index payload. The header's counts and
// section sizes must already agree with the slices; mismatches are reported
// before anything is written.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	if int(c.Header.GroupCount) != len(c.Objects) {
		return 0, fmt.Errorf("%w: header says %d groups, have %d", ErrSizeMismatch, c.Header.GroupCount, len(c.Objects))
	}
	if int(c.Header.VertexDataSize) != len(c.VertexData) {
		return 0, fmt.Errorf("%w: header says %d vertex bytes, have %d", ErrSizeMismatch, c.Header.VertexDataSize, len(c.VertexData))
	}
	if int(c.Header.IndexDataSize) != len(c.IndexData) {
		return 0, fmt.Errorf("%w: header says %d index bytes, have %d", ErrSizeMismatch, c.Header.IndexDataSize, len(c.IndexData))
	}

	bw := bufio.NewWriter(w)
	var written int64

	hdr, err := c.Header.MarshalBinary()
	if err != nil {
		return written, err
	}
	n, err := bw.Write(hdr)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("failed to write header: %w", err)
	}

	for i := range c.Objects {
		obj, err := c.Objects[i].MarshalBinary()
		if err != nil {
			return written, err
		}
		n, err = bw.Write(obj)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("failed to write object %d: %w", i, err)
		}
	}

	n, err = bw.Write(c.VertexData)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("failed to write vertex payload: %w", err)
	}

	n, err = bw.Write(c.IndexData)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("failed to write index payload: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush container: %w", err)
	}
	return written, nil
}

// ReadContainer reads a container from r, validating the magic tag and the
// payload section sizes against the header.
func ReadContainer(r io.Reader) (*Container, error) {
	br := bufio.NewReader(r)

	hdr := make([]byte, HeaderSize)
	if _, err := io.ReadFull(br, hdr); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var c Container
	if err := c.Header.UnmarshalBinary(hdr); err != nil {
		return nil, err
	}

	c.Objects = make([]EncodeObject, c.Header.GroupCount)
	obj := make([]byte, ObjectSize)
	for i := range c.Objects {
		if _, err := io.ReadFull(br, obj); err != nil {
			return nil, fmt.Errorf("failed to read object %d: %w", i, err)
		}
		if err := c.Objects[i].UnmarshalBinary(obj); err != nil {
			return nil, err
		}
	}

	c.VertexData = make([]byte, c.Header.VertexDataSize)
	if _, err := io.ReadFull(br, c.VertexData); err != nil {
		return nil, fmt.Errorf("failed to read vertex payload: %w", err)
	}

	c.IndexData = make([]byte, c.Header.IndexDataSize)
	if _, err := io.ReadFull(br, c.IndexData); err != nil {
		return nil, fmt.Errorf("failed to read index payload: %w", err)
	}

	return &c, nil
}
