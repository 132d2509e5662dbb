package optmesh

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/optmesh/codec"
	"github.com/hupe1980/optmesh/format"
	"github.com/hupe1980/optmesh/internal/conv"
	"github.com/hupe1980/optmesh/quantization"
)

var (
	// ErrEmptyMesh is returned when a mesh has no vertices. Quantization
	// bounds over an empty mesh are degenerate (+Inf offsets), so empty
	// meshes are rejected before header construction.
	ErrEmptyMesh = errors.New("mesh has no vertices")
	// ErrStrideMismatch is returned when the packed vertex data length is
	// not a multiple of the vertex size.
	ErrStrideMismatch = errors.New("vertex data length is not a multiple of vertex size")
	// ErrAttributeMismatch is returned when the position or UV array length
	// disagrees with the vertex count.
	ErrAttributeMismatch = errors.New("attribute count does not match vertex count")
)

// Group describes one draw group: a slice of the shared index buffer plus
// the byte length of a material name stored out of band.
type Group struct {
	IndexOffset    uint32
	IndexCount     uint32
	MaterialLength uint32
}

// Mesh is the encode-side input: packed vertex records plus the attribute
// arrays the quantization bounds are derived from.
//
// VertexData holds len(VertexData)/VertexSize fixed-stride records of
// arbitrary layout. Positions is the flat x,y,z array (three floats per
// vertex); Coords is the flat u,v array (two floats per vertex) and may be
// empty for meshes without texture coordinates.
type Mesh struct {
	VertexData []byte
	VertexSize int
	Positions  []float32
	Coords     []float32
	Indices    []uint32
	Groups     []Group
}

func (m *Mesh) validate() (vertexCount int, err error) {
	if m.VertexSize <= 0 {
		return 0, fmt.Errorf("vertex size must be positive, got %d", m.VertexSize)
	}
	if len(m.VertexData)%m.VertexSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes, size %d", ErrStrideMismatch, len(m.VertexData), m.VertexSize)
	}

	vertexCount = len(m.VertexData) / m.VertexSize
	if vertexCount == 0 {
		return 0, ErrEmptyMesh
	}
	if len(m.Positions) != vertexCount*3 {
		return 0, fmt.Errorf("%w: %d position floats for %d vertices", ErrAttributeMismatch, len(m.Positions), vertexCount)
	}
	if len(m.Coords) != 0 && len(m.Coords) != vertexCount*2 {
		return 0, fmt.Errorf("%w: %d UV floats for %d vertices", ErrAttributeMismatch, len(m.Coords), vertexCount)
	}
	return vertexCount, nil
}

// Encoder assembles OPTM containers.
type Encoder struct {
	codec   codec.Codec
	posBits uint32
	uvBits  uint32
	logger  *Logger
}

// NewEncoder creates an Encoder. Without options it uses codec.Default,
// DefaultPositionBits/DefaultUVBits, and no logging.
func NewEncoder(optFns ...Option) *Encoder {
	opts := options{
		codec:   codec.Default,
		posBits: DefaultPositionBits,
		uvBits:  DefaultUVBits,
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Encoder{
		codec:   opts.codec,
		posBits: opts.posBits,
		uvBits:  opts.uvBits,
		logger:  opts.logger,
	}
}

// Encode compresses the mesh payloads, derives the quantization bounds, and
// returns the assembled container bytes.
//
// The vertex and index payloads are independent streams and are encoded in
// parallel.
func (e *Encoder) Encode(ctx context.Context, mesh *Mesh) ([]byte, error) {
	data, err := e.encode(ctx, mesh)
	e.logger.LogEncode(ctx, len(mesh.VertexData)/max(mesh.VertexSize, 1), len(mesh.Indices), len(data), err)
	return data, err
}

func (e *Encoder) encode(ctx context.Context, mesh *Mesh) ([]byte, error) {
	vertexCount, err := mesh.validate()
	if err != nil {
		return nil, err
	}

	posOffset, posScale := quantization.PositionBounds(mesh.Positions)
	uvOffset, uvScale := quantization.UVBounds(mesh.Coords)
	if len(mesh.Coords) == 0 {
		// No UVs: store a zeroed, non-degenerate UV block.
		uvOffset = [2]float32{}
	}

	var vertexData, indexData []byte
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		bound := e.codec.VertexEncodeBound(vertexCount, mesh.VertexSize)
		buf := make([]byte, bound)
		size := e.codec.VertexEncode(buf, mesh.VertexData, mesh.VertexSize)
		vertexData = buf[:size]
		return nil
	})
	g.Go(func() error {
		var err error
		indexData, err = EncodeIndexBuffer(e.codec, mesh.Indices, vertexCount)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	groupCount, err := conv.IntToUint32(len(mesh.Groups))
	if err != nil {
		return nil, err
	}
	vcount, err := conv.IntToUint32(vertexCount)
	if err != nil {
		return nil, err
	}
	icount, err := conv.IntToUint32(len(mesh.Indices))
	if err != nil {
		return nil, err
	}
	vsize, err := conv.IntToUint32(len(vertexData))
	if err != nil {
		return nil, err
	}
	isize, err := conv.IntToUint32(len(indexData))
	if err != nil {
		return nil, err
	}

	header, err := format.NewEncodeHeader(
		groupCount, vcount, icount, vsize, isize,
		posOffset, posScale,
		uvOffset, uvScale,
		e.posBits, e.uvBits,
	)
	if err != nil {
		return nil, err
	}

	container := format.Container{
		Header:     *header,
		Objects:    make([]format.EncodeObject, len(mesh.Groups)),
		VertexData: vertexData,
		IndexData:  indexData,
	}
	for i, grp := range mesh.Groups {
		container.Objects[i] = format.EncodeObject{
			IndexOffset:    grp.IndexOffset,
			IndexCount:     grp.IndexCount,
			MaterialLength: grp.MaterialLength,
		}
	}

	var buf bytes.Buffer
	if _, err := container.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodedMesh is the decode-side result: the parsed header and object table
// plus the decompressed payloads. The header carries the normalized
// dequantization parameters (offset + code*scale).
type DecodedMesh struct {
	Header     format.EncodeHeader
	Objects    []format.EncodeObject
	VertexData []byte
	Indices    []uint32
}

// Groups converts the raw object table back to Group values.
func (m *DecodedMesh) Groups() []Group {
	groups := make([]Group, len(m.Objects))
	for i, obj := range m.Objects {
		groups[i] = Group{
			IndexOffset:    obj.IndexOffset,
			IndexCount:     obj.IndexCount,
			MaterialLength: obj.MaterialLength,
		}
	}
	return groups
}

// Decode parses an OPTM container and decompresses both payloads.
// vertexSize is the packed vertex stride; the container does not record it,
// so the caller must know the layout it encoded with.
func Decode(ctx context.Context, data []byte, vertexSize int, optFns ...Option) (*DecodedMesh, error) {
	opts := options{
		codec:  codec.Default,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	mesh, err := decode(data, vertexSize, opts.codec)
	if mesh != nil {
		opts.logger.LogDecode(ctx, int(mesh.Header.VertexCount), int(mesh.Header.IndexCount), err)
	} else {
		opts.logger.LogDecode(ctx, 0, 0, err)
	}
	return mesh, err
}

func decode(data []byte, vertexSize int, c codec.Codec) (*DecodedMesh, error) {
	if vertexSize <= 0 {
		return nil, fmt.Errorf("vertex size must be positive, got %d", vertexSize)
	}

	container, err := format.ReadContainer(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	vertexCount, err := conv.Uint32ToInt(container.Header.VertexCount)
	if err != nil {
		return nil, err
	}
	indexCount, err := conv.Uint32ToInt(container.Header.IndexCount)
	if err != nil {
		return nil, err
	}

	vertexData := make([]byte, vertexCount*vertexSize)
	if status := c.VertexDecode(vertexData, vertexSize, container.VertexData); status != 0 {
		return nil, &NativeError{Code: int32(status)}
	}

	indices, err := DecodeIndexBuffer[uint32](c, container.IndexData, indexCount)
	if err != nil {
		return nil, err
	}

	return &DecodedMesh{
		Header:     container.Header,
		Objects:    container.Objects,
		VertexData: vertexData,
		Indices:    indices,
	}, nil
}
