package optmesh_test

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/optmesh"
	"github.com/hupe1980/optmesh/codec"
)

func Example() {
	ctx := context.Background()

	// A quad: four vertices, two triangles. Each packed record is a
	// position (3 floats) followed by a UV (2 floats).
	positions := []float32{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
	}
	coords := []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	}

	const vertexSize = 20
	vertexData := make([]byte, 0, 4*vertexSize)
	for i := 0; i < 4; i++ {
		var rec [vertexSize]byte
		binary.LittleEndian.PutUint32(rec[0:], math.Float32bits(positions[i*3]))
		binary.LittleEndian.PutUint32(rec[4:], math.Float32bits(positions[i*3+1]))
		binary.LittleEndian.PutUint32(rec[8:], math.Float32bits(positions[i*3+2]))
		binary.LittleEndian.PutUint32(rec[12:], math.Float32bits(coords[i*2]))
		binary.LittleEndian.PutUint32(rec[16:], math.Float32bits(coords[i*2+1]))
		vertexData = append(vertexData, rec[:]...)
	}

	mesh := &optmesh.Mesh{
		VertexData: vertexData,
		VertexSize: vertexSize,
		Positions:  positions,
		Coords:     coords,
		Indices:    []uint32{0, 1, 2, 2, 3, 0},
		Groups:     []optmesh.Group{{IndexCount: 6}},
	}

	enc := optmesh.NewEncoder(optmesh.WithCodec(codec.Raw{}))
	data, err := enc.Encode(ctx, mesh)
	if err != nil {
		panic(err)
	}

	decoded, err := optmesh.Decode(ctx, data, vertexSize, optmesh.WithCodec(codec.Raw{}))
	if err != nil {
		panic(err)
	}

	fmt.Println("vertices:", decoded.Header.VertexCount)
	fmt.Println("indices:", decoded.Indices)
	fmt.Println("groups:", decoded.Header.GroupCount)
	// Output:
	// vertices: 4
	// indices: [0 1 2 2 3 0]
	// groups: 1
}
