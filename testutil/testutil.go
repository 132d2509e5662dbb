// Package testutil provides deterministic mesh generation for tests.
package testutil

import (
	"encoding/binary"
	"math"
	"math/rand"
	"sync"
)

// RNG is a seeded, thread-safe random number generator.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Uint32n returns a pseudo-random uint32 in [0,n).
func (r *RNG) Uint32n(n uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint32(r.rand.Int63n(int64(n)))
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call.
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*(maxVal-minVal)
	}
}

// GridMesh describes a generated test mesh: an n×n vertex grid triangulated
// into 2*(n-1)^2 triangles, with positions, UVs, and packed vertex records.
type GridMesh struct {
	Positions  []float32 // x,y,z per vertex
	Coords     []float32 // u,v per vertex
	Indices    []uint32
	VertexData []byte // position+UV packed per vertex
	VertexSize int
}

// NewGridMesh generates a deterministic n×n grid mesh on the XY plane with
// height jitter from seed. Vertex records pack position then UV as five
// little-endian float32s (20 bytes).
func NewGridMesh(n int, seed int64) *GridMesh {
	rng := NewRNG(seed)

	const vertexSize = 20
	vertexCount := n * n

	m := &GridMesh{
		Positions:  make([]float32, 0, vertexCount*3),
		Coords:     make([]float32, 0, vertexCount*2),
		VertexData: make([]byte, 0, vertexCount*vertexSize),
		VertexSize: vertexSize,
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px := float32(x)
			py := float32(y)
			pz := rng.Float32() * 0.25
			u := float32(x) / float32(n-1)
			v := float32(y) / float32(n-1)

			m.Positions = append(m.Positions, px, py, pz)
			m.Coords = append(m.Coords, u, v)

			var rec [vertexSize]byte
			binary.LittleEndian.PutUint32(rec[0:], math.Float32bits(px))
			binary.LittleEndian.PutUint32(rec[4:], math.Float32bits(py))
			binary.LittleEndian.PutUint32(rec[8:], math.Float32bits(pz))
			binary.LittleEndian.PutUint32(rec[12:], math.Float32bits(u))
			binary.LittleEndian.PutUint32(rec[16:], math.Float32bits(v))
			m.VertexData = append(m.VertexData, rec[:]...)
		}
	}

	for y := 0; y < n-1; y++ {
		for x := 0; x < n-1; x++ {
			i := uint32(y*n + x)
			m.Indices = append(m.Indices,
				i, i+1, i+uint32(n),
				i+1, i+uint32(n)+1, i+uint32(n),
			)
		}
	}

	return m
}

// VertexCount returns the number of vertices in the grid.
func (m *GridMesh) VertexCount() int {
	return len(m.VertexData) / m.VertexSize
}
