// Package optmesh implements the OPTM compact binary container format for
// quantized 3D mesh geometry.
//
// A container is a fixed 64-byte header, a table of draw-group records, and
// two codec-compressed payload sections (packed vertices, then indices). The
// header stores the dequantization parameters: per-axis position/UV offsets
// and scales pre-normalized by the quantization step count, so decoders
// reconstruct coordinates as offset + code*scale.
//
// # Quick Start
//
//	mesh := &optmesh.Mesh{
//	    VertexData: packed,       // fixed-stride vertex records
//	    VertexSize: 20,           // bytes per record
//	    Positions:  positions,    // flat x,y,z floats
//	    Coords:     coords,       // flat u,v floats (optional)
//	    Indices:    indices,
//	    Groups:     []optmesh.Group{{IndexCount: uint32(len(indices))}},
//	}
//
//	enc := optmesh.NewEncoder(optmesh.WithCodec(codec.ZSTD{}))
//	data, err := enc.Encode(ctx, mesh)
//
//	decoded, err := optmesh.Decode(ctx, data, 20, optmesh.WithCodec(codec.ZSTD{}))
//
// The compression boundary is pluggable: any codec implementing the
// bound/encode/decode contract in the codec package can back the payload
// sections. Built-in codecs are raw (stored), lz4, and zstd.
//
// All operations are single-shot and stateless; concurrent encodes and
// decodes are safe as long as each call owns its input and output buffers.
package optmesh
