package quantization

import "math"

// PositionBounds computes the per-axis minimum (offset) and the shared
// maximum deviation (scale) over a flat x,y,z position array.
//
// The scale is a single value covering all three axes: the quantization box
// is a cube, which preserves aspect ratio at the cost of wasted precision on
// non-cubic bounds. Empty input yields offset = [+Inf,+Inf,+Inf], scale = 0;
// callers must guard against that before storing the values in a header.
func PositionBounds(positions []float32) (offset [3]float32, scale float32) {
	inf := float32(math.Inf(1))
	offset = [3]float32{inf, inf, inf}

	for i := 0; i+2 < len(positions); i += 3 {
		offset[0] = min(offset[0], positions[i])
		offset[1] = min(offset[1], positions[i+1])
		offset[2] = min(offset[2], positions[i+2])
	}

	// Second pass uses the now-fixed offsets.
	for i := 0; i+2 < len(positions); i += 3 {
		scale = max(scale, positions[i]-offset[0])
		scale = max(scale, positions[i+1]-offset[1])
		scale = max(scale, positions[i+2]-offset[2])
	}

	return offset, scale
}

// PositionBoundsInverse is PositionBounds with the scale replaced by its
// safe reciprocal, for callers that quantize by multiplying.
func PositionBoundsInverse(positions []float32) ([3]float32, float32) {
	offset, scale := PositionBounds(positions)
	return offset, RcpSafe(scale)
}

// UVBounds computes the per-axis minimum and per-axis maximum deviation over
// a flat u,v coordinate array.
//
// Unlike PositionBounds, U and V do not share a scale: per-axis scale
// maximizes texture-coordinate precision, and UV distortion is visually
// tolerated. Empty input yields offset = [+Inf,+Inf], scale = [0,0].
func UVBounds(coords []float32) (offset, scale [2]float32) {
	inf := float32(math.Inf(1))
	offset = [2]float32{inf, inf}

	for i := 0; i+1 < len(coords); i += 2 {
		offset[0] = min(offset[0], coords[i])
		offset[1] = min(offset[1], coords[i+1])
	}

	for i := 0; i+1 < len(coords); i += 2 {
		scale[0] = max(scale[0], coords[i]-offset[0])
		scale[1] = max(scale[1], coords[i+1]-offset[1])
	}

	return offset, scale
}

// UVBoundsInverse is UVBounds with each scale component replaced by its safe
// reciprocal.
func UVBoundsInverse(coords []float32) ([2]float32, [2]float32) {
	offset, scale := UVBounds(coords)
	return offset, [2]float32{RcpSafe(scale[0]), RcpSafe(scale[1])}
}

// RcpSafe returns 1/x, or 0 when x is 0.
//
// A zero-extent mesh axis must quantize to zero rather than diverge, so the
// reciprocal of a degenerate scale is pinned to 0 instead of +Inf.
func RcpSafe(x float32) float32 {
	if x == 0 {
		return 0
	}
	return 1 / x
}
