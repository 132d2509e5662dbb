package quantization

// Quantize maps v onto the integer grid defined by offset and the inverse of
// the raw (pre-normalization) scale, rounding to nearest. invScale is
// expected to come from PositionBoundsInverse/UVBoundsInverse; a zero
// invScale (degenerate mesh) quantizes everything to 0.
func Quantize(v, offset, invScale float32, bits uint32) uint32 {
	steps := float32((uint32(1) << bits) - 1)

	normalized := (v - offset) * invScale
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}

	return uint32(normalized*steps + 0.5)
}

// Dequantize reconstructs a coordinate from its integer code using the
// normalized scale stored in the container header. The header scale is
// already divided by (2^bits - 1), so reconstruction is a single
// multiply-add.
func Dequantize(code uint32, offset, normScale float32) float32 {
	return offset + float32(code)*normScale
}
