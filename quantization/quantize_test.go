package quantization

import (
	"math"
	"testing"
)

func TestQuantizeDequantize_RoundTrip(t *testing.T) {
	positions := []float32{-1, 0, 2, 3, 1, -0.5}
	const bits = 12

	offset, scale := PositionBounds(positions)
	_, invScale := PositionBoundsInverse(positions)
	normScale := scale / float32((uint32(1)<<bits)-1)

	maxErr := scale / float32((uint32(1)<<bits)-1)
	for axis := 0; axis < 3; axis++ {
		for i := axis; i < len(positions); i += 3 {
			code := Quantize(positions[i], offset[axis], invScale, bits)
			got := Dequantize(code, offset[axis], normScale)

			if diff := math.Abs(float64(got - positions[i])); diff > float64(maxErr) {
				t.Errorf("axis %d: %f reconstructed as %f (err %f > step %f)",
					axis, positions[i], got, diff, maxErr)
			}
		}
	}
}

func TestQuantize_Clamps(t *testing.T) {
	// Values outside the calibrated range clamp to the grid edges.
	if got := Quantize(-10, 0, 1, 8); got != 0 {
		t.Errorf("Expected code 0 for underflow, got %d", got)
	}
	if got := Quantize(10, 0, 1, 8); got != 255 {
		t.Errorf("Expected code 255 for overflow, got %d", got)
	}
}

func TestQuantize_DegenerateScale(t *testing.T) {
	// Zero inverse scale (flat mesh) maps everything to code 0.
	if got := Quantize(123.0, 123.0, 0, 16); got != 0 {
		t.Errorf("Expected code 0 for degenerate scale, got %d", got)
	}
}
