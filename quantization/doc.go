// Package quantization computes the offset/scale parameters used to map
// continuous mesh coordinates onto bounded integer ranges.
//
// Positions share a single scale across all three axes so quantization
// preserves aspect ratio; UV coordinates get an independent scale per axis
// to maximize texture-coordinate precision. Both derivations run in two
// fixed passes (offsets first, then maximum deviation against the fixed
// offsets) so results are bit-reproducible across implementations.
package quantization
