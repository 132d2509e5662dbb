package optmesh

import "github.com/hupe1980/optmesh/codec"

const (
	// DefaultPositionBits gives sub-millimeter precision on meter-scale
	// meshes.
	DefaultPositionBits = 14
	// DefaultUVBits keeps texel drift below one texel on 4K textures.
	DefaultUVBits = 12
)

type options struct {
	codec   codec.Codec
	posBits uint32
	uvBits  uint32
	logger  *Logger
}

// Option configures an Encoder.
type Option func(*options)

// WithCodec configures the codec used for vertex and index payloads.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithPositionBits configures the position quantization bit depth.
// Valid values are 1 through 31; Encode reports ErrInvalidBits otherwise.
func WithPositionBits(bits uint32) Option {
	return func(o *options) {
		o.posBits = bits
	}
}

// WithUVBits configures the UV quantization bit depth.
// Valid values are 1 through 31; Encode reports ErrInvalidBits otherwise.
func WithUVBits(bits uint32) Option {
	return func(o *options) {
		o.uvBits = bits
	}
}

// WithLogger configures a logger for encode/decode operations.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
