package cocoedit

import (
	"github.com/hupe1980/cocoedit/codec"
	"github.com/hupe1980/cocoedit/compress"
)

type options struct {
	codec       codec.Codec
	logger      *Logger
	compression *compress.Type
}

// Option configures Editor construction.
type Option func(*options)

// WithCodec configures the codec used to decode and encode datasets.
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

// WithLogger configures the logger for editor operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithCompression forces a compression type for all loads and exports,
// overriding the type implied by the file or blob name's extension.
func WithCompression(t compress.Type) Option {
	return func(o *options) {
		o.compression = &t
	}
}

// CorrectOptions holds the toggles for the correction pass.
type CorrectOptions struct {
	// CorrectImage removes images no surviving annotation references.
	// Default: true.
	CorrectImage bool

	// CorrectCategory removes categories no surviving annotation references.
	// Default: false.
	CorrectCategory bool
}

// WithCorrectImage toggles removal of unreferenced images.
func WithCorrectImage(v bool) func(*CorrectOptions) {
	return func(o *CorrectOptions) {
		o.CorrectImage = v
	}
}

// WithCorrectCategory toggles removal of unreferenced categories.
func WithCorrectCategory(v bool) func(*CorrectOptions) {
	return func(o *CorrectOptions) {
		o.CorrectCategory = v
	}
}
