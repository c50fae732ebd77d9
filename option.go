package toon

import (
	"github.com/toonfmt/toon/parser"
	"github.com/toonfmt/toon/token"
)

// EncodeOptions configures Encoder/Marshal (spec §6 EncoderOptions).
type EncodeOptions struct {
	// IndentUnit is the number of spaces per nesting level. Default 2.
	IndentUnit int
	// Delimiter is the default delimiter new arrays are written with.
	Delimiter token.Delimiter
	// FlattenDepth folds a chain of singleton nested objects into a
	// dotted key, up to this many joins. 0 disables folding.
	FlattenDepth int
	// InlineThreshold is the maximum rendered column width (including
	// indentation) an all-scalar array may reach before it is written one
	// element per line instead of inline (spec §4.6.1). Default 80.
	InlineThreshold int
}

// DefaultEncodeOptions returns the documented defaults.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{IndentUnit: 2, Delimiter: token.Comma, InlineThreshold: 80}
}

// EncodeOption configures an Encoder.
type EncodeOption func(*EncodeOptions)

// WithEncodeIndent sets the number of spaces per nesting level.
func WithEncodeIndent(spaces int) EncodeOption {
	return func(o *EncodeOptions) { o.IndentUnit = spaces }
}

// WithEncodeDelimiter sets the default array delimiter.
func WithEncodeDelimiter(d token.Delimiter) EncodeOption {
	return func(o *EncodeOptions) { o.Delimiter = d }
}

// WithKeyFolding enables dotted-key folding up to maxDepth joins.
func WithKeyFolding(maxDepth int) EncodeOption {
	return func(o *EncodeOptions) { o.FlattenDepth = maxDepth }
}

// WithInlineThreshold overrides the inline/block column threshold.
func WithInlineThreshold(n int) EncodeOption {
	return func(o *EncodeOptions) { o.InlineThreshold = n }
}

// DecodeOption configures a Decoder / parser.Options.
type DecodeOption func(*parser.Options)

// WithDecodeIndent sets the expected number of spaces per nesting level.
func WithDecodeIndent(spaces int) DecodeOption {
	return func(o *parser.Options) { o.IndentUnit = spaces }
}

// WithStrict enables the additional checks spec §4.3 describes.
func WithStrict(strict bool) DecodeOption {
	return func(o *parser.Options) { o.Strict = strict }
}

// WithExpandPaths enables dotted-key path expansion on decode.
func WithExpandPaths(enabled bool) DecodeOption {
	return func(o *parser.Options) { o.ExpandPaths = enabled }
}
