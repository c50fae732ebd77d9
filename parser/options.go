package parser

// Options configures decode behavior (spec §6 DecoderOptions).
type Options struct {
	// IndentUnit is the number of spaces per nesting level. Default 2.
	IndentUnit int
	// Strict enables the additional checks spec §4.3 describes: no
	// surplus whitespace around delimiters, no trailing commas, no
	// redundant quoting, no mixed delimiter styles, no blank lines
	// anywhere in the document body, no comment lines.
	Strict bool
	// ExpandPaths turns on dotted-key expansion ("a.b: 1" -> {a:{b:1}}).
	ExpandPaths bool
}

// DefaultOptions returns the documented defaults (indent 2, strict off,
// path expansion off).
func DefaultOptions() Options {
	return Options{IndentUnit: 2}
}
