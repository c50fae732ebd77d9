// Package errors defines TOON's structured error taxonomy (spec §7): every
// failure the core reports carries a Kind, a human-readable message, and an
// optional source position.
package errors

import (
	"fmt"

	"github.com/toonfmt/toon/token"
)

// Kind classifies a TOON error. The taxonomy is exhaustive by category, not
// by literal name (spec §7): new constructors may be added, but every one of
// them maps to one of these Kinds.
type Kind int

const (
	// Unknown is the zero value and never appears on a constructed Error.
	Unknown Kind = iota
	// InvalidSyntax is raised when a line cannot be parsed at all, or (in
	// strict mode) when an input is syntactically tolerable but
	// non-canonical.
	InvalidSyntax
	// InvalidEscape is raised for an unrecognized "\x" escape sequence.
	InvalidEscape
	// UnterminatedString is raised when a double-quoted literal never
	// closes before end of line.
	UnterminatedString
	// MissingColon is raised when a field line lacks its separator.
	MissingColon
	// IndentationError is raised when indentation is not a multiple of
	// the configured unit, or changes direction illegally.
	IndentationError
	// BlankLineInArray is raised for a blank line inside an array body.
	BlankLineInArray
	// CountMismatch is raised when a declared [N] disagrees with the
	// actual row count.
	CountMismatch
	// WidthMismatch is raised when a tabular row has the wrong number of
	// fields.
	WidthMismatch
	// DelimiterMismatch is raised when a row uses a different delimiter
	// than its header declared.
	DelimiterMismatch
	// InvalidHeader is raised when an array header cannot be parsed.
	InvalidHeader
	// ExpansionConflict is raised when path expansion would overwrite or
	// collide with an already-materialized object.
	ExpansionConflict
	// Custom wraps an upstream error from a collaborator, e.g. a typed
	// adapter's struct validation failure.
	Custom
)

func (k Kind) String() string {
	switch k {
	case InvalidSyntax:
		return "InvalidSyntax"
	case InvalidEscape:
		return "InvalidEscape"
	case UnterminatedString:
		return "UnterminatedString"
	case MissingColon:
		return "MissingColon"
	case IndentationError:
		return "IndentationError"
	case BlankLineInArray:
		return "BlankLineInArray"
	case CountMismatch:
		return "CountMismatch"
	case WidthMismatch:
		return "WidthMismatch"
	case DelimiterMismatch:
		return "DelimiterMismatch"
	case InvalidHeader:
		return "InvalidHeader"
	case ExpansionConflict:
		return "ExpansionConflict"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Error is the structured error every core failure is surfaced as. It
// implements error and Unwrap so it composes with the standard library's
// errors.Is / errors.As.
type Error struct {
	Kind     Kind
	Message  string
	Position token.Position
	// Located is false when no source position was attached to the error
	// (e.g. a path-expansion conflict, found after parsing), in which case
	// Position is meaningless.
	Located bool
	cause   error
}

// New constructs an unlocated Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// At returns a copy of e located at pos.
func (e *Error) At(pos token.Position) *Error {
	cp := *e
	cp.Position = pos
	cp.Located = true
	return &cp
}

// AtLine is shorthand for At with column 1.
func (e *Error) AtLine(line int) *Error {
	return e.At(token.Position{Line: line, Column: 1})
}

// Wrap records cause as the underlying error behind e, for Unwrap /
// errors.Is chains (spec's Custom kind in particular wraps a collaborator's
// error this way).
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

func (e *Error) Error() string {
	if e.Located {
		return fmt.Sprintf("toon: %s at %s: %s", e.Kind, e.Position, e.Message)
	}
	return fmt.Sprintf("toon: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// HasKind reports whether the first *Error found in err's Unwrap chain
// (err itself included) has the given kind; the cause wrapped by that
// *Error is not inspected. Kind is not itself an error, so errors.Is cannot
// express this check.
func HasKind(err error, kind Kind) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
		return e.Kind == kind
	}
	type unwrapper interface {
		Unwrap() error
	}
	if u, ok := err.(unwrapper); ok {
		return HasKind(u.Unwrap(), kind)
	}
	return false
}
