// Package scanner implements TOON's line-level tokenizer (spec §4.2): it
// splits input into logical lines, measures indentation, and classifies
// each line's body so the parser can dispatch without re-scanning raw text.
package scanner

import (
	"strings"

	"github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/token"
)

// Line is one scanned logical line: its 1-based source line number, its
// indent level (a count of indent units, not raw spaces), its kind, and its
// content with leading indentation already stripped.
type Line struct {
	Number  int
	Indent  int
	Kind    token.LineKind
	Content string
	Raw     string
}

// Scanner splits a TOON document into classified Lines.
type Scanner struct {
	// IndentUnit is the fixed number of spaces per nesting level (spec
	// §4.2 point 3; decoder option, default 2).
	IndentUnit int
	// Strict additionally rejects comment lines as InvalidSyntax instead of
	// passing them on as KindComment. Tabs in leading position are an
	// IndentationError in both modes.
	Strict bool
}

// New returns a Scanner with the given indent unit.
func New(indentUnit int, strict bool) *Scanner {
	if indentUnit <= 0 {
		indentUnit = 2
	}
	return &Scanner{IndentUnit: indentUnit, Strict: strict}
}

// Split tokenizes input into lines. LF and CRLF are both accepted as line
// terminators; a trailing CR on a line is always stripped.
func (s *Scanner) Split(input string) ([]Line, error) {
	raw := splitRawLines(input)
	lines := make([]Line, 0, len(raw))
	for i, text := range raw {
		number := i + 1
		if strings.TrimSpace(text) == "" {
			lines = append(lines, Line{Number: number, Kind: token.KindBlank})
			continue
		}
		indent, content, err := s.computeIndent(text)
		if err != nil {
			return nil, err.AtLine(number)
		}
		kind := classify(content)
		if kind == token.KindComment && s.Strict {
			return nil, errors.New(errors.InvalidSyntax, "comment lines are not permitted in strict mode").AtLine(number)
		}
		lines = append(lines, Line{
			Number:  number,
			Indent:  indent,
			Kind:    kind,
			Content: content,
			Raw:     text,
		})
	}
	return lines, nil
}

func splitRawLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (s *Scanner) computeIndent(line string) (int, string, *errors.Error) {
	spaces := 0
	i := 0
loop:
	for i < len(line) {
		switch line[i] {
		case ' ':
			spaces++
			i++
		case '\t':
			return 0, "", errors.New(errors.IndentationError, "tabs are not allowed in leading indentation")
		default:
			break loop
		}
	}
	if spaces%s.IndentUnit != 0 {
		return 0, "", errors.Newf(errors.IndentationError, "indentation of %d spaces is not a multiple of %d", spaces, s.IndentUnit)
	}
	return spaces / s.IndentUnit, line[i:], nil
}

func classify(content string) token.LineKind {
	if content[0] == '#' {
		return token.KindComment
	}
	if content == "---" {
		return token.KindSeparator
	}
	if IndexOutsideQuotes(content, ':') >= 0 {
		return token.KindField
	}
	return token.KindRow
}

// IndexOutsideQuotes returns the byte index of the first occurrence of
// target outside of a double-quoted run, or -1. It understands backslash
// escaping inside quotes so an escaped quote does not end the run.
func IndexOutsideQuotes(s string, target byte) int {
	inQuotes := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inQuotes && c == '\\':
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case !inQuotes && c == target:
			return i
		}
	}
	return -1
}
