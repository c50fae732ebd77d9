package parser

import (
	"strings"

	"github.com/toonfmt/toon/ast"
	"github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/quote"
	"github.com/toonfmt/toon/token"
)

// parseScalarCell evaluates a trimmed cell's raw text against the fixed
// dispatch order of spec §4.4: null/true/false literal, quoted string,
// number grammar, else bare string.
func parseScalarCell(raw string) (ast.Node, error) {
	if raw == "" {
		return ast.NewString(""), nil
	}
	switch raw {
	case "null":
		return ast.NewNull(), nil
	case "true":
		return ast.NewBool(true), nil
	case "false":
		return ast.NewBool(false), nil
	}
	if raw[0] == '"' {
		s, err := quote.Unquote(raw)
		if err != nil {
			return nil, err
		}
		return ast.NewString(s), nil
	}
	if integral, ok := looksLikeNumber(raw); ok {
		n, err := ast.NewNumberFromString(raw, integral)
		if err != nil {
			return nil, errors.Newf(errors.InvalidSyntax, "invalid number literal %q", raw)
		}
		return n, nil
	}
	return ast.NewString(raw), nil
}

// looksLikeNumber matches the TOON numeric grammar: optional sign, decimal
// integer, optional fractional part, optional exponent. It reports whether
// the literal is integral (no '.' or exponent).
func looksLikeNumber(s string) (integral bool, ok bool) {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < n && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false, false
	}
	integral = true
	if i < n && s[i] == '.' {
		integral = false
		i++
		fracStart := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return false, false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		integral = false
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false, false
		}
	}
	return integral, i == n
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// splitDelimited splits s on delim outside double-quoted runs (the active
// delimiter of the governing array, spec §4.5), returning the raw
// (untrimmed) segments so strict-mode whitespace checks can inspect them.
func splitDelimited(s string, delim byte) []string {
	if s == "" {
		return nil
	}
	var segments []string
	start := 0
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
		case !inQuotes && c == delim:
			segments = append(segments, s[start:i])
			start = i + 1
		}
	}
	segments = append(segments, s[start:])
	return segments
}

func trimCell(s string) string {
	return strings.TrimSpace(s)
}

// findMatchingDelimiter checks whether splitting s on one of the two
// delimiters other than active yields exactly want segments, suggesting the
// row was written for a different delimiter than its header declares
// (errors.DelimiterMismatch) rather than simply having the wrong width.
func findMatchingDelimiter(s string, active token.Delimiter, want int) (token.Delimiter, bool) {
	for _, d := range []token.Delimiter{token.Comma, token.Tab, token.Pipe} {
		if d == active {
			continue
		}
		if len(splitDelimited(s, byte(d.Rune()))) == want {
			return d, true
		}
	}
	return token.Comma, false
}
