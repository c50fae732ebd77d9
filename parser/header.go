package parser

import (
	"strconv"
	"strings"

	"github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/quote"
	"github.com/toonfmt/toon/scanner"
	"github.com/toonfmt/toon/token"
)

// header is the parsed left-hand side of an array declaration line:
// "key[N]:", "key[N]: v1,v2", or "key[N f1,f2,...]:" (spec §4.3).
type header struct {
	Key          string
	Length       int
	Delimiter    token.Delimiter
	Fields       []string
	InlineValues string
	HasInline    bool
}

// tryParseHeader attempts to read content as an array header line. It
// returns ok=false (no error) when content has no top-level '[' before its
// colon, meaning the line is an ordinary field, not an array header.
func tryParseHeader(content string) (header, bool, error) {
	colon := scanner.IndexOutsideQuotes(content, ':')
	if colon < 0 {
		return header{}, false, nil
	}
	left := content[:colon]
	right := strings.TrimSpace(content[colon+1:])

	bracketStart := scanner.IndexOutsideQuotes(left, '[')
	if bracketStart < 0 {
		return header{}, false, nil
	}
	keyPart := strings.TrimSpace(left[:bracketStart])
	rest := left[bracketStart+1:]
	bracketEnd := scanner.IndexOutsideQuotes(rest, ']')
	if bracketEnd < 0 {
		return header{}, true, errors.New(errors.InvalidHeader, "array header is missing its closing ']'")
	}
	inside := rest[:bracketEnd]

	// The delimiter marker, if any, sits immediately after the closing ']'
	// and before the colon (spec §4.3: "key[N]|:" selects Pipe, "key[N]\t:"
	// selects Tab), never inside the brackets.
	delim, err := parseDelimiterMarker(rest[bracketEnd+1:])
	if err != nil {
		return header{}, true, err
	}

	h := header{Delimiter: delim}
	if keyPart != "" {
		key, err := decodeKeyToken(keyPart)
		if err != nil {
			return header{}, true, err
		}
		h.Key = key
	}

	length, fieldSegment, err := parseBracketBody(inside)
	if err != nil {
		return header{}, true, err
	}
	h.Length = length

	if fieldSegment != "" {
		fields, err := splitFieldList(fieldSegment, ',')
		if err != nil {
			return header{}, true, err
		}
		h.Fields = fields
	}

	if right != "" {
		h.InlineValues = right
		h.HasInline = true
	}
	return h, true, nil
}

// parseDelimiterMarker parses the text between the array header's closing
// ']' and its ':'. It is empty (Comma), a single '|' (Pipe), or a single
// literal tab (Tab); anything else is an invalid header.
func parseDelimiterMarker(s string) (token.Delimiter, error) {
	switch s {
	case "":
		return token.Comma, nil
	case "|":
		return token.Pipe, nil
	case "\t":
		return token.Tab, nil
	default:
		return token.Comma, errors.New(errors.InvalidHeader, "unexpected characters after array header")
	}
}

// parseBracketBody parses the text between '[' and ']': digits and an
// optional " field1,field2,..." segment. Field names are always
// comma-separated regardless of the header's delimiter marker, which scopes
// only the array's row/value delimiter (spec §4.3).
func parseBracketBody(s string) (length int, fieldSegment string, err error) {
	i := 0
	digitsStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return 0, "", errors.New(errors.InvalidHeader, "array header is missing its length")
	}
	length, convErr := strconv.Atoi(s[digitsStart:i])
	if convErr != nil {
		return 0, "", errors.New(errors.InvalidHeader, "array length is not a valid integer")
	}
	if length < 0 {
		return 0, "", errors.New(errors.InvalidHeader, "array length cannot be negative")
	}
	rest := s[i:]
	if rest == "" {
		return length, "", nil
	}
	if rest[0] != ' ' {
		return 0, "", errors.New(errors.InvalidHeader, "array header has trailing characters after its length")
	}
	return length, strings.TrimSpace(rest), nil
}

func splitFieldList(segment string, delim rune) ([]string, error) {
	raw := splitDelimited(segment, byte(delim))
	fields := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, tok := range raw {
		name, err := decodeKeyToken(trimCell(tok))
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, errors.Newf(errors.InvalidHeader, "duplicate field name %q in array header", name)
		}
		seen[name] = true
		fields = append(fields, name)
	}
	return fields, nil
}

func decodeKeyToken(tok string) (string, error) {
	if tok == "" {
		return "", errors.New(errors.InvalidSyntax, "empty key")
	}
	if tok[0] == '"' {
		return quote.Unquote(tok)
	}
	// A bare key may be a dotted path ("a.b.c"); each segment must be a
	// valid unquoted key on its own.
	for _, seg := range strings.Split(tok, ".") {
		if !quote.IsValidUnquotedKey(seg) {
			return "", errors.Newf(errors.InvalidSyntax, "invalid unquoted key %q", tok)
		}
	}
	return tok, nil
}

// splitKeyValue splits a plain field line "key: rest" (rest may be empty)
// into its decoded key and raw, untrimmed-yet value text.
func splitKeyValue(content string) (string, string, error) {
	colon := scanner.IndexOutsideQuotes(content, ':')
	if colon < 0 {
		return "", "", errors.New(errors.MissingColon, "field line has no ':' separator")
	}
	keyTok := strings.TrimSpace(content[:colon])
	key, err := decodeKeyToken(keyTok)
	if err != nil {
		return "", "", err
	}
	return key, strings.TrimSpace(content[colon+1:]), nil
}
