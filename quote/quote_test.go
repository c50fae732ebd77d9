package quote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/quote"
	"github.com/toonfmt/toon/token"
)

func TestNeedsQuote(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"hello", false},
		{"true", true},
		{"false", true},
		{"null", true},
		{"42", true},
		{"-3.5", true},
		{"1e10", true},
		{"has,comma", true},
		{"has:colon", true},
		{" leading space", true},
		{"trailing space ", true},
		{"-starts-with-dash", true},
		{"plain text with spaces", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, quote.NeedsQuote(c.s, token.Comma), "input %q", c.s)
	}
}

func TestNeedsQuote_DelimiterCharsAlwaysQuoted(t *testing.T) {
	assert.True(t, quote.NeedsQuote("a|b", token.Pipe))
	assert.True(t, quote.NeedsQuote("a|b", token.Comma))
	assert.True(t, quote.NeedsQuote("a\tb", token.Tab))
}

func TestIsValidUnquotedKey(t *testing.T) {
	assert.True(t, quote.IsValidUnquotedKey("name"))
	assert.True(t, quote.IsValidUnquotedKey("_private"))
	assert.True(t, quote.IsValidUnquotedKey("a-b_c9"))
	assert.False(t, quote.IsValidUnquotedKey(""))
	assert.False(t, quote.IsValidUnquotedKey("9abc"))
	assert.False(t, quote.IsValidUnquotedKey("has space"))
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	cases := []string{
		"hello world",
		"with \"quotes\"",
		"tab\there",
		"newline\nhere",
		"unicode: éè",
	}
	for _, s := range cases {
		quoted := quote.Quote(s)
		got, err := quote.Unquote(quoted)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestUnquote_Errors(t *testing.T) {
	_, err := quote.Unquote(`"unterminated`)
	assert.True(t, errors.HasKind(err, errors.UnterminatedString))

	_, err = quote.Unquote(`"bad\qescape"`)
	assert.True(t, errors.HasKind(err, errors.InvalidEscape))

	_, err = quote.Unquote(`"ok"trailing`)
	assert.True(t, errors.HasKind(err, errors.InvalidSyntax))
}

func TestUnquote_SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE encoded as a UTF-16 surrogate pair.
	got, err := quote.Unquote("\"\\ud83d\\ude00\"")
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", got)
}

func TestUnquote_LoneSurrogate(t *testing.T) {
	_, err := quote.Unquote(`"\ud83d"`)
	assert.True(t, errors.HasKind(err, errors.InvalidEscape))
}

func TestQuoteKey(t *testing.T) {
	assert.Equal(t, "plain", quote.QuoteKey("plain"))
	assert.Equal(t, `"has space"`, quote.QuoteKey("has space"))
}

func TestQuoteScalar(t *testing.T) {
	assert.Equal(t, "plain", quote.QuoteScalar("plain", token.Comma))
	assert.Equal(t, `"42"`, quote.QuoteScalar("42", token.Comma))
}
