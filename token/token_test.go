package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toonfmt/toon/token"
)

func TestDelimiterRune(t *testing.T) {
	assert.Equal(t, ',', token.Comma.Rune())
	assert.Equal(t, '\t', token.Tab.Rune())
	assert.Equal(t, '|', token.Pipe.Rune())
}

func TestDelimiterString(t *testing.T) {
	assert.Equal(t, "comma", token.Comma.String())
	assert.Equal(t, "tab", token.Tab.String())
	assert.Equal(t, "pipe", token.Pipe.String())
}

func TestParseDelimiter(t *testing.T) {
	cases := []struct {
		name string
		want token.Delimiter
	}{
		{"", token.Comma},
		{"comma", token.Comma},
		{"tab", token.Tab},
		{"pipe", token.Pipe},
	}
	for _, c := range cases {
		got, err := token.ParseDelimiter(c.name)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestParseDelimiter_Unknown(t *testing.T) {
	_, err := token.ParseDelimiter("semicolon")
	assert.Error(t, err)
}

func TestPositionString(t *testing.T) {
	p := token.Position{Line: 3, Column: 7}
	assert.Equal(t, "3:7", p.String())
}

func TestLineKindString(t *testing.T) {
	cases := []struct {
		kind token.LineKind
		want string
	}{
		{token.KindField, "Field"},
		{token.KindRow, "Row"},
		{token.KindSeparator, "Separator"},
		{token.KindComment, "Comment"},
		{token.KindBlank, "Blank"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.kind.String())
	}
}
