package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/scanner"
	"github.com/toonfmt/toon/token"
)

func TestSplit_ClassifiesLines(t *testing.T) {
	sc := scanner.New(2, false)
	lines, err := sc.Split("a: 1\n  b: 2\n# comment\n\nc\n---\n")
	require.NoError(t, err)
	require.Len(t, lines, 6)

	assert.Equal(t, token.KindField, lines[0].Kind)
	assert.Equal(t, 0, lines[0].Indent)
	assert.Equal(t, "a: 1", lines[0].Content)

	assert.Equal(t, token.KindField, lines[1].Kind)
	assert.Equal(t, 1, lines[1].Indent)

	assert.Equal(t, token.KindComment, lines[2].Kind)
	assert.Equal(t, token.KindBlank, lines[3].Kind)
	assert.Equal(t, token.KindRow, lines[4].Kind)
	assert.Equal(t, token.KindSeparator, lines[5].Kind)
}

func TestSplit_CRLF(t *testing.T) {
	sc := scanner.New(2, false)
	lines, err := sc.Split("a: 1\r\nb: 2\r\n")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "a: 1", lines[0].Content)
	assert.Equal(t, "b: 2", lines[1].Content)
}

func TestSplit_TabIndentRejected(t *testing.T) {
	sc := scanner.New(2, false)
	_, err := sc.Split("\ta: 1\n")
	assert.True(t, errors.HasKind(err, errors.IndentationError))
}

func TestSplit_NonMultipleIndentRejected(t *testing.T) {
	sc := scanner.New(2, false)
	_, err := sc.Split(" a: 1\n")
	assert.True(t, errors.HasKind(err, errors.IndentationError))
}

func TestSplit_StrictRejectsComments(t *testing.T) {
	sc := scanner.New(2, true)
	_, err := sc.Split("# comment\n")
	assert.True(t, errors.HasKind(err, errors.InvalidSyntax))
}

func TestIndexOutsideQuotes(t *testing.T) {
	assert.Equal(t, 4, scanner.IndexOutsideQuotes("name: value", ':'))
	assert.Equal(t, -1, scanner.IndexOutsideQuotes(`"a:b"`, ':'))
	assert.Equal(t, 6, scanner.IndexOutsideQuotes(`"a\"b": 1`, ':'))
}
