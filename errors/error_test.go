package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/token"
)

func TestErrorUnlocated(t *testing.T) {
	err := errors.New(errors.InvalidSyntax, "bad line")
	assert.Equal(t, "toon: InvalidSyntax: bad line", err.Error())
	assert.False(t, err.Located)
}

func TestErrorAtLine(t *testing.T) {
	err := errors.New(errors.MissingColon, "no colon").AtLine(5)
	assert.True(t, err.Located)
	assert.Equal(t, token.Position{Line: 5, Column: 1}, err.Position)
	assert.Equal(t, "toon: MissingColon at 5:1: no colon", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.CountMismatch, "want %d got %d", 3, 4)
	assert.Equal(t, "want 3 got 4", err.Message)
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := errors.New(errors.Custom, "validation failed").Wrap(cause)
	assert.ErrorIs(t, err, cause)
}

func TestHasKind(t *testing.T) {
	err := errors.New(errors.WidthMismatch, "row too short")
	assert.True(t, errors.HasKind(err, errors.WidthMismatch))
	assert.False(t, errors.HasKind(err, errors.CountMismatch))
}

func TestHasKind_WrappedError(t *testing.T) {
	inner := errors.New(errors.InvalidHeader, "bad header")
	outer := errors.New(errors.Custom, "wrapping").Wrap(inner)
	assert.True(t, errors.HasKind(outer, errors.Custom))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "InvalidSyntax", errors.InvalidSyntax.String())
	assert.Equal(t, "ExpansionConflict", errors.ExpansionConflict.String())
	assert.Equal(t, "Unknown", errors.Unknown.String())
}
