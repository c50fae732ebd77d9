package typed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/typed"
)

type account struct {
	Email string `toon:"email" validate:"required,email"`
	Age   int    `toon:"age" validate:"gte=0"`
}

func TestMarshal_RequiresStruct(t *testing.T) {
	_, err := typed.Marshal(42)
	assert.Error(t, err)
}

func TestMarshal_AcceptsPointerToStruct(t *testing.T) {
	out, err := typed.Marshal(&account{Email: "a@b.com", Age: 30})
	require.NoError(t, err)
	assert.Contains(t, string(out), "email: a@b.com")
}

func TestUnmarshal_RequiresPointerToStruct(t *testing.T) {
	var a account
	err := typed.Unmarshal([]byte("email: a@b.com\nage: 30\n"), a)
	assert.Error(t, err)
}

func TestUnmarshal_ValidatesStructTags(t *testing.T) {
	var a account
	err := typed.Unmarshal([]byte("email: not-an-email\nage: 30\n"), &a)
	assert.Error(t, err)
	assert.True(t, errors.HasKind(err, errors.Custom))
}

func TestUnmarshal_Success(t *testing.T) {
	var a account
	err := typed.Unmarshal([]byte("email: a@b.com\nage: 30\n"), &a)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", a.Email)
	assert.Equal(t, 30, a.Age)
}
