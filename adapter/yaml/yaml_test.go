package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yamladapter "github.com/toonfmt/toon/adapter/yaml"
)

func TestToYAML_Scalars(t *testing.T) {
	out, err := yamladapter.ToYAML("name: Ada\nage: 30\n")
	require.NoError(t, err)
	assert.Equal(t, "age: 30\nname: Ada\n", string(out))
}

func TestToYAML_Array(t *testing.T) {
	out, err := yamladapter.ToYAML("tags[2]: a,b\n")
	require.NoError(t, err)
	assert.Equal(t, "tags:\n- a\n- b\n", string(out))
}

func TestFromYAML_Scalars(t *testing.T) {
	out, err := yamladapter.FromYAML([]byte("name: Ada\nage: 30\n"))
	require.NoError(t, err)
	assert.Equal(t, "name: Ada\nage: 30\n", string(out))
}

func TestFromYAML_SequenceOfScalars(t *testing.T) {
	out, err := yamladapter.FromYAML([]byte("tags:\n- a\n- b\n"))
	require.NoError(t, err)
	assert.Equal(t, "tags[2]: a,b\n", string(out))
}

func TestFromYAML_PreservesKeyOrder(t *testing.T) {
	out, err := yamladapter.FromYAML([]byte("zebra: 1\napple: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "zebra: 1\napple: 2\n", string(out))
}

func TestFromYAML_PreservesNestedKeyOrder(t *testing.T) {
	out, err := yamladapter.FromYAML([]byte("outer:\n  zebra: 1\n  apple: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "outer:\n  zebra: 1\n  apple: 2\n", string(out))
}

func TestFromYAML_InvalidYAML(t *testing.T) {
	_, err := yamladapter.FromYAML([]byte("not: valid: yaml: here:\n\tbad"))
	assert.Error(t, err)
}
