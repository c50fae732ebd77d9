package toon_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon"
)

func TestUnmarshal_IntoMap(t *testing.T) {
	var m map[string]interface{}
	err := toon.Unmarshal([]byte("a: 1\nb: hello\n"), &m)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m["a"])
	assert.Equal(t, "hello", m["b"])
}

func TestUnmarshal_IntoInterface(t *testing.T) {
	var v interface{}
	err := toon.Unmarshal([]byte("tags[2]: a,b\n"), &v)
	require.NoError(t, err)
	list, ok := v.(map[string]interface{})["tags"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"a", "b"}, list)
}

func TestUnmarshal_IntoSlice(t *testing.T) {
	var ids []int
	err := toon.Unmarshal([]byte("[3]: 1,2,3"), &ids)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestUnmarshal_RequiresPointer(t *testing.T) {
	var m map[string]interface{}
	err := toon.Unmarshal([]byte("a: 1\n"), m)
	assert.Error(t, err)
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	var b bool
	err := toon.Unmarshal([]byte("42"), &b)
	assert.Error(t, err)
}

func TestUnmarshal_NumberIntoString(t *testing.T) {
	var s string
	err := toon.Unmarshal([]byte("42"), &s)
	require.NoError(t, err)
	assert.Equal(t, "42", s)
}

func TestUnmarshal_NullIntoPointer(t *testing.T) {
	type holder struct {
		Name *string `toon:"name"`
	}
	var h holder
	err := toon.Unmarshal([]byte("name: null\n"), &h)
	require.NoError(t, err)
	assert.Nil(t, h.Name)
}

func TestDecoder_DecodeNode(t *testing.T) {
	d := toon.NewDecoder(strings.NewReader("a: 1\n"))
	node, err := d.DecodeNode()
	require.NoError(t, err)
	assert.Equal(t, "Object", node.Type().String())
}

func TestUnmarshalFrom(t *testing.T) {
	var m map[string]interface{}
	err := toon.UnmarshalFrom(strings.NewReader("a: 1\nb: hello\n"), &m)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m["a"])
	assert.Equal(t, "hello", m["b"])
}
