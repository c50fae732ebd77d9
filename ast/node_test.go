package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon/ast"
)

func TestObjectSetGet(t *testing.T) {
	obj := ast.NewObject()
	require.NoError(t, obj.Set("a", ast.NewIntegerFromInt64(1)))
	require.NoError(t, obj.Set("b", ast.NewIntegerFromInt64(2)))

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(ast.Number).Int64())

	assert.True(t, obj.Has("b"))
	assert.False(t, obj.Has("c"))
	assert.Equal(t, 2, obj.Len())
}

func TestObjectSet_DuplicateKeyRejected(t *testing.T) {
	obj := ast.NewObject()
	require.NoError(t, obj.Set("a", ast.NewNull()))
	err := obj.Set("a", ast.NewNull())
	assert.Error(t, err)
}

func TestObjectKeys_PreservesInsertionOrder(t *testing.T) {
	obj := ast.NewObject()
	require.NoError(t, obj.Set("z", ast.NewNull()))
	require.NoError(t, obj.Set("a", ast.NewNull()))
	require.NoError(t, obj.Set("m", ast.NewNull()))

	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestObjectIsEmpty(t *testing.T) {
	obj := ast.NewObject()
	assert.True(t, obj.IsEmpty())
	require.NoError(t, obj.Set("a", ast.NewNull()))
	assert.False(t, obj.IsEmpty())
}

func TestObjectGet_NilObject(t *testing.T) {
	var obj *ast.Object
	_, ok := obj.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, obj.Len())
}
