package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon/token"
)

func TestParseDelimiterFlag(t *testing.T) {
	d, err := parseDelimiterFlag("pipe")
	require.NoError(t, err)
	assert.Equal(t, token.Pipe, d)
}

func TestParseDelimiterFlag_Unknown(t *testing.T) {
	_, err := parseDelimiterFlag("semicolon")
	assert.Error(t, err)
}

func TestNewRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["encode"])
	assert.True(t, names["decode"])
}
