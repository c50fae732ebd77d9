package toon_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon"
	"github.com/toonfmt/toon/ast"
)

// cmpOpts ignores ast.Object's unexported key-index cache: it is a
// derived lookup structure, not part of the value the tree represents.
var cmpOpts = cmp.Options{cmpopts.IgnoreUnexported(ast.Object{})}

// TestRoundTrip_ValueTreeEquality exercises Testable Property 1
// (round-trip) at the Value-tree level: decode, re-encode, decode again,
// and assert the two decoded trees are structurally identical, using
// go-cmp rather than a textual comparison so the assertion is about the
// tree shape (key order, nesting, scalar kinds) and not incidental
// whitespace.
func TestRoundTrip_ValueTreeEquality(t *testing.T) {
	const doc = "name: Ada\n" +
		"age: 30\n" +
		"active: true\n" +
		"tags[3]: a,b,c\n" +
		"address:\n" +
		"  city: London\n" +
		"  zip: \"10001\"\n" +
		"users[2 id,name]:\n" +
		"  1,Ada\n" +
		"  2,Grace\n"

	first, err := toon.Decode(doc)
	require.NoError(t, err)

	reencoded, err := toon.MarshalNode(first)
	require.NoError(t, err)

	second, err := toon.Decode(string(reencoded))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpOpts); diff != "" {
		t.Errorf("value tree changed across re-encode/decode (-first +second):\n%s", diff)
	}
}

// TestRoundTrip_KeyFoldingPreservesTree checks that encoding with key
// folding enabled and decoding back with path expansion enabled produces
// the same Value tree as the original, i.e. folding is a pure rendering
// choice and not lossy (spec §4.6/§3.4).
func TestRoundTrip_KeyFoldingPreservesTree(t *testing.T) {
	const doc = "a:\n  b:\n    c: 1\n"

	original, err := toon.Decode(doc)
	require.NoError(t, err)

	folded, err := toon.MarshalNode(original, toon.WithKeyFolding(10))
	require.NoError(t, err)
	require.Equal(t, "a.b.c: 1\n", string(folded))

	expanded, err := toon.Decode(string(folded), toon.WithExpandPaths(true))
	require.NoError(t, err)

	if diff := cmp.Diff(original, expanded, cmpOpts); diff != "" {
		t.Errorf("key folding was not a lossless rendering choice (-original +expanded):\n%s", diff)
	}
}
