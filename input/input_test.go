package input_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon/input"
)

func TestResolve_Stdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, _ = w.WriteString("a: 1\n")
	w.Close()

	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()

	src, err := input.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(src.Data))
	assert.Equal(t, "stdin", src.Location)
}

func TestResolve_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.toon")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	src, err := input.Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(src.Data))
	assert.True(t, src.LooksTOON())
}

func TestResolve_NonexistentPathFallsBackToLiteral(t *testing.T) {
	// Neither an existing file nor a URL: spec §6.3's third probe treats
	// the argument itself as an inline literal document rather than
	// erroring as a missing file.
	src, err := input.Resolve(context.Background(), "/no/such/file.toon")
	require.NoError(t, err)
	assert.Equal(t, "/no/such/file.toon", string(src.Data))
	assert.Equal(t, "<literal>", src.Location)
}

func TestResolve_InlineLiteral(t *testing.T) {
	src, err := input.Resolve(context.Background(), "a: 1\nb: 2\n")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: 2\n", string(src.Data))
}

func TestResolve_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"a":1}`))
	}))
	defer srv.Close()

	src, err := input.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(src.Data))
}

func TestResolve_URL_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := input.Resolve(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestLooksTOON_BySuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.toon")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	src, err := input.Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, src.LooksTOON())
	assert.True(t, strings.HasSuffix(src.Location, ".toon"))
}
