// Package input resolves a CLI argument into source bytes, probing in the
// order spec §6 names: a literal "-" or empty argument reads stdin; an
// existing file path is read; a value that parses as an http(s) URL is
// fetched; anything else is treated as an inline literal document (spec
// §6.3).
package input

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Source is resolved input: its raw bytes plus a best-effort sniffed MIME
// type, so the CLI can pick a decode path when the caller didn't pass
// --from explicitly.
type Source struct {
	Data     []byte
	MIME     string
	Location string
}

// Resolve fetches arg's content, probing in spec §6.3's fixed order: stdin,
// then an existing local file, then an http(s) URL, then (only once
// neither of those apply) arg itself as an inline literal document.
func Resolve(ctx context.Context, arg string) (*Source, error) {
	switch {
	case arg == "" || arg == "-":
		return read(os.Stdin, "stdin")
	case fileExists(arg):
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("toon/input: failed to open %q: %w", arg, err)
		}
		defer f.Close()
		return read(f, arg)
	case looksLikeURL(arg):
		return fetch(ctx, arg)
	default:
		return &Source{Data: []byte(arg), MIME: mimetype.Detect([]byte(arg)).String(), Location: "<literal>"}, nil
	}
}

func fileExists(arg string) bool {
	info, err := os.Stat(arg)
	return err == nil && !info.IsDir()
}

func looksLikeURL(arg string) bool {
	u, err := url.Parse(arg)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func read(r io.Reader, location string) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("toon/input: failed to read %s: %w", location, err)
	}
	return &Source{Data: data, MIME: mimetype.Detect(data).String(), Location: location}, nil
}

func fetch(ctx context.Context, rawURL string) (*Source, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("toon/input: invalid URL %q: %w", rawURL, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("toon/input: failed to fetch %q: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("toon/input: %q returned status %d", rawURL, resp.StatusCode)
	}
	return read(resp.Body, rawURL)
}

// LooksTOON reports whether src's sniffed MIME type or location suggests a
// TOON document rather than JSON or YAML, as a fallback when --from is not
// given explicitly.
func (s *Source) LooksTOON() bool {
	if strings.HasSuffix(s.Location, ".toon") {
		return true
	}
	return s.MIME == "text/plain; charset=utf-8" || s.MIME == "text/plain"
}
