package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	tooerrors "github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/input"
	"github.com/toonfmt/toon/internal/xerr"
	"github.com/toonfmt/toon/token"
)

// renderError prints a colorized, source-annotated diagnostic for a
// *errors.Error the way ycat colorizes tokens, falling back to a plain
// %v for errors the core codec didn't raise.
func renderError(src *input.Source, err error) error {
	toonErr, ok := err.(*tooerrors.Error)
	if !ok {
		return err
	}
	xerr.ColoredOutput = cfg.GetBool("no-color") == false && isatty.IsTerminal(os.Stderr.Fd())
	out := colorable.NewColorableStderr()
	fmt.Fprintln(out, xerr.Render(string(src.Data), toonErr))
	return toonErr
}

func parseDelimiterFlag(name string) (token.Delimiter, error) {
	return token.ParseDelimiter(name)
}
