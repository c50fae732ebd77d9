// Package xerr renders a toon/errors.Error against its source document for
// terminal diagnostics, adapted from the teacher library's
// internal/errors + printer pairing: instead of reconstructing a YAML
// token's origin text, it highlights the (line, column) pair a TOON error
// carries.
package xerr

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/toonfmt/toon/errors"
)

// ColoredOutput controls whether Render emits ANSI color codes. CLI callers
// flip this off for non-terminal stdout/stderr (detected via
// github.com/mattn/go-isatty at the call site).
var ColoredOutput = true

// WithSourceCode controls whether Render includes the offending source
// line at all, or only the message.
var WithSourceCode = true

// Render formats err for display, optionally annotated with the source line
// it points at and a caret under the offending column.
func Render(source string, err *errors.Error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headline(err))
	if !WithSourceCode || !err.Located || source == "" {
		return b.String()
	}
	line := sourceLine(source, err.Position.Line)
	if line == "" {
		return b.String()
	}
	fmt.Fprintf(&b, "  %s\n", line)
	fmt.Fprintf(&b, "  %s%s\n", strings.Repeat(" ", max0(err.Position.Column-1)), caret())
	return b.String()
}

func headline(err *errors.Error) string {
	kind := err.Kind.String()
	if ColoredOutput {
		kind = color.New(color.FgHiRed, color.Bold).Sprint(kind)
	}
	if err.Located {
		pos := fmt.Sprintf("%d:%d", err.Position.Line, err.Position.Column)
		if ColoredOutput {
			pos = color.New(color.FgHiYellow).Sprint(pos)
		}
		return fmt.Sprintf("%s at %s: %s", kind, pos, err.Message)
	}
	return fmt.Sprintf("%s: %s", kind, err.Message)
}

func caret() string {
	if ColoredOutput {
		return color.New(color.FgHiGreen, color.Bold).Sprint("^")
	}
	return "^"
}

func sourceLine(source string, n int) string {
	scanner := bufio.NewScanner(strings.NewReader(source))
	i := 0
	for scanner.Scan() {
		i++
		if i == n {
			return scanner.Text()
		}
	}
	return ""
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
