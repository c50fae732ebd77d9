// Package parser implements TOON's recursive-descent decoder (spec §4):
// it turns a classified line stream from package scanner into an ast.Node
// tree, enforcing the count/width/indentation invariants as it goes.
package parser

import (
	"strings"

	"github.com/toonfmt/toon/ast"
	"github.com/toonfmt/toon/errors"
	"github.com/toonfmt/toon/quote"
	"github.com/toonfmt/toon/scanner"
	"github.com/toonfmt/toon/token"
)

// Decode parses a complete TOON document into an ast.Node.
func Decode(input string, opts Options) (ast.Node, error) {
	if opts.IndentUnit <= 0 {
		opts.IndentUnit = 2
	}
	sc := scanner.New(opts.IndentUnit, opts.Strict)
	lines, err := sc.Split(input)
	if err != nil {
		return nil, err
	}
	p := &parser{lines: lines, opts: opts}

	root, err := p.parseRoot()
	if err != nil {
		return nil, err
	}
	if opts.ExpandPaths {
		root, err = expandPathsInNode(root)
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}

type parser struct {
	lines []scanner.Line
	pos   int
	opts  Options
}

// nextContent returns the next line that carries decoder-visible content,
// skipping comment lines unconditionally and blank lines according to
// context. insideArray forces BlankLineInArray (spec §3's unconditional
// invariant); outside an array, a blank line is tolerated unless strict
// mode additionally forbids it (spec §4.3).
func (p *parser) nextContent(insideArray bool) (scanner.Line, bool, error) {
	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		switch l.Kind {
		case token.KindBlank:
			if insideArray {
				return scanner.Line{}, false, errors.New(errors.BlankLineInArray, "blank line inside array body").AtLine(l.Number)
			}
			if p.opts.Strict {
				return scanner.Line{}, false, errors.New(errors.InvalidSyntax, "blank lines are not permitted in strict mode").AtLine(l.Number)
			}
			p.pos++
		case token.KindComment:
			p.pos++
		default:
			return l, true, nil
		}
	}
	return scanner.Line{}, false, nil
}

func (p *parser) advance() { p.pos++ }

// parseRoot parses the whole-document form: a scalar, a keyless root array
// ("[N]: ..."), or an object's fields at depth 0 (a keyed array header such
// as "tags[2]: a,b" is an object field).
func (p *parser) parseRoot() (ast.Node, error) {
	l, ok, err := p.nextContent(false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return ast.NewObject(), nil
	}
	if l.Indent != 0 {
		return nil, errors.New(errors.IndentationError, "document must not be indented at top level").AtLine(l.Number)
	}

	var root ast.Node
	switch l.Kind {
	case token.KindRow:
		p.advance()
		root, err = parseScalarCell(trimCell(l.Content))
		if err != nil {
			return nil, err.(*errors.Error).AtLine(l.Number)
		}
	case token.KindSeparator:
		return nil, errors.New(errors.InvalidSyntax, "unexpected '---' at document root").AtLine(l.Number)
	case token.KindField:
		h, headerOK, herr := tryParseHeader(l.Content)
		if herr != nil {
			return nil, herr.(*errors.Error).AtLine(l.Number)
		}
		if headerOK && strings.HasPrefix(l.Content, "[") {
			p.advance()
			root, err = p.parseArray(0, h)
		} else {
			root, err = p.parseObjectFields(0)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New(errors.InvalidSyntax, "unrecognized document root").AtLine(l.Number)
	}

	trailing, ok, err := p.nextContent(false)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, errors.New(errors.InvalidSyntax, "unexpected trailing content after document root").AtLine(trailing.Number)
	}
	return root, nil
}

// parseObjectFields parses an object's "key: value" lines at exactly depth,
// stopping at the first dedent (indent < depth) or end of input.
func (p *parser) parseObjectFields(depth int) (*ast.Object, error) {
	obj := ast.NewObject()
	for {
		next, ok, err := p.nextContent(false)
		if err != nil {
			return nil, err
		}
		if !ok || next.Indent < depth {
			break
		}
		if next.Indent > depth {
			return nil, errors.New(errors.IndentationError, "unexpected indentation increase").AtLine(next.Number)
		}
		if next.Kind != token.KindField {
			return nil, errors.New(errors.InvalidSyntax, "expected an object field").AtLine(next.Number)
		}
		key, value, err := p.parseFieldLine(depth, next)
		if err != nil {
			return nil, err
		}
		if err := obj.Set(key, value); err != nil {
			return nil, errors.Newf(errors.InvalidSyntax, "duplicate key %q", key).AtLine(next.Number)
		}
	}
	return obj, nil
}

// parseFieldLine consumes one already-peeked field line at depth and
// returns its decoded key and value. When the line declares an array
// header, the array body (if any) is consumed from depth+1. When the line
// is a plain "key:" with no inline value, the value is either a nested
// object at depth+1 or Null if nothing follows at deeper indent.
func (p *parser) parseFieldLine(depth int, line scanner.Line) (string, ast.Node, error) {
	h, headerOK, err := tryParseHeader(line.Content)
	if err != nil {
		return "", nil, err.(*errors.Error).AtLine(line.Number)
	}
	if headerOK {
		p.advance()
		value, err := p.parseArray(depth, h)
		if err != nil {
			if e, ok := err.(*errors.Error); ok && !e.Located {
				return "", nil, e.AtLine(line.Number)
			}
			return "", nil, err
		}
		return h.Key, value, nil
	}

	key, valueText, kvErr := splitKeyValue(line.Content)
	if kvErr != nil {
		return "", nil, kvErr.(*errors.Error).AtLine(line.Number)
	}
	p.advance()

	if valueText != "" {
		trimmed := trimCell(valueText)
		if trimmed == "{}" {
			return key, ast.NewObject(), nil
		}
		if err := p.checkStrictCell(trimmed, token.Comma); err != nil {
			return "", nil, err.(*errors.Error).AtLine(line.Number)
		}
		node, err := parseScalarCell(trimmed)
		if err != nil {
			return "", nil, err.(*errors.Error).AtLine(line.Number)
		}
		return key, node, nil
	}

	next, ok, err := p.nextContent(false)
	if err != nil {
		return "", nil, err
	}
	switch {
	case ok && next.Indent == depth+1:
		obj, err := p.parseObjectFields(depth + 1)
		if err != nil {
			return "", nil, err
		}
		return key, obj, nil
	case ok && next.Indent > depth+1:
		return "", nil, errors.New(errors.IndentationError, "unexpected indentation increase").AtLine(next.Number)
	default:
		return key, ast.NewNull(), nil
	}
}

// parseArray dispatches an array header to its inline, tabular, or generic
// block form (spec §4.3).
func (p *parser) parseArray(depth int, h header) (ast.Node, error) {
	if h.HasInline {
		return p.parseInlineArray(h)
	}
	if len(h.Fields) > 0 {
		return p.parseTabularArray(depth, h)
	}
	return p.parseGenericArray(depth, h)
}

func (p *parser) parseInlineArray(h header) (ast.Node, error) {
	trimmed := strings.TrimSpace(h.InlineValues)
	if h.Length == 0 {
		if trimmed != "" {
			return nil, errors.Newf(errors.CountMismatch, "array declared length 0 but has inline values")
		}
		return ast.NewArray(nil), nil
	}
	raw := splitDelimited(h.InlineValues, byte(h.Delimiter.Rune()))
	if len(raw) != h.Length {
		if other, ok := findMatchingDelimiter(h.InlineValues, h.Delimiter, h.Length); ok {
			return nil, errors.Newf(errors.DelimiterMismatch, "inline array appears to use %q as its delimiter, but the header declares %q", string(other.Rune()), string(h.Delimiter.Rune()))
		}
		return nil, errors.Newf(errors.CountMismatch, "array declared length %d but inline form has %d values", h.Length, len(raw))
	}
	items := make([]ast.Node, len(raw))
	for i, cell := range raw {
		if err := p.checkStrictCell(cell, h.Delimiter); err != nil {
			return nil, err
		}
		node, err := parseScalarCell(trimCell(cell))
		if err != nil {
			return nil, err
		}
		items[i] = node
	}
	return ast.NewArray(items), nil
}

func (p *parser) parseTabularArray(depth int, h header) (ast.Node, error) {
	var rows []ast.Node
	for {
		next, ok, err := p.nextContent(true)
		if err != nil {
			return nil, err
		}
		if !ok || next.Indent < depth+1 {
			break
		}
		if next.Indent > depth+1 {
			return nil, errors.New(errors.IndentationError, "unexpected indentation increase in tabular array").AtLine(next.Number)
		}
		if next.Kind != token.KindRow {
			return nil, errors.New(errors.InvalidSyntax, "expected a tabular row").AtLine(next.Number)
		}
		p.advance()
		cells := splitDelimited(next.Content, byte(h.Delimiter.Rune()))
		if len(cells) != len(h.Fields) {
			if other, ok := findMatchingDelimiter(next.Content, h.Delimiter, len(h.Fields)); ok {
				return nil, errors.Newf(errors.DelimiterMismatch, "tabular row appears to use %q as its delimiter, but the header declares %q", string(other.Rune()), string(h.Delimiter.Rune())).AtLine(next.Number)
			}
			return nil, errors.Newf(errors.WidthMismatch, "tabular row has %d fields, header declares %d", len(cells), len(h.Fields)).AtLine(next.Number)
		}
		obj := ast.NewObject()
		for i, name := range h.Fields {
			if err := p.checkStrictCell(cells[i], h.Delimiter); err != nil {
				return nil, err.(*errors.Error).AtLine(next.Number)
			}
			node, err := parseScalarCell(trimCell(cells[i]))
			if err != nil {
				return nil, err.(*errors.Error).AtLine(next.Number)
			}
			if err := obj.Set(name, node); err != nil {
				return nil, errors.Newf(errors.InvalidSyntax, "duplicate field %q in tabular header", name).AtLine(next.Number)
			}
		}
		rows = append(rows, obj)
	}
	if len(rows) != h.Length {
		return nil, errors.Newf(errors.CountMismatch, "array declared length %d but has %d rows", h.Length, len(rows))
	}
	return ast.NewArray(rows), nil
}

// parseGenericArray parses the dash-less block form: each element occupies
// one or more lines at depth+1, self-delimiting by kind. Scalars are a
// single KindRow line; nested arrays are a single header line; objects are
// a run of field lines terminated by a "---" separator at depth+1 (or by
// the array's own dedent/EOF for the final element, which needs none).
func (p *parser) parseGenericArray(depth int, h header) (ast.Node, error) {
	var items []ast.Node
	for {
		next, ok, err := p.nextContent(true)
		if err != nil {
			return nil, err
		}
		if !ok || next.Indent < depth+1 {
			break
		}
		if next.Indent > depth+1 {
			return nil, errors.New(errors.IndentationError, "unexpected indentation increase in array").AtLine(next.Number)
		}
		switch next.Kind {
		case token.KindRow:
			p.advance()
			node, err := parseScalarCell(trimCell(next.Content))
			if err != nil {
				return nil, err.(*errors.Error).AtLine(next.Number)
			}
			items = append(items, node)
		case token.KindSeparator:
			return nil, errors.New(errors.InvalidSyntax, "unexpected '---' separator").AtLine(next.Number)
		case token.KindField:
			eh, headerOK, herr := tryParseHeader(next.Content)
			if herr != nil {
				return nil, herr.(*errors.Error).AtLine(next.Number)
			}
			if headerOK {
				p.advance()
				child, err := p.parseArray(depth+1, eh)
				if err != nil {
					return nil, err
				}
				items = append(items, child)
				continue
			}
			obj, err := p.parseArrayObjectElement(depth + 1)
			if err != nil {
				return nil, err
			}
			items = append(items, obj)
		default:
			return nil, errors.New(errors.InvalidSyntax, "unrecognized array element").AtLine(next.Number)
		}
	}
	if len(items) != h.Length {
		return nil, errors.Newf(errors.CountMismatch, "array declared length %d but has %d elements", h.Length, len(items))
	}
	return ast.NewArray(items), nil
}

// parseArrayObjectElement parses one object-valued array element at depth:
// a run of field lines, ended by a "---" separator at depth (consumed) or
// by a dedent/EOF that also ends the enclosing array.
func (p *parser) parseArrayObjectElement(depth int) (*ast.Object, error) {
	obj := ast.NewObject()
	for {
		next, ok, err := p.nextContent(true)
		if err != nil {
			return nil, err
		}
		if !ok || next.Indent < depth {
			break
		}
		if next.Indent > depth {
			return nil, errors.New(errors.IndentationError, "unexpected indentation increase").AtLine(next.Number)
		}
		if next.Kind == token.KindSeparator {
			p.advance()
			break
		}
		if next.Kind != token.KindField {
			return nil, errors.New(errors.InvalidSyntax, "expected an object field inside array element").AtLine(next.Number)
		}
		key, value, err := p.parseFieldLine(depth, next)
		if err != nil {
			return nil, err
		}
		if err := obj.Set(key, value); err != nil {
			return nil, errors.Newf(errors.InvalidSyntax, "duplicate key %q", key).AtLine(next.Number)
		}
	}
	return obj, nil
}

// checkStrictCell applies strict mode's extra cell-level checks (spec
// §4.3) to an array cell or a field value: no surplus whitespace around the
// delimiter, no unquoted delimiter character of another style, no redundant
// quoting. Trailing commas surface on their own as a
// CountMismatch/WidthMismatch, since they produce an extra empty trailing
// cell.
func (p *parser) checkStrictCell(raw string, delim token.Delimiter) error {
	if !p.opts.Strict {
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	if raw != trimmed {
		return errors.New(errors.InvalidSyntax, "surplus whitespace around delimiter")
	}
	if trimmed != "" && trimmed[0] != '"' && strings.ContainsAny(trimmed, ",|\t") {
		return errors.New(errors.InvalidSyntax, "unquoted value contains a delimiter character")
	}
	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		unquoted, err := quote.Unquote(trimmed)
		if err == nil && !quote.NeedsQuote(unquoted, delim) {
			return errors.New(errors.InvalidSyntax, "redundant quoting")
		}
	}
	return nil
}
