package toon

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/toonfmt/toon/ast"
	"github.com/toonfmt/toon/quote"
	"github.com/toonfmt/toon/token"
)

// Marshaler may be implemented by a type to customize its own encoding.
// The returned bytes must themselves be a valid TOON value document; they
// are decoded and substituted in place of the value implementing Marshaler.
type Marshaler interface {
	MarshalTOON() ([]byte, error)
}

// Encoder writes TOON documents to an io.Writer, mirroring
// github.com/goccy/go-yaml's NewEncoder(io.Writer, ...EncodeOption) shape.
type Encoder struct {
	w    io.Writer
	opts EncodeOptions
}

// NewEncoder returns an Encoder writing to w, configured by opts.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	o := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Encoder{w: w, opts: o}
}

// Encode writes v's TOON encoding to the Encoder's underlying writer.
func (e *Encoder) Encode(v interface{}) error {
	node, err := valueToNode(reflect.ValueOf(v))
	if err != nil {
		return err
	}
	var b strings.Builder
	encodeDocument(&b, node, e.opts)
	_, err = io.WriteString(e.w, b.String())
	return err
}

// Marshal serializes v into a TOON document (spec §6, core Encoder).
//
// Maps, slices/arrays, structs, and scalars are accepted. Struct fields are
// only marshaled if exported, using the field name lowercased as the
// default key; a "toon" tag overrides the key and carries the "omitempty"
// and "inline" flags.
func Marshal(v interface{}, opts ...EncodeOption) ([]byte, error) {
	o := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	node, err := valueToNode(reflect.ValueOf(v))
	if err != nil {
		return nil, fmt.Errorf("toon: failed to marshal: %w", err)
	}
	var b strings.Builder
	encodeDocument(&b, node, o)
	return []byte(b.String()), nil
}

// MarshalTo writes v's TOON encoding to w, the streaming counterpart to
// Marshal (spec §6's Encoder surface).
func MarshalTo(w io.Writer, v interface{}, opts ...EncodeOption) error {
	return NewEncoder(w, opts...).Encode(v)
}

// MarshalNode encodes an already-built ast.Node directly, skipping the
// reflection walk Marshal does for arbitrary Go values. Collaborators that
// build a Node themselves (the JSON and YAML adapters) use this.
func MarshalNode(node ast.Node, opts ...EncodeOption) ([]byte, error) {
	o := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var b strings.Builder
	encodeDocument(&b, node, o)
	return []byte(b.String()), nil
}

func encodeDocument(b *strings.Builder, root ast.Node, opts EncodeOptions) {
	switch v := root.(type) {
	case *ast.Object:
		if !v.IsEmpty() {
			encodeObjectFields(b, v, 0, opts)
		}
	case ast.Array:
		encodeArrayField(b, "", v, 0, opts, true, false)
	default:
		b.WriteString(scalarText(root, opts.Delimiter))
		b.WriteByte('\n')
	}
}

func encodeObjectFields(b *strings.Builder, obj *ast.Object, depth int, opts EncodeOptions) {
	for _, f := range obj.Fields {
		key, value := f.Key, f.Value
		folded := false
		if opts.FlattenDepth > 0 {
			key, value, folded = foldKey(key, value, opts.FlattenDepth)
		}
		switch vv := value.(type) {
		case *ast.Object:
			writeIndent(b, depth, opts.IndentUnit)
			b.WriteString(keyText(key, folded))
			if vv.IsEmpty() {
				b.WriteString(": {}\n")
			} else {
				b.WriteString(":\n")
				encodeObjectFields(b, vv, depth+1, opts)
			}
		case ast.Array:
			encodeArrayField(b, key, vv, depth, opts, false, folded)
		default:
			writeIndent(b, depth, opts.IndentUnit)
			b.WriteString(keyText(key, folded))
			b.WriteString(": ")
			b.WriteString(scalarText(value, opts.Delimiter))
			b.WriteByte('\n')
		}
	}
}

// keyText renders a (possibly dot-folded) object key. A folded key's
// segments are only ever joined when each segment is itself bare-safe
// (foldKey's precondition), so the joined path never needs quoting.
func keyText(key string, folded bool) string {
	if folded {
		return key
	}
	return quote.QuoteKey(key)
}

func encodeArrayField(b *strings.Builder, key string, arr ast.Array, depth int, opts EncodeOptions, root, folded bool) {
	keyPart := ""
	if !root {
		keyPart = keyText(key, folded)
	}
	n := len(arr.Items)
	marker := delimiterMarker(opts.Delimiter)

	if n == 0 {
		writeIndent(b, depth, opts.IndentUnit)
		b.WriteString(keyPart)
		b.WriteString("[0]" + marker + ":\n")
		return
	}

	if allScalars(arr.Items) {
		line := keyPart + "[" + strconv.Itoa(n) + "]" + marker + ": " + joinScalars(arr.Items, opts.Delimiter)
		if depth*opts.IndentUnit+len(line) <= opts.InlineThreshold {
			writeIndent(b, depth, opts.IndentUnit)
			b.WriteString(line)
			b.WriteByte('\n')
			return
		}
		writeIndent(b, depth, opts.IndentUnit)
		b.WriteString(keyPart)
		b.WriteString("[" + strconv.Itoa(n) + "]" + marker + ":\n")
		for _, item := range arr.Items {
			writeIndent(b, depth+1, opts.IndentUnit)
			b.WriteString(scalarText(item, opts.Delimiter))
			b.WriteByte('\n')
		}
		return
	}

	if fields, ok := uniformFields(arr.Items); ok {
		writeIndent(b, depth, opts.IndentUnit)
		b.WriteString(keyPart)
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = quote.QuoteKey(f)
		}
		b.WriteString("[" + strconv.Itoa(n) + " " + strings.Join(quoted, ",") + "]" + marker + ":\n")
		for _, item := range arr.Items {
			obj := item.(*ast.Object)
			cells := make([]string, len(fields))
			for i, fname := range fields {
				v, _ := obj.Get(fname)
				cells[i] = scalarText(v, opts.Delimiter)
			}
			writeIndent(b, depth+1, opts.IndentUnit)
			b.WriteString(strings.Join(cells, string(opts.Delimiter.Rune())))
			b.WriteByte('\n')
		}
		return
	}

	writeIndent(b, depth, opts.IndentUnit)
	b.WriteString(keyPart)
	b.WriteString("[" + strconv.Itoa(n) + "]" + marker + ":\n")
	for i, item := range arr.Items {
		switch vv := item.(type) {
		case *ast.Object:
			encodeObjectFields(b, vv, depth+1, opts)
			if i != len(arr.Items)-1 {
				writeIndent(b, depth+1, opts.IndentUnit)
				b.WriteString("---\n")
			}
		case ast.Array:
			encodeArrayField(b, "", vv, depth+1, opts, true, false)
		default:
			writeIndent(b, depth+1, opts.IndentUnit)
			b.WriteString(scalarText(item, opts.Delimiter))
			b.WriteByte('\n')
		}
	}
}

// foldKey repeatedly descends into a chain of singleton nested objects,
// joining each hop onto key with '.' (spec §4.6), up to maxDepth joins. A
// hop only folds when the segment it contributes is itself bare-safe per
// §4.1 ("Safe" key folding) — each original segment is checked on its own,
// not the growing dotted path, since the path necessarily contains '.'
// once any fold has happened and would otherwise never qualify past the
// first hop. The first segment that would need quoting stops the descent,
// leaving the remaining nesting as-is. The reported folded bool is true
// only if at least one hop was taken.
func foldKey(key string, value ast.Node, maxDepth int) (string, ast.Node, bool) {
	if !quote.IsValidUnquotedKey(key) {
		return key, value, false
	}
	folded := false
	for i := 0; i < maxDepth; i++ {
		obj, ok := value.(*ast.Object)
		if !ok || obj.Len() != 1 {
			break
		}
		childKey := obj.Fields[0].Key
		if !quote.IsValidUnquotedKey(childKey) {
			break
		}
		key = key + "." + childKey
		value = obj.Fields[0].Value
		folded = true
	}
	return key, value, folded
}

func allScalars(items []ast.Node) bool {
	for _, it := range items {
		switch it.(type) {
		case ast.Null, ast.Bool, ast.Number, ast.String:
		default:
			return false
		}
	}
	return true
}

// uniformFields reports the common field list shared by every item when
// all items are non-empty objects with identical keys in the same order
// and exclusively scalar values, the precondition for the tabular form
// (spec §4.3).
func uniformFields(items []ast.Node) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	first, ok := items[0].(*ast.Object)
	if !ok || first.IsEmpty() {
		return nil, false
	}
	keys := first.Keys()
	for _, it := range items {
		obj, ok := it.(*ast.Object)
		if !ok || obj.Len() != len(keys) {
			return nil, false
		}
		for i, k := range keys {
			if obj.Fields[i].Key != k {
				return nil, false
			}
			switch obj.Fields[i].Value.(type) {
			case ast.Null, ast.Bool, ast.Number, ast.String:
			default:
				return nil, false
			}
		}
	}
	return keys, true
}

func joinScalars(items []ast.Node, delim token.Delimiter) string {
	cells := make([]string, len(items))
	for i, it := range items {
		cells[i] = scalarText(it, delim)
	}
	return strings.Join(cells, string(delim.Rune()))
}

func delimiterMarker(d token.Delimiter) string {
	switch d {
	case token.Tab:
		return "\t"
	case token.Pipe:
		return "|"
	default:
		return ""
	}
}

func scalarText(n ast.Node, delim token.Delimiter) string {
	switch v := n.(type) {
	case ast.Null:
		return "null"
	case ast.Bool:
		if v.Value {
			return "true"
		}
		return "false"
	case ast.Number:
		return numberText(v)
	case ast.String:
		return quote.QuoteScalar(v.Value, delim)
	default:
		return ""
	}
}

func numberText(n ast.Number) string {
	s := n.Value.String()
	if !n.Integral && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeIndent(b *strings.Builder, depth, unit int) {
	b.WriteString(strings.Repeat(" ", depth*unit))
}

// valueToNode converts an arbitrary Go value into an ast.Node via
// reflection (spec §6's core Marshal contract).
func valueToNode(rv reflect.Value) (ast.Node, error) {
	if !rv.IsValid() {
		return ast.NewNull(), nil
	}
	if rv.CanInterface() {
		if m, ok := rv.Interface().(Marshaler); ok {
			data, err := m.MarshalTOON()
			if err != nil {
				return nil, err
			}
			return Decode(string(data))
		}
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return ast.NewNull(), nil
		}
		return valueToNode(rv.Elem())
	case reflect.String:
		return ast.NewString(rv.String()), nil
	case reflect.Bool:
		return ast.NewBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.NewIntegerFromInt64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ast.NewIntegerFromInt64(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ast.NewFloat(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return ast.NewNull(), nil
		}
		items := make([]ast.Node, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			n, err := valueToNode(rv.Index(i))
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return ast.NewArray(items), nil
	case reflect.Map:
		if rv.IsNil() {
			return ast.NewNull(), nil
		}
		obj := ast.NewObject()
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			n, err := valueToNode(rv.MapIndex(k))
			if err != nil {
				return nil, err
			}
			if err := obj.Set(fmt.Sprint(k.Interface()), n); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case reflect.Struct:
		return structToNode(rv)
	default:
		return nil, fmt.Errorf("toon: unsupported type %s", rv.Type())
	}
}

func structToNode(rv reflect.Value) (ast.Node, error) {
	fields, err := structFields(rv.Type())
	if err != nil {
		return nil, err
	}
	obj := ast.NewObject()
	for _, sf := range fields {
		fv := rv.FieldByName(sf.FieldName)
		if sf.IsOmitEmpty && isEmptyValue(fv) {
			continue
		}
		n, err := valueToNode(fv)
		if err != nil {
			return nil, err
		}
		if sf.IsInline {
			if inlineObj, ok := n.(*ast.Object); ok {
				for _, f := range inlineObj.Fields {
					if err := obj.Set(f.Key, f.Value); err != nil {
						return nil, err
					}
				}
				continue
			}
		}
		if err := obj.Set(sf.RenderName, n); err != nil {
			return nil, err
		}
	}
	return obj, nil
}
