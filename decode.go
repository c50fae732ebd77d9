package toon

import (
	"fmt"
	"io"
	"reflect"

	"github.com/toonfmt/toon/ast"
	"github.com/toonfmt/toon/parser"
)

// Unmarshaler may be implemented by a type to customize its own decoding.
// data is the TOON document the value was bound to; the rest of the
// surrounding document is decoded normally.
type Unmarshaler interface {
	UnmarshalTOON(data []byte) error
}

// Decoder reads a single TOON document from an io.Reader, mirroring
// github.com/goccy/go-yaml's NewDecoder(io.Reader, ...DecodeOption) shape.
type Decoder struct {
	r    io.Reader
	opts parser.Options
}

// NewDecoder returns a Decoder over r configured by opts.
func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	o := parser.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder{r: r, opts: o}
}

// Decode reads the Decoder's underlying reader to completion, parses it as a
// TOON document, and, if v is non-nil, populates it.
func (d *Decoder) Decode(v interface{}) error {
	node, err := d.DecodeNode()
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return nodeToValue(node, reflect.ValueOf(v))
}

// DecodeNode reads the Decoder's underlying reader to completion and parses
// it into a raw ast.Node, bypassing reflection entirely.
func (d *Decoder) DecodeNode() (ast.Node, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("toon: failed to read source: %w", err)
	}
	return parser.Decode(string(data), d.opts)
}

// Decode parses source into an ast.Node using default options (spec §6,
// core Decoder). Collaborators that need the raw value tree (JSON/YAML
// adapters, the typed adapter) call this directly instead of Unmarshal.
func Decode(source string, opts ...DecodeOption) (ast.Node, error) {
	o := parser.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return parser.Decode(source, o)
}

// Unmarshal decodes source and stores the result in v, which must be a
// non-nil pointer.
//
// Supported targets are *interface{} (ast.Null/Bool/Number/String become
// nil/bool/a numeric Go type/string; Array/Object become []interface{} and
// map[string]interface{}), pointers to map/slice/scalar, and pointers to
// struct (field matching follows Marshal's "toon" tag rules).
func Unmarshal(source []byte, v interface{}, opts ...DecodeOption) error {
	node, err := Decode(string(source), opts...)
	if err != nil {
		return fmt.Errorf("toon: failed to unmarshal: %w", err)
	}
	return nodeToValue(node, reflect.ValueOf(v))
}

// UnmarshalFrom reads a full TOON document from r and stores the result in
// v, the streaming counterpart to Unmarshal (spec §6's Decoder surface).
func UnmarshalFrom(r io.Reader, v interface{}, opts ...DecodeOption) error {
	return NewDecoder(r, opts...).Decode(v)
}

func nodeToValue(node ast.Node, rv reflect.Value) error {
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("toon: Unmarshal target must be a non-nil pointer")
	}
	if rv.CanInterface() {
		if u, ok := rv.Interface().(Unmarshaler); ok {
			data, err := Marshal(genericFromNode(node))
			if err != nil {
				return err
			}
			return u.UnmarshalTOON(data)
		}
	}
	return assign(node, rv.Elem())
}

func assign(node ast.Node, dst reflect.Value) error {
	if !dst.CanSet() {
		return fmt.Errorf("toon: cannot assign to unaddressable value")
	}
	if dst.Kind() == reflect.Interface && dst.NumMethod() == 0 {
		dst.Set(reflect.ValueOf(genericFromNode(node)))
		return nil
	}
	if _, isNull := node.(ast.Null); isNull && (dst.Kind() == reflect.Ptr || dst.Kind() == reflect.Interface || dst.Kind() == reflect.Slice || dst.Kind() == reflect.Map) {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	if dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(node, dst.Elem())
	}
	if dst.CanAddr() && dst.Addr().CanInterface() {
		if u, ok := dst.Addr().Interface().(Unmarshaler); ok {
			data, err := Marshal(genericFromNode(node))
			if err != nil {
				return err
			}
			return u.UnmarshalTOON(data)
		}
	}

	switch v := node.(type) {
	case ast.Null:
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	case ast.Bool:
		if dst.Kind() != reflect.Bool {
			return typeMismatch("bool", dst)
		}
		dst.SetBool(v.Value)
		return nil
	case ast.Number:
		return assignNumber(v, dst)
	case ast.String:
		if dst.Kind() != reflect.String {
			return typeMismatch("string", dst)
		}
		dst.SetString(v.Value)
		return nil
	case ast.Array:
		return assignArray(v, dst)
	case *ast.Object:
		return assignObject(v, dst)
	default:
		return fmt.Errorf("toon: unrecognized node type %T", node)
	}
}

func assignNumber(n ast.Number, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		dst.SetInt(n.Int64())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		dst.SetUint(uint64(n.Int64()))
		return nil
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(n.Float64())
		return nil
	case reflect.String:
		dst.SetString(n.Value.String())
		return nil
	default:
		return typeMismatch("number", dst)
	}
}

func assignArray(arr ast.Array, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(dst.Type(), len(arr.Items), len(arr.Items))
		for i, item := range arr.Items {
			if err := assign(item, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	case reflect.Array:
		if dst.Len() != len(arr.Items) {
			return fmt.Errorf("toon: array length %d does not match target length %d", len(arr.Items), dst.Len())
		}
		for i, item := range arr.Items {
			if err := assign(item, dst.Index(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return typeMismatch("array", dst)
	}
}

func assignObject(obj *ast.Object, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Map:
		out := reflect.MakeMapWithSize(dst.Type(), obj.Len())
		for _, f := range obj.Fields {
			key := reflect.New(dst.Type().Key()).Elem()
			if err := assignMapKey(f.Key, key); err != nil {
				return err
			}
			val := reflect.New(dst.Type().Elem()).Elem()
			if err := assign(f.Value, val); err != nil {
				return err
			}
			out.SetMapIndex(key, val)
		}
		dst.Set(out)
		return nil
	case reflect.Struct:
		fields, err := structFields(dst.Type())
		if err != nil {
			return err
		}
		byName := make(map[string]*structField, len(fields))
		for _, sf := range fields {
			byName[sf.RenderName] = sf
		}
		for _, f := range obj.Fields {
			sf, ok := byName[f.Key]
			if !ok {
				continue
			}
			if err := assign(f.Value, dst.FieldByName(sf.FieldName)); err != nil {
				return err
			}
		}
		return nil
	default:
		return typeMismatch("object", dst)
	}
}

func assignMapKey(key string, dst reflect.Value) error {
	if dst.Kind() == reflect.String {
		dst.SetString(key)
		return nil
	}
	return assign(ast.NewString(key), dst)
}

func typeMismatch(got string, dst reflect.Value) error {
	return fmt.Errorf("toon: cannot decode %s into %s", got, dst.Type())
}

// genericFromNode converts node into the untyped representation Unmarshal
// uses for *interface{} targets: map[string]interface{}, []interface{},
// string, bool, nil, and int64/float64 (by Number.Integral).
func genericFromNode(node ast.Node) interface{} {
	switch v := node.(type) {
	case ast.Null:
		return nil
	case ast.Bool:
		return v.Value
	case ast.Number:
		if v.Integral {
			return v.Int64()
		}
		return v.Float64()
	case ast.String:
		return v.Value
	case ast.Array:
		out := make([]interface{}, len(v.Items))
		for i, item := range v.Items {
			out[i] = genericFromNode(item)
		}
		return out
	case *ast.Object:
		out := make(map[string]interface{}, v.Len())
		for _, f := range v.Fields {
			out[f.Key] = genericFromNode(f.Value)
		}
		return out
	default:
		return nil
	}
}
