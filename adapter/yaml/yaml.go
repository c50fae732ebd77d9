// Package yaml converts between TOON and YAML using goccy/go-yaml, the
// library this module's own ambient stack (logging, error rendering,
// functional options) is grounded on.
package yaml

import (
	"bytes"
	"fmt"
	"sort"

	goyaml "github.com/goccy/go-yaml"

	"github.com/toonfmt/toon"
	"github.com/toonfmt/toon/ast"
)

// ToYAML renders a TOON document as YAML text.
func ToYAML(source string, opts ...toon.DecodeOption) ([]byte, error) {
	node, err := toon.Decode(source, opts...)
	if err != nil {
		return nil, err
	}
	return goyaml.Marshal(genericValue(node))
}

// FromYAML decodes YAML text into a TOON document. Decoding targets
// interface{} with goyaml.UseOrderedMap(), so every mapping (top-level and
// nested) comes back as a goyaml.MapSlice instead of a map[string]any —
// this is the reason this adapter is built on goccy/go-yaml rather than
// another YAML library: key order survives this direction the same way it
// does for adapter/json.
func FromYAML(data []byte, opts ...toon.EncodeOption) ([]byte, error) {
	var v interface{}
	dec := goyaml.NewDecoder(bytes.NewReader(data), goyaml.UseOrderedMap())
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("toon/adapter/yaml: failed to parse YAML: %w", err)
	}
	node, err := nodeFromGeneric(v)
	if err != nil {
		return nil, err
	}
	return toon.MarshalNode(node, opts...)
}

func genericValue(n ast.Node) interface{} {
	switch v := n.(type) {
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
			out[i] = genericValue(item)
		}
		return out
	case *ast.Object:
		out := make(map[string]interface{}, v.Len())
		for _, f := range v.Fields {
			out[f.Key] = genericValue(f.Value)
		}
		return out
	default:
		return nil
	}
}

func nodeFromGeneric(v interface{}) (ast.Node, error) {
	switch t := v.(type) {
	case nil:
		return ast.NewNull(), nil
	case bool:
		return ast.NewBool(t), nil
	case string:
		return ast.NewString(t), nil
	case int:
		return ast.NewIntegerFromInt64(int64(t)), nil
	case int64:
		return ast.NewIntegerFromInt64(t), nil
	case uint64:
		return ast.NewIntegerFromInt64(int64(t)), nil
	case float64:
		return ast.NewFloat(t), nil
	case []interface{}:
		items := make([]ast.Node, len(t))
		for i, item := range t {
			n, err := nodeFromGeneric(item)
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return ast.NewArray(items), nil
	case map[string]interface{}:
		obj := ast.NewObject()
		for _, key := range sortedKeys(t) {
			n, err := nodeFromGeneric(t[key])
			if err != nil {
				return nil, err
			}
			if err := obj.Set(key, n); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case goyaml.MapSlice:
		obj := ast.NewObject()
		for _, item := range t {
			n, err := nodeFromGeneric(item.Value)
			if err != nil {
				return nil, err
			}
			if err := obj.Set(fmt.Sprint(item.Key), n); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case map[interface{}]interface{}:
		obj := ast.NewObject()
		strMap := make(map[string]interface{}, len(t))
		for k, val := range t {
			strMap[fmt.Sprint(k)] = val
		}
		for _, key := range sortedKeys(strMap) {
			n, err := nodeFromGeneric(strMap[key])
			if err != nil {
				return nil, err
			}
			if err := obj.Set(key, n); err != nil {
				return nil, err
			}
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("toon/adapter/yaml: unsupported YAML value type %T", v)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
