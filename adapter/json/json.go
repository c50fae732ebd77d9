// Package json converts between TOON and JSON without going through an
// intermediate map[string]interface{}, so object key order survives the
// round trip the way spec §6.2 requires (Go's encoding/json unmarshals
// objects into maps, which would otherwise discard that order).
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/toonfmt/toon"
	"github.com/toonfmt/toon/ast"
)

// ToJSON renders a TOON document as JSON text. Object field order is
// written out directly rather than round-tripped through
// map[string]interface{} and encoding/json.Marshal, which would otherwise
// alphabetize keys and discard the source order.
func ToJSON(source string, opts ...toon.DecodeOption) ([]byte, error) {
	node, err := toon.Decode(source, opts...)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := writeJSONValue(&b, node); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeJSONValue(b *bytes.Buffer, n ast.Node) error {
	switch v := n.(type) {
	case ast.Null:
		b.WriteString("null")
	case ast.Bool:
		if v.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ast.Number:
		b.WriteString(v.Value.String())
	case ast.String:
		data, err := json.Marshal(v.Value)
		if err != nil {
			return err
		}
		b.Write(data)
	case ast.Array:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSONValue(b, item); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case *ast.Object:
		b.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			b.Write(key)
			b.WriteByte(':')
			if err := writeJSONValue(b, f.Value); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("toon/adapter/json: unrecognized node type %T", n)
	}
	return nil
}

// FromJSON decodes JSON text into a TOON document, preserving the source
// object's key order by streaming tokens instead of unmarshaling into a
// map.
func FromJSON(data []byte, opts ...toon.EncodeOption) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	return toon.MarshalNode(node, opts...)
}

// decodeJSONValue reads exactly one JSON value from dec using its Token
// stream, building an ast.Node directly so object field order matches
// source order.
func decodeJSONValue(dec *json.Decoder) (ast.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (ast.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := ast.NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("toon/adapter/json: expected string object key, got %v", keyTok)
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				if err := obj.Set(key, value); err != nil {
					return nil, err
				}
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			var items []ast.Node
			for dec.More() {
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, value)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return ast.NewArray(items), nil
		default:
			return nil, fmt.Errorf("toon/adapter/json: unexpected delimiter %v", t)
		}
	case nil:
		return ast.NewNull(), nil
	case bool:
		return ast.NewBool(t), nil
	case json.Number:
		integral := true
		for _, r := range string(t) {
			if r == '.' || r == 'e' || r == 'E' {
				integral = false
				break
			}
		}
		node, err := ast.NewNumberFromString(string(t), integral)
		if err != nil {
			return nil, err
		}
		return node, nil
	case string:
		return ast.NewString(t), nil
	default:
		return nil, fmt.Errorf("toon/adapter/json: unsupported JSON token %T", tok)
	}
}
