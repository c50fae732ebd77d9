package parser

import (
	"strings"

	"github.com/toonfmt/toon/ast"
	"github.com/toonfmt/toon/errors"
)

// expandPathsInNode rebuilds n with dotted keys ("a.b: 1") folded into
// nested objects (spec §4.3.1, DecoderOptions.expand_paths=safe). It
// recurses into every object and array so nested dotted keys at any depth
// are expanded, and rejects the case where a path segment would overwrite
// an already-materialized leaf or be shadowed by one.
func expandPathsInNode(n ast.Node) (ast.Node, error) {
	switch v := n.(type) {
	case *ast.Object:
		out := ast.NewObject()
		for _, f := range v.Fields {
			value, err := expandPathsInNode(f.Value)
			if err != nil {
				return nil, err
			}
			segments := strings.Split(f.Key, ".")
			if err := setWithExpansion(out, segments, value); err != nil {
				return nil, err
			}
		}
		return out, nil
	case ast.Array:
		items := make([]ast.Node, len(v.Items))
		for i, item := range v.Items {
			expanded, err := expandPathsInNode(item)
			if err != nil {
				return nil, err
			}
			items[i] = expanded
		}
		return ast.NewArray(items), nil
	default:
		return n, nil
	}
}

// setWithExpansion assigns value at the nested path described by segments
// inside obj, creating intermediate objects as needed. It reports
// ExpansionConflict when a segment would collide with an existing leaf or
// a path already terminates where this one needs to continue.
func setWithExpansion(obj *ast.Object, segments []string, value ast.Node) error {
	head := segments[0]
	if len(segments) == 1 {
		if obj.Has(head) {
			return errors.Newf(errors.ExpansionConflict, "path expansion conflict at key %q", head)
		}
		return obj.Set(head, value)
	}
	existing, ok := obj.Get(head)
	if !ok {
		child := ast.NewObject()
		if err := obj.Set(head, child); err != nil {
			return errors.Newf(errors.ExpansionConflict, "path expansion conflict at key %q", head)
		}
		return setWithExpansion(child, segments[1:], value)
	}
	child, isObject := existing.(*ast.Object)
	if !isObject {
		return errors.Newf(errors.ExpansionConflict, "path expansion conflict at key %q: not an object", head)
	}
	return setWithExpansion(child, segments[1:], value)
}
