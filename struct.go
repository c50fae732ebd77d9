package toon

import (
	"fmt"
	"reflect"
	"strings"
)

func newDuplicateFieldError(name string) error {
	return fmt.Errorf("toon: duplicate struct field name %q", name)
}

// isEmptyValue reports whether v is the zero value for its type, or (for
// types implementing IsZeroer, e.g. time.Time) whether IsZero reports true.
// It backs the "omitempty" struct tag flag.
func isEmptyValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	if v.CanInterface() {
		if z, ok := v.Interface().(interface{ IsZero() bool }); ok {
			return z.IsZero()
		}
	}
	switch v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return v.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	default:
		return false
	}
}

// StructTagName is the struct tag consulted for Marshal/Unmarshal field
// names and options, mirroring the "key[,flag1[,flag2]]" shape the rest of
// the ecosystem uses for its own struct tags.
const StructTagName = "toon"

type structField struct {
	FieldName   string
	RenderName  string
	IsOmitEmpty bool
	IsInline    bool
}

func parseStructField(field reflect.StructField) *structField {
	tag := field.Tag.Get(StructTagName)
	name := strings.ToLower(field.Name)
	options := strings.Split(tag, ",")
	if options[0] != "" {
		name = options[0]
	}
	sf := &structField{FieldName: field.Name, RenderName: name}
	for _, opt := range options[1:] {
		switch opt {
		case "omitempty":
			sf.IsOmitEmpty = true
		case "inline":
			sf.IsInline = true
		}
	}
	return sf
}

func isIgnoredStructField(field reflect.StructField) bool {
	if field.PkgPath != "" && !field.Anonymous {
		return true
	}
	return field.Tag.Get(StructTagName) == "-"
}

// structFields returns the ordered, tag-resolved fields of structType,
// rejecting a render-name collision the way the rest of the adapter stack
// does (spec's typed adapter, §6.1).
func structFields(structType reflect.Type) ([]*structField, error) {
	var fields []*structField
	seen := map[string]bool{}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if isIgnoredStructField(field) {
			continue
		}
		sf := parseStructField(field)
		if seen[sf.RenderName] {
			return nil, newDuplicateFieldError(sf.RenderName)
		}
		seen[sf.RenderName] = true
		fields = append(fields, sf)
	}
	return fields, nil
}
