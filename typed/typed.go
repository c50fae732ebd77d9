// Package typed is the typed-struct collaborator (spec §6.1): a thin layer
// over the core codec that targets Go structs specifically and, when a
// struct asks for it, validates the decoded value with go-playground's
// validator against its "validate" tags.
package typed

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/toonfmt/toon"
	"github.com/toonfmt/toon/errors"
)

var validate = validator.New()

// Marshal encodes v, which must be a struct or pointer to struct, the same
// way toon.Marshal does; it exists as the typed adapter's symmetric
// counterpart to Unmarshal.
func Marshal(v interface{}, opts ...toon.EncodeOption) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("toon/typed: Marshal requires a struct, got %s", rv.Kind())
	}
	return toon.Marshal(v, opts...)
}

// Unmarshal decodes source into v, a pointer to struct, and then runs
// struct-tag validation (the "validate" tag) over the populated value. A
// validation failure is reported as an *errors.Error of kind errors.Custom
// wrapping the underlying validator.ValidationErrors, never as a decode-time
// structural error, since the TOON grammar was already satisfied by the
// time validation runs.
func Unmarshal(source []byte, v interface{}, opts ...toon.DecodeOption) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("toon/typed: Unmarshal requires a pointer to struct")
	}
	if err := toon.Unmarshal(source, v, opts...); err != nil {
		return err
	}
	if err := validate.Struct(v); err != nil {
		return errors.New(errors.Custom, "struct validation failed").Wrap(err)
	}
	return nil
}
