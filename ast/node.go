package ast

import "fmt"

// Field is a single key/value pair inside an Object, in encounter order.
type Field struct {
	Key   string
	Value Node
}

// Object is a mapping from string keys to Node, iterating in insertion
// order. A sort-by-key container is not acceptable here: canonical encoding
// (spec §4.6, "Determinism") requires emitting keys in the order they were
// inserted, and the decoder must reject duplicate keys at the same object
// (spec §3 invariant 1).
type Object struct {
	Fields []Field
	index  map[string]int
}

func (Object) Type() Type { return ObjectType }
func (Object) node()      {}

// NewObject returns an empty, insertion-ordered Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set appends key/value to the Object. It returns a "duplicate key" error if
// key is already present, since an Object's keys must be distinct (spec §3
// invariant 1) and duplicates must never arise on encode.
func (o *Object) Set(key string, value Node) error {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if _, exists := o.index[key]; exists {
		return fmt.Errorf("toon/ast: duplicate key %q", key)
	}
	o.index[key] = len(o.Fields)
	o.Fields = append(o.Fields, Field{Key: key, Value: value})
	return nil
}

// Get returns the value bound to key and whether it was present.
func (o *Object) Get(key string) (Node, bool) {
	if o == nil || o.index == nil {
		return nil, false
	}
	idx, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.Fields[idx].Value, true
}

// Has reports whether key is bound.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len reports the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Fields)
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		keys[i] = f.Key
	}
	return keys
}

// IsEmpty reports whether the object has no fields.
func (o *Object) IsEmpty() bool {
	return o.Len() == 0
}
