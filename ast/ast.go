// Package ast defines the TOON value model: a closed tagged union over six
// variants (Null, Bool, Number, String, Array, Object) plus the
// insertion-ordered Object container required for canonical encoding.
//
// Node is intentionally a closed sum: every concrete type lives in this
// package and implements an unexported marker method, so no other package
// can introduce a seventh variant. The parser, encoder and adapters switch
// over the six concrete types rather than dispatching through open-ended
// interfaces.
package ast

import "github.com/shopspring/decimal"

// Type identifies which of the six Value-model variants a Node holds.
type Type int

const (
	// UnknownType is the zero value and never appears on a valid Node.
	UnknownType Type = iota
	NullType
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "Null"
	case BoolType:
		return "Bool"
	case NumberType:
		return "Number"
	case StringType:
		return "String"
	case ArrayType:
		return "Array"
	case ObjectType:
		return "Object"
	default:
		return "Unknown"
	}
}

// Node is the closed interface implemented by the six concrete value types.
// Values are immutable once constructed: the decoder builds them bottom-up,
// the encoder treats them as read-only.
type Node interface {
	// Type reports which of the six variants this Node holds.
	Type() Type
	// node is unexported so Node remains a closed sum over this package's
	// concrete types.
	node()
}

// Null is the absence-of-value atom.
type Null struct{}

func (Null) Type() Type { return NullType }
func (Null) node()      {}

// NewNull returns the Null atom.
func NewNull() Node { return Null{} }

// Bool wraps a boolean scalar.
type Bool struct {
	Value bool
}

func (Bool) Type() Type { return BoolType }
func (Bool) node()      {}

// NewBool wraps v as a Node.
func NewBool(v bool) Node { return Bool{Value: v} }

// Number stores a JSON-compatible numeric value as an arbitrary-precision
// decimal plus an integral/fractional flag, so integral values always round
// trip without a spurious decimal point (spec §3) and values outside
// IEEE-754 double range are not silently truncated.
type Number struct {
	Value    decimal.Decimal
	Integral bool
}

func (Number) Type() Type { return NumberType }
func (Number) node()      {}

// NewIntegerFromInt64 builds an integral Number.
func NewIntegerFromInt64(v int64) Node {
	return Number{Value: decimal.NewFromInt(v), Integral: true}
}

// NewFloat builds a fractional Number from a float64.
func NewFloat(v float64) Node {
	return Number{Value: decimal.NewFromFloat(v), Integral: false}
}

// NewNumberFromString parses s (already validated against the TOON numeric
// grammar by the caller) into a Number, preserving whether it carried a
// fractional part or exponent.
func NewNumberFromString(s string, integral bool) (Node, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return Number{Value: d, Integral: integral}, nil
}

// Float64 returns the IEEE-754 double-precision view of the number, for
// collaborators (JSON/YAML adapters, typed adapter) that need it.
func (n Number) Float64() float64 {
	f, _ := n.Value.Float64()
	return f
}

// Int64 returns the integer view of the number. Only meaningful when
// Integral is true; otherwise the value is truncated.
func (n Number) Int64() int64 {
	return n.Value.IntPart()
}

// String is Unicode text holding valid scalar code points only; escape
// handling never touches the stored value (spec §3 invariant 4).
type String struct {
	Value string
}

func (String) Type() Type { return StringType }
func (String) node()      {}

// NewString wraps v as a Node.
func NewString(v string) Node { return String{Value: v} }

// Array is an ordered sequence of Node.
type Array struct {
	Items []Node
}

func (Array) Type() Type { return ArrayType }
func (Array) node()      {}

// NewArray wraps items as a Node. The slice is taken by reference; callers
// must not mutate it afterwards (Values are immutable post-construction).
func NewArray(items []Node) Node { return Array{Items: items} }

// Len reports the number of elements.
func (a Array) Len() int { return len(a.Items) }
