// Package toon implements TOON (Token-Oriented Object Notation), a
// line-oriented, indentation-structured textual encoding that is
// value-equivalent to JSON: every TOON document decodes to the same six
// value kinds JSON has (null, bool, number, string, array, object), and
// every JSON value has at least one valid TOON encoding.
//
// The core codec lives across a handful of internal packages: ast (the
// value model), token and scanner (lexical layer), quote (quoting and
// escaping), parser (the decoder), and errors (the structured error
// taxonomy). This package ties them together behind Marshal/Unmarshal and
// the Encoder/Decoder types, the way the rest of the ecosystem's codec
// packages expose their own root package.
package toon

import "github.com/toonfmt/toon/ast"

// Node is the decoded value-model type TOON documents parse into. It is an
// alias for ast.Node so callers working with DecodeNode/Decode don't need
// to import the ast package directly for the common case.
type Node = ast.Node
