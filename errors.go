package huffman

import (
	"errors"
)

// ErrInvalidInput is returned when the text to compress has fewer than two
// distinct symbols.  Such an alphabet has no decision to encode.
var ErrInvalidInput = errors.New("input must contain at least two distinct symbols")

// ErrMalformedEncoding is returned when a flattened tree or a message bit
// sequence is not well-formed.
var ErrMalformedEncoding = errors.New("malformed Huffman encoding")

// ErrUnknownSymbol is returned when encoding a symbol that has no leaf in the
// tree.
var ErrUnknownSymbol = errors.New("symbol has no encoding in tree")
