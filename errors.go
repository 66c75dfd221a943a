package letterhuffman

import (
	"errors"
)

var (
	// ErrEmptyAlphabet is returned when there are no letters to build a
	// Huffman tree from.
	ErrEmptyAlphabet = errors.New("empty alphabet: no letters to build a Huffman tree from")

	// ErrUnknownSymbol is returned when encoding a character that has no
	// entry in the encoding table.
	ErrUnknownSymbol = errors.New("unknown symbol: no code in encoding table")

	// ErrTruncatedCode is returned when a bit sequence ends in the middle
	// of a code.
	ErrTruncatedCode = errors.New("truncated code: bit sequence ends mid-code")

	// ErrMalformedTree is returned when a Huffman tree violates its
	// structural invariants.
	ErrMalformedTree = errors.New("malformed Huffman tree")

	// ErrInvalidBit is returned when a bit sequence contains a character
	// other than '0' or '1'.
	ErrInvalidBit = errors.New("invalid bit: expected '0' or '1'")

	// ErrUnknownCode is returned when a bit sequence contains a code that
	// is not assigned to any symbol.
	ErrUnknownCode = errors.New("unknown code: no symbol assigned")
)
