package letterhuffman

import (
	"fmt"
	"strings"
)

// Decode recovers text from a string of '0' and '1' characters by walking the
// tree rooted at root: left on '0', right on '1', emitting a character and
// returning to the root whenever a Leaf is reached.
//
// Returns ErrTruncatedCode if bits ends partway through a code,
// ErrInvalidBit if bits contains any other character, and ErrMalformedTree if
// the walk reaches a missing child or a Leaf without a valid Symbol.
//
// A root that is itself a Leaf is treated as having the single Code "0", to
// match BuildEncodingTable; a '1' bit then yields ErrUnknownCode.
//
func Decode(bits string, root Node) (string, error) {
	if err := checkNode(root); err != nil {
		return "", err
	}

	if leaf, ok := root.(*Leaf); ok {
		return decodeLoneLeaf(bits, leaf)
	}

	var sb strings.Builder
	cursor := root.(*Internal)
	start := 0
	for i := 0; i < len(bits); i++ {
		var next Node
		switch bits[i] {
		case '0':
			next = cursor.left
		case '1':
			next = cursor.right
		default:
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[i], i)
		}

		if err := checkNode(next); err != nil {
			return "", fmt.Errorf("at offset %d: %w", i, err)
		}

		switch x := next.(type) {
		case *Leaf:
			sb.WriteByte(x.symbol.Byte())
			cursor = root.(*Internal)
			start = i + 1
		case *Internal:
			cursor = x
		}
	}

	if start != len(bits) {
		return "", fmt.Errorf("%w: %d trailing bits at offset %d", ErrTruncatedCode, len(bits)-start, start)
	}
	return sb.String(), nil
}

func decodeLoneLeaf(bits string, leaf *Leaf) (string, error) {
	ch := leaf.symbol.Byte()
	out := make([]byte, len(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			out[i] = ch
		case '1':
			return "", fmt.Errorf("%w: \"1\" at offset %d", ErrUnknownCode, i)
		default:
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[i], i)
		}
	}
	return string(out), nil
}
