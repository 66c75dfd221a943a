package letterhuffman

import (
	"fmt"
	"strings"
)

// Codec bundles a Huffman tree with its encoding Table.  A Codec is immutable
// and safe for concurrent use.
type Codec struct {
	root  Node
	table Table
}

// Train builds a Codec from sample text.  The text must consist only of the
// letters 'A' through 'Z' and spaces; see Filter.
//
// Space is given a Code iff the text contains at least one space.  If the
// text contains no letters, ErrEmptyAlphabet is returned.
//
func Train(text string) (*Codec, error) {
	freqs := CountFrequencies(text)

	build := BuildTree
	if strings.IndexByte(text, ' ') >= 0 {
		build = BuildTreeWithSpace
	}

	root, err := build(freqs)
	if err != nil {
		return nil, err
	}
	return NewCodec(root)
}

// NewCodec builds a Codec from an existing Huffman tree.
func NewCodec(root Node) (*Codec, error) {
	table, err := BuildEncodingTable(root)
	if err != nil {
		return nil, err
	}
	return &Codec{root: root, table: table}, nil
}

// Root returns the root of the Huffman tree.
func (c *Codec) Root() Node {
	return c.root
}

// Table returns the encoding Table.
func (c *Codec) Table() Table {
	return c.table
}

// Fingerprint returns the Fingerprint of the Huffman tree.
func (c *Codec) Fingerprint() uint64 {
	return Fingerprint(c.root)
}

// Encode encodes text into a string of '0' and '1' characters.
func (c *Codec) Encode(text string) (string, error) {
	return EncodeString(text, c.table)
}

// Decode decodes a string of '0' and '1' characters back into text.
func (c *Codec) Decode(bits string) (string, error) {
	return Decode(bits, c.root)
}

// String returns a brief description of this Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec with %d symbols, fingerprint %016x)", c.table.Len(), c.Fingerprint())
}

var _ fmt.Stringer = (*Codec)(nil)
