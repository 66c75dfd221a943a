package letterhuffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Table maps each Symbol to its Code.  Symbols that do not appear in the
// Huffman tree have no Code.
//
// The zero Table has no Codes at all.
type Table struct {
	codes [NumSymbols]Code
	count int
}

// BuildEncodingTable derives the Code for every Symbol in the tree rooted at
// root.  A Symbol's Code is its path from the root: 0 for each step to the
// left, 1 for each step to the right.
//
// A root that is itself a Leaf, which BuildTree never produces, is given the
// Code "0" so that no Symbol is ever assigned the empty Code.
//
// If the tree is missing a node, carries an invalid Symbol, assigns a Symbol
// to more than one Leaf, or is too deep for a Code to represent,
// ErrMalformedTree is returned.
//
func BuildEncodingTable(root Node) (Table, error) {
	var t Table

	if err := checkNode(root); err != nil {
		return Table{}, err
	}

	if leaf, ok := root.(*Leaf); ok {
		t.add(leaf.symbol, MakeCode(1, 0))
		return t, nil
	}

	// Walk the tree with an explicit stack.  Right children are pushed
	// before left children, so Leaves are visited in left-to-right order.

	type stackItem struct {
		node Node
		hc   Code
	}

	stack := make([]stackItem, 0, NumSymbols)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		if err := checkNode(item.node); err != nil {
			return Table{}, fmt.Errorf("at %v: %w", item.hc, err)
		}

		switch x := item.node.(type) {
		case *Leaf:
			if _, found := t.Lookup(x.symbol); found {
				return Table{}, fmt.Errorf("%w: symbol %v appears more than once", ErrMalformedTree, x.symbol)
			}
			t.add(x.symbol, item.hc)

		case *Internal:
			if item.hc.Size >= MaxCodeSize {
				return Table{}, fmt.Errorf("%w: tree is deeper than %d levels", ErrMalformedTree, MaxCodeSize)
			}
			stack = append(stack, stackItem{x.right, item.hc.Append(1)})
			stack = append(stack, stackItem{x.left, item.hc.Append(0)})
		}
	}

	return t, nil
}

func (t *Table) add(symbol Symbol, hc Code) {
	t.codes[symbol] = hc
	t.count++
}

// Lookup returns the Code for the given Symbol, if it has one.
func (t Table) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return Code{}, false
	}
	hc := t.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of Symbols that have a Code.
func (t Table) Len() int {
	return t.count
}

// Symbols returns the Symbols that have a Code, in ascending order.
func (t Table) Symbols() []Symbol {
	out := make([]Symbol, 0, t.count)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if t.codes[symbol].Size != 0 {
			out = append(out, symbol)
		}
	}
	return out
}

// IsPrefixFree returns true iff no Code in this Table is a prefix of another.
func (t Table) IsPrefixFree() bool {
	symbols := t.Symbols()
	for _, a := range symbols {
		for _, b := range symbols {
			if a != b && t.codes[b].HasPrefix(t.codes[a]) {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the Table to the given
// writer.
func (t Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%v) = %v\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this Table.
func (t Table) String() string {
	var minSize, maxSize byte
	for i, symbol := range t.Symbols() {
		size := t.codes[symbol].Size
		if i == 0 || size < minSize {
			minSize = size
		}
		if size > maxSize {
			maxSize = size
		}
	}
	return fmt.Sprintf("(Huffman table with %d symbols, with coded lengths of %d .. %d bits)", t.count, minSize, maxSize)
}

// MarshalJSON renders the Table as a JSON object mapping each character to
// its Code as a string of '0' and '1' characters.
func (t Table) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, t.count)
	for _, symbol := range t.Symbols() {
		m[string(rune(symbol.Byte()))] = t.codes[symbol].BitString()
	}
	return json.Marshal(m)
}

var (
	_ fmt.Stringer   = Table{}
	_ json.Marshaler = Table{}
)
