package letterhuffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree: either a *Leaf or an *Internal.  No other
// types implement Node.
type Node interface {
	// Weight returns the frequency weight of the subtree rooted here.
	Weight() int

	isNode()
}

// Leaf is a Node that carries exactly one Symbol.
type Leaf struct {
	symbol Symbol
	weight int
}

// NewLeaf constructs a Leaf.
func NewLeaf(symbol Symbol, weight int) *Leaf {
	assert.Assertf(symbol.IsValid(), "invalid symbol %d", int(symbol))
	assert.Assertf(weight >= 0, "negative weight %d for symbol %v", weight, symbol)
	return &Leaf{symbol: symbol, weight: weight}
}

// Symbol returns the Symbol carried by this Leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight returns the frequency of this Leaf's Symbol.
func (leaf *Leaf) Weight() int {
	return leaf.weight
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children and no Symbol.  Its weight is
// the sum of its children's weights.
type Internal struct {
	left   Node
	right  Node
	weight int
}

// NewInternal constructs an Internal node that takes ownership of left and
// right.  Both children are required.
func NewInternal(left Node, right Node) *Internal {
	assert.Assertf(!isNilNode(left), "left child is nil")
	assert.Assertf(!isNilNode(right), "right child is nil")

	a, b := left.Weight(), right.Weight()

	// Compute sum using saturating addition
	sum := a + b
	if sum < a {
		sum = math.MaxInt
	}

	return &Internal{left: left, right: right, weight: sum}
}

// Left returns the child reached by a 0 bit.
func (node *Internal) Left() Node {
	return node.left
}

// Right returns the child reached by a 1 bit.
func (node *Internal) Right() Node {
	return node.right
}

// Child returns Left() for bit 0 and Right() for any other bit.
func (node *Internal) Child(bit uint32) Node {
	if bit == 0 {
		return node.left
	}
	return node.right
}

// Weight returns the combined frequency of all leaves below this node.
func (node *Internal) Weight() int {
	return node.weight
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// checkNode reports ErrMalformedTree for nil nodes and for leaves that do not
// carry a valid Symbol.  An *Internal built outside NewInternal can still be
// missing children; callers check those at the point of descent.
func checkNode(node Node) error {
	switch x := node.(type) {
	case *Leaf:
		if x == nil {
			return fmt.Errorf("%w: nil leaf", ErrMalformedTree)
		}
		if !x.symbol.IsValid() {
			return fmt.Errorf("%w: leaf has invalid symbol %d", ErrMalformedTree, int(x.symbol))
		}
	case *Internal:
		if x == nil {
			return fmt.Errorf("%w: nil internal node", ErrMalformedTree)
		}
	default:
		return fmt.Errorf("%w: nil node", ErrMalformedTree)
	}
	return nil
}

func isNilNode(node Node) bool {
	switch x := node.(type) {
	case *Leaf:
		return x == nil
	case *Internal:
		return x == nil
	default:
		return true
	}
}

// Fingerprint returns a 64-bit hash of the tree's shape and leaf assignment.
// Two trees have the same Fingerprint iff (barring hash collisions) every
// Symbol has the same Code in both.  Weights do not contribute.
func Fingerprint(root Node) uint64 {
	d := xxhash.New()
	var walk func(Node)
	walk = func(node Node) {
		switch x := node.(type) {
		case *Leaf:
			if x == nil {
				_, _ = d.Write([]byte{'?'})
				return
			}
			_, _ = d.Write([]byte{'L', byte(x.symbol)})
		case *Internal:
			if x == nil {
				_, _ = d.Write([]byte{'?'})
				return
			}
			_, _ = d.Write([]byte{'I'})
			walk(x.left)
			walk(x.right)
		default:
			_, _ = d.Write([]byte{'?'})
		}
	}
	walk(root)
	return d.Sum64()
}

// DumpTree writes a programmer-readable debugging dump of the tree rooted at
// root to the given writer.
func DumpTree(w io.Writer, root Node) (int64, error) {
	var buf bytes.Buffer
	var walk func(node Node, depth int, label string)
	walk = func(node Node, depth int, label string) {
		buf.WriteString(strings.Repeat("\t", depth))
		buf.WriteString(label)
		if isNilNode(node) {
			buf.WriteString("nil\n")
			return
		}
		switch x := node.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "Leaf(%v, %d)\n", x.symbol, x.weight)
		case *Internal:
			fmt.Fprintf(&buf, "Internal(%d)\n", x.weight)
			walk(x.left, depth+1, "0: ")
			walk(x.right, depth+1, "1: ")
		}
	}
	walk(root, 0, "")
	return buf.WriteTo(w)
}
