package letterhuffman

import (
	"github.com/chronos-tachyon/assert"
)

// BuildTree builds a Huffman tree for the letters counted in freqs and
// returns its root.
//
// The tree is built by repeatedly taking the two lightest roots from the
// forest produced by InitializeForest and merging them into a new Internal
// node, which joins the end of the forest.  The first root taken becomes the
// left child and the second becomes the right child.  Among roots of equal
// weight, the one that joined the forest earliest is taken first, which makes
// the tree shape fully deterministic.
//
// If freqs has no letters at all, ErrEmptyAlphabet is returned.
//
// If freqs has exactly one distinct letter, its Leaf is wrapped in an Internal
// node with a zero-weight Space leaf on the right, so that the letter is coded
// as "0" rather than as the empty string.
//
func BuildTree(freqs Frequencies) (Node, error) {
	return buildTree(InitializeForest(freqs), nil)
}

// BuildTreeWithSpace is like BuildTree, except that a Leaf for Space is
// added to the forest after the letters.  Spaces are not counted by
// CountFrequencies; instead, Space is weighted as strictly the most frequent
// symbol, since spaces dominate ordinary text.
//
// If freqs has no letters at all, ErrEmptyAlphabet is returned.
//
func BuildTreeWithSpace(freqs Frequencies) (Node, error) {
	return buildTree(InitializeForest(freqs), NewLeaf(Space, freqs.Max()+1))
}

func buildTree(leaves []*Leaf, space *Leaf) (Node, error) {
	numLeaves := len(leaves)
	if numLeaves == 0 {
		return nil, ErrEmptyAlphabet
	}

	if numLeaves == 1 && space == nil {
		return NewInternal(leaves[0], NewLeaf(Space, 0)), nil
	}

	f := newForest(numLeaves + 1)
	for _, leaf := range leaves {
		f.Add(leaf)
	}
	if space != nil {
		f.Add(space)
	}

	for f.Len() > 1 {
		a := f.TakeSmallest()
		b := f.TakeSmallest()
		f.Add(NewInternal(a, b))
	}

	root := f.TakeSmallest()
	_, isInternal := root.(*Internal)
	assert.Assertf(isInternal, "root of a tree with %d leaves is not an internal node", numLeaves)
	return root, nil
}
