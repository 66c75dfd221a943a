package letterhuffman

import (
	"container/heap"
)

// InitializeForest creates one Leaf for each letter with a non-zero count, in
// ascending order from 'A' to 'Z'.
func InitializeForest(freqs Frequencies) []*Leaf {
	leaves := make([]*Leaf, 0, freqs.Distinct())
	for sym := Symbol(0); sym < NumLetters; sym++ {
		if freq := freqs[sym]; freq > 0 {
			leaves = append(leaves, NewLeaf(sym, freq))
		}
	}
	return leaves
}

// type forestEntry + type forest {{{

// forestEntry is one root in the forest.  seq records the order in which
// roots joined the forest: initial leaves first, in order, then each merged
// node as it is created.
type forestEntry struct {
	node Node
	seq  uint32
}

// forest is a min-heap of roots ordered by (weight, seq).
//
// Ordering by seq on ties reproduces a left-to-right scan of a list forest
// using strict "<", where extracted roots are removed in place and merged
// roots are appended at the end: such a list is always sorted by seq.
//
type forest struct {
	list    []forestEntry
	nextSeq uint32
}

func newForest(capacity int) *forest {
	return &forest{list: make([]forestEntry, 0, capacity)}
}

// Add inserts a root at the end of the forest's iteration order.
func (f *forest) Add(node Node) {
	heap.Push(f, forestEntry{node: node, seq: f.nextSeq})
	f.nextSeq++
}

// TakeSmallest removes and returns the root with the smallest weight,
// preferring the earliest root on ties.
func (f *forest) TakeSmallest() Node {
	return heap.Pop(f).(forestEntry).node
}

func (f *forest) Len() int {
	return len(f.list)
}

func (f *forest) Swap(i, j int) {
	f.list[i], f.list[j] = f.list[j], f.list[i]
}

func (f *forest) Less(i, j int) bool {
	a, b := f.list[i], f.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (f *forest) Push(x interface{}) {
	f.list = append(f.list, x.(forestEntry))
}

func (f *forest) Pop() interface{} {
	last := uint(len(f.list)) - 1
	x := f.list[last]
	f.list[last] = forestEntry{}
	f.list = f.list[:last]
	return x
}

var _ heap.Interface = (*forest)(nil)

// }}}
