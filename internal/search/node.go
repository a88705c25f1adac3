package search

import "upside-down-research.com/oss/swapsearch/internal/layout"

// Node is one record in the solver's arena. Parent links are arena
// indices rather than pointers, so the whole search tree lives in a
// single growable slice and path reconstruction is an index walk. A node
// is never mutated after it has been handed to the fringe.
type Node struct {
	Layout layout.Layout
	Parent int // arena index of the predecessor, -1 for the root
	G      int // accumulated path cost from the root
	Seq    int // per-solve insertion number, breaks key ties FIFO
	Key    int // strategy key, computed once at insertion
}
