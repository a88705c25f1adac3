package search

import "container/heap"

// Fringe holds the open nodes of a solve, ordered by integer strategy
// key. When several entries share the minimum key the one inserted first
// is popped first. Entries are never removed except by PopMin; obsolete
// entries are filtered by the engine against its open map.
type Fringe interface {
	Insert(id, key, seq int)
	PopMin() (id int, ok bool)
	Len() int
}

type heapEntry struct {
	id  int
	key int
	seq int
}

// heapFringe is a binary heap ordered by (key, seq). Suited to any
// strategy; A* uses it.
type heapFringe struct {
	entries entryHeap
}

// NewHeapFringe returns an empty heap-backed fringe.
func NewHeapFringe() Fringe {
	return &heapFringe{}
}

func (f *heapFringe) Insert(id, key, seq int) {
	heap.Push(&f.entries, heapEntry{id: id, key: key, seq: seq})
}

func (f *heapFringe) PopMin() (int, bool) {
	if f.entries.Len() == 0 {
		return 0, false
	}
	e := heap.Pop(&f.entries).(heapEntry)
	return e.id, true
}

func (f *heapFringe) Len() int {
	return f.entries.Len()
}

type entryHeap []heapEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) {
	*h = append(*h, x.(heapEntry))
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// bucketFringe keeps one FIFO queue per integer key. All keys are small
// non-negative integers, so popping the minimum is a cursor walk over the
// bucket map. Insertion order within a bucket is preserved, which gives
// the FIFO tie-break for free. UCS uses it.
type bucketFringe struct {
	buckets map[int][]int
	cur     int // no occupied bucket lies below this key
	max     int // highest key ever inserted
	count   int
}

// NewBucketFringe returns an empty bucket-backed fringe.
func NewBucketFringe() Fringe {
	return &bucketFringe{buckets: make(map[int][]int)}
}

func (f *bucketFringe) Insert(id, key, seq int) {
	f.buckets[key] = append(f.buckets[key], id)
	if key < f.cur {
		f.cur = key
	}
	if key > f.max {
		f.max = key
	}
	f.count++
}

func (f *bucketFringe) PopMin() (int, bool) {
	if f.count == 0 {
		return 0, false
	}
	for f.cur <= f.max && len(f.buckets[f.cur]) == 0 {
		f.cur++
	}
	q := f.buckets[f.cur]
	id := q[0]
	f.buckets[f.cur] = q[1:]
	f.count--
	return id, true
}

func (f *bucketFringe) Len() int {
	return f.count
}
