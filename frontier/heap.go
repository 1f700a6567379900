package frontier

import (
	"container/heap"

	"github.com/katalvlaran/mazepath/maze"
)

// Entry is a prioritized candidate path.
type Entry struct {
	Priority int
	Path     *Path
}

// Less orders entries by Priority, then by Path.Compare.
func (e Entry) Less(o Entry) bool {
	if e.Priority != o.Priority {
		return e.Priority < o.Priority
	}
	return e.Path.Compare(o.Path) < 0
}

// Heap is a min-priority Frontier of Entries. Push and Pop are O(log n).
type Heap struct {
	pq entryPQ
}

// NewHeap returns an empty Heap with room for capacity entries.
func NewHeap(capacity int) *Heap {
	return &Heap{pq: make(entryPQ, 0, capacity)}
}

// Push inserts e.
func (h *Heap) Push(e Entry) {
	heap.Push(&h.pq, e)
}

// Pop removes the smallest entry.
func (h *Heap) Pop() (Entry, error) {
	if h.pq.Len() == 0 {
		return Entry{}, ErrEmpty
	}
	return heap.Pop(&h.pq).(Entry), nil
}

// Peek returns the smallest entry without removing it.
func (h *Heap) Peek() (Entry, error) {
	if h.pq.Len() == 0 {
		return Entry{}, ErrEmpty
	}
	return h.pq[0], nil
}

// Len returns the number of stored entries.
func (h *Heap) Len() int { return h.pq.Len() }

// IsEmpty reports whether the heap is empty.
func (h *Heap) IsEmpty() bool { return h.pq.Len() == 0 }

// Find scans for the first stored entry whose path ends at n, in heap-array
// order. It is O(n) and meant for diagnostics only.
func (h *Heap) Find(n maze.Node) (Entry, bool) {
	for _, e := range h.pq {
		if e.Path.Last() == n {
			return e, true
		}
	}
	return Entry{}, false
}

// entryPQ implements heap.Interface over Entry values.
type entryPQ []Entry

func (pq entryPQ) Len() int            { return len(pq) }
func (pq entryPQ) Less(i, j int) bool  { return pq[i].Less(pq[j]) }
func (pq entryPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(Entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = Entry{}
	*pq = old[:n-1]

	return item
}

var (
	_ Frontier[Entry] = (*Heap)(nil)
	_ Frontier[Entry] = (*Queue[Entry])(nil)
	_ Frontier[Entry] = (*Stack[Entry])(nil)
)
