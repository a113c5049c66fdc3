// Package queue provides a value-based binary min-heap of (index, distance)
// pairs used to visit items in ascending distance order.
package queue

// Item is an entry of the queue.
type Item struct {
	Index    int     // Index identifies the item in the caller's slice.
	Distance float64 // Distance is the priority of the item.
}

// MinQueue is a binary min-heap ordered by Distance, ties broken by the
// smaller Index so that popping order is fully deterministic.
type MinQueue struct {
	items []Item
}

// NewMin initializes a new min-queue with the given capacity.
func NewMin(capacity int) *MinQueue {
	return &MinQueue{
		items: make([]Item, 0, capacity),
	}
}

// Len returns the number of elements in the queue.
func (q *MinQueue) Len() int { return len(q.items) }

// Reset clears the queue for reuse.
func (q *MinQueue) Reset() {
	q.items = q.items[:0]
}

// Top returns the smallest item without removing it.
func (q *MinQueue) Top() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// Push inserts an item while maintaining the heap invariant.
func (q *MinQueue) Push(item Item) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the smallest item.
func (q *MinQueue) Pop() (Item, bool) {
	n := len(q.items)
	if n == 0 {
		return Item{}, false
	}
	root := q.items[0]
	last := q.items[n-1]
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root, true
}

func (q *MinQueue) less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Index < b.Index
}

func (q *MinQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *MinQueue) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
