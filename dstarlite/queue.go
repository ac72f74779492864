package dstarlite

import "container/heap"

// key orders entries in the open list. Keys compare lexicographically on
// (A, B); smaller keys have priority.
type key struct {
	A, B int
}

// less reports whether k is strictly less than other.
func (k key) less(other key) bool {
	if k.A != other.A {
		return k.A < other.A
	}
	return k.B < other.B
}

// geq reports whether k is greater than or equal to other.
func (k key) geq(other key) bool {
	return !k.less(other)
}

// infKey is returned by topKey on an empty queue so termination comparisons
// (kOld >= calculateKey(start)) remain well defined without a special case.
var infKey = key{A: Inf, B: Inf}

type pqItem struct {
	cell Cell
	k    key
}

// openList is the open list U: a min-heap of (key, cell) pairs with at most
// one entry per cell, backed by container/heap, plus an auxiliary
// cell→index map (openList.index) so update/remove/contains run in
// O(log n) instead of a linear scan.
type openList struct {
	items []pqItem
	index map[Cell]int
}

func newOpenList() *openList {
	return &openList{index: make(map[Cell]int)}
}

// heap.Interface

func (q *openList) Len() int { return len(q.items) }

func (q *openList) Less(i, j int) bool { return q.items[i].k.less(q.items[j].k) }

func (q *openList) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.index[q.items[i].cell] = i
	q.index[q.items[j].cell] = j
}

func (q *openList) Push(x interface{}) {
	item := x.(pqItem)
	q.index[item.cell] = len(q.items)
	q.items = append(q.items, item)
}

func (q *openList) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	delete(q.index, item.cell)
	q.items = old[:n-1]
	return item
}

// contains reports whether c currently has an entry in the queue.
func (q *openList) contains(c Cell) bool {
	_, ok := q.index[c]
	return ok
}

func (q *openList) empty() bool { return len(q.items) == 0 }

func (q *openList) size() int { return len(q.items) }

// push inserts c with priority k. The caller guarantees c is not already
// present.
func (q *openList) push(c Cell, k key) {
	heap.Push(q, pqItem{cell: c, k: k})
}

// update replaces c's priority with k, inserting c if it is absent.
// No-op if c is already present with exactly k.
func (q *openList) update(c Cell, k key) {
	idx, ok := q.index[c]
	if !ok {
		q.push(c, k)
		return
	}
	if q.items[idx].k == k {
		return
	}
	q.items[idx].k = k
	heap.Fix(q, idx)
}

// remove deletes c from the queue. No-op if c is absent.
func (q *openList) remove(c Cell) {
	idx, ok := q.index[c]
	if !ok {
		return
	}
	heap.Remove(q, idx)
}

// top returns the minimum-key entry without removing it. Panics if the
// queue is empty; see errEmptyQueue.
func (q *openList) top() (key, Cell) {
	if q.empty() {
		panic(errEmptyQueue)
	}
	item := q.items[0]
	return item.k, item.cell
}

// topKey returns the minimum key, or infKey if the queue is empty.
func (q *openList) topKey() key {
	if q.empty() {
		return infKey
	}
	return q.items[0].k
}

// pop removes and returns the minimum-key entry. Panics if the queue is
// empty; see errEmptyQueue.
func (q *openList) pop() (key, Cell) {
	if q.empty() {
		panic(errEmptyQueue)
	}
	item := heap.Pop(q).(pqItem)
	return item.k, item.cell
}
