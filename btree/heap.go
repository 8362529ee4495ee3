package btree

import (
	"container/heap"
	"iter"

	"github.com/arborix/octree3d/geom"
)

// entry mirrors ptree's: either a still-unexpanded Node (isNode) or a
// blob ready to be yielded, tie-broken by insertion sequence.
type entry[V any] struct {
	score  float64
	seq    uint64
	isNode bool

	coords  geom.Point
	payload V

	bounds geom.Box
	n      *node[V]
}

// Heap is a min-heap of best-first search entries. It implements
// container/heap.Interface.
type Heap[V any] struct {
	items []entry[V]
	seq   uint64
}

func (h *Heap[V]) Len() int { return len(h.items) }

func (h *Heap[V]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.score != b.score {
		return a.score < b.score
	}
	return a.seq < b.seq
}

func (h *Heap[V]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *Heap[V]) Push(x any) { h.items = append(h.items, x.(entry[V])) }

func (h *Heap[V]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

func (h *Heap[V]) pushPoint(score float64, coords geom.Point, payload V) {
	h.seq++
	heap.Push(h, entry[V]{score: score, seq: h.seq, coords: coords, payload: payload})
}

func (h *Heap[V]) pushBox(score float64, bounds geom.Box, n *node[V]) {
	h.seq++
	heap.Push(h, entry[V]{score: score, seq: h.seq, isNode: true, bounds: bounds, n: n})
}

// Result is one blob yielded by ByScore, in priority order.
type Result[V any] struct {
	Score   float64
	Coords  geom.Point
	Payload V
}

// ByScore drives the same best-first search as ptree.ByScore, scoring by
// each blob's anchor coordinates; see ptree.ByScore for the full
// admissibility contract on pointScore/boxScore.
func ByScore[V any](root Tree[V], bounds geom.Box, pointScore PointScoreFunc, boxScore BoxScoreFunc) iter.Seq[Result[V]] {
	return func(yield func(Result[V]) bool) {
		h := &Heap[V]{}
		root.Enqueue(h, bounds, pointScore, boxScore)

		for h.Len() > 0 {
			e := heap.Pop(h).(entry[V])
			if e.isNode {
				e.n.expand(h, e.bounds, pointScore, boxScore)
				continue
			}
			if !yield(Result[V]{Score: e.score, Coords: e.coords, Payload: e.payload}) {
				return
			}
		}
	}
}
