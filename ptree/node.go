package ptree

import "github.com/arborix/octree3d/geom"

// node holds exactly eight child subtrees, one per octant, indexed the
// same way geom.Subboxes/geom.Narrow index them.
type node[V any] struct {
	content [8]Tree[V]
}

func (n *node[V]) Len() int {
	total := 0
	for _, c := range n.content {
		total += c.Len()
	}
	return total
}

func (n *node[V]) Get(bounds geom.Box, p geom.Point, dflt V) V {
	idx, sub := geom.Narrow(bounds, p)
	return n.content[idx].Get(sub, p, dflt)
}

func (n *node[V]) Insert(bounds geom.Box, p geom.Point, data V) (Tree[V], error) {
	idx, sub := geom.Narrow(bounds, p)
	child, err := n.content[idx].Insert(sub, p, data)
	if err != nil {
		return nil, err
	}

	next := n.content
	next[idx] = child
	// No smartNode here: a single Insert can only ever add an element to
	// an already-valid (non-degenerate) Node, so it cannot introduce a
	// new degeneracy.
	return &node[V]{content: next}, nil
}

func (n *node[V]) Update(bounds geom.Box, p geom.Point, data V, replace bool) Tree[V] {
	idx, sub := geom.Narrow(bounds, p)
	next := n.content
	next[idx] = n.content[idx].Update(sub, p, data, replace)
	return &node[V]{content: next}
}

func (n *node[V]) Remove(bounds geom.Box, p geom.Point) (Tree[V], error) {
	idx, sub := geom.Narrow(bounds, p)
	child, err := n.content[idx].Remove(sub, p)
	if err != nil {
		return nil, err
	}

	next := n.content
	next[idx] = child
	return smartNode(next), nil
}

// children pairs each octant's sub-box with its subtree, in canonical order.
func (n *node[V]) children(bounds geom.Box) [8]childBox[V] {
	sub := geom.Subboxes(bounds)
	var out [8]childBox[V]
	for i := 0; i < 8; i++ {
		out[i] = childBox[V]{box: sub[i], tree: n.content[i]}
	}
	return out
}

type childBox[V any] struct {
	box  geom.Box
	tree Tree[V]
}

func (n *node[V]) Subset(bounds geom.Box, pointFn PointPred, boxFn BoxPred) Tree[V] {
	switch boxFn(bounds) {
	case True:
		return n
	case False:
		return Empty[V]()
	default:
		var next [8]Tree[V]
		for i, cb := range n.children(bounds) {
			next[i] = cb.tree.Subset(cb.box, pointFn, boxFn)
		}
		return smartNode(next)
	}
}

func (n *node[V]) Union(other Tree[V], bounds geom.Box, swapped bool) Tree[V] {
	o, ok := other.(*node[V])
	if !ok {
		return other.Union(n, bounds, !swapped)
	}
	if swapped {
		return o.Union(n, bounds, false)
	}

	sub := geom.Subboxes(bounds)
	var next [8]Tree[V]
	for i := 0; i < 8; i++ {
		next[i] = n.content[i].Union(o.content[i], sub[i], false)
	}
	return &node[V]{content: next}
}

func (n *node[V]) Rebound(oldBounds, newBounds geom.Box) Tree[V] {
	if geom.BoxContains(oldBounds, newBounds) {
		// Every point inside newBounds lies in the octant (if any) whose
		// box contains newBounds, so that child alone answers.
		for _, cb := range n.children(oldBounds) {
			if geom.BoxContains(cb.box, newBounds) {
				return cb.tree.Rebound(cb.box, newBounds)
			}
		}
	}
	if geom.BoxesDisjoint(oldBounds, newBounds) {
		return Empty[V]()
	}

	var acc Tree[V] = Empty[V]()
	for _, cb := range n.children(oldBounds) {
		acc = acc.Union(cb.tree.Rebound(cb.box, newBounds), newBounds, false)
	}
	return acc
}

func (n *node[V]) Deform(oldBounds, newBounds geom.Box, pointFn PointMap, boxFn BoxMap) Tree[V] {
	if geom.BoxesDisjoint(boxFn(oldBounds), newBounds) {
		return Empty[V]()
	}

	var acc Tree[V] = Empty[V]()
	for _, cb := range n.children(oldBounds) {
		acc = acc.Union(cb.tree.Deform(cb.box, newBounds, pointFn, boxFn), newBounds, false)
	}
	return acc
}

func (n *node[V]) Enqueue(h *Heap[V], bounds geom.Box, pointScore PointScoreFunc, boxScore BoxScoreFunc) {
	sc := boxScore(bounds)
	if sc.Ok {
		h.pushBox(sc.Value, bounds, n)
	}
}

// expand enqueues every child of n (invoked by the best-first loop when a
// box entry for n is popped off the heap).
func (n *node[V]) expand(h *Heap[V], bounds geom.Box, pointScore PointScoreFunc, boxScore BoxScoreFunc) {
	for _, cb := range n.children(bounds) {
		cb.tree.Enqueue(h, cb.box, pointScore, boxScore)
	}
}

func (n *node[V]) Each(fn func(geom.Point, V)) {
	for _, c := range n.content {
		c.Each(fn)
	}
}

func (n *node[V]) Equal(other Tree[V]) bool {
	o, ok := other.(*node[V])
	if !ok {
		return false
	}
	for i := 0; i < 8; i++ {
		if !n.content[i].Equal(o.content[i]) {
			return false
		}
	}
	return true
}

// smartNode assembles eight octants into a tree value, collapsing to
// preserve invariant 2 (no Node may have fewer than two non-Empty
// children unless one of them is itself a Node): if any child is itself
// a Node, the result is a Node; else if exactly one child is a Singleton
// and the rest are Empty, the result is that Singleton; else if all are
// Empty, the result is Empty; otherwise (two or more Singleton children)
// the result is a Node.
func smartNode[V any](content [8]Tree[V]) Tree[V] {
	var only Tree[V]
	for _, c := range content {
		switch c.(type) {
		case *node[V]:
			return &node[V]{content: content}
		case *singleton[V]:
			if only != nil {
				return &node[V]{content: content}
			}
			only = c
		}
	}
	if only != nil {
		return only
	}
	return Empty[V]()
}
