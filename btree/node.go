package btree

import "github.com/arborix/octree3d/geom"

// node holds exactly eight child subtrees, one per octant, plus the
// cached union of every non-absent child extent — computed once, when
// the node is built, exactly as the original's BlobNode.__init__ does.
type node[V any] struct {
	content      [8]Tree[V]
	cachedExtent geom.Box
	hasExtent    bool
}

// newNode assembles content into a node and computes its cached extent.
func newNode[V any](content [8]Tree[V]) *node[V] {
	var acc geom.Box
	has := false
	for _, c := range content {
		if e, ok := c.Extent(); ok {
			if has {
				acc = geom.UnionBox(acc, e)
			} else {
				acc = e
				has = true
			}
		}
	}
	return &node[V]{content: content, cachedExtent: acc, hasExtent: has}
}

func (n *node[V]) Len() int {
	total := 0
	for _, c := range n.content {
		total += c.Len()
	}
	return total
}

func (n *node[V]) Extent() (geom.Box, bool) { return n.cachedExtent, n.hasExtent }

func (n *node[V]) Get(bounds geom.Box, p geom.Point, dflt V) V {
	idx, sub := geom.Narrow(bounds, p)
	return n.content[idx].Get(sub, p, dflt)
}

func (n *node[V]) Insert(bounds geom.Box, p geom.Point, extent geom.Box, data V) (Tree[V], error) {
	idx, sub := geom.Narrow(bounds, p)
	child, err := n.content[idx].Insert(sub, p, extent, data)
	if err != nil {
		return nil, err
	}

	next := n.content
	next[idx] = child
	// No smartNode here, matching ptree.node.Insert: a single insert
	// cannot introduce a degenerate (fewer than two non-Empty children
	// with none of them a Node) octant split.
	return newNode(next), nil
}

func (n *node[V]) Update(bounds geom.Box, p geom.Point, extent geom.Box, data V, replace bool) Tree[V] {
	idx, sub := geom.Narrow(bounds, p)
	next := n.content
	next[idx] = n.content[idx].Update(sub, p, extent, data, replace)
	return newNode(next)
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
	return newNode(next)
}

func (n *node[V]) Rebound(oldBounds, newBounds geom.Box) Tree[V] {
	if geom.BoxContains(oldBounds, newBounds) {
		// Every anchor point inside newBounds lies in the octant (if any)
		// whose box contains newBounds, so that child alone answers.
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

func (n *node[V]) Each(fn func(geom.Point, geom.Box, V)) {
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

func (n *node[V]) SubsetByExtent(bounds geom.Box, extentFn ExtentPred, nodeFn NodePred) Tree[V] {
	switch nodeFn(n.cachedExtent, n.hasExtent) {
	case True:
		return n
	case False:
		return Empty[V]()
	default:
		var next [8]Tree[V]
		for i, cb := range n.children(bounds) {
			next[i] = cb.tree.SubsetByExtent(cb.box, extentFn, nodeFn)
		}
		return smartNode(next)
	}
}

// Reroot descends through nodes that have exactly one non-Empty child,
// returning that child's own rerooted form, so a tree thinned by
// SubsetByExtent doesn't carry a chain of single-child wrapping into the
// next traversal.
func (n *node[V]) Reroot() Tree[V] {
	var only Tree[V]
	count := 0
	for _, c := range n.content {
		if _, empty := c.(emptyTree[V]); !empty {
			only = c
			count++
		}
	}
	if count == 1 {
		return only.Reroot()
	}
	return n
}

// smartNode assembles eight octants into a tree value, collapsing to
// preserve the "a Node always has at least two non-Empty children, or
// one of them is itself a Node" invariant, on the same rationale as
// ptree.smartNode. Collapsing loses the cached extent of a discarded
// node wrapper, but the surviving variant (Empty or Singleton) computes
// its own Extent() directly, so nothing is recomputed unnecessarily.
func smartNode[V any](content [8]Tree[V]) Tree[V] {
	var only Tree[V]
	for _, c := range content {
		switch c.(type) {
		case *node[V]:
			return newNode(content)
		case *singleton[V]:
			if only != nil {
				return newNode(content)
			}
			only = c
		}
	}
	if only != nil {
		return only
	}
	return Empty[V]()
}
