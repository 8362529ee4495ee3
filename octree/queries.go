package octree

import (
	"iter"
	"sort"

	"github.com/arborix/octree3d/geom"
	"github.com/arborix/octree3d/ptree"
)

// Found is one point returned by a distance-ordered query.
type Found[V any] struct {
	Distance float64
	Coords   geom.Point
	Payload  V
}

// ByScore iterates stored points in non-decreasing pointScore order,
// pruning subtrees using boxScore; see ptree.ByScore for the
// admissibility contract boxScore must satisfy.
func (o *Octree[V]) ByScore(pointScore ptree.PointScoreFunc, boxScore ptree.BoxScoreFunc) iter.Seq[ptree.Result[V]] {
	return ptree.ByScore(o.tree, o.bounds, pointScore, boxScore)
}

// ByDistanceFromPoint iterates stored points nearest-first, measured
// from p.
func (o *Octree[V]) ByDistanceFromPoint(p geom.Point) iter.Seq[Found[V]] {
	pointScore := func(q geom.Point) ptree.Score { return ptree.Of(geom.EuclideanPointPoint(p, q)) }
	boxScore := func(b geom.Box) ptree.Score { return ptree.Of(geom.EuclideanPointBox(p, b)) }
	return wrapResults(ptree.ByScore(o.tree, o.bounds, pointScore, boxScore))
}

// ByDistanceFromPointRev iterates stored points farthest-first, measured
// from p.
func (o *Octree[V]) ByDistanceFromPointRev(p geom.Point) iter.Seq[Found[V]] {
	pointScore := func(q geom.Point) ptree.Score { return ptree.Of(-geom.EuclideanPointPoint(p, q)) }
	boxScore := func(b geom.Box) ptree.Score { return ptree.Of(-geom.EuclideanPointBoxMax(p, b)) }
	return func(yield func(Found[V]) bool) {
		for r := range ptree.ByScore(o.tree, o.bounds, pointScore, boxScore) {
			if !yield(Found[V]{Distance: -r.Score, Coords: r.Coords, Payload: r.Payload}) {
				return
			}
		}
	}
}

// NearestToPoint returns the point nearest to p, and false if the
// Octree is empty.
func (o *Octree[V]) NearestToPoint(p geom.Point) (Found[V], bool) {
	for f := range o.ByDistanceFromPoint(p) {
		return f, true
	}
	return Found[V]{}, false
}

// WithinDistance iterates every stored point within epsilon of p,
// nearest-first. Pruning both the point score and the box score at
// epsilon (rather than simply stopping ByDistanceFromPoint early once a
// result exceeds epsilon) lets the traversal skip whole subtrees whose
// closest point is already too far, instead of visiting and discarding
// them one at a time.
func (o *Octree[V]) WithinDistance(p geom.Point, epsilon float64) iter.Seq[Found[V]] {
	pointScore := func(q geom.Point) ptree.Score {
		d := geom.EuclideanPointPoint(p, q)
		if d < epsilon {
			return ptree.Of(d)
		}
		return ptree.Absent
	}
	boxScore := func(b geom.Box) ptree.Score {
		d := geom.EuclideanPointBox(p, b)
		if d < epsilon {
			return ptree.Of(d)
		}
		return ptree.Absent
	}
	return wrapResults(ptree.ByScore(o.tree, o.bounds, pointScore, boxScore))
}

// KNearest returns up to k points nearest to p, nearest-first.
func (o *Octree[V]) KNearest(p geom.Point, k int) []Found[V] {
	out := make([]Found[V], 0, k)
	for f := range o.ByDistanceFromPoint(p) {
		if len(out) >= k {
			break
		}
		out = append(out, f)
	}
	return out
}

func wrapResults[V any](seq iter.Seq[ptree.Result[V]]) iter.Seq[Found[V]] {
	return func(yield func(Found[V]) bool) {
		for r := range seq {
			if !yield(Found[V]{Distance: r.Score, Coords: r.Coords, Payload: r.Payload}) {
				return
			}
		}
	}
}

// Pair is one pair of points, one from each of two Octrees, produced by
// a cross-tree proximity query.
type Pair[V any] struct {
	Distance     float64
	Coords       geom.Point
	Payload      V
	OtherCoords  geom.Point
	OtherPayload V
}

// nearestPairs finds, for every point of o, the nearest point of other
// (omitting any point of o for which other is empty), unordered.
func (o *Octree[V]) nearestPairs(other *Octree[V]) []Pair[V] {
	var out []Pair[V]
	o.tree.Each(func(p geom.Point, d V) {
		f, ok := other.NearestToPoint(p)
		if !ok {
			return
		}
		out = append(out, Pair[V]{Distance: f.Distance, Coords: p, Payload: d, OtherCoords: f.Coords, OtherPayload: f.Payload})
	})
	return out
}

// ByProximity iterates, for every point of o, its nearest point of
// other, ascending by that distance — the points of o whose closest
// neighbour in other is nearest come first. Pairs whose distance is at
// least epsilon are omitted; pass math.Inf(1) to keep every point of o.
func (o *Octree[V]) ByProximity(other *Octree[V], epsilon float64) iter.Seq[Pair[V]] {
	pairs := o.nearestPairs(other)
	kept := pairs[:0]
	for _, pr := range pairs {
		if pr.Distance < epsilon {
			kept = append(kept, pr)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Distance < kept[j].Distance })
	return sliceSeq(kept)
}

// ByIsolation iterates, for every point of o, its nearest point of
// other, descending by that distance — the most isolated points of o
// (those farthest from anything in other) come first. Pairs whose
// distance is at most epsilon are omitted; pass 0 to keep every point
// of o that isn't an exact coincidence with a point of other.
func (o *Octree[V]) ByIsolation(other *Octree[V], epsilon float64) iter.Seq[Pair[V]] {
	pairs := o.nearestPairs(other)
	kept := pairs[:0]
	for _, pr := range pairs {
		if pr.Distance > epsilon {
			kept = append(kept, pr)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Distance > kept[j].Distance })
	return sliceSeq(kept)
}

// PairsByDistance iterates every pair of points (one from o, one from
// other) whose distance is less than epsilon, globally ascending by
// that distance across the whole result set (not merely within each
// point of o's own group).
func (o *Octree[V]) PairsByDistance(other *Octree[V], epsilon float64) iter.Seq[Pair[V]] {
	var all []Pair[V]
	o.tree.Each(func(p geom.Point, d V) {
		for f := range other.WithinDistance(p, epsilon) {
			all = append(all, Pair[V]{Distance: f.Distance, Coords: p, Payload: d, OtherCoords: f.Coords, OtherPayload: f.Payload})
		}
	})
	sort.SliceStable(all, func(i, j int) bool { return all[i].Distance < all[j].Distance })
	return sliceSeq(all)
}

// PairsNearby iterates every pair of points (one from o, one from
// other) whose distance is less than epsilon, unordered. Each outer
// point's search still prunes subtrees of other whose closest approach
// already exceeds epsilon; unlike PairsByDistance, no sort pass is
// needed across the whole result set.
func (o *Octree[V]) PairsNearby(other *Octree[V], epsilon float64) iter.Seq[Pair[V]] {
	return func(yield func(Pair[V]) bool) {
		stopped := false
		o.tree.Each(func(p geom.Point, d V) {
			if stopped {
				return
			}
			for f := range other.WithinDistance(p, epsilon) {
				if !yield(Pair[V]{Distance: f.Distance, Coords: p, Payload: d, OtherCoords: f.Coords, OtherPayload: f.Payload}) {
					stopped = true
					return
				}
			}
		})
	}
}

func sliceSeq[V any](pairs []Pair[V]) iter.Seq[Pair[V]] {
	return func(yield func(Pair[V]) bool) {
		for _, pr := range pairs {
			if !yield(pr) {
				return
			}
		}
	}
}
