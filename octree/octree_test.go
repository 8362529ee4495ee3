package octree_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborix/octree3d/geom"
	"github.com/arborix/octree3d/octree"
	"github.com/arborix/octree3d/ptree"
)

func unitBox() geom.Box {
	return geom.Box{
		X: geom.Interval{Min: 0, Max: 8},
		Y: geom.Interval{Min: 0, Max: 8},
		Z: geom.Interval{Min: 0, Max: 8},
	}
}

func pt(x, y, z float64) geom.Point { return geom.Point{X: x, Y: y, Z: z} }

func TestInsertOutOfBounds(t *testing.T) {
	o := octree.New[int](unitBox())
	err := o.Insert(pt(100, 0, 0), 1)
	assert.True(t, errors.Is(err, octree.ErrOutOfBounds))
}

func TestInsertGetRemove(t *testing.T) {
	o := octree.New[string](unitBox())
	require.NoError(t, o.Insert(pt(1, 1, 1), "a"))
	assert.Equal(t, 1, o.Len())
	assert.Equal(t, "a", o.Get(pt(1, 1, 1), ""))

	require.NoError(t, o.Remove(pt(1, 1, 1)))
	assert.Equal(t, 0, o.Len())
}

func TestInsertDuplicatePropagatesPtreeError(t *testing.T) {
	o := octree.New[int](unitBox())
	require.NoError(t, o.Insert(pt(1, 1, 1), 1))
	err := o.Insert(pt(1, 1, 1), 2)
	assert.True(t, errors.Is(err, ptree.ErrDuplicateKey))
}

func TestSimpleUnionRequiresMatchingBounds(t *testing.T) {
	a := octree.New[int](unitBox())
	other := octree.New[int](geom.Box{X: geom.Interval{0, 4}, Y: geom.Interval{0, 4}, Z: geom.Interval{0, 4}})
	_, err := a.SimpleUnion(other)
	assert.True(t, errors.Is(err, octree.ErrBoundsMismatch))
}

func TestGeneralUnionAcrossDifferentBounds(t *testing.T) {
	a := octree.New[int](geom.Box{X: geom.Interval{0, 4}, Y: geom.Interval{0, 4}, Z: geom.Interval{0, 4}})
	require.NoError(t, a.Insert(pt(1, 1, 1), 1))

	b := octree.New[int](geom.Box{X: geom.Interval{4, 8}, Y: geom.Interval{0, 4}, Z: geom.Interval{0, 4}})
	require.NoError(t, b.Insert(pt(5, 1, 1), 2))

	merged, err := a.GeneralUnion(b)
	require.NoError(t, err)
	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, 1, merged.Get(pt(1, 1, 1), -1))
	assert.Equal(t, 2, merged.Get(pt(5, 1, 1), -1))
}

func TestNearestToPoint(t *testing.T) {
	o := octree.New[string](unitBox())
	require.NoError(t, o.Insert(pt(1, 1, 1), "near"))
	require.NoError(t, o.Insert(pt(7, 7, 7), "far"))

	f, ok := o.NearestToPoint(pt(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "near", f.Payload)
}

func TestNearestToPointOnEmptyTree(t *testing.T) {
	o := octree.New[int](unitBox())
	_, ok := o.NearestToPoint(pt(0, 0, 0))
	assert.False(t, ok)
}

func TestWithinDistance(t *testing.T) {
	o := octree.New[string](unitBox())
	require.NoError(t, o.Insert(pt(1, 1, 1), "near"))
	require.NoError(t, o.Insert(pt(7, 7, 7), "far"))

	var got []string
	for f := range o.WithinDistance(pt(0, 0, 0), 3) {
		got = append(got, f.Payload)
	}
	assert.Equal(t, []string{"near"}, got)
}

func TestKNearest(t *testing.T) {
	o := octree.New[int](unitBox())
	for i := 0; i < 5; i++ {
		require.NoError(t, o.Insert(pt(float64(i), 0, 0), i))
	}

	got := o.KNearest(pt(0, 0, 0), 2)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Payload)
	assert.Equal(t, 1, got[1].Payload)
}

func TestByDistanceFromPointRevIsFarthestFirst(t *testing.T) {
	o := octree.New[string](unitBox())
	require.NoError(t, o.Insert(pt(1, 1, 1), "near"))
	require.NoError(t, o.Insert(pt(7, 7, 7), "far"))

	var order []string
	for f := range o.ByDistanceFromPointRev(pt(0, 0, 0)) {
		order = append(order, f.Payload)
	}
	assert.Equal(t, []string{"far", "near"}, order)
}

func TestPairsNearby(t *testing.T) {
	a := octree.New[string](unitBox())
	require.NoError(t, a.Insert(pt(1, 1, 1), "a"))

	b := octree.New[string](unitBox())
	require.NoError(t, b.Insert(pt(1.5, 1, 1), "b-close"))
	require.NoError(t, b.Insert(pt(7, 7, 7), "b-far"))

	var got []string
	for pair := range a.PairsNearby(b, 1) {
		got = append(got, pair.OtherPayload)
	}
	assert.Equal(t, []string{"b-close"}, got)
}

func TestByProximityIsGloballyAscendingAndFiltersByEpsilon(t *testing.T) {
	a := octree.New[string](unitBox())
	require.NoError(t, a.Insert(pt(1, 1, 1), "near-source"))
	require.NoError(t, a.Insert(pt(7, 0, 0), "far-source"))

	b := octree.New[string](unitBox())
	require.NoError(t, b.Insert(pt(1.1, 1, 1), "close-target"))
	require.NoError(t, b.Insert(pt(0, 7, 7), "distant-target"))

	var order []string
	for p := range a.ByProximity(b, math.Inf(1)) {
		order = append(order, p.Payload)
	}
	assert.Equal(t, []string{"near-source", "far-source"}, order)

	var filtered []string
	for p := range a.ByProximity(b, 0.5) {
		filtered = append(filtered, p.Payload)
	}
	assert.Equal(t, []string{"near-source"}, filtered)
}

func TestByIsolationIsGloballyDescendingAndFiltersByEpsilon(t *testing.T) {
	a := octree.New[string](unitBox())
	require.NoError(t, a.Insert(pt(1, 1, 1), "near-source"))
	require.NoError(t, a.Insert(pt(7, 0, 0), "far-source"))

	b := octree.New[string](unitBox())
	require.NoError(t, b.Insert(pt(1.1, 1, 1), "close-target"))
	require.NoError(t, b.Insert(pt(0, 7, 7), "distant-target"))

	var order []string
	for p := range a.ByIsolation(b, 0) {
		order = append(order, p.Payload)
	}
	assert.Equal(t, []string{"far-source", "near-source"}, order)

	var filtered []string
	for p := range a.ByIsolation(b, 5) {
		filtered = append(filtered, p.Payload)
	}
	assert.Equal(t, []string{"far-source"}, filtered)
}

func TestPairsByDistanceIsGloballyAscending(t *testing.T) {
	a := octree.New[string](unitBox())
	require.NoError(t, a.Insert(pt(1, 1, 1), "a-far"))
	require.NoError(t, a.Insert(pt(3, 3, 3), "a-near"))

	b := octree.New[string](unitBox())
	require.NoError(t, b.Insert(pt(3.2, 3, 3), "b1"))
	require.NoError(t, b.Insert(pt(1.5, 1, 1), "b2"))

	var order []string
	var distances []float64
	for p := range a.PairsByDistance(b, 5) {
		order = append(order, p.Payload+"/"+p.OtherPayload)
		distances = append(distances, p.Distance)
	}
	require.Len(t, order, 4)
	assert.True(t, sort.Float64sAreSorted(distances))
}

// TestCrossTreeQueriesMatchNaiveFilter mirrors the reference
// implementation's BinaryTests: build two trees of points along two
// offset helical curves and check ByProximity, ByIsolation and
// PairsByDistance each against a brute-force O(n*m) computation over
// the same points.
func TestCrossTreeQueriesMatchNaiveFilter(t *testing.T) {
	bounds := geom.Box{
		X: geom.Interval{Min: -1, Max: 1},
		Y: geom.Interval{Min: -1, Max: 1},
		Z: geom.Interval{Min: -1, Max: 1},
	}

	curve := func(phase float64, n int) []geom.Point {
		out := make([]geom.Point, n)
		for i := range out {
			tt := float64(i)
			out[i] = geom.Point{
				X: 0.3 * math.Sin(0.1*tt+phase),
				Y: 0.3 * math.Sin(0.2*tt+phase),
				Z: 0.3 * math.Sin(0.3*tt+phase),
			}
		}
		return out
	}
	pts1 := curve(0, 50)
	pts2 := curve(1.7, 50)

	o1 := octree.New[int](bounds)
	for i, p := range pts1 {
		require.NoError(t, o1.Insert(p, i))
	}
	o2 := octree.New[int](bounds)
	for i, p := range pts2 {
		require.NoError(t, o2.Insert(p, i))
	}

	naiveNearest := func(from, to []geom.Point) []float64 {
		out := make([]float64, len(from))
		for i, p := range from {
			best := math.Inf(1)
			for _, q := range to {
				if d := geom.EuclideanPointPoint(p, q); d < best {
					best = d
				}
			}
			out[i] = best
		}
		return out
	}

	naiveProximity := naiveNearest(pts1, pts2)
	sort.Float64s(naiveProximity)
	var gotProximity []float64
	for p := range o1.ByProximity(o2, math.Inf(1)) {
		gotProximity = append(gotProximity, p.Distance)
	}
	assert.InDeltaSlice(t, naiveProximity, gotProximity, 1e-9)

	naiveIsolation := naiveNearest(pts1, pts2)
	sort.Sort(sort.Reverse(sort.Float64Slice(naiveIsolation)))
	var gotIsolation []float64
	for p := range o1.ByIsolation(o2, 0) {
		gotIsolation = append(gotIsolation, p.Distance)
	}
	assert.InDeltaSlice(t, naiveIsolation, gotIsolation, 1e-9)

	const epsilon = 0.1
	var naivePairs []float64
	for _, p := range pts1 {
		for _, q := range pts2 {
			if d := geom.EuclideanPointPoint(p, q); d < epsilon {
				naivePairs = append(naivePairs, d)
			}
		}
	}
	sort.Float64s(naivePairs)
	var gotPairs []float64
	for p := range o1.PairsByDistance(o2, epsilon) {
		gotPairs = append(gotPairs, p.Distance)
	}
	assert.InDeltaSlice(t, naivePairs, gotPairs, 1e-9)
}

func TestRebound(t *testing.T) {
	o := octree.New[int](unitBox())
	require.NoError(t, o.Insert(pt(1, 1, 1), 1))
	require.NoError(t, o.Insert(pt(7, 7, 7), 2))

	narrowed := o.Rebound(geom.Box{X: geom.Interval{0, 4}, Y: geom.Interval{0, 4}, Z: geom.Interval{0, 4}})
	assert.Equal(t, 1, narrowed.Len())
}

func TestCopyIsIndependent(t *testing.T) {
	o := octree.New[int](unitBox())
	require.NoError(t, o.Insert(pt(1, 1, 1), 1))

	c := o.Copy()
	require.NoError(t, c.Insert(pt(2, 2, 2), 2))

	assert.Equal(t, 1, o.Len())
	assert.Equal(t, 2, c.Len())
}
