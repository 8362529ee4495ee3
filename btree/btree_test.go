package btree_test

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborix/octree3d/btree"
	"github.com/arborix/octree3d/geom"
)

func unitBox() geom.Box {
	return geom.Box{
		X: geom.Interval{Min: 0, Max: 8},
		Y: geom.Interval{Min: 0, Max: 8},
		Z: geom.Interval{Min: 0, Max: 8},
	}
}

func pt(x, y, z float64) geom.Point { return geom.Point{X: x, Y: y, Z: z} }

func cube(cx, cy, cz, half float64) geom.Box {
	return geom.Box{
		X: geom.Interval{cx - half, cx + half},
		Y: geom.Interval{cy - half, cy + half},
		Z: geom.Interval{cz - half, cz + half},
	}
}

func TestInsertGetRemoveRoundtrip(t *testing.T) {
	b := unitBox()
	tr := btree.Empty[string]()

	tr, err := tr.Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.5), "a")
	require.NoError(t, err)
	tr, err = tr.Insert(b, pt(6, 6, 6), cube(6, 6, 6, 0.5), "b")
	require.NoError(t, err)

	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, "a", tr.Get(b, pt(1, 1, 1), ""))
	assert.Equal(t, "b", tr.Get(b, pt(6, 6, 6), ""))

	tr, err = tr.Remove(b, pt(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestInsertDuplicateKeyErrors(t *testing.T) {
	b := unitBox()
	tr, err := btree.Empty[int]().Insert(b, pt(2, 2, 2), cube(2, 2, 2, 1), 1)
	require.NoError(t, err)

	_, err = tr.Insert(b, pt(2, 2, 2), cube(2, 2, 2, 1), 2)
	assert.True(t, errors.Is(err, btree.ErrDuplicateKey))
}

func TestRemoveMissingKeyErrors(t *testing.T) {
	b := unitBox()
	_, err := btree.Empty[int]().Remove(b, pt(2, 2, 2))
	assert.True(t, errors.Is(err, btree.ErrMissingKey))
}

func TestExtentIsAbsentOnEmpty(t *testing.T) {
	_, ok := btree.Empty[int]().Extent()
	assert.False(t, ok)
}

func TestSingletonExtentIsStoredBox(t *testing.T) {
	box := cube(1, 1, 1, 0.5)
	tr := btree.Singleton(pt(1, 1, 1), box, 1)
	ext, ok := tr.Extent()
	require.True(t, ok)
	assert.Equal(t, box, ext)
}

func TestNodeExtentIsUnionOfChildren(t *testing.T) {
	b := unitBox()
	tr, _ := btree.Empty[int]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.5), 1)
	tr, _ = tr.Insert(b, pt(6, 6, 6), cube(6, 6, 6, 0.5), 2)

	ext, ok := tr.Extent()
	require.True(t, ok)
	assert.InDelta(t, 0.5, ext.X.Min, 1e-9)
	assert.InDelta(t, 6.5, ext.X.Max, 1e-9)
}

func TestIntersectWithBoxFindsOverlappingExtents(t *testing.T) {
	b := unitBox()
	tr, _ := btree.Empty[string]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.5), "near")
	tr, _ = tr.Insert(b, pt(6, 6, 6), cube(6, 6, 6, 0.5), "far")

	query := cube(1, 1, 1, 1)
	var got []string
	for r := range btree.IntersectWithBox(tr, b, query) {
		got = append(got, r.Payload)
	}
	assert.Equal(t, []string{"near"}, got)
}

func TestIntersectWithLineSegment(t *testing.T) {
	b := unitBox()
	tr, _ := btree.Empty[string]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.5), "on-line")
	tr, _ = tr.Insert(b, pt(6, 6, 1), cube(6, 6, 1, 0.5), "off-line")

	var got []string
	for r := range btree.IntersectWithLineSegment(tr, b, pt(0, 1, 0), pt(8, 1, 8)) {
		got = append(got, r.Payload)
	}
	assert.Contains(t, got, "on-line")
	assert.NotContains(t, got, "off-line")
}

func TestReroot(t *testing.T) {
	b := unitBox()
	tr, _ := btree.Empty[int]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.5), 1)
	tr, _ = tr.Insert(b, pt(6, 6, 6), cube(6, 6, 6, 0.5), 2)

	filtered := btree.IntersectionWithBox(tr, b, cube(1, 1, 1, 1))
	rerooted := filtered.Reroot()
	assert.Equal(t, 1, rerooted.Len())
	assert.Equal(t, 1, rerooted.Get(b, pt(1, 1, 1), -1))
}

func TestPossibleOverlapsPrunesDisjointExtents(t *testing.T) {
	b := unitBox()
	a, _ := btree.Empty[string]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 1), "a1")
	a, _ = a.Insert(b, pt(6, 6, 6), cube(6, 6, 6, 0.1), "a2")

	other, _ := btree.Empty[string]().Insert(b, pt(1.5, 1.5, 1.5), cube(1.5, 1.5, 1.5, 0.5), "b1")

	var pairs []string
	for p := range btree.PossibleOverlaps(a, other, b) {
		pairs = append(pairs, p.Payload+"/"+p.OtherPayload)
	}
	assert.Equal(t, []string{"a1/b1"}, pairs)
}

func TestPossibleOverlapsEmptyWhenNoExtentsMeet(t *testing.T) {
	b := unitBox()
	a, _ := btree.Empty[string]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.1), "a1")
	other, _ := btree.Empty[string]().Insert(b, pt(6, 6, 6), cube(6, 6, 6, 0.1), "b1")

	count := 0
	for range btree.PossibleOverlaps(a, other, b) {
		count++
	}
	assert.Equal(t, 0, count)
}

// TestPossibleOverlapsFindsCrossOctantPairs is the counterexample from
// code review: a blob's octant slot is chosen by its reference point,
// but its extent can still straddle into a different octant, so two
// blobs filed under different octant indices by their points can still
// have overlapping extents. Matching self/other by octant index alone
// would miss this pair entirely.
func TestPossibleOverlapsFindsCrossOctantPairs(t *testing.T) {
	b := unitBox()

	a, _ := btree.Empty[string]().Insert(b, pt(3.99, 3.99, 3.99), cube(3.99, 3.99, 3.99, 0.5), "a-near-center")
	a, _ = a.Insert(b, pt(0.1, 0.1, 0.1), cube(0.1, 0.1, 0.1, 0.01), "a-far")

	other, _ := btree.Empty[string]().Insert(b, pt(4.01, 4.01, 4.01), cube(4.01, 4.01, 4.01, 0.5), "b-near-center")
	other, _ = other.Insert(b, pt(7.9, 7.9, 7.9), cube(7.9, 7.9, 7.9, 0.01), "b-far")

	var pairs []string
	for p := range btree.PossibleOverlaps(a, other, b) {
		pairs = append(pairs, p.Payload+"/"+p.OtherPayload)
	}
	assert.Equal(t, []string{"a-near-center/b-near-center"}, pairs)
}

// TestPossibleOverlapsMatchesNaiveJoin builds two trees along a helical
// curve and checks the pruned join against a brute-force O(n*m) filter
// over every pair, byte-for-byte (as a set, since the two algorithms
// need not visit pairs in the same order).
func TestPossibleOverlapsMatchesNaiveJoin(t *testing.T) {
	b := geom.Box{
		X: geom.Interval{Min: -2, Max: 2},
		Y: geom.Interval{Min: -2, Max: 2},
		Z: geom.Interval{Min: -2, Max: 2},
	}

	type blob struct {
		p geom.Point
		e geom.Box
		n string
	}
	helix := func(prefix string, n int, phase float64) []blob {
		out := make([]blob, n)
		for i := 0; i < n; i++ {
			tt := float64(i)
			x := 0.1 * math.Sin(0.1*tt+phase)
			y := 0.1 * math.Sin(0.2*tt+phase)
			z := -1.5 + 3*float64(i)/float64(n-1)
			out[i] = blob{
				p: pt(x, y, z),
				e: cube(x, y, z, 0.08),
				n: fmt.Sprintf("%s%d", prefix, i),
			}
		}
		return out
	}

	selfBlobs := helix("a", 100, 0)
	otherBlobs := helix("b", 100, 1.3)

	a := btree.Empty[string]()
	for _, bl := range selfBlobs {
		var err error
		a, err = a.Insert(b, bl.p, bl.e, bl.n)
		require.NoError(t, err)
	}
	other := btree.Empty[string]()
	for _, bl := range otherBlobs {
		var err error
		other, err = other.Insert(b, bl.p, bl.e, bl.n)
		require.NoError(t, err)
	}

	var naive []string
	for _, s := range selfBlobs {
		for _, o := range otherBlobs {
			if !geom.BoxesDisjoint(s.e, o.e) {
				naive = append(naive, s.n+"/"+o.n)
			}
		}
	}
	sort.Strings(naive)

	var got []string
	for p := range btree.PossibleOverlaps(a, other, b) {
		got = append(got, p.Payload+"/"+p.OtherPayload)
	}
	sort.Strings(got)

	assert.Equal(t, naive, got)
}

func TestEqualComparesExtentsAndPayloads(t *testing.T) {
	b := unitBox()
	a, _ := btree.Empty[int]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.5), 1)
	c, _ := btree.Empty[int]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.7), 1)
	assert.False(t, a.Equal(c), "differing extents must not compare equal")

	d, _ := btree.Empty[int]().Insert(b, pt(1, 1, 1), cube(1, 1, 1, 0.5), 1)
	assert.True(t, a.Equal(d))
}
