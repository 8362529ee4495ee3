package octree_test

import (
	"math/rand"
	"testing"

	"github.com/arborix/octree3d/geom"
	"github.com/arborix/octree3d/octree"
)

func randomBox(n int, r *rand.Rand) (geom.Box, []geom.Point) {
	bounds := geom.Box{
		X: geom.Interval{Min: 0, Max: 1000},
		Y: geom.Interval{Min: 0, Max: 1000},
		Z: geom.Interval{Min: 0, Max: 1000},
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: r.Float64() * 1000, Y: r.Float64() * 1000, Z: r.Float64() * 1000}
	}
	return bounds, pts
}

// BenchmarkOctree_Insert measures bulk one-at-a-time insertion of N points.
func BenchmarkOctree_Insert(b *testing.B) {
	const n = 5000
	r := rand.New(rand.NewSource(1))
	bounds, pts := randomBox(n, r)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		o := octree.New[int](bounds)
		for j, p := range pts {
			_ = o.Insert(p, j)
		}
	}
}

// BenchmarkOctree_NearestToPoint measures nearest-neighbor lookup cost
// against a tree of N points.
func BenchmarkOctree_NearestToPoint(b *testing.B) {
	const n = 5000
	r := rand.New(rand.NewSource(1))
	bounds, pts := randomBox(n, r)

	o := octree.New[int](bounds)
	for j, p := range pts {
		_ = o.Insert(p, j)
	}
	query := geom.Point{X: 500, Y: 500, Z: 500}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = o.NearestToPoint(query)
	}
}
