package geom

// PointInBox reports whether p lies in b, using half-open upper bounds on
// every axis: minx <= x < maxx, and likewise for y and z.
func PointInBox(p Point, b Box) bool {
	return b.X.Min <= p.X && p.X < b.X.Max &&
		b.Y.Min <= p.Y && p.Y < b.Y.Max &&
		b.Z.Min <= p.Z && p.Z < b.Z.Max
}

// BoxContains reports whether inner lies entirely within outer.
func BoxContains(outer, inner Box) bool {
	return outer.X.Min <= inner.X.Min && inner.X.Max <= outer.X.Max &&
		outer.Y.Min <= inner.Y.Min && inner.Y.Max <= outer.Y.Max &&
		outer.Z.Min <= inner.Z.Min && inner.Z.Max <= outer.Z.Max
}

// BoxesDisjoint reports whether a and b share no volume. Uses the
// symmetric closed-interval test on every axis (max_a <= min_b or
// max_b <= min_a): the two historical variants of this predicate in the
// original source disagreed on which box's min to compare against which
// box's max on the y/z axes; this is the corrected, symmetric form.
func BoxesDisjoint(a, b Box) bool {
	return a.X.Max <= b.X.Min || b.X.Max <= a.X.Min ||
		a.Y.Max <= b.Y.Min || b.Y.Max <= a.Y.Min ||
		a.Z.Max <= b.Z.Min || b.Z.Max <= a.Z.Min
}

// UnionBox returns the smallest box containing both a and b.
func UnionBox(a, b Box) Box {
	return Box{
		X: Interval{min(a.X.Min, b.X.Min), max(a.X.Max, b.X.Max)},
		Y: Interval{min(a.Y.Min, b.Y.Min), max(a.Y.Max, b.Y.Max)},
		Z: Interval{min(a.Z.Min, b.Z.Min), max(a.Z.Max, b.Z.Max)},
	}
}

// Centroid returns the midpoint of b on every axis.
func Centroid(b Box) Point {
	return Point{b.X.Mid(), b.Y.Mid(), b.Z.Mid()}
}

// Subboxes returns the eight octant boxes of b in canonical ZYX order:
// index 4*[x-high] + 2*[y-high] + 1*[z-high], matching Narrow's octant
// indexing exactly. Bulk-build (BuildFromSlice) and incremental
// insert/Narrow must agree on this order, or extend() and
// octree_from_list would produce structurally different trees for the
// same input.
func Subboxes(b Box) [8]Box {
	mx, my, mz := b.X.Mid(), b.Y.Mid(), b.Z.Mid()
	xs := [2]Interval{{b.X.Min, mx}, {mx, b.X.Max}}
	ys := [2]Interval{{b.Y.Min, my}, {my, b.Y.Max}}
	zs := [2]Interval{{b.Z.Min, mz}, {mz, b.Z.Max}}

	var out [8]Box
	for xi := 0; xi < 2; xi++ {
		for yi := 0; yi < 2; yi++ {
			for zi := 0; zi < 2; zi++ {
				idx := xi*4 + yi*2 + zi
				out[idx] = Box{X: xs[xi], Y: ys[yi], Z: zs[zi]}
			}
		}
	}

	return out
}

// Vertices returns the eight corners of b.
func Vertices(b Box) [8]Point {
	xs := [2]float64{b.X.Min, b.X.Max}
	ys := [2]float64{b.Y.Min, b.Y.Max}
	zs := [2]float64{b.Z.Min, b.Z.Max}

	var out [8]Point
	i := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				out[i] = Point{x, y, z}
				i++
			}
		}
	}

	return out
}

// Narrow returns the octant index of p within bounds and the sub-box of
// that octant, using the same ZYX bit convention as Subboxes: bit 2 (x),
// bit 1 (y), bit 0 (z), set when the coordinate is on the high
// (">=midpoint") side.
func Narrow(bounds Box, p Point) (int, Box) {
	mx, my, mz := bounds.X.Mid(), bounds.Y.Mid(), bounds.Z.Mid()

	idx := 0
	newX := Interval{bounds.X.Min, mx}
	if p.X >= mx {
		idx += 4
		newX = Interval{mx, bounds.X.Max}
	}

	newY := Interval{bounds.Y.Min, my}
	if p.Y >= my {
		idx += 2
		newY = Interval{my, bounds.Y.Max}
	}

	newZ := Interval{bounds.Z.Min, mz}
	if p.Z >= mz {
		idx++
		newZ = Interval{mz, bounds.Z.Max}
	}

	return idx, Box{newX, newY, newZ}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
