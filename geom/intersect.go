package geom

import "math"

// Vector is a direction in 3D space; it shares Point's shape but is kept
// distinct so call sites read as "origin + t*direction" rather than
// "point plus point".
type Vector = Point

// LineIntersectsBox reports whether the infinite line through origin in
// direction dir meets b, using the slab method: clip the line's parameter
// range against each axis' pair of planes and check the resulting
// interval is non-empty.
func LineIntersectsBox(origin, dir Point, b Box) bool {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	return clipLine(origin, dir, b, tmin, tmax)
}

// HalflineIntersectsBox reports whether the ray from origin in direction
// dir (t >= 0 only) meets b.
func HalflineIntersectsBox(origin, dir Point, b Box) bool {
	return clipLine(origin, dir, b, 0, math.Inf(1))
}

func clipLine(origin, dir Point, b Box, tmin, tmax float64) bool {
	if !clipAxis(origin.X, dir.X, b.X, &tmin, &tmax) {
		return false
	}
	if !clipAxis(origin.Y, dir.Y, b.Y, &tmin, &tmax) {
		return false
	}
	if !clipAxis(origin.Z, dir.Z, b.Z, &tmin, &tmax) {
		return false
	}
	return tmin <= tmax
}

// clipAxis narrows [*tmin, *tmax] to the sub-range where origin+t*dir
// lies within iv on this axis; returns false if the range becomes empty.
func clipAxis(o, d float64, iv Interval, tmin, tmax *float64) bool {
	if d == 0 {
		// Parallel to this axis' slab: must already be inside it.
		return iv.Min <= o && o <= iv.Max
	}

	t0 := (iv.Min - o) / d
	t1 := (iv.Max - o) / d
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > *tmin {
		*tmin = t0
	}
	if t1 < *tmax {
		*tmax = t1
	}
	return *tmin <= *tmax
}

// LineSegmentIntersectsBox reports whether the closed segment [p, q]
// meets b, by successively clipping the segment's parameter range
// against each axis' slab (the same clip as the line/halfline tests,
// restricted to t in [0, 1]).
func LineSegmentIntersectsBox(p, q Point, b Box) bool {
	dir := Point{q.X - p.X, q.Y - p.Y, q.Z - p.Z}
	return clipLine(p, dir, b, 0, 1)
}

// PlaneFunc evaluates a scalar field at a point; BoxIntersectsPlane treats
// its zero set as the plane (or more general surface) of interest.
type PlaneFunc func(Point) float64

// BoxIntersectsPlane reports whether the implicit surface f(p) == 0
// crosses b: true iff some vertex of b has f >= 0 and some vertex has
// f <= 0 (a sign change, or a touching zero, across the box's corners).
func BoxIntersectsPlane(b Box, f PlaneFunc) bool {
	sawNonNeg, sawNonPos := false, false
	for _, v := range Vertices(b) {
		val := f(v)
		if val >= 0 {
			sawNonNeg = true
		}
		if val <= 0 {
			sawNonPos = true
		}
		if sawNonNeg && sawNonPos {
			return true
		}
	}
	return false
}

// MatrixAction applies m to p as a 3x3 matrix times a column vector.
func MatrixAction(m Matrix, p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}

// ConvexBoxDeform returns the bounding box of f applied to the eight
// vertices of b. f need not be linear; ConvexBoxDeform only assumes the
// image of a box under f is adequately approximated by the hull of its
// transformed corners, which holds exactly for affine f (in particular
// for p -> MatrixAction(m, p)).
func ConvexBoxDeform(f func(Point) Point, b Box) Box {
	verts := Vertices(b)
	out := Box{
		X: Interval{math.Inf(1), math.Inf(-1)},
		Y: Interval{math.Inf(1), math.Inf(-1)},
		Z: Interval{math.Inf(1), math.Inf(-1)},
	}
	for _, v := range verts {
		fv := f(v)
		out.X.Min, out.X.Max = min(out.X.Min, fv.X), max(out.X.Max, fv.X)
		out.Y.Min, out.Y.Max = min(out.Y.Min, fv.Y), max(out.Y.Max, fv.Y)
		out.Z.Min, out.Z.Max = min(out.Z.Min, fv.Z), max(out.Z.Max, fv.Z)
	}
	return out
}
