package geom

import "math"

// EuclideanPointPoint returns the Euclidean distance between p and q.
func EuclideanPointPoint(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// nearestPointInBox returns the point of b closest to p (clamping each
// coordinate of p into b's interval on that axis).
func nearestPointInBox(p Point, b Box) Point {
	return Point{
		X: clamp(p.X, b.X.Min, b.X.Max),
		Y: clamp(p.Y, b.Y.Min, b.Y.Max),
		Z: clamp(p.Z, b.Z.Min, b.Z.Max),
	}
}

// farthestPointInBox returns the vertex of b farthest from p.
func farthestPointInBox(p Point, b Box) Point {
	return Point{
		X: farther(p.X, b.X.Min, b.X.Max),
		Y: farther(p.Y, b.Y.Min, b.Y.Max),
		Z: farther(p.Z, b.Z.Min, b.Z.Max),
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func farther(x, lo, hi float64) float64 {
	if math.Abs(x-lo) >= math.Abs(x-hi) {
		return lo
	}
	return hi
}

// EuclideanPointBox returns the distance from p to the nearest point of b.
// Zero when p is inside (or on the boundary of) b.
func EuclideanPointBox(p Point, b Box) float64 {
	return EuclideanPointPoint(p, nearestPointInBox(p, b))
}

// EuclideanPointBoxMax returns the distance from p to the farthest point
// of b (always a vertex, since distance to a box is convex).
func EuclideanPointBoxMax(p Point, b Box) float64 {
	return EuclideanPointPoint(p, farthestPointInBox(p, b))
}

// EuclideanBoxBox returns the minimum separation between a and b: zero if
// they overlap or touch, else the distance between their closest faces.
func EuclideanBoxBox(a, b Box) float64 {
	dx := axisGap(a.X, b.X)
	dy := axisGap(a.Y, b.Y)
	dz := axisGap(a.Z, b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func axisGap(a, b Interval) float64 {
	if a.Max <= b.Min {
		return b.Min - a.Max
	}
	if b.Max <= a.Min {
		return a.Min - b.Max
	}
	return 0
}

// EuclideanBoxBoxMax returns the maximum possible separation between any
// point of a and any point of b.
func EuclideanBoxBoxMax(a, b Box) float64 {
	dx := axisSpan(a.X, b.X)
	dy := axisSpan(a.Y, b.Y)
	dz := axisSpan(a.Z, b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func axisSpan(a, b Interval) float64 {
	return max(math.Abs(a.Max-b.Min), math.Abs(b.Max-a.Min))
}
