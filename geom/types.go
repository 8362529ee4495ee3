package geom

// Point is a triple of finite real coordinates in 3D Euclidean space.
type Point struct {
	X, Y, Z float64
}

// Interval is a closed-below, open-above scalar range [Min, Max).
// Min must be <= Max; this is an invariant enforced by callers that
// construct Box values (Subboxes, UnionBox, …), not by Interval itself.
type Interval struct {
	Min, Max float64
}

// Box is an axis-aligned box: the Cartesian product of three Intervals.
// Containment is half-open on the upper bound on every axis (see doc.go).
type Box struct {
	X, Y, Z Interval
}

// Matrix is a 3x3 matrix of float64, used by MatrixAction and
// ConvexBoxDeform to express linear coordinate transforms (rotations,
// scalings, shears) applied to stored points and to bounding boxes.
type Matrix [3][3]float64

// Mid returns the midpoint of the interval.
func (iv Interval) Mid() float64 {
	return (iv.Min + iv.Max) / 2
}
