package octree

import "errors"

// Sentinel errors for the Octree facade, matched via errors.Is.
var (
	// ErrOutOfBounds is returned when a coordinate given to Insert,
	// Update or Remove lies outside the Octree's Bounds(). Get never
	// returns it; an out-of-bounds Get yields its default.
	ErrOutOfBounds = errors.New("octree: point out of bounds")

	// ErrBoundsMismatch is returned by SimpleUnion when the two operands
	// don't share the same Bounds().
	ErrBoundsMismatch = errors.New("octree: bounds don't agree")
)
