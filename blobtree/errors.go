package blobtree

import "errors"

// Sentinel errors for the BlobOctree facade, matched via errors.Is.
var (
	// ErrOutOfBounds is returned when a reference point given to Insert
	// or Update lies outside the BlobOctree's Bounds(). The region's
	// extent itself is never checked against Bounds().
	ErrOutOfBounds = errors.New("blobtree: reference point out of bounds")
)
