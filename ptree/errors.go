package ptree

import "errors"

// Sentinel errors for the point-tree algebra. Callers should match them
// with errors.Is; messages are never wrapped at the definition site.
var (
	// ErrDuplicateKey is returned by Insert when the given coordinates
	// already name a stored point.
	ErrDuplicateKey = errors.New("ptree: key already present")

	// ErrMissingKey is returned by Remove when the given coordinates do
	// not name a stored point.
	ErrMissingKey = errors.New("ptree: key not present")
)
