package btree

import "errors"

// Sentinel errors for the blob-tree algebra; identical meaning to ptree's,
// matched via errors.Is.
var (
	// ErrDuplicateKey is returned by Insert when the given coordinates
	// already name a stored blob.
	ErrDuplicateKey = errors.New("btree: key already present")

	// ErrMissingKey is returned by Remove when the given coordinates do
	// not name a stored blob.
	ErrMissingKey = errors.New("btree: key not present")
)
