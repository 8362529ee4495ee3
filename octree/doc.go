// Package octree is the point-octree facade: an Octree[V] pairs a fixed
// bounding Box with a ptree.Tree[V], checking every coordinate against
// that box before touching the tree. Bounds failures are reported with
// this package's own sentinels; ptree's errors are returned unchanged.
//
// What:
//
//   - Octree[V]: Insert/Update/Remove/Get/Extend/Len/All/Equal/Bounds/
//     Copy, plus SimpleUnion (same bounds) and GeneralUnion (arbitrary
//     bounds, rebounding both sides to their union box first).
//   - Query helpers built on ptree.ByScore: ByScore itself, plus the
//     concrete scorers ByDistanceFromPoint, ByDistanceFromPointRev,
//     NearestToPoint, WithinDistance and KNearest.
//   - Cross-tree helpers over two Octrees: ByProximity (each point of o
//     with its nearest neighbour in other, ascending by that distance),
//     ByIsolation (the same pairing, descending), PairsByDistance (every
//     pair closer than a threshold, globally ascending by pair distance)
//     and PairsNearby (the same pairs, unordered and without the sort
//     pass PairsByDistance needs).
//
// Why:
//
//   - Keeping the bounds-checking and error-translation layer separate
//     from the tree algebra (ptree) mirrors the teacher's split between
//     a thin orchestrating type (core.Graph) and the algorithms that
//     operate on it — the facade owns policy (bounds, errors), ptree
//     owns mechanism.
//
// Complexity: see ptree's package doc; this layer adds only O(1)
// bounds-checking overhead per call.
//
// Errors:
//
//   - ErrOutOfBounds — a coordinate outside Bounds() was given to
//     Insert/Update/Remove (Get returns its default instead).
//   - ErrBoundsMismatch — SimpleUnion was called on two Octrees with
//     different Bounds().
//   - ptree.ErrDuplicateKey / ptree.ErrMissingKey propagate unwrapped
//     from Insert/Remove.
package octree
