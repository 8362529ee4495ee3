// Package btree implements the persistent blob-octree algebra: the same
// three-variant shape as ptree (Empty / Singleton / Node-of-8), but each
// stored point additionally carries an axis-aligned extent box, and every
// Node caches the union of its descendants' extents.
//
// What:
//
//   - Tree[V]: Empty / Singleton(coords, extent, data) / Node, with a
//     cached Extent() on every variant (absent on Empty, the stored box
//     on Singleton, the union of non-absent child extents on Node,
//     computed once when the Node is built).
//   - Extent-indexed queries (SubsetByExtent, IntersectionWithBox,
//     IntersectWithBox/Line/LineSegment/Plane) apply the same
//     point-predicate/box-predicate three-valued protocol ptree's Subset
//     uses, but evaluated against cached extents rather than the tree's
//     bounding box — so a query can skip a whole subtree the instant its
//     cached extent settles the question.
//   - Reroot collapses a chain of Nodes with seven Empty children down to
//     their one non-Empty descendant, so repeated filtering doesn't leave
//     useless wrapping behind for later traversals to pay for.
//   - PossibleOverlaps is the cross-tree join: every pair of blobs (one
//     from each tree) whose extents are not disjoint. (The grouped form,
//     ByPossibleOverlap, lives in the blobtree facade.)
//     At every Node of self, the other tree is narrowed to the blobs
//     whose extent could meet self's cached extent (via
//     IntersectionWithBox + Reroot) before self's children recurse
//     against that narrowed tree — not by index-matching octants on
//     both sides, since a blob's extent can straddle past the octant its
//     reference point narrows to.
//
// Why:
//
//   - Extended objects (anything with a bounding box, not just a point)
//     need exactly the point-tree's structure plus one cached summary per
//     subtree; keeping it a parallel, self-contained package (rather than
//     bolting extent-awareness onto ptree) mirrors how the original
//     octree_inner/blob_octree_inner split worked, and keeps ptree free
//     of a field every point-only caller would otherwise pay for.
//
// Complexity:
//
//   - Same as ptree for Insert/Update/Remove/Get (O(depth)), plus O(depth)
//     extent recomputation on the path to the root.
//   - PossibleOverlaps is output-sensitive: both
//     operands shrink (via Reroot + extent-pruning) as the recursion
//     descends, instead of degrading to the O(n*m) naive join.
//
// Errors:
//
//   - ErrDuplicateKey, ErrMissingKey — same meaning as in ptree.
package btree
