// Package ptree implements the persistent point-octree algebra: a
// three-variant tree (Empty / Singleton / Node-of-8) mapping distinct 3D
// coordinates to opaque payloads, with structural-sharing mutation
// (insert/update/remove), set algebra (union/rebound/deform/subset), a
// best-first priority traversal (ByScore), and an O(n log n) bulk builder
// (BuildFromSlice).
//
// What:
//
//   - Tree[V]: the sealed sum type. Exactly one of emptyTree[V],
//     *singleton[V], *node[V] at any point; never stored bounds — every
//     operation threads the caller's current bounding Box through, so
//     nodes hold no box of their own and identical subtrees are
//     shareable regardless of where they sit in a larger tree.
//   - smartNode: the Node constructor used by the operations that can
//     shrink a subtree (Remove, Subset); it collapses to Empty or
//     Singleton whenever no child is a Node and fewer than two children
//     are populated, so those operations never leave a degenerate tree
//     (invariant 2 in the octree spec).
//
// Why:
//
//   - Every octree query this module exposes (nearest neighbour,
//     k-nearest, range, intersection, cross-tree proximity) is a
//     best-first traversal parameterized by two scoring callbacks over
//     this one tree shape; btree repeats the same shape in its own
//     package and adds extent tracking to it.
//
// Complexity:
//
//   - Get/Insert/Update/Remove: O(depth) plus O(depth) new node
//     allocations (the path from root to the touched leaf).
//   - Union/Rebound/Deform: up to O(size of both operands) in the worst
//     case (overlapping, non-nested bounds force full descent).
//   - BuildFromSlice: O(n log n) via repeated three-way Pivot.
//
// Errors:
//
//   - ErrDuplicateKey: Insert with coordinates already present.
//   - ErrMissingKey: Remove (or the equivalent lookup) of absent coordinates.
package ptree
