// Package geom provides the pure geometric primitives that the octree
// packages (ptree, btree) are built on: axis-aligned boxes, points, octant
// subdivision, and the distance/intersection predicates used to drive
// best-first search.
//
// What:
//
//   - Point: a triple of finite float64 coordinates (x, y, z).
//   - Box: an axis-aligned box with half-open containment — a point
//     (x, y, z) is in a box when minx <= x < maxx, and likewise for y, z.
//     The half-open convention is load-bearing: Narrow and Subboxes agree
//     on which octant a boundary point belongs to only because of it.
//   - Octant order: each Box subdivides at its centroid into 8 children,
//     indexed 4*[x>=mx] + 2*[y>=my] + 1*[z>=mz] (bits z,y,x low to high).
//
// Why:
//
//   - Every octree operation (insert, union, rebound, deform, best-first
//     search) is expressed in terms of a handful of total, side-effect-free
//     functions on Point/Box. Keeping them in one package with no tree
//     dependency lets ptree and btree both build on the exact same
//     subdivision and distance semantics without duplicating the math.
//
// Complexity:
//
//   - All functions here are O(1); none allocate beyond their return value.
//
// Errors:
//
//   - None. Every function in this package is total: for finite inputs
//     there is no invalid argument that the function itself would reject.
//     Callers (ptree, btree, octree, blobtree) are responsible for bounds
//     checks relative to a facade's configured Box.
package geom
