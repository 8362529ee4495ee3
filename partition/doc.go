// Package partition provides the single array-rearranging primitive that
// the octree bulk builder (ptree.BuildFromSlice) uses to split a slice of
// points into octants without extra allocation.
package partition
