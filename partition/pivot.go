package partition

// Pivot rearranges s[lo:hi] in place so that every element for which pred
// holds precedes every element for which it does not, and returns the
// split index: pred holds for s[lo:split) and fails for s[split:hi).
//
// Order within each side is unspecified. Pivot touches each element at
// most once and swaps at most hi-lo times (a single forward/backward
// two-pointer scan, Hoare-style), which is what lets the bulk builder
// build a tree of n points in O(n log n) without auxiliary storage.
func Pivot[T any](s []T, pred func(T) bool, lo, hi int) int {
	i := lo
	j := hi - 1
	for i <= j {
		for i <= j && pred(s[i]) {
			i++
		}
		for i <= j && !pred(s[j]) {
			j--
		}
		if i < j {
			s[i], s[j] = s[j], s[i]
			i++
			j--
		}
	}
	return i
}
