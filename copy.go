package handleseq

import "fmt"

// Copy assigns values between the pointees of two handle sequences,
// position by position, up to the length of the shorter slice. Ownership
// does not change: no handle is created, dropped, or moved. Both handles at
// every visited position must be non-nil.
//
// Following the builtin copy, it returns the number of values assigned.
// Overlapping slices follow forward-copy rules; use CopyBackward when dst
// is a right-shifted window over src.
func Copy[V any, H Handle[V]](dst, src []H) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		checkDst("Copy", dst, i)
		checkSrc("Copy", src, i)
		*dst[i] = *src[i]
	}
	return n
}

// CopyN assigns exactly n values from src's pointees to dst's pointees.
// Unlike Copy, the count is part of the contract: n outside the length of
// either slice panics rather than being clamped.
func CopyN[V any, H Handle[V]](dst, src []H, n int) int {
	if n < 0 || n > len(dst) || n > len(src) {
		panic(fmt.Sprintf("handleseq: CopyN: count %d out of range (dst %d, src %d)", n, len(dst), len(src)))
	}
	for i := 0; i < n; i++ {
		checkDst("CopyN", dst, i)
		checkSrc("CopyN", src, i)
		*dst[i] = *src[i]
	}
	return n
}

// CopyBackward assigns values back to front with the ends of dst and src
// aligned: src's last pointee lands in dst's last slot, covering the last
// min(len(dst), len(src)) positions of each. Use it when dst is a
// right-shifted window over the same backing array as src and a forward
// pass would read values it has already overwritten.
//
// It returns the number of values assigned.
func CopyBackward[V any, H Handle[V]](dst, src []H) int {
	n := min(len(dst), len(src))
	for i := 1; i <= n; i++ {
		d, s := len(dst)-i, len(src)-i
		checkDst("CopyBackward", dst, d)
		checkSrc("CopyBackward", src, s)
		*dst[d] = *src[s]
	}
	return n
}

// CopyFunc assigns the values of the src pointees for which keep reports
// true, packing them into dst from the front. Source elements are visited
// in order until src is exhausted or dst is full. It returns the number of
// values assigned.
func CopyFunc[V any, H Handle[V]](dst, src []H, keep func(V) bool) int {
	d := 0
	for i := range src {
		if d == len(dst) {
			break
		}
		checkSrc("CopyFunc", src, i)
		if !keep(*src[i]) {
			continue
		}
		checkDst("CopyFunc", dst, d)
		*dst[d] = *src[i]
		d++
	}
	return d
}

// ReplaceCopy rebuilds dst's pointees from src's, position by position, up
// to the length of the shorter slice. Each destination value is replaced in
// place: a fresh value is copy-constructed from the source, the old value
// is dropped, and the fresh state is moved into the existing pointee. The
// handles themselves never change, so references held to dst's pointees
// stay valid across the call. It is meant for value types that cannot be
// copy-assigned directly, where Copy would be unsound.
//
// It returns the number of positions processed. If a copy-construction
// fails, the element at the failed position keeps its old value and
// ReplaceCopy returns the count of positions already processed along with
// a *OpError naming the failed index.
func ReplaceCopy[V any, H OwnedCopier[V]](dst, src []H) (int, error) {
	return replaceCopy("ReplaceCopy", dst, src, nil)
}

// ReplaceCopyFunc is ReplaceCopy with a filter: positions still advance in
// lockstep over both slices, but only pointees whose source value satisfies
// keep are rebuilt; the rest of dst is left untouched. Handles at every
// visited position must be non-nil whether or not they are rebuilt.
//
// It returns the number of positions processed.
func ReplaceCopyFunc[V any, H OwnedCopier[V]](dst, src []H, keep func(V) bool) (int, error) {
	return replaceCopy("ReplaceCopyFunc", dst, src, keep)
}

func replaceCopy[V any, H OwnedCopier[V]](op string, dst, src []H, keep func(V) bool) (int, error) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		checkDst(op, dst, i)
		checkSrc(op, src, i)
		if keep != nil && !keep(*src[i]) {
			continue
		}

		// Copy first; a failed Copy must leave dst[i] intact.
		fresh, err := src[i].Copy()
		if err != nil {
			return i, &OpError{Op: op, Index: i, Err: err}
		}
		dst[i].Drop()
		*dst[i] = *fresh
	}
	return n, nil
}
