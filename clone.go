package handleseq

// Clone allocates new owned values by cloning src's pointees and stores the
// resulting handles into dst, position by position, up to the length of the
// shorter slice. Source handles must be non-nil. Destination slots are
// overwritten without being freed: callers hand in slots that are empty or
// whose handles have already been consumed.
//
// It returns the number of clones stored. If a clone fails, slots [0, n)
// hold the n clones already built and Clone returns n along with a *OpError
// naming the failed source index. Nothing is freed here; the count tells a
// guard bound over dst exactly what to cover.
func Clone[V any, H OwnedCloner[V]](dst, src []H) (int, error) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		checkSrc("Clone", src, i)
		c, err := src[i].Clone()
		if err != nil {
			return i, &OpError{Op: "Clone", Index: i, Err: err}
		}
		dst[i] = H(c)
	}
	return n, nil
}

// CloneFunc clones only the src pointees for which keep reports true,
// packing the new handles into dst from the front. Source elements are
// visited in order until src is exhausted or dst is full. Like Clone, it
// overwrites destination slots without freeing them.
//
// It returns the number of clones stored; a *OpError names the source index
// of a failed clone.
func CloneFunc[V any, H OwnedCloner[V]](dst, src []H, keep func(V) bool) (int, error) {
	d := 0
	for i := range src {
		if d == len(dst) {
			break
		}
		checkSrc("CloneFunc", src, i)
		if !keep(*src[i]) {
			continue
		}
		c, err := src[i].Clone()
		if err != nil {
			return d, &OpError{Op: "CloneFunc", Index: i, Err: err}
		}
		dst[d] = H(c)
		d++
	}
	return d, nil
}

// ReplaceClone refreshes an already-populated destination in place: for
// each position, up to the length of the shorter slice, the old dst handle
// is dropped and replaced with a fresh clone of the src pointee. Handles on
// both sides must be non-nil.
//
// It returns the number of positions refreshed. If a clone fails, the
// position keeps its old live handle and ReplaceClone returns the count of
// positions already refreshed along with a *OpError naming the failed index.
func ReplaceClone[V any, H OwnedCloner[V]](dst, src []H) (int, error) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		checkDst("ReplaceClone", dst, i)
		checkSrc("ReplaceClone", src, i)

		// Clone first; a failed clone must leave dst[i] live.
		c, err := src[i].Clone()
		if err != nil {
			return i, &OpError{Op: "ReplaceClone", Index: i, Err: err}
		}
		dst[i].Drop()
		dst[i] = H(c)
	}
	return n, nil
}

// ReplaceCloneFunc clones only the src pointees for which keep reports
// true, replacing dst handles packed from the front: each match drops the
// next dst handle and stores the clone in its slot. Source elements are
// visited in order until src is exhausted or dst is full.
//
// It returns the number of dst handles replaced; a *OpError names the
// source index of a failed clone.
func ReplaceCloneFunc[V any, H OwnedCloner[V]](dst, src []H, keep func(V) bool) (int, error) {
	d := 0
	for i := range src {
		if d == len(dst) {
			break
		}
		checkSrc("ReplaceCloneFunc", src, i)
		if !keep(*src[i]) {
			continue
		}
		checkDst("ReplaceCloneFunc", dst, d)
		c, err := src[i].Clone()
		if err != nil {
			return d, &OpError{Op: "ReplaceCloneFunc", Index: i, Err: err}
		}
		dst[d].Drop()
		dst[d] = H(c)
		d++
	}
	return d, nil
}
