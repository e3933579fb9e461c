package handleseq

import "fmt"

// Remove compacts s in place, dropping every element whose pointee equals
// value. Survivors keep their handle identity and relative order, shifted
// toward the front; dropped and vacated slots are nilled. All handles must
// be non-nil going in.
//
// It returns the new logical end: s[:end] holds the survivors, s[end:]
// only nil slots. The caller truncates the sequence:
//
//	s = s[:handleseq.Remove(s, v)]
func Remove[V comparable, H Owned[V]](s []H, value V) int {
	return removeFunc("Remove", s, func(v V) bool { return v == value })
}

// RemoveFunc is Remove with the condition evaluated by del on each
// pointee's value instead of by equality.
func RemoveFunc[V any, H Owned[V]](s []H, del func(V) bool) int {
	return removeFunc("RemoveFunc", s, del)
}

func removeFunc[V any, H Owned[V]](op string, s []H, del func(V) bool) int {
	w := 0
	for i := range s {
		if s[i] == nil {
			panic(fmt.Sprintf("handleseq: %s: nil handle at index %d", op, i))
		}
		if del(*s[i]) {
			s[i].Drop()
			s[i] = nil
			continue
		}
		if w != i {
			s[w] = s[i]
			s[i] = nil
		}
		w++
	}
	return w
}

// Unique compacts consecutive runs of equal pointees down to the first
// element of each run, dropping the rest. Like standard unique it is only
// an adjacent-duplicate filter; sort first for global deduplication.
// Survivors keep their handle identity and relative order; dropped and
// vacated slots are nilled. All handles must be non-nil going in.
//
// It returns the new logical end, with the same truncation contract as
// Remove.
func Unique[V comparable, H Owned[V]](s []H) int {
	return uniqueFunc("Unique", s, func(a, b V) bool { return a == b })
}

// UniqueFunc is Unique with equality decided by eq, called with the
// current run's representative value first and the candidate second.
func UniqueFunc[V any, H Owned[V]](s []H, eq func(a, b V) bool) int {
	return uniqueFunc("UniqueFunc", s, eq)
}

func uniqueFunc[V any, H Owned[V]](op string, s []H, eq func(a, b V) bool) int {
	if len(s) == 0 {
		return 0
	}
	if s[0] == nil {
		panic(fmt.Sprintf("handleseq: %s: nil handle at index 0", op))
	}

	r := 0
	for i := 1; i < len(s); i++ {
		if s[i] == nil {
			panic(fmt.Sprintf("handleseq: %s: nil handle at index %d", op, i))
		}
		if eq(*s[r], *s[i]) {
			s[i].Drop()
			s[i] = nil
			continue
		}
		r++
		if r != i {
			s[r] = s[i]
			s[i] = nil
		}
	}
	return r + 1
}
