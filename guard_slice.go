package handleseq

import "go.uber.org/zap"

// SliceGuard frees every owned handle in its bound slice when Drop runs.
// It binds through a pointer, so elements appended after binding are
// covered too. Bind it over a slice being populated with freshly allocated
// handles, arrange Drop with defer, and call Release once the slice is
// complete and its ownership handed off. The zero value is an unbound guard.
//
// A guard must not be copied. It is not safe for concurrent use.
type SliceGuard[V any, H Owned[V]] struct {
	noCopy noCopy
	cont   *[]H
}

// NewSliceGuard returns a guard bound to the slice at cont.
func NewSliceGuard[V any, H Owned[V]](cont *[]H) *SliceGuard[V, H] {
	return &SliceGuard[V, H]{cont: cont}
}

// SetSlice rebinds the guard to the slice at cont. The previously bound
// slice is forgotten without being freed.
func (g *SliceGuard[V, H]) SetSlice(cont *[]H) {
	g.cont = cont
}

// Release disarms the guard: the bound slice is forgotten and Drop becomes
// a no-op.
func (g *SliceGuard[V, H]) Release() {
	g.cont = nil
}

// Drop frees every non-nil handle currently in the bound slice, clears the
// slots, truncates the slice to length zero, and unbinds the guard.
// Dropping an unbound or released guard is a no-op.
func (g *SliceGuard[V, H]) Drop() {
	if g.cont == nil {
		return
	}

	s := *g.cont
	n := 0
	for i := range s {
		if s[i] == nil {
			continue
		}
		s[i].Drop()
		s[i] = nil
		n++
	}
	*g.cont = s[:0]
	g.cont = nil

	if n > 0 {
		Logger().Debug("dropped guarded slice", zap.Int("handles", n))
	}
}
