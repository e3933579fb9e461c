package handleseq

import "go.uber.org/zap"

// noCopy is embedded in types that must not be copied after first use.
// Copies are reported by go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RangeGuard frees every owned handle remaining in its bound window when
// Drop runs. Bind it over the portion of a sequence that is not yet safely
// owned elsewhere, arrange Drop with defer, and call Release once the
// operation has handed ownership off. The zero value is an unbound guard.
//
// A guard must not be copied. It is not safe for concurrent use.
type RangeGuard[V any, H Owned[V]] struct {
	noCopy noCopy
	rest   []H
}

// NewRangeGuard returns a guard bound to window. An empty window, such as
// s[i:i], binds the guard without giving it anything to free.
func NewRangeGuard[V any, H Owned[V]](window []H) *RangeGuard[V, H] {
	return &RangeGuard[V, H]{rest: window}
}

// SetRange rebinds the guard to window. Handles outside the new window are
// forgotten without being freed; callers rebind as they consume handles so
// the guard always covers exactly the unconsumed tail.
func (g *RangeGuard[V, H]) SetRange(window []H) {
	g.rest = window
}

// Release disarms the guard: the bound window is forgotten and Drop becomes
// a no-op. Call it once ownership of the window's handles has been safely
// transferred.
func (g *RangeGuard[V, H]) Release() {
	g.rest = nil
}

// Drop frees every non-nil handle in the bound window in forward order,
// clearing each slot as it goes, then unbinds the guard. Dropping an
// unbound or released guard is a no-op.
func (g *RangeGuard[V, H]) Drop() {
	if len(g.rest) == 0 {
		g.rest = nil
		return
	}

	n := 0
	for i := range g.rest {
		if g.rest[i] == nil {
			continue
		}
		g.rest[i].Drop()
		g.rest[i] = nil
		n++
	}
	g.rest = nil

	if n > 0 {
		Logger().Debug("dropped guarded range", zap.Int("handles", n))
	}
}
