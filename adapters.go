package handleseq

// Deref lifts a value-level function to handle level: the returned function
// dereferences its handle argument and applies f to the value. The handle
// must be non-nil.
//
// Useful for applying a plain predicate to a handle sequence:
//
//	idx := slices.IndexFunc(items, handleseq.Deref(func(it Item) bool {
//	    return it.ID == 7
//	}))
func Deref[V, R any](f func(V) R) func(*V) R {
	return func(p *V) R {
		if p == nil {
			panic("handleseq: Deref: nil handle")
		}
		return f(*p)
	}
}

// DerefLeft lifts a two-argument function whose left operand is a value:
// the returned function dereferences the handle on the left and passes the
// right argument through unchanged. The handle must be non-nil.
//
// Useful with search functions that compare elements against a plain value:
//
//	i, ok := slices.BinarySearchFunc(items, 7, handleseq.DerefLeft(func(it Item, id int) int {
//	    return cmp.Compare(it.ID, id)
//	}))
func DerefLeft[V, A, R any](f func(V, A) R) func(*V, A) R {
	return func(p *V, a A) R {
		if p == nil {
			panic("handleseq: DerefLeft: nil handle")
		}
		return f(*p, a)
	}
}

// DerefBoth lifts a two-argument value-level function to handle level on
// both sides. Both handles must be non-nil.
//
// Useful for ordering a handle sequence by pointee:
//
//	slices.SortFunc(items, handleseq.DerefBoth(func(a, b Item) int {
//	    return cmp.Compare(a.ID, b.ID)
//	}))
func DerefBoth[V, R any](f func(V, V) R) func(*V, *V) R {
	return func(a, b *V) R {
		if a == nil || b == nil {
			panic("handleseq: DerefBoth: nil handle")
		}
		return f(*a, *b)
	}
}
