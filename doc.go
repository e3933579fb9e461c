// Package handleseq provides ownership-aware sequence algorithms and scope
// guards for slices of owning handles.
//
// A handle is a *V that exclusively owns its pointee within the sequences
// managed here; the pointee's Drop method releases whatever it holds and
// must run exactly once. Ordinary slice algorithms assume elements can be
// freely duplicated or silently discarded; applied to owning handles that
// leaks, double-drops, or leaves dangling owners when an operation stops
// early. The algorithms in this package keep the exactly-once contract, and
// the guards keep it across early returns and panics.
//
// # Owning Handles
//
// Handle types are pointer types whose pointee implements the capability an
// operation needs:
//
//	type Buffer struct{ ... }
//
//	func (b *Buffer) Drop()                   { ... } // Owned
//	func (b *Buffer) Clone() (*Buffer, error) { ... } // OwnedCloner
//	func (b *Buffer) Copy() (*Buffer, error)  { ... } // OwnedCopier
//
// A nil handle means "slot present, no owned value". Guards and compaction
// algorithms leave nil in every slot they vacate.
//
// # Scope Guards
//
// RangeGuard covers a window of a sequence, SliceGuard a whole slice being
// built. Both free every non-nil handle in their domain on Drop and are
// disarmed with Release on the success path:
//
//	out := make([]*Buffer, 0, n)
//	g := handleseq.NewSliceGuard(&out)
//	defer g.Drop()
//
//	// populate out with freshly allocated handles; any early return
//	// or panic frees what was built so far
//
//	g.Release() // success: the caller owns out's handles now
//	return out, nil
//
// # Algorithms
//
// Assignment algorithms (Copy, CopyN, CopyBackward, CopyFunc, ReplaceCopy,
// ReplaceCopyFunc) move values between already-allocated pointees and never
// change ownership. Allocation algorithms (Clone, CloneFunc, ReplaceClone,
// ReplaceCloneFunc) allocate new owned values; on failure they report the
// consumed count so a caller-bound guard covers exactly the partial result.
// Compaction algorithms (Remove, RemoveFunc, Unique, UniqueFunc) drop
// discarded owners in place and return the new logical end:
//
//	s = s[:handleseq.Unique(s)]
//
// DeepCopy composes guards and allocation: a duplicate of a whole sequence
// that either returns complete or cleans up completely.
//
// # Deref Adapters
//
// Deref, DerefLeft and DerefBoth lift value-level functions to handle level
// for use with the standard slices package:
//
//	slices.SortFunc(s, handleseq.DerefBoth(func(a, b Buffer) int {
//	    return cmp.Compare(a.Seq, b.Seq)
//	}))
//
// # Failure Handling
//
// Contract violations (a nil handle where a live one is required) panic.
// Resource exhaustion reported by Clone or Copy comes back as a *OpError
// carrying the operation name, the failed element index and the cause. No
// operation retries internally.
//
// # Concurrency
//
// Sequences and guards are for single-goroutine, synchronous use. Nothing
// here locks; exclusive ownership is the concurrency model.
package handleseq
