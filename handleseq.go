package handleseq

import "fmt"

// Dropper is implemented by owned values that need cleanup.
// Drop releases whatever the value holds. The algorithms and guards in this
// package call Drop exactly once per discarded value.
type Dropper interface {
	Drop()
}

// Cloner is implemented by values that can produce a new, independently
// owned copy of themselves. Clone reports resource exhaustion as an error
// instead of panicking; the returned handle owns the copy.
type Cloner[V any] interface {
	Clone() (*V, error)
}

// Copier is implemented by values that can construct a fresh value equal to
// the receiver. Unlike Clone, which is the type's own duplication protocol,
// Copy is plain copy-construction of the concrete value. Types for which the
// two coincide can implement one in terms of the other.
type Copier[V any] interface {
	Copy() (*V, error)
}

// Handle constrains a handle type to a pointer to V. The nil handle means
// "slot present, no owned value."
type Handle[V any] interface {
	*V
}

// Owned constrains a handle to an owning pointer: the pointee carries
// state that Drop releases. Within a handle sequence every non-nil owned
// handle is the exclusive owner of its pointee.
type Owned[V any] interface {
	*V
	Dropper
}

// OwnedCloner is an owning handle whose pointee can clone itself.
type OwnedCloner[V any] interface {
	*V
	Dropper
	Cloner[V]
}

// OwnedCopier is an owning handle whose pointee can copy-construct itself.
type OwnedCopier[V any] interface {
	*V
	Dropper
	Copier[V]
}

func checkSrc[V any, H Handle[V]](op string, s []H, i int) {
	if s[i] == nil {
		panic(fmt.Sprintf("handleseq: %s: nil source handle at index %d", op, i))
	}
}

func checkDst[V any, H Handle[V]](op string, s []H, i int) {
	if s[i] == nil {
		panic(fmt.Sprintf("handleseq: %s: nil destination handle at index %d", op, i))
	}
}
