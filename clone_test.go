package handleseq

import (
	"errors"
	"slices"
	"testing"
)

func TestClone_AllocatesPerElement(t *testing.T) {
	tt := &tally{}
	src := newItems(tt, 1, 2, 3)
	dst := make([]*item, 3)

	n, err := Clone(dst, src)

	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("Expected 3 clones, got %d", n)
	}
	if !slices.Equal(values(dst), []int{1, 2, 3}) {
		t.Fatalf("Unexpected clone values: %v", values(dst))
	}

	// Clones are fresh handles; the sources stay untouched.
	for i := range dst {
		if dst[i] == src[i] {
			t.Fatalf("Handle at %d aliases its source", i)
		}
	}
	if tt.allocs != 6 || tt.drops != 0 {
		t.Fatalf("Expected 6 allocs and 0 drops, got %d and %d", tt.allocs, tt.drops)
	}
}

func TestClone_DoesNotFreeDestination(t *testing.T) {
	tt := &tally{}
	src := newItems(tt, 1)
	dst := newItems(tt, 9)
	old := dst[0]

	if _, err := Clone(dst, src); err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	// The previous handle is overwritten, not freed; consuming it first
	// is the caller's job.
	if dst[0] == old {
		t.Fatal("Expected a fresh handle in dst[0]")
	}
	if old.dropped {
		t.Fatal("Clone must not drop the previous destination handle")
	}

	old.Drop()
	dst[0].Drop()
	src[0].Drop()
	if tt.live() != 0 {
		t.Fatalf("Expected no live items, got %d", tt.live())
	}
}

func TestClone_FailurePrefixCoveredByGuard(t *testing.T) {
	tt := &tally{failAt: 3}
	src := newItems(tt, 1, 2, 3, 4)
	dst := make([]*item, 4)

	n, err := Clone(dst, src)

	if n != 2 {
		t.Fatalf("Expected 2 clones before the failure, got %d", n)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("Expected *OpError, got %v", err)
	}
	if opErr.Op != "Clone" || opErr.Index != 2 {
		t.Fatalf("Unexpected failure report: %s at %d", opErr.Op, opErr.Index)
	}
	if !errors.Is(err, errExhausted) {
		t.Fatal("Expected the cause to unwrap")
	}

	// The count tells the guard exactly which prefix to free.
	g := NewRangeGuard(dst[:n])
	g.Drop()

	if tt.live() != 4 {
		t.Fatalf("Expected only the sources live, got %d", tt.live())
	}
	if tt.doubleDrops != 0 {
		t.Fatalf("Expected no double drops, got %d", tt.doubleDrops)
	}
}

func TestCloneFunc_PacksMatches(t *testing.T) {
	tt := &tally{}
	src := newItems(tt, 1, 2, 3, 4)
	dst := make([]*item, 2)

	n, err := CloneFunc(dst, src, func(v item) bool { return v.n%2 == 0 })

	if err != nil {
		t.Fatalf("CloneFunc failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("Expected 2 clones, got %d", n)
	}
	if !slices.Equal(values(dst), []int{2, 4}) {
		t.Fatalf("Unexpected clone values: %v", values(dst))
	}
}

func TestReplaceClone_RefreshesDestination(t *testing.T) {
	tt := &tally{}
	dst := newItems(tt, 7, 8)
	src := newItems(tt, 1, 2)
	old := []*item{dst[0], dst[1]}

	n, err := ReplaceClone(dst, src)

	if err != nil {
		t.Fatalf("ReplaceClone failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("Expected 2 positions refreshed, got %d", n)
	}
	if !slices.Equal(values(dst), []int{1, 2}) {
		t.Fatalf("Unexpected destination values: %v", values(dst))
	}

	// Old handles are dropped and replaced with fresh clones.
	for i, h := range old {
		if !h.dropped {
			t.Fatalf("Old handle %d was not dropped", i)
		}
		if dst[i] == h {
			t.Fatalf("Handle at %d was not replaced", i)
		}
	}
	if tt.live() != 4 {
		t.Fatalf("Expected 4 live values, got %d", tt.live())
	}
}

func TestReplaceClone_FailureKeepsOldHandle(t *testing.T) {
	tt := &tally{failAt: 2}
	dst := newItems(tt, 7, 8)
	src := newItems(tt, 1, 2)
	old := dst[1]

	n, err := ReplaceClone(dst, src)

	if n != 1 {
		t.Fatalf("Expected 1 position refreshed, got %d", n)
	}
	if err == nil {
		t.Fatal("Expected an error")
	}

	// The failed position still owns its old value.
	if dst[1] != old || old.dropped {
		t.Fatal("Expected dst[1] to keep its old live handle")
	}
	if dst[0].n != 1 {
		t.Fatalf("Expected dst[0] refreshed with 1, got %d", dst[0].n)
	}
}

func TestReplaceCloneFunc_PacksReplacements(t *testing.T) {
	tt := &tally{}
	dst := newItems(tt, 9, 9)
	src := newItems(tt, 1, 2, 3)

	n, err := ReplaceCloneFunc(dst, src, func(v item) bool { return v.n%2 == 1 })

	if err != nil {
		t.Fatalf("ReplaceCloneFunc failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("Expected 2 replacements, got %d", n)
	}

	// Matches consume destination slots in order.
	if !slices.Equal(values(dst), []int{1, 3}) {
		t.Fatalf("Unexpected destination values: %v", values(dst))
	}
	if tt.drops != 2 {
		t.Fatalf("Expected 2 drops of old handles, got %d", tt.drops)
	}
}

func TestReplaceClone_NilDestinationPanics(t *testing.T) {
	tt := &tally{}
	src := newItems(tt, 1)
	dst := make([]*item, 1)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on nil destination handle")
		}
	}()
	ReplaceClone(dst, src)
}
