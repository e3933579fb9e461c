package handleseq

import "errors"

// errExhausted is the failure injected by a tally with failAt set.
var errExhausted = errors.New("allocation limit reached")

// tally tracks the lifecycle of every item allocated against it.
type tally struct {
	allocs      int
	drops       int
	doubleDrops int
	dups        int // Clone/Copy attempts
	failAt      int // 1-based dup attempt that fails; 0 never fails
}

// live returns the number of items allocated and not yet dropped.
func (t *tally) live() int {
	return t.allocs - t.drops
}

func (t *tally) dup(n int) (*item, error) {
	t.dups++
	if t.failAt != 0 && t.dups == t.failAt {
		return nil, errExhausted
	}
	return newItem(t, n), nil
}

// item is the probe value used throughout the tests. Items from the same
// tally compare equal when their numbers match.
type item struct {
	t       *tally
	n       int
	dropped bool
}

func newItem(t *tally, n int) *item {
	t.allocs++
	return &item{t: t, n: n}
}

func newItems(t *tally, ns ...int) []*item {
	s := make([]*item, len(ns))
	for i, n := range ns {
		s[i] = newItem(t, n)
	}
	return s
}

func (it *item) Drop() {
	if it.dropped {
		it.t.doubleDrops++
		return
	}
	it.dropped = true
	it.t.drops++
}

func (it *item) Clone() (*item, error) { return it.t.dup(it.n) }

func (it *item) Copy() (*item, error) { return it.t.dup(it.n) }

// values reads the pointee numbers of a handle slice; nil slots become -1.
func values(s []*item) []int {
	out := make([]int, len(s))
	for i, h := range s {
		if h == nil {
			out[i] = -1
			continue
		}
		out[i] = h.n
	}
	return out
}
