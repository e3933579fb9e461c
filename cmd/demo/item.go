package main

import (
	"errors"
	"fmt"
)

// stats mirrors the lifecycle of every Item in the process.
var stats struct {
	allocated   int
	dropped     int
	doubleDrops int
}

func live() int {
	return stats.allocated - stats.dropped
}

// errNoCapacity is reported once an armed duplication failure triggers.
var errNoCapacity = errors.New("item capacity exhausted")

// remainingDups counts down duplications until the armed failure fires;
// -1 means unlimited.
var remainingDups = -1

// ArmFailure makes the nth duplication from now fail.
func ArmFailure(n int) {
	remainingDups = n - 1
}

// FailureArmed reports whether an armed failure is still pending.
func FailureArmed() bool {
	return remainingDups >= 0
}

var labels = [...]string{
	"alfa", "bravo", "charlie", "delta", "echo",
	"foxtrot", "golf", "hotel", "india", "juliett",
}

// Item is the demo resource: an identity plus a payload block it owns
// until Drop.
type Item struct {
	Seq     int
	Label   string
	payload [32]byte
	dead    bool
}

// NewItem allocates an item for seq. Items with the same seq compare
// equal, which is what Unique and Remove go by.
func NewItem(seq int) *Item {
	it := &Item{
		Seq:   seq,
		Label: labels[((seq%len(labels))+len(labels))%len(labels)],
	}
	for i := range it.payload {
		it.payload[i] = byte(seq)
	}
	stats.allocated++
	return it
}

// Drop releases the item. Double drops are counted rather than fatal.
func (it *Item) Drop() {
	if it.dead {
		stats.doubleDrops++
		return
	}
	it.dead = true
	stats.dropped++
}

// Clone implements handleseq.Cloner.
func (it *Item) Clone() (*Item, error) {
	return dup(it)
}

// Copy implements handleseq.Copier.
func (it *Item) Copy() (*Item, error) {
	return dup(it)
}

func dup(src *Item) (*Item, error) {
	if remainingDups == 0 {
		remainingDups = -1
		return nil, errNoCapacity
	}
	if remainingDups > 0 {
		remainingDups--
	}
	return NewItem(src.Seq), nil
}

func (it *Item) String() string {
	return fmt.Sprintf("%-8s seq=%d", it.Label, it.Seq)
}
