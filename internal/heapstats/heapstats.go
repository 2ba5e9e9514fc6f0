// Package heapstats counts the heap blocks owned by containers using
// the heap storage policy.
package heapstats

import "go.uber.org/atomic"

var (
	allocated atomic.Int64
	released  atomic.Int64
)

// Snapshot holds the counter values at one point in time.
type Snapshot struct {
	Allocated int64
	Released  int64
}

// Live returns the number of blocks that were allocated but not yet released.
func (s Snapshot) Live() int64 {
	return s.Allocated - s.Released
}

// Sub returns the difference between two snapshots.
func (s Snapshot) Sub(other Snapshot) Snapshot {
	return Snapshot{
		Allocated: s.Allocated - other.Allocated,
		Released:  s.Released - other.Released,
	}
}

func Allocated() {
	allocated.Inc()
}

func Released() {
	released.Inc()
}

func Read() Snapshot {
	// read released first, a concurrent allocation then never shows up as a negative Live value
	r := released.Load()
	a := allocated.Load()

	return Snapshot{Allocated: a, Released: r}
}
