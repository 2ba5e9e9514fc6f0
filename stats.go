package erased

import "github.com/oliverbestmann/erased/internal/heapstats"

// HeapStats counts the heap blocks allocated and released by containers
// using PolicyHeap. Blocks of containers that are dropped without Reset are
// reclaimed by the garbage collector but never counted as released.
type HeapStats = heapstats.Snapshot

// ReadHeapStats returns the current counter values. Take the difference
// of two snapshots with HeapStats.Sub to observe a sequence of operations.
func ReadHeapStats() HeapStats {
	return heapstats.Read()
}
