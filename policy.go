package erased

import "github.com/oliverbestmann/erased/internal/layout"

// InlineWords is the number of machine words available for inline storage.
const InlineWords = layout.Words

// InlineCapacity is the maximum size in bytes of a value stored inline.
const InlineCapacity = layout.Capacity

// Policy describes where a container keeps its value.
type Policy uint8

const (
	// PolicyNone is reported by an empty container.
	PolicyNone Policy = iota

	// PolicyInline stores the value within the container itself. Used for
	// values without pointers of at most InlineCapacity bytes.
	PolicyInline

	// PolicyHeap stores the value in a separate heap allocation
	// owned exclusively by the container.
	PolicyHeap
)

func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicyInline:
		return "inline"
	case PolicyHeap:
		return "heap"
	default:
		return "invalid"
	}
}
