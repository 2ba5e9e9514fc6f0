package erased

import (
	"fmt"

	"github.com/oliverbestmann/erased/internal/assert"
)

// Any holds at most one value of an arbitrary type and remembers the exact
// type of that value. The value can only be retrieved by naming that type again,
// see Cast, CastOk and PointerTo.
//
// Small values without pointers are stored inline within the Any, all other
// values live in a heap allocation owned exclusively by the container.
//
// The zero value is an empty container. An Any must not be copied by
// assignment once it holds a value, use Clone, CopyFrom, Take or MoveFrom instead.
// An Any is not safe for concurrent use.
type Any struct {
	_ noCopy

	// operation table of the held value, nil if the container is empty
	ops *ops

	storage storage
}

// Empty returns a container without a value.
func Empty() Any {
	return Any{}
}

// Of returns a container holding value.
func Of[T any](value T) Any {
	ops := typeInfoOf[T]().ops

	var s storage
	*(*T)(ops.reserve(&s)) = value

	return Any{ops: ops, storage: s}
}

// HasValue reports if the container holds a value.
func (a *Any) HasValue() bool {
	return a.ops != nil
}

// Type returns the identity of the held type, or NoType if the container is empty.
func (a *Any) Type() TypeId {
	if a.ops == nil {
		return NoType
	}

	return a.ops.typ
}

// Policy returns the storage policy of the held value.
func (a *Any) Policy() Policy {
	if a.ops == nil {
		return PolicyNone
	}

	return a.ops.policy
}

// Reset drops the held value. The container is empty afterwards.
func (a *Any) Reset() {
	if a.ops == nil {
		return
	}

	ops := a.ops
	a.ops = nil

	ops.destroy(&a.storage)
}

// Destroy is the same as Reset. It lets an Any that is itself stored in a
// container release its value when the outer container drops it.
func (a *Any) Destroy() {
	a.Reset()
}

// Swap exchanges the values of both containers.
func (a *Any) Swap(other *Any) {
	if a == other {
		return
	}

	var tmp storage

	if a.ops != nil {
		a.ops.move(&tmp, &a.storage)
	}

	if other.ops != nil {
		other.ops.move(&a.storage, &other.storage)
	}

	if a.ops != nil {
		a.ops.move(&other.storage, &tmp)
	}

	a.ops, other.ops = other.ops, a.ops
}

// Clone returns a new container holding an independent copy of the value.
func (a *Any) Clone() Any {
	if a.ops == nil {
		return Any{}
	}

	var s storage
	a.ops.copy(&s, &a.storage)

	return Any{ops: a.ops, storage: s}
}

// CopyFrom replaces the value of a with a copy of the value in other.
// If copying panics, a is left unchanged.
func (a *Any) CopyFrom(other *Any) {
	if a == other {
		return
	}

	tmp := other.Clone()
	a.Swap(&tmp)
	tmp.Reset()
}

// Take moves the value into a new container, leaving a empty.
func (a *Any) Take() Any {
	if a.ops == nil {
		return Any{}
	}

	ops := a.ops
	a.ops = nil

	var s storage
	ops.move(&s, &a.storage)
	assert.IsEmpty(a.storage != storage{}, "moved from storage")

	return Any{ops: ops, storage: s}
}

// MoveFrom replaces the value of a with the value of other, leaving other empty.
func (a *Any) MoveFrom(other *Any) {
	if a == other {
		return
	}

	tmp := other.Take()
	a.Swap(&tmp)
	tmp.Reset()
}

func (a *Any) String() string {
	if a.ops == nil {
		return "Any(<empty>)"
	}

	return fmt.Sprintf("Any(%s, %s)", a.ops.typ, a.ops.policy)
}
