package erased

import (
	"reflect"
	"unsafe"

	"github.com/oliverbestmann/erased/internal/assert"
	"github.com/oliverbestmann/erased/internal/heapstats"
	"github.com/oliverbestmann/erased/internal/layout"
)

// Cloner can be implemented by types that need more than a plain assignment
// to produce an independent copy, e.g. types holding slices or maps.
// Copying a container calls Clone on the held value.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer can be implemented by types that want to be notified when a
// container drops them, either through Reset, Emplace or by being
// replaced during CopyFrom or MoveFrom.
// Moving a value between containers does not destroy it.
type Destroyer interface {
	Destroy()
}

// storage holds the memory of a container. Only one of the two
// fields is in use at any time, as selected by the ops policy.
type storage struct {
	inline layout.Buffer
	heap   unsafe.Pointer
}

// ops is the operation table for one concrete type. There is exactly one
// instance per type, shared by all containers holding a value of that type.
type ops struct {
	typ    TypeId
	policy Policy

	// reserve prepares zeroed memory for a new value and returns its address.
	reserve func(s *storage) unsafe.Pointer

	// release gives up the memory without running the Destroy hook.
	release func(s *storage)

	get     func(s *storage) unsafe.Pointer
	destroy func(s *storage)

	// copy constructs a deep copy of the value in src into dst.
	copy func(dst, src *storage)

	// move relocates the value in src to dst. src is cleared.
	move func(dst, src *storage)

	// assign copies a single value between two typed pointers.
	assign func(dst, src unsafe.Pointer)
}

func inlineOps[T any](typ TypeId) *ops {
	assert.FitsInline(reflect.TypeFor[T]())

	ptrTo := func(s *storage) *T {
		return (*T)(unsafe.Pointer(&s.inline))
	}

	assign := assignOf[T]()
	destroyHook := destroyHookOf[T]()

	release := func(s *storage) {
		s.inline = layout.Buffer{}
	}

	return &ops{
		typ:    typ,
		policy: PolicyInline,

		reserve: func(s *storage) unsafe.Pointer {
			s.inline = layout.Buffer{}
			return unsafe.Pointer(&s.inline)
		},

		release: release,

		get: func(s *storage) unsafe.Pointer {
			return unsafe.Pointer(&s.inline)
		},

		destroy: func(s *storage) {
			// the memory is released even if the hook panics
			defer release(s)
			destroyHook(ptrTo(s))
		},

		copy: func(dst, src *storage) {
			dst.inline = layout.Buffer{}
			assign(unsafe.Pointer(ptrTo(dst)), unsafe.Pointer(ptrTo(src)))
		},

		move: func(dst, src *storage) {
			// the buffer holds no pointers, a plain copy of the bytes relocates the value
			dst.inline = src.inline
			src.inline = layout.Buffer{}
		},

		assign: assign,
	}
}

func heapOps[T any](typ TypeId) *ops {
	ptrTo := func(s *storage) *T {
		return (*T)(s.heap)
	}

	assign := assignOf[T]()
	destroyHook := destroyHookOf[T]()

	release := func(s *storage) {
		if s.heap == nil {
			return
		}

		s.heap = nil
		heapstats.Released()
	}

	return &ops{
		typ:    typ,
		policy: PolicyHeap,

		reserve: func(s *storage) unsafe.Pointer {
			s.heap = unsafe.Pointer(new(T))
			heapstats.Allocated()
			return s.heap
		},

		release: release,

		get: func(s *storage) unsafe.Pointer {
			return s.heap
		},

		destroy: func(s *storage) {
			defer release(s)
			destroyHook(ptrTo(s))
		},

		copy: func(dst, src *storage) {
			value := new(T)
			assign(unsafe.Pointer(value), src.heap)

			// only count the block once the copy succeeded
			dst.heap = unsafe.Pointer(value)
			heapstats.Allocated()
		},

		move: func(dst, src *storage) {
			dst.heap = src.heap
			src.heap = nil
		},

		assign: assign,
	}
}

func assignOf[T any]() func(dst, src unsafe.Pointer) {
	if _, ok := any((*T)(nil)).(Cloner[T]); ok {
		return func(dst, src unsafe.Pointer) {
			*(*T)(dst) = any((*T)(src)).(Cloner[T]).Clone()
		}
	}

	return func(dst, src unsafe.Pointer) {
		*(*T)(dst) = *(*T)(src)
	}
}

func destroyHookOf[T any]() func(value *T) {
	if _, ok := any((*T)(nil)).(Destroyer); ok {
		return func(value *T) {
			any(value).(Destroyer).Destroy()
		}
	}

	return func(*T) {
		// nothing to do
	}
}
