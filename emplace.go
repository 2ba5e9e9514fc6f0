package erased

import "github.com/oliverbestmann/erased/internal/assert"

// Set replaces the held value with value.
func Set[T any](a *Any, value T) {
	a.Reset()
	assert.IsEmpty(a.HasValue(), "container")

	ops := typeInfoOf[T]().ops
	*(*T)(ops.reserve(&a.storage)) = value
	a.ops = ops
}

// Emplace destroys the held value and constructs a new value of type T within
// the container. init receives a pointer to the zero value in its final location.
//
// If init returns an error, the error is returned as a *ConstructionError. If init
// panics, the panic is propagated. In both cases the container is left empty and
// all memory reserved for the new value is released.
func Emplace[T any](a *Any, init func(value *T) error) error {
	a.Reset()
	assert.IsEmpty(a.HasValue(), "container")

	ops := typeInfoOf[T]().ops
	ptr := (*T)(ops.reserve(&a.storage))

	var constructed bool

	defer func() {
		if !constructed {
			ops.release(&a.storage)
		}
	}()

	if err := init(ptr); err != nil {
		return &ConstructionError{Type: ops.typ, Err: err}
	}

	constructed = true
	a.ops = ops

	return nil
}

// Make returns a new container holding a value of type T constructed by init.
// See Emplace for details on error handling.
func Make[T any](init func(value *T) error) (Any, error) {
	var a Any

	if err := Emplace(&a, init); err != nil {
		return Any{}, err
	}

	return a.Take(), nil
}
