package erased

import (
	"reflect"
	"unsafe"
)

// PointerTo returns a pointer to the held value if the container holds a value of type T.
// The pointer is valid until the container is reset or its value is replaced, moved
// or swapped.
func PointerTo[T any](a *Any) (*T, bool) {
	if a.ops == nil || !a.ops.typ.is(reflect.TypeFor[T]()) {
		return nil, false
	}

	return (*T)(a.ops.get(&a.storage)), true
}

// Is reports if the container holds a value of exactly the type T.
func Is[T any](a *Any) bool {
	return a.ops != nil && a.ops.typ.is(reflect.TypeFor[T]())
}

// CastOk returns a copy of the held value. If the container is empty or does not
// hold a value of exactly type T, the zero value of T and false are returned.
func CastOk[T any](a *Any) (T, bool) {
	ptr, ok := PointerTo[T](a)
	if !ok {
		var tZero T
		return tZero, false
	}

	var value T
	a.ops.assign(unsafe.Pointer(&value), unsafe.Pointer(ptr))

	return value, true
}

// Cast returns a copy of the held value. If the container is empty or does
// not hold a value of exactly type T, a *CastError is returned.
func Cast[T any](a *Any) (T, error) {
	value, ok := CastOk[T](a)
	if !ok {
		return value, &CastError{Want: TypeOf[T](), Have: a.Type()}
	}

	return value, nil
}

// MustCast is like Cast, but panics with a *CastError if the type does not match.
func MustCast[T any](a *Any) T {
	value, err := Cast[T](a)
	if err != nil {
		panic(err)
	}

	return value
}
