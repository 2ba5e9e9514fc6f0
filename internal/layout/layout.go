package layout

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Words is the number of machine words a value may occupy
// to be stored inline.
const Words = 3

const WordSize = unsafe.Sizeof(uintptr(0))

// Capacity is the number of bytes available in a Buffer.
const Capacity = Words * WordSize

// Align is the alignment of a Buffer.
const Align = unsafe.Alignof(uintptr(0))

// Buffer is a block of memory that the garbage collector does not scan.
// Only values without pointers may be placed into it.
type Buffer [Words]uintptr

// Layout describes the memory footprint of a type.
type Layout struct {
	Size  uintptr
	Align uintptr

	// HasPointers indicates that a value of the type contains pointers, e.g.
	// by having a field of type *T, a string, a slice or a map value.
	HasPointers bool
}

func Of(t reflect.Type) Layout {
	return Layout{
		Size:        t.Size(),
		Align:       uintptr(t.Align()),
		HasPointers: TypeHasPointers(t),
	}
}

// FitsInline reports if a value with this layout can be placed into a Buffer.
func (l Layout) FitsInline() bool {
	return l.Size <= Capacity && Align%l.Align == 0 && !l.HasPointers
}

func (l Layout) String() string {
	return fmt.Sprintf("size=%d align=%d pointers=%t", l.Size, l.Align, l.HasPointers)
}

// TypeHasPointers reports if a value of the given type holds any
// memory that the garbage collector needs to trace.
func TypeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false

	case reflect.Array:
		return t.Len() > 0 && TypeHasPointers(t.Elem())

	case reflect.Struct:
		for idx := range t.NumField() {
			if TypeHasPointers(t.Field(idx).Type) {
				return true
			}
		}

		return false

	default:
		// pointers, strings, slices, maps, channels, functions and interfaces
		return true
	}
}
