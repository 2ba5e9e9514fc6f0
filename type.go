package erased

import (
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/oliverbestmann/erased/internal/layout"
)

// TypeId identifies a concrete type stored in an Any. Two TypeId values
// are equal if and only if they were created for the same Go type.
// The zero value is NoType.
type TypeId struct {
	info *typeInfo
}

// NoType is reported by an empty container.
var NoType TypeId

// TypeOf returns the TypeId of T. T is taken as written, calling
// TypeOf[error]() returns the id of the interface type error.
func TypeOf[T any]() TypeId {
	return TypeId{info: typeInfoOf[T]()}
}

// Id returns a small number unique to the type within this process, or 0 for NoType.
func (t TypeId) Id() uint32 {
	if t.info == nil {
		return 0
	}

	return t.info.id
}

func (t TypeId) Name() string {
	if t.info == nil {
		return "<none>"
	}

	return t.info.name
}

func (t TypeId) String() string {
	return t.Name()
}

// Reflect returns the reflect.Type of the identified type, or nil for NoType.
func (t TypeId) Reflect() reflect.Type {
	if t.info == nil {
		return nil
	}

	return t.info.typ
}

// Policy returns the storage policy used for values of this type.
func (t TypeId) Policy() Policy {
	if t.info == nil {
		return PolicyNone
	}

	return t.info.ops.policy
}

// Size returns the size of a value of this type in bytes.
func (t TypeId) Size() uintptr {
	if t.info == nil {
		return 0
	}

	return t.info.layout.Size
}

func (t TypeId) LogValue() slog.Value {
	return slog.StringValue(t.Name())
}

// is compares against a reflect.Type without touching the registry.
func (t TypeId) is(ty reflect.Type) bool {
	return t.info != nil && t.info.typ == ty
}

type typeInfo struct {
	id     uint32
	name   string
	typ    reflect.Type
	layout layout.Layout
	ops    *ops
}

var types atomic.Pointer[map[unsafe.Pointer]*typeInfo]

func init() {
	// initialize the lookup table
	types.Store(&map[unsafe.Pointer]*typeInfo{})
}

func typeInfoOf[T any]() *typeInfo {
	ptrToType := abiTypePointerTo(reflect.TypeFor[T]())

	if cached, ok := (*types.Load())[ptrToType]; ok {
		return cached
	}

	return ensureTypeInfo(ptrToType, makeTypeInfo[T])
}

func ensureTypeInfo(ptrToType unsafe.Pointer, makeType func(id uint32) *typeInfo) *typeInfo {
	for {
		previousTypes := types.Load()
		if cached, ok := (*previousTypes)[ptrToType]; ok {
			return cached
		}

		newType := makeType(uint32(len(*previousTypes) + 1))

		newTypes := maps.Clone(*previousTypes)
		newTypes[ptrToType] = newType

		if types.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New erased type registered",
				slog.String("name", newType.name),
				slog.Int("id", int(newType.id)),
				slog.String("policy", newType.ops.policy.String()),
				slog.Int("size", int(newType.layout.Size)),
			)

			return newType
		}
	}
}

func makeTypeInfo[T any](id uint32) *typeInfo {
	reflectType := reflect.TypeFor[T]()

	info := &typeInfo{
		id:     id,
		typ:    reflectType,
		name:   reflectType.String(),
		layout: layout.Of(reflectType),
	}

	if info.layout.FitsInline() {
		info.ops = inlineOps[T](TypeId{info: info})
	} else {
		info.ops = heapOps[T](TypeId{info: info})
	}

	return info
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}
