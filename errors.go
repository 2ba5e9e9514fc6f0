package erased

import (
	"errors"
	"fmt"
)

// ErrInvalidCast is returned when a value is requested as a type other than the held one.
var ErrInvalidCast = errors.New("invalid cast")

// ErrConstruction is returned when a value could not be constructed within a container.
var ErrConstruction = errors.New("construction failed")

// CastError describes a failed Cast. It matches ErrInvalidCast.
type CastError struct {
	Want TypeId
	Have TypeId
}

func (e *CastError) Error() string {
	if e.Have == NoType {
		return fmt.Sprintf("erased: cast to %s: container is empty", e.Want)
	}

	return fmt.Sprintf("erased: cast to %s: container holds %s", e.Want, e.Have)
}

func (e *CastError) Unwrap() error {
	return ErrInvalidCast
}

// ConstructionError wraps the error returned by an initializer passed
// to Make or Emplace. It matches both ErrConstruction and the cause.
type ConstructionError struct {
	Type TypeId
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("erased: construct %s: %s", e.Type, e.Err)
}

func (e *ConstructionError) Unwrap() []error {
	return []error{ErrConstruction, e.Err}
}
