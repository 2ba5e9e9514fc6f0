package assert

import (
	"github.com/stretchr/testify/require"
	"reflect"
	"testing"
)

func TestFitsInline(t *testing.T) {
	require.NotPanics(t, func() { FitsInline(reflect.TypeFor[[2]int32]()) })
	require.Panics(t, func() { FitsInline(reflect.TypeFor[[64]byte]()) })
	require.Panics(t, func() { FitsInline(reflect.TypeFor[string]()) })
}

func TestIsEmpty(t *testing.T) {
	require.NotPanics(t, func() { IsEmpty(false, "container") })
	require.PanicsWithValue(t, "expected container to be empty", func() { IsEmpty(true, "container") })
}
