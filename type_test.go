package erased

import (
	"bytes"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"log/slog"
	"reflect"
	"sync"
	"testing"
)

func TestTypeOf(t *testing.T) {
	require.Equal(t, TypeOf[int](), TypeOf[int]())
	require.NotEqual(t, TypeOf[int](), TypeOf[int64]())
	require.NotEqual(t, TypeOf[float64](), TypeOf[Celsius]())
	require.NotEqual(t, NoType, TypeOf[int]())

	ty := TypeOf[Large]()
	require.NotZero(t, ty.Id())
	require.Equal(t, "erased.Large", ty.Name())
	require.Equal(t, "erased.Large", ty.String())
	require.Equal(t, reflect.TypeFor[Large](), ty.Reflect())
	require.Equal(t, PolicyHeap, ty.Policy())
	require.EqualValues(t, 64, ty.Size(), spew.Sdump(ty.info.layout))

	exact := TypeOf[Exact]()
	require.Equal(t, PolicyInline, exact.Policy(), spew.Sdump(exact.info.layout))
}

func TestNoType(t *testing.T) {
	require.Zero(t, NoType.Id())
	require.Equal(t, "<none>", NoType.Name())
	require.Nil(t, NoType.Reflect())
	require.Equal(t, PolicyNone, NoType.Policy())
	require.Zero(t, NoType.Size())
}

func TestTypeOf_Concurrent(t *testing.T) {
	type Registered struct{ Value int }

	var wg sync.WaitGroup

	ids := make([]TypeId, 16)
	for idx := range ids {
		wg.Add(1)

		go func() {
			defer wg.Done()
			ids[idx] = TypeOf[Registered]()
		}()
	}

	wg.Wait()

	for _, id := range ids {
		require.Equal(t, ids[0], id)
	}
}

func TestTypeOf_LogsRegistration(t *testing.T) {
	type LoggedOnce struct{ Value [2]int64 }

	var buf bytes.Buffer

	previous := slog.Default()
	defer slog.SetDefault(previous)

	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ty := TypeOf[LoggedOnce]()
	TypeOf[LoggedOnce]()

	require.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("New erased type registered")))
	require.Contains(t, buf.String(), "policy=inline")
	require.Contains(t, buf.String(), ty.Name())
}

func TestPolicy_String(t *testing.T) {
	require.Equal(t, "none", PolicyNone.String())
	require.Equal(t, "inline", PolicyInline.String())
	require.Equal(t, "heap", PolicyHeap.String())
	require.Equal(t, "invalid", Policy(17).String())
}
