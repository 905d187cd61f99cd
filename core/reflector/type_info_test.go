package reflector

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type (
	increment struct{ By int }
	getCount  struct{}
)

func TestTypeInfoOf(t *testing.T) {
	ti := TypeInfoOf(increment{By: 1})
	require.Equal(t, "reflector.increment", ti.Name)
	require.Equal(t, "github.com/Danconnolly/minactor/core/reflector.increment", ti.FullName)
	require.Equal(t, reflect.TypeFor[increment](), ti.Type)
}

func TestTypeInfoOf_pointer(t *testing.T) {
	v := &increment{}
	pp := &v
	require.Equal(t, "reflector.increment", TypeInfoOf(v).Name)
	require.Equal(t, "reflector.increment", TypeInfoOf(pp).Name)
	require.NotEqual(t, reflect.Pointer, TypeInfoOf(pp).Type.Kind())
}

func TestTypeInfoForType(t *testing.T) {
	ti := TypeInfoForType(reflect.TypeFor[*getCount]())
	require.Equal(t, "reflector.getCount", ti.Name)
	require.Equal(t, reflect.TypeFor[getCount](), ti.Type)
}

func TestTypeInfo_builtin_and_unnamed(t *testing.T) {
	require.Equal(t, "int", NameOf(42))
	require.Equal(t, "int", TypeInfoOf(42).FullName)
	require.Equal(t, "map[string]int", NameOf(map[string]int{}))
	require.Equal(t, "struct {}", NameOf(struct{}{}))
}

func TestTypeInfo_nil(t *testing.T) {
	require.Equal(t, "", NameOf(nil))
	require.Nil(t, TypeInfoForType(nil).Type)
}

func TestTypeInfo_cache(t *testing.T) {
	muCache.Lock()
	cache = make(map[reflect.Type]TypeInfo)
	muCache.Unlock()

	ti1 := TypeInfoOf(increment{})
	ti2 := TypeInfoOf(&increment{})
	require.Equal(t, ti1, ti2)

	muCache.RLock()
	_, ok := cache[reflect.TypeFor[increment]()]
	n := len(cache)
	muCache.RUnlock()
	require.True(t, ok)
	require.Equal(t, 1, n)
}

func TestTypeInfo_concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = NameOf(increment{})
				_ = NameOf(&getCount{})
				_ = NameOf("x")
			}
		}()
	}
	wg.Wait()
}
