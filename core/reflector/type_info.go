// Package reflector derives stable, cached names for Go types. The actor
// runtime uses them to label messages in logs and metrics.
package reflector

import (
	"reflect"
	"sync"
)

// maxCacheSize bounds the name cache. Programs have few message types, so
// the cache is simply reset if it ever grows past this.
const maxCacheSize = 1024

var (
	muCache sync.RWMutex
	cache   = make(map[reflect.Type]TypeInfo)
)

// TypeInfo holds the names of a type.
type TypeInfo struct {
	Name     string       // package name and type name: "main.Increment"
	FullName string       // import path and type name: "example.com/app.Increment"
	Type     reflect.Type // the type itself, pointers unwrapped
}

// NameOf returns the short name of the dynamic type of x, "" for nil.
func NameOf(x any) string { return TypeInfoOf(x).Name }

// TypeInfoOf returns the TypeInfo of the dynamic type of x.
func TypeInfoOf(x any) TypeInfo {
	return TypeInfoForType(reflect.TypeOf(x))
}

// TypeInfoForType returns the TypeInfo of t. Pointer types are described by
// their element type. Unnamed types fall back to their literal form.
func TypeInfoForType(t reflect.Type) TypeInfo {
	if t == nil {
		return TypeInfo{}
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	muCache.RLock()
	ti, ok := cache[t]
	muCache.RUnlock()
	if ok {
		return ti
	}

	ti = TypeInfo{Name: t.String(), FullName: t.String(), Type: t}
	if t.Name() != "" && t.PkgPath() != "" {
		ti.FullName = t.PkgPath() + "." + t.Name()
	}

	muCache.Lock()
	if len(cache) >= maxCacheSize {
		cache = make(map[reflect.Type]TypeInfo)
	}
	cache[t] = ti
	muCache.Unlock()

	return ti
}
