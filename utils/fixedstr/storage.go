// File: storage.go
// Title: Inline Storage Access
// Description: Views the inline storage array of an instantiation as a slice of
//              character units. The storage type is a type parameter, so its
//              shape is verified with reflect once per type before the unsafe
//              reinterpretation.
// Author: abeimler
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Shape check cached per storage type, length from size

package fixedstr

import (
	"reflect"
	"sync"
	"unsafe"

	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
)

// arrayShape is the cache key of one (unit, storage) type pair
type arrayShape[U Unit, A any] struct{}

// verifiedShapes holds an arrayShape for every A found to be an array of U
var verifiedShapes sync.Map

// unitsOf returns the array *a as a slice of U aliasing its memory.
// A must be an array of U with at least minLen elements, otherwise it panics
// with an INVALID_STORAGE error.
func unitsOf[U Unit, A any](a *A, minLen int) []U {
	n := int(unsafe.Sizeof(*a) / unitSize[U]())
	if n < minLen || !isArrayOf[U, A]() {
		panic(fsserrors.InvalidStorage(fsserrors.ModuleFixedstr,
			reflect.TypeFor[A]().String(), reflect.TypeFor[U]().String()))
	}
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*U)(unsafe.Pointer(a)), n)
}

// isArrayOf reports whether A is an array type with element type U
func isArrayOf[U Unit, A any]() bool {
	key := arrayShape[U, A]{}
	if _, ok := verifiedShapes.Load(key); ok {
		return true
	}
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem() != reflect.TypeFor[U]() {
		return false
	}
	verifiedShapes.Store(key, struct{}{})
	return true
}

// unitSize is the width of U in bytes.
func unitSize[U Unit]() uintptr {
	var u U
	return unsafe.Sizeof(u)
}
