// SPDX-License-Identifier: MIT

package matrix

import (
	"reflect"
	"sync"
)

// sentinelKey identifies one cached sentinel: element type + diagonal seed.
type sentinelKey struct {
	elem reflect.Type
	diag int
}

// sentinels caches one immutable 0×0 matrix per (element type, seed).
// Entries are written once and never mutated afterwards.
var sentinels sync.Map // sentinelKey -> *Matrix[T]

// sentinel returns the cached 0×0 matrix for T seeded with diag,
// building it on first use.
func sentinel[T Number](diag int) *Matrix[T] {
	key := sentinelKey{elem: reflect.TypeOf((*T)(nil)).Elem(), diag: diag}
	if v, ok := sentinels.Load(key); ok {
		return v.(*Matrix[T])
	}
	m := newMatrix[T](0, 0)
	m.SetDiagonal(T(diag))
	v, _ := sentinels.LoadOrStore(key, m) // first writer wins

	return v.(*Matrix[T])
}

// MZero returns the zero sentinel: a 0×0 matrix seeded with diagonal 0.
// Add and Sub return it in place of a result on shape mismatch.
// Each call returns a private clone of the cached instance.
func MZero[T Number]() *Matrix[T] { return sentinel[T](0).Clone() }

// MOne returns the unit sentinel: a 0×0 matrix seeded with diagonal 1.
// Each call returns a private clone of the cached instance.
func MOne[T Number]() *Matrix[T] { return sentinel[T](1).Clone() }
