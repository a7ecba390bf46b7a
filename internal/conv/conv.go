// Package conv provides checked integer conversion helpers for simdint.
//
// These functions perform bounds checking before narrowing integer
// conversions so that no value is ever silently truncated.
package conv

import "math"

// Uint64ToUint32 converts a uint64 to uint32.
// Returns ok == false (and zero) if n > math.MaxUint32.
//
//go:inline
func Uint64ToUint32(n uint64) (v uint32, ok bool) {
	if n > math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}

// MustUint64ToUint32 converts a uint64 to uint32.
// Panics if n > math.MaxUint32.
//
//go:inline
func MustUint64ToUint32(n uint64) uint32 {
	v, ok := Uint64ToUint32(n)
	if !ok {
		panic("integer overflow: uint64 value out of uint32 range")
	}
	return v
}
