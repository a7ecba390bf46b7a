package simd

import (
	"encoding/binary"
	"math/bits"
)

// DigitRun returns the length of the run of ASCII digits [0-9] at the head
// of b, using the kernels selectable at level l for every full block and the
// SWAR scanner for the tail.
//
// Example:
//
//	n := simd.DigitRun(simd.CurrentLevel(), []byte("0123,!49")) // 4
func DigitRun(l Level, b []byte) int {
	idx := 0
	for {
		k := Select(l, len(b)-idx)
		if k == nil {
			break
		}
		n := k.runLen(b[idx:])
		idx += n
		if n < k.Width {
			return idx
		}
	}
	return idx + digitRunGeneric(b[idx:])
}

// IndexTerminator returns the number of bytes of b before the first
// occurrence of sep or eol, or len(b) if neither is present.
//
// Both needles are searched for in parallel 8 bytes at a time using the
// zero-byte detection formula (v - 0x01..01) & ^v & 0x80..80 on the XOR of
// each chunk with the broadcast needle.
func IndexTerminator(b []byte, sep, eol byte) int {
	const (
		lo8 = uint64(0x0101010101010101)
		hi8 = uint64(0x8080808080808080)
	)

	sepMask := uint64(sep) * lo8
	eolMask := uint64(eol) * lo8

	idx := 0
	for idx+8 <= len(b) {
		chunk := binary.LittleEndian.Uint64(b[idx:])

		xor1 := chunk ^ sepMask
		xor2 := chunk ^ eolMask
		hasZero := ((xor1 - lo8) & ^xor1 & hi8) | ((xor2 - lo8) & ^xor2 & hi8)

		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	for idx < len(b) {
		if c := b[idx]; c == sep || c == eol {
			return idx
		}
		idx++
	}
	return idx
}
