package simd

import (
	"encoding/binary"
	"math/bits"
)

// ParseScalar parses the digit run at the head of b one byte at a time.
// It stops at the first non-digit byte or at the end of b.
//
// Returns ErrEmpty if b does not start with a digit and ErrOverflow as soon
// as the accumulated value would exceed the uint32 range. On error value and
// n are zero.
func ParseScalar(b []byte) (value uint32, n int, err error) {
	value, n, err = accumulate(b)
	if err != nil {
		return 0, 0, err
	}
	if n == 0 {
		return 0, 0, ErrEmpty
	}
	return value, n, nil
}

// ParseScalarSeparator is ParseScalar with the additional requirement that
// the run is terminated by sep. A run ending at the end of b, or at any
// other byte, fails with ErrMissingSeparator. The returned n excludes the
// separator.
func ParseScalarSeparator(b []byte, sep byte) (value uint32, n int, err error) {
	value, n, err = ParseScalar(b)
	if err != nil {
		return 0, 0, err
	}
	if n == len(b) || b[n] != sep {
		return 0, 0, ErrMissingSeparator
	}
	return value, n, nil
}

// accumulate computes value = value*10 + digit with overflow-checked
// arithmetic for every leading digit of b.
func accumulate(b []byte) (uint32, int, error) {
	var value uint32
	for i, c := range b {
		d := c - '0'
		if d > 9 {
			return value, i, nil
		}
		hi, lo := bits.Mul32(value, 10)
		sum, carry := bits.Add32(lo, uint32(d), 0)
		if hi != 0 || carry != 0 {
			return 0, i, ErrOverflow
		}
		value = sum
	}
	return value, len(b), nil
}

// ParseScalarUnchecked accumulates the leading digits of b in 64 bits
// without per-digit overflow checks. It reads at most
// MaxUncheckedDigits+1 digits, so a returned n greater than
// MaxUncheckedDigits means the run is too long; the caller is responsible
// for validating n and the range of value.
func ParseScalarUnchecked(b []byte) (value uint64, n int) {
	for n < len(b) && n <= MaxUncheckedDigits {
		d := b[n] - '0'
		if d > 9 {
			break
		}
		value = value*10 + uint64(d)
		n++
	}
	return value, n
}

// digitRunGeneric returns the length of the digit run at the head of b using
// SWAR (SIMD Within A Register), classifying 8 bytes per step.
//
// Each byte is tested with carry-free per-byte additions on its low 7 bits:
//   - x + 0x50 sets bit 7 iff x >= 0x30 ('0')
//   - x + 0x46 sets bit 7 iff x >= 0x3A ('9'+1)
//
// A byte with its own bit 7 set is never a digit. Since the low 7 bits are
// at most 0x7F, no addition carries into the neighbouring byte.
func digitRunGeneric(b []byte) int {
	const (
		lo7 = uint64(0x7f7f7f7f7f7f7f7f)
		hi8 = uint64(0x8080808080808080)
		ge0 = uint64(0x5050505050505050)
		gt9 = uint64(0x4646464646464646)
	)

	idx := 0
	for idx+8 <= len(b) {
		chunk := binary.LittleEndian.Uint64(b[idx:])
		low := chunk & lo7

		atLeastZero := (low + ge0) & hi8
		aboveNine := (low + gt9) & hi8
		nonDigit := (chunk & hi8) | (^atLeastZero & hi8) | aboveNine

		if nonDigit != 0 {
			return idx + bits.TrailingZeros64(nonDigit)/8
		}
		idx += 8
	}

	for idx < len(b) {
		if b[idx]-'0' > 9 {
			return idx
		}
		idx++
	}
	return idx
}
