// Package simdint parses ASCII decimal integers into uint32 values using
// vector instructions where the CPU provides them.
//
// simdint reads the run of ASCII digits at the head of a byte slice and
// converts it in a handful of instructions:
//   - AVX2 for inputs of 32 bytes or more
//   - SSE4.2 (or SSE4.1) for inputs of 16 bytes or more
//   - an iterative scalar parser for shorter inputs and other platforms
//
// The instruction-set tier is detected once at startup. Setting the
// SIMDINT_NO_SIMD environment variable, or building with the purego tag,
// restricts the package to the scalar parser.
//
// Basic usage:
//
//	v, n, err := simdint.ParseInteger([]byte("1234,5678"))
//	// v == 1234, n == 4, err == nil
//
//	v, n, err = simdint.ParseIntegerSeparator([]byte("1234,5678"), ',')
//	// v == 1234, n == 4; the next field starts at n+1
//
// The checked functions report ErrEmpty, ErrOverflow and
// ErrMissingSeparator. The unchecked functions skip per-digit overflow
// checks and panic with a *ParseError on the same conditions; they suit
// inputs that were validated elsewhere.
//
// Every function is pure and safe for concurrent use. Input slices are
// never modified or retained.
package simdint

import (
	"unsafe"

	"github.com/coregx/simdint/internal/conv"
	"github.com/coregx/simdint/simd"
)

// Parser parses integers at a fixed instruction-set tier.
//
// A Parser is immutable and safe to use concurrently from multiple
// goroutines. The package-level functions use a Parser configured with
// DefaultConfig.
type Parser struct {
	level Level
}

// std is the Parser behind the package-level functions.
var std = &Parser{level: simd.CurrentLevel()}

// NewParser returns a Parser for the given configuration.
func NewParser(config Config) (*Parser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Parser{level: min(config.MaxLevel, simd.HardwareLevel())}, nil
}

// MustNewParser is like NewParser but panics if the configuration is
// invalid.
func MustNewParser(config Config) *Parser {
	p, err := NewParser(config)
	if err != nil {
		panic(err)
	}
	return p
}

// Level returns the highest tier the parser may use.
func (p *Parser) Level() Level {
	return p.level
}

// ParseInteger parses the ASCII digit run at the head of b.
// Parsing stops at the first byte outside '0'..'9' or at the end of b.
//
// It returns the value and the number of digits consumed. Leading zeros
// are accepted and counted in n. On error value and n are zero and err is
// ErrEmpty (b does not start with a digit) or ErrOverflow (the value
// exceeds math.MaxUint32).
//
// Example:
//
//	v, n, err := simdint.ParseInteger([]byte("00042abc"))
//	// v == 42, n == 5
func ParseInteger(b []byte) (value uint32, n int, err error) {
	return std.ParseInteger(b)
}

// ParseIntegerSeparator is like ParseInteger but additionally requires the
// digit run to be immediately followed by sep. A run that ends at the end
// of b or at any other byte fails with ErrMissingSeparator. The returned n
// does not count the separator.
func ParseIntegerSeparator(b []byte, sep byte) (value uint32, n int, err error) {
	return std.ParseIntegerSeparator(b, sep)
}

// ParseIntegerUnchecked parses the ASCII digit run at the head of b
// without per-digit overflow checks.
//
// It panics with a *ParseError wrapping ErrEmpty if b does not start with
// a digit, or ErrOverflow if the run is longer than ten digits or its value
// exceeds math.MaxUint32.
func ParseIntegerUnchecked(b []byte) (value uint32, n int) {
	return std.ParseIntegerUnchecked(b)
}

// ParseIntegerSeparatorUnchecked is like ParseIntegerUnchecked but
// additionally panics with a *ParseError wrapping ErrMissingSeparator if
// the digit run is not immediately followed by sep.
func ParseIntegerSeparatorUnchecked(b []byte, sep byte) (value uint32, n int) {
	return std.ParseIntegerSeparatorUnchecked(b, sep)
}

// ParseString is like ParseInteger but takes a string. It does not copy s.
func ParseString(s string) (value uint32, n int, err error) {
	return std.ParseInteger(stringBytes(s))
}

// ParseStringSeparator is like ParseIntegerSeparator but takes a string.
// It does not copy s.
func ParseStringSeparator(s string, sep byte) (value uint32, n int, err error) {
	return std.ParseIntegerSeparator(stringBytes(s), sep)
}

// stringBytes returns the bytes of s without copying. The result must not
// be modified; no parser writes to its input.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ParseInteger parses the ASCII digit run at the head of b.
// See the package-level ParseInteger.
func (p *Parser) ParseInteger(b []byte) (value uint32, n int, err error) {
	if k := simd.Select(p.level, len(b)); k != nil {
		if v, n, ok := k.Parse(b, simd.MaxCheckedDigits); ok {
			return conv.MustUint64ToUint32(v), n, nil
		}
	}
	return simd.ParseScalar(b)
}

// ParseIntegerSeparator parses the ASCII digit run at the head of b and
// requires it to be followed by sep.
// See the package-level ParseIntegerSeparator.
func (p *Parser) ParseIntegerSeparator(b []byte, sep byte) (value uint32, n int, err error) {
	if k := simd.Select(p.level, len(b)); k != nil {
		// A kernel accepts at most 9 digits from a block of at least 16
		// bytes, so b[n] exists.
		if v, n, ok := k.Parse(b, simd.MaxCheckedDigits); ok && b[n] == sep {
			return conv.MustUint64ToUint32(v), n, nil
		}
	}
	return simd.ParseScalarSeparator(b, sep)
}

// ParseIntegerUnchecked parses the ASCII digit run at the head of b
// without per-digit overflow checks.
// See the package-level ParseIntegerUnchecked.
func (p *Parser) ParseIntegerUnchecked(b []byte) (value uint32, n int) {
	return p.unchecked("ParseIntegerUnchecked", b)
}

// ParseIntegerSeparatorUnchecked parses the ASCII digit run at the head of
// b without per-digit overflow checks and requires it to be followed by
// sep.
// See the package-level ParseIntegerSeparatorUnchecked.
func (p *Parser) ParseIntegerSeparatorUnchecked(b []byte, sep byte) (value uint32, n int) {
	const fn = "ParseIntegerSeparatorUnchecked"
	value, n = p.unchecked(fn, b)
	if n == len(b) || b[n] != sep {
		panic(newParseError(fn, b, ErrMissingSeparator))
	}
	return value, n
}

// unchecked accumulates the digit run in 64 bits and validates the run
// length and range once at the end.
func (p *Parser) unchecked(fn string, b []byte) (uint32, int) {
	var raw uint64
	var n int
	if k := simd.Select(p.level, len(b)); k != nil {
		// A rejected run is either empty or too long; both are caught below.
		raw, n, _ = k.Parse(b, simd.MaxUncheckedDigits)
	} else {
		raw, n = simd.ParseScalarUnchecked(b)
	}

	switch {
	case n == 0:
		panic(newParseError(fn, b, ErrEmpty))
	case n > simd.MaxUncheckedDigits:
		panic(newParseError(fn, b, ErrOverflow))
	}
	v, ok := conv.Uint64ToUint32(raw)
	if !ok {
		panic(newParseError(fn, b, ErrOverflow))
	}
	return v, n
}
