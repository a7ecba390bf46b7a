package simdint

import "github.com/coregx/simdint/simd"

// DigitRunLength returns the number of ASCII digits at the head of b.
// Long runs are scanned a whole vector block at a time.
//
// Example:
//
//	n := simdint.DigitRunLength([]byte("0123,!49")) // 4
func DigitRunLength(b []byte) int {
	return std.DigitRunLength(b)
}

// AllDigits reports whether every byte of b is an ASCII digit.
// An empty slice reports true.
func AllDigits(b []byte) bool {
	return std.AllDigits(b)
}

// IndexTerminator returns the number of bytes of b before the first sep or
// eol byte, or len(b) if b contains neither.
//
// Example:
//
//	i := simdint.IndexTerminator([]byte("123,44321\n"), ',', '\n') // 3
func IndexTerminator(b []byte, sep, eol byte) int {
	return simd.IndexTerminator(b, sep, eol)
}

// DigitRunLength returns the number of ASCII digits at the head of b.
func (p *Parser) DigitRunLength(b []byte) int {
	return simd.DigitRun(p.level, b)
}

// AllDigits reports whether every byte of b is an ASCII digit.
func (p *Parser) AllDigits(b []byte) bool {
	return simd.DigitRun(p.level, b) == len(b)
}
