package simdint

import (
	"fmt"

	"github.com/coregx/simdint/simd"
)

// Parse errors. Checked functions return these values directly; other
// errors of this package wrap them, so compare with errors.Is.
var (
	// ErrEmpty indicates the input does not start with an ASCII digit.
	ErrEmpty = simd.ErrEmpty

	// ErrOverflow indicates the digit run denotes a value above
	// math.MaxUint32.
	ErrOverflow = simd.ErrOverflow

	// ErrMissingSeparator indicates the digit run ends at the end of the
	// input or at a byte other than the requested separator.
	ErrMissingSeparator = simd.ErrMissingSeparator
)

// maxQuoted bounds the input prefix kept in a ParseError.
const maxQuoted = 32

// ParseError is the panic value of the unchecked functions.
//
// Example:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        if err, ok := r.(error); ok && errors.Is(err, simdint.ErrOverflow) {
//	            // ...
//	        }
//	    }
//	}()
//	simdint.ParseIntegerUnchecked([]byte("99999999999"))
type ParseError struct {
	// Func is the name of the function that failed.
	Func string

	// Input is a copy of the head of the input, at most 32 bytes.
	Input string

	// Err is one of ErrEmpty, ErrOverflow, ErrMissingSeparator.
	Err error
}

func newParseError(fn string, b []byte, err error) *ParseError {
	if len(b) > maxQuoted {
		b = b[:maxQuoted]
	}
	return &ParseError{Func: fn, Input: string(b), Err: err}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("simdint: %s(%q): %v", e.Func, e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError reports the field of a record that could not be parsed.
type FieldError struct {
	// Field is the zero-based index of the field within the record.
	Field int

	// Offset is the byte offset within the record where the failure was
	// detected: the start of the field for ErrEmpty and ErrOverflow, the
	// offending terminator for ErrMissingSeparator.
	Offset int

	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("simdint: field %d at offset %d: %v", e.Field, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}
