package simd

import "errors"

// Parse errors returned by the scalar parsers.
var (
	// ErrEmpty indicates the input does not start with a digit.
	ErrEmpty = errors.New("no digits to parse")

	// ErrOverflow indicates the digit run exceeds the uint32 range.
	ErrOverflow = errors.New("value out of uint32 range")

	// ErrMissingSeparator indicates the digit run is not terminated by the
	// requested separator.
	ErrMissingSeparator = errors.New("digit run not terminated by separator")
)
