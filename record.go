package simdint

// ParseRecord parses a record of sep-separated unsigned integers ended by
// eol or by the end of b, appending the values to dst.
//
// It returns the extended slice and the number of bytes consumed, which
// includes the eol byte when one ends the record. The next record therefore
// starts at b[consumed:].
//
// On failure the error is a *FieldError wrapping ErrEmpty, ErrOverflow or
// ErrMissingSeparator, the returned slice holds the fields parsed before
// the failing one, and consumed is the offset of the failing field. When
// sep == eol, every occurrence separates fields and the record ends only at
// the end of b.
//
// Example:
//
//	var fields []uint32
//	data := []byte("1,22,333\n4,5\n")
//	for len(data) > 0 {
//	    var n int
//	    var err error
//	    fields, n, err = simdint.ParseRecord(fields[:0], data, ',', '\n')
//	    if err != nil {
//	        return err
//	    }
//	    data = data[n:]
//	}
func ParseRecord(dst []uint32, b []byte, sep, eol byte) ([]uint32, int, error) {
	return std.ParseRecord(dst, b, sep, eol)
}

// ParseRecord parses a record of sep-separated unsigned integers.
// See the package-level ParseRecord.
func (p *Parser) ParseRecord(dst []uint32, b []byte, sep, eol byte) ([]uint32, int, error) {
	off := 0
	for field := 0; ; field++ {
		v, n, err := p.ParseInteger(b[off:])
		if err != nil {
			return dst, off, &FieldError{Field: field, Offset: off, Err: err}
		}
		dst = append(dst, v)
		end := off + n

		if end == len(b) {
			return dst, end, nil
		}
		switch b[end] {
		case sep:
			off = end + 1
		case eol:
			return dst, end + 1, nil
		default:
			return dst[:len(dst)-1], off, &FieldError{Field: field, Offset: end, Err: ErrMissingSeparator}
		}
	}
}
