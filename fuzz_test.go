// Fuzz tests comparing simdint against strconv.ParseUint.
//
// Run fuzz tests with:
//
//	go test -fuzz=FuzzParseInteger -fuzztime=30s
//	go test -fuzz=FuzzParseIntegerSeparator -fuzztime=30s
//	go test -fuzz=FuzzParseIntegerUnchecked -fuzztime=30s
package simdint

import (
	"errors"
	"strconv"
	"testing"
)

var seedInputs = []string{
	"",
	"0",
	"1",
	"00042",
	"123,456",
	"123-456",
	"999999999",
	"4294967295",
	"4294967296",
	"12345678901",
	"0000000000000000000000000000000000001",
	"1234567890123456789012345678901234567890",
	"42\n43\n44\n45\n46\n47\n48\n49\n50\n51\n52\n",
	"\xff\x00123",
}

// reference parses the digit prefix of b with strconv.
func reference(b []byte) (uint32, int, error) {
	n := 0
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, 0, ErrEmpty
	}
	v, err := strconv.ParseUint(string(b[:n]), 10, 32)
	if err != nil {
		return 0, 0, ErrOverflow
	}
	return uint32(v), n, nil
}

func FuzzParseInteger(f *testing.F) {
	for _, s := range seedInputs {
		f.Add([]byte(s))
	}
	ps := testParsers(f)

	f.Fuzz(func(t *testing.T, b []byte) {
		want, wantN, wantErr := reference(b)
		for _, p := range ps {
			got, n, err := p.ParseInteger(b)
			if got != want || n != wantN || !errors.Is(err, wantErr) {
				t.Fatalf("%v: ParseInteger(%q) = (%d, %d, %v), strconv = (%d, %d, %v)",
					p.Level(), b, got, n, err, want, wantN, wantErr)
			}
		}
	})
}

func FuzzParseIntegerSeparator(f *testing.F) {
	for _, s := range seedInputs {
		f.Add([]byte(s), byte(','))
	}
	ps := testParsers(f)

	f.Fuzz(func(t *testing.T, b []byte, sep byte) {
		want, wantN, wantErr := reference(b)
		if wantErr == nil && (wantN == len(b) || b[wantN] != sep) {
			want, wantN, wantErr = 0, 0, ErrMissingSeparator
		}
		for _, p := range ps {
			got, n, err := p.ParseIntegerSeparator(b, sep)
			if got != want || n != wantN || !errors.Is(err, wantErr) {
				t.Fatalf("%v: ParseIntegerSeparator(%q, %q) = (%d, %d, %v), want (%d, %d, %v)",
					p.Level(), b, sep, got, n, err, want, wantN, wantErr)
			}
		}
	})
}

func FuzzParseIntegerUnchecked(f *testing.F) {
	for _, s := range seedInputs {
		f.Add([]byte(s))
	}
	ps := testParsers(f)

	f.Fuzz(func(t *testing.T, b []byte) {
		want, wantN, wantErr := reference(b)
		if wantN > 10 {
			// Leading zeros parse under strconv but exceed the unchecked bound.
			wantErr = ErrOverflow
		}
		for _, p := range ps {
			var got uint32
			var n int
			perr := recoverParseError(t, func() { got, n = p.ParseIntegerUnchecked(b) })

			if wantErr != nil {
				if perr == nil || !errors.Is(perr, wantErr) {
					t.Fatalf("%v: ParseIntegerUnchecked(%q) panicked with %v, want %v",
						p.Level(), b, perr, wantErr)
				}
				continue
			}
			if perr != nil {
				t.Fatalf("%v: ParseIntegerUnchecked(%q) unexpected panic: %v", p.Level(), b, perr)
			}
			if got != want || n != wantN {
				t.Fatalf("%v: ParseIntegerUnchecked(%q) = (%d, %d), want (%d, %d)",
					p.Level(), b, got, n, want, wantN)
			}
		}
	})
}
