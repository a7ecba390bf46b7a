package simd

import (
	"bytes"
	"fmt"
	"testing"
)

// refIndexTerminator is a reference implementation for verification.
func refIndexTerminator(b []byte, sep, eol byte) int {
	for i, c := range b {
		if c == sep || c == eol {
			return i
		}
	}
	return len(b)
}

func TestDigitRunAllLevels(t *testing.T) {
	for l := LevelScalar; l < numLevels; l++ {
		t.Run(l.String(), func(t *testing.T) {
			for size := 0; size <= 130; size++ {
				for _, pos := range []int{0, 1, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, size - 1, size} {
					if pos < 0 || pos > size {
						continue
					}
					buf := bytes.Repeat([]byte{'3'}, size)
					if pos < size {
						buf[pos] = ','
					}

					want := refDigitRun(buf)
					if got := DigitRun(l, buf); got != want {
						t.Fatalf("size %d, terminator at %d: DigitRun = %d, want %d", size, pos, got, want)
					}
				}
			}
		})
	}
}

func TestDigitRunExamples(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"1", 1},
		{"012349", 6},
		{"0123,!49", 4},
		{"00000,1234567890", 5},
		{"0000001234567890", 16},
		{"1234,34567,67891", 4},
		{"11111111111111111111111111111111", 32},
		{"1111111=111111111111111111111111", 7},
	}

	for _, tt := range tests {
		if got := DigitRun(CurrentLevel(), []byte(tt.input)); got != tt.want {
			t.Errorf("DigitRun(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestIndexTerminator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"separator_first", ",1234.4321\n", 0},
		{"one_digit", "1,2344321", 1},
		{"more_digits", "123,44321\n", 3},
		{"eol_first", "12\n3,4", 2},
		{"none", "12345678901234567890", 20},
		{"in_second_chunk", "123456789,", 9},
		{"only_separators", "\n\n,,", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexTerminator([]byte(tt.input), ',', '\n'); got != tt.want {
				t.Errorf("IndexTerminator(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndexTerminatorSizes(t *testing.T) {
	for size := 0; size <= 70; size++ {
		for pos := 0; pos <= size; pos++ {
			for _, term := range []byte{',', '\n'} {
				buf := bytes.Repeat([]byte{'a'}, size)
				if pos < size {
					buf[pos] = term
				}
				want := refIndexTerminator(buf, ',', '\n')
				if got := IndexTerminator(buf, ',', '\n'); got != want {
					t.Fatalf("size %d, %q at %d: got %d, want %d", size, term, pos, got, want)
				}
			}
		}
	}
}

func TestIndexTerminatorSameNeedle(t *testing.T) {
	buf := []byte("aaaaaaaaaa;aaaa")
	if got := IndexTerminator(buf, ';', ';'); got != 10 {
		t.Errorf("IndexTerminator with equal needles = %d, want 10", got)
	}
}

func BenchmarkDigitRun(b *testing.B) {
	for _, size := range []int{8, 32, 256, 4096} {
		buf := bytes.Repeat([]byte{'9'}, size)
		for l := LevelScalar; l <= HardwareLevel(); l++ {
			b.Run(fmt.Sprintf("%s/size=%d", l, size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for i := 0; i < b.N; i++ {
					DigitRun(l, buf)
				}
			})
		}
	}
}
