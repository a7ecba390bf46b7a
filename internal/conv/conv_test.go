package conv

import (
	"math"
	"testing"
)

func TestUint64ToUint32(t *testing.T) {
	tests := []struct {
		in   uint64
		want uint32
		ok   bool
	}{
		{0, 0, true},
		{42, 42, true},
		{math.MaxUint32, math.MaxUint32, true},
		{math.MaxUint32 + 1, 0, false},
		{9999999999, 0, false},
		{math.MaxUint64, 0, false},
	}

	for _, tt := range tests {
		got, ok := Uint64ToUint32(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Uint64ToUint32(%d) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMustUint64ToUint32(t *testing.T) {
	if got := MustUint64ToUint32(math.MaxUint32); got != math.MaxUint32 {
		t.Errorf("MustUint64ToUint32(MaxUint32) = %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustUint64ToUint32(MaxUint32+1) did not panic")
		}
	}()
	MustUint64ToUint32(math.MaxUint32 + 1)
}
