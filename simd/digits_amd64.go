//go:build amd64 && !purego

package simd

import "golang.org/x/sys/cpu"

// Assembly kernels implemented in digits_amd64.s. Each reads exactly one
// block (16 bytes for the SSE tiers, 32 for AVX2) from the start of b and
// requires len(b) to be at least that long.
//
// The parse* functions return the left-aligned 16-digit value of the run
// (lanes past the run are zero) and the run length within the block. When
// the run is longer than 16 lanes, value is zero.

//go:noescape
func parseSSE41(b []byte) (value uint64, n int)

//go:noescape
func parseSSE42(b []byte) (value uint64, n int)

//go:noescape
func parseAVX2(b []byte) (value uint64, n int)

//go:noescape
func digitRunSSE41(b []byte) int

//go:noescape
func digitRunSSE42(b []byte) int

//go:noescape
func digitRunAVX2(b []byte) int

var (
	kernelSSE41 = &Kernel{Level: LevelSSE41, Width: 16, parse: parseSSE41, runLen: digitRunSSE41}
	kernelSSE42 = &Kernel{Level: LevelSSE42, Width: 16, parse: parseSSE42, runLen: digitRunSSE42}
	kernelAVX2  = &Kernel{Level: LevelAVX2, Width: 32, parse: parseAVX2, runLen: digitRunAVX2}
)

// detectLevel queries the CPU for the tiers the kernels need.
// PMADDUBSW is SSSE3 and PACKUSDW is SSE4.1, so every tier requires both.
func detectLevel() Level {
	if !cpu.X86.HasSSSE3 || !cpu.X86.HasSSE41 {
		return LevelScalar
	}
	if !cpu.X86.HasSSE42 {
		return LevelSSE41
	}
	if cpu.X86.HasAVX && cpu.X86.HasAVX2 {
		return LevelAVX2
	}
	return LevelSSE42
}

func kernelTable(l Level) dispatchTable {
	switch l {
	case LevelAVX2:
		return dispatchTable{wide: kernelAVX2, narrow: kernelSSE42}
	case LevelSSE42:
		return dispatchTable{narrow: kernelSSE42}
	case LevelSSE41:
		return dispatchTable{narrow: kernelSSE41}
	default:
		return dispatchTable{}
	}
}

func compiledKernels() []*Kernel {
	return []*Kernel{kernelSSE41, kernelSSE42, kernelAVX2}
}
