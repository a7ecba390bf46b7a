// Package simd provides the vectorized building blocks of simdint: ASCII digit
// classification, digit-run scanning and digit-to-binary reduction. The
// package detects the available instruction-set tier once at initialization
// (SSE4.1, SSE4.2 or AVX2 on x86-64) and falls back to pure Go scalar code on
// other platforms or when built with the purego tag.
//
// Most callers should use the root simdint package, which combines the
// kernels in this package with the scalar fallback into the public parsing
// contract.
package simd

import (
	"os"
	"strconv"
)

// Level is an instruction-set tier. Levels are ordered: a CPU supporting a
// level supports every level below it.
type Level int

const (
	// LevelScalar uses no vector instructions.
	LevelScalar Level = iota

	// LevelSSE41 is the baseline 128-bit tier (SSSE3 + SSE4.1).
	LevelSSE41

	// LevelSSE42 is the improved 128-bit tier; it classifies digits with
	// PCMPESTRI range matching.
	LevelSSE42

	// LevelAVX2 is the wide 256-bit tier.
	LevelAVX2

	numLevels
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE41:
		return "sse4.1"
	case LevelSSE42:
		return "sse4.2"
	case LevelAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// Width returns the block size in bytes processed by the widest kernel of
// the level, or 0 for LevelScalar.
func (l Level) Width() int {
	switch l {
	case LevelSSE41, LevelSSE42:
		return 16
	case LevelAVX2:
		return 32
	default:
		return 0
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelScalar && l < numLevels
}

// dispatchTable holds the kernels selectable at one level.
// wide has the larger block; either may be nil.
type dispatchTable struct {
	wide   *Kernel
	narrow *Kernel
}

var (
	// hardwareLevel is the highest level the running CPU supports.
	hardwareLevel Level

	// currentLevel is hardwareLevel unless SIMDINT_NO_SIMD is set.
	currentLevel Level

	// tables is indexed by Level. Entries above hardwareLevel repeat the
	// hardwareLevel entry so that a caller asking for more than the CPU
	// offers never reaches an unsupported instruction.
	tables [numLevels]dispatchTable
)

func init() {
	hardwareLevel = detectLevel()
	currentLevel = hardwareLevel
	if noSIMDEnv() {
		currentLevel = LevelScalar
	}

	for l := LevelScalar; l < numLevels; l++ {
		eff := l
		if eff > hardwareLevel {
			eff = hardwareLevel
		}
		tables[l] = kernelTable(eff)
	}
}

// CurrentLevel returns the level used by default. It is fixed for the
// lifetime of the process.
func CurrentLevel() Level {
	return currentLevel
}

// HardwareLevel returns the highest level supported by the running CPU,
// ignoring the SIMDINT_NO_SIMD override.
func HardwareLevel() Level {
	return hardwareLevel
}

// Select returns the kernel to run at level l for an input of n bytes, or
// nil when the input is shorter than every block width available at l and
// the scalar parser must be used.
func Select(l Level, n int) *Kernel {
	if !l.Valid() {
		return nil
	}
	t := &tables[l]
	if t.wide != nil && n >= t.wide.Width {
		return t.wide
	}
	if t.narrow != nil && n >= t.narrow.Width {
		return t.narrow
	}
	return nil
}

// Kernels returns every vector kernel compiled in and supported by the
// running CPU, narrowest tier first. The result is empty on platforms
// without vector kernels.
func Kernels() []*Kernel {
	all := compiledKernels()
	ks := make([]*Kernel, 0, len(all))
	for _, k := range all {
		if k.Level <= hardwareLevel {
			ks = append(ks, k)
		}
	}
	return ks
}

// noSIMDEnv checks if the SIMDINT_NO_SIMD environment variable is set.
// Any non-empty value other than one parsing as boolean false disables the
// vector kernels for the package-level default.
func noSIMDEnv() bool {
	val := os.Getenv("SIMDINT_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
