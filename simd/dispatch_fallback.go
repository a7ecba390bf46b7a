//go:build !amd64 || purego

package simd

// Vector kernels are only built for amd64. Everywhere else every level
// resolves to the scalar parser.

func detectLevel() Level {
	return LevelScalar
}

func kernelTable(Level) dispatchTable {
	return dispatchTable{}
}

func compiledKernels() []*Kernel {
	return nil
}
