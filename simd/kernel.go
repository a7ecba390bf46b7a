package simd

const (
	// MaxCheckedDigits is the longest digit run a kernel decodes on the
	// checked path. Nine digits never exceed the uint32 range.
	MaxCheckedDigits = 9

	// MaxUncheckedDigits is the longest digit run accepted on the unchecked
	// path. Ten digits may exceed the uint32 range; the caller validates.
	MaxUncheckedDigits = 10

	// reduceLanes is the number of digit lanes combined by the reduction.
	reduceLanes = 16
)

// pow10 holds 10^i for i in [0, reduceLanes].
var pow10 = [reduceLanes + 1]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
}

// Kernel is one instruction-set tier's vector routine. Every kernel runs the
// same algorithm over a fixed block of Width bytes:
//
//  1. Load Width bytes from the head of the buffer.
//  2. Build a digit mask by comparing every lane against '0' and '9'.
//  3. Find the first non-digit lane; its index is the digit-run length.
//  4. Subtract '0' from every lane and zero the lanes past the run.
//  5. Combine lanes pairwise with weights {10,1}, then {100,1}, then
//     {10000,1}, leaving two 8-digit values.
//  6. Reduce the two values to one left-aligned 16-digit integer.
//
// The tiers differ only in how step 2 is encoded and in the block width
// classified by steps 1-3. Only the first 16 lanes are ever reduced, which
// covers the longest accepted digit run.
type Kernel struct {
	// Level is the tier the kernel belongs to.
	Level Level

	// Width is the block size in bytes. Inputs must be at least this long.
	Width int

	parse  func(b []byte) (value uint64, n int)
	runLen func(b []byte) int
}

// Name returns the name of the kernel's tier.
func (k *Kernel) Name() string {
	return k.Level.String()
}

// Parse decodes the digit run at the head of b. It returns ok == false when
// the run is empty or longer than maxDigits, in which case value is zero and
// n still reports the run length observed within the block (at most Width).
//
// maxDigits must not exceed MaxUncheckedDigits. Parse panics if
// len(b) < k.Width.
func (k *Kernel) Parse(b []byte, maxDigits int) (value uint64, n int, ok bool) {
	if len(b) < k.Width {
		panic("simd: kernel " + k.Name() + " called with a buffer shorter than its block")
	}
	raw, n := k.parse(b)
	if n == 0 || n > maxDigits || n > MaxUncheckedDigits {
		return 0, n, false
	}
	return raw / pow10[reduceLanes-n], n, true
}

// RunLength returns the length of the digit run at the head of b, counting
// at most Width bytes. Panics if len(b) < k.Width.
func (k *Kernel) RunLength(b []byte) int {
	if len(b) < k.Width {
		panic("simd: kernel " + k.Name() + " called with a buffer shorter than its block")
	}
	return k.runLen(b)
}
