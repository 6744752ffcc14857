package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Rand is the subset of *math/rand.Rand used by mazemaker.
// *rand.Rand satisfies it; tests may supply scripted implementations.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Int63() int64
}

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Split draws one value from base and fans it out into n independent
// streams, one per phase of an attempt. The same base state always yields
// the same streams; a nil base starts from DefaultSeed.
//
// Complexity: O(n).
func Split(base Rand, n int) []*rand.Rand {
	if n <= 0 {
		return nil
	}
	root := uint64(Ensure(base).Int63())
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = rand.New(rand.NewSource(int64(mix(root + uint64(i+1)*golden))))
	}
	return out
}

// golden is 2^64/φ, the usual odd increment for splitmix-style sequences.
const golden = 0x9e3779b97f4a7c15

// mix is the splitmix64 output function.
func mix(z uint64) uint64 {
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}

// Ensure returns r, or a fresh DefaultSeed stream when r is nil.
// Callers that draw repeatedly should resolve the source once.
func Ensure(r Rand) Rand {
	if r == nil {
		return New(0)
	}
	return r
}

// Intn returns a uniform int in [0,n) drawn from r, or 0 when n <= 0.
// Unlike rand.Intn it never panics.
//
// Complexity: O(1).
func Intn(r Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return Ensure(r).Intn(n)
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, the DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](a []T, r Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	src := Ensure(r)
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Pick returns a uniformly chosen element of a and true,
// or the zero value and false when a is empty.
//
// Complexity: O(1).
func Pick[T any](a []T, r Rand) (T, bool) {
	var zero T
	if len(a) == 0 {
		return zero, false
	}
	return a[Ensure(r).Intn(len(a))], true
}
