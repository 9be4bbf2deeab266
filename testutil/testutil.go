package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic fixtures
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns num values in range [0, maxVal).
// A small maxVal produces many duplicates.
func (r *RNG) Ints(num, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// SignedInts returns num values in range [-maxVal, maxVal).
func (r *RNG) SignedInts(num, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(2*maxVal) - maxVal
	}
	return out
}

// SortedInts returns num ascending values in range [0, maxVal).
func (r *RNG) SortedInts(num, maxVal int) []int {
	out := r.Ints(num, maxVal)
	slices.Sort(out)
	return out
}

// LinearIndex returns the first index of v in values, or -1.
func LinearIndex(values []int, v int) int {
	return slices.Index(values, v)
}

// Occurrences counts the elements of values equal to v.
func Occurrences(values []int, v int) int {
	n := 0
	for _, x := range values {
		if x == v {
			n++
		}
	}
	return n
}

// Without returns a copy of values with the element at i removed.
func Without(values []int, i int) []int {
	return slices.Delete(slices.Clone(values), i, i+1)
}
