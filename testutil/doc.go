// Package testutil provides testing utilities for intvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for generating integer fixtures and a reference
// model to compare IntArray behavior against.
//
// # Random Fixtures
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(1000, 50)   // values in [0, 50)
//	sorted := rng.SortedInts(1000, 50)
//
// # Reference Model
//
//	idx := testutil.LinearIndex(values, 7)
//	n := testutil.Occurrences(values, 7)
package testutil
