// Package testutil provides testing utilities for interactome.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random, reproducible collections of
// identifiers with controllable overlap.
//
// # Random Collections
//
//	rng := testutil.NewRNG(seed)
//	cols := rng.Collections(4, 200, 0.3) // 4 collections over 200 genes
//
// # Permutations
//
//	perm := rng.Perm(len(cols))
//	shuffled := testutil.Permute(cols, perm)
package testutil
