// Package aggregate computes cardinality tables over combinations of
// collections.
//
// Two independent semantics are provided:
//
//   - Strict: a disjoint partition of the universe. Every identifier is
//     counted once, under the pattern equal to its membership vector.
//     Patterns with no identifier are absent (Get returns 0).
//   - Inclusive: one entry per non-empty pattern (2^K-1 entries). Each entry
//     counts the identifiers present in at least the flagged collections.
//     Degree-1 entries are then rewritten by CorrectSingletons.
//
// # Singleton correction
//
// For the degree-1 pattern of collection d:
//
//	corrected = 2*table[d] - sum(table[p] for every p flagging d)
//
// This is a display heuristic, not inclusion-exclusion. With heavy overlap
// (K >= 3) it goes negative; results are never clamped.
package aggregate
