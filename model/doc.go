// Package model defines core types used throughout interactome.
//
// # Input Types
//
//   - Collection: a named set of identifiers (e.g. genes found by one dataset)
//
// # Key Types
//
//   - Pattern: a non-empty combination of collections, encoded as a bitmask
//     whose bit i refers to the i-th collection in input order
//   - Mode: the counting semantics used to build a cardinality table
//
// The ordered list of collection names is the single source of truth for the
// meaning of each bit:
//
//	names := []string{"This study", "Gillingham 2014", "Li 2016"}
//	p, _ := model.PatternOf(names, "This study", "Li 2016") // 0b101
//	p.Names(names)                                          // [This study Li 2016]
package model
