// Package render draws cardinality tables as text combination matrices.
//
// Each row is one pattern: a dot per dataset in input order (● present,
// · absent) followed by the count. Rows whose pattern includes a dataset of
// interest are highlighted. All presentation choices live in Style; the
// package keeps no global state.
package render
