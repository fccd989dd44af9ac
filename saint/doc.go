// Package saint prepares SAINT input files from a MaxQuant proteinGroups
// export.
//
// The pipeline is:
//
//  1. Filter: drop potential contaminants, reverse hits and proteins only
//     identified by site.
//  2. Interactions: melt every "MS/MS count <IP name>" column into one
//     (IP name, bait, prey, count) record per non-zero count, joining the
//     bait from the bait table.
//  3. Preys: one (prey, length, gene) record per protein group.
//
// Prey and gene identifiers keep only the first entry of their
// ';'-separated lists. Output files are headerless and tab-separated, as
// SAINTexpress expects.
package saint
