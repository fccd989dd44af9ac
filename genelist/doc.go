// Package genelist reads and writes dataset gene lists and translates them
// through ortholog tables.
//
// A gene list is a text file with one identifier per line. Blank lines and
// lines starting with '#' are ignored; duplicates collapse to their first
// occurrence.
//
// Ortholog tables are tab-separated exports of DIOPT with at least the
// columns "Search Term" and "Human Symbol". Rows before the header line are
// skipped. Rows without a human symbol are dropped and, for a search term
// listed more than once, the first (best ranked) row wins.
package genelist
