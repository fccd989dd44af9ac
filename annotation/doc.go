// Package annotation loads Gene Ontology annotations in GAF 2.x format and
// reports how well a gene list is covered by them.
//
// Only the columns needed for coverage are kept: the gene symbol (column 3),
// the qualifier (column 4), the GO identifier (column 5) and the aspect
// (column 9). Annotations qualified with NOT are kept like any other.
package annotation
