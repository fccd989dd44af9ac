// Package interactome prepares interactome datasets for downstream scoring
// and measures the overlap between experimental and literature datasets.
//
// The core of the package is Aggregate: given K named collections of
// identifiers (e.g. genes found by different experiments), it computes how
// many identifiers satisfy every non-empty combination of those collections.
//
// # Quick Start
//
//	cols := []model.Collection{
//	    model.NewCollection("This study", "RAB5A", "EEA1", "RABGEF1"),
//	    model.NewCollection("Gillingham 2014", "EEA1", "RABGEF1", "ZFYVE20"),
//	}
//	tbl, _ := interactome.Aggregate(cols, model.Strict)
//	n, _ := tbl.Lookup("This study", "Gillingham 2014") // 2
//
// # Modes
//
// Strict partitions the universe: each identifier is counted once, under
// the exact set of collections it belongs to. Absent patterns count 0 and
// the counts sum to the size of the universe.
//
// Inclusive counts, for each of the 2^K-1 patterns, the identifiers present
// in at least the flagged collections. Each single-collection entry is then
// replaced by
//
//	2*|collection| - sum(count of every pattern including the collection)
//
// so that a dataset bar can be compared with the stacked bars of its
// overlaps. The correction is a display heuristic and goes negative when
// overlaps are large; negative values are returned as-is and logged at
// Warn level.
//
// # Errors
//
// Configuration errors (no collection, duplicate names, unsupported mode,
// more than model.MaxCollections collections) match ErrInvalidConfig:
//
//	if errors.Is(err, interactome.ErrInvalidConfig) { ... }
//
// # Surrounding Pipeline
//
// Subpackages cover the rest of the workflow: genelist (dataset gene lists
// and ortholog translation), saint (MaxQuant to SAINT input), annotation
// (GO annotation coverage), render (text combination matrix) and blobstore
// (local, S3 and MinIO inputs). The interactome command ties them together.
package interactome
