// Package blobstore provides storage abstraction for interactome's input
// and output tables.
//
// Gene lists, ortholog tables, MaxQuant exports and GO annotation files are
// addressed by name relative to a store root. Implementations must be safe
// for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem
//   - MemoryStore: In-memory, for tests
//   - RateLimitedStore: Throttles reads of another store
//   - s3.Store: Amazon S3 with range reads and paginated listing
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Reading Tables
//
// OpenReader streams a whole blob and transparently decompresses .gz, .zst
// and .lz4 names:
//
//	rc, err := blobstore.OpenReader(ctx, store, "GOA/goa_human.gaf.gz")
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
package blobstore
