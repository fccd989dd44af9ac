// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This
// package works with MinIO and other S3-compatible storage systems like
// Ceph, SeaweedFS and Garage, which is where many core facilities keep
// their mass-spectrometry exports.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "proteomics", "rab-screen/")
//	rc, err := blobstore.OpenReader(ctx, store, "proteinGroups.txt")
package minio
