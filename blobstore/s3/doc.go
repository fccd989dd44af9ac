// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("eu-west-1"))
//	client := awss3.NewFromConfig(cfg)
//	store := s3.NewStore(client, "my-bucket", "interactome/")
//
//	genes, err := genelist.Load(ctx, store, "This study", "lists/this_study.txt")
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Whole-object downloads through the S3 transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
