package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rablab/interactome/blobstore"
	minioblob "github.com/rablab/interactome/blobstore/minio"
	s3blob "github.com/rablab/interactome/blobstore/s3"
	"github.com/rablab/interactome/config"
)

// openStore builds the store described by sc.
func openStore(ctx context.Context, sc config.StoreConfig) (blobstore.BlobStore, error) {
	var store blobstore.BlobStore
	switch sc.Kind {
	case config.StoreLocal:
		store = blobstore.NewLocalStore(sc.Root)

	case config.StoreS3:
		var opts []func(*awsconfig.LoadOptions) error
		if sc.Region != "" {
			opts = append(opts, awsconfig.WithRegion(sc.Region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		client := s3.NewFromConfig(cfg, func(o *s3.Options) {
			if sc.Endpoint != "" {
				o.BaseEndpoint = aws.String(sc.Endpoint)
				o.UsePathStyle = true
			}
		})
		store = s3blob.NewStore(client, sc.Bucket, sc.Prefix)

	case config.StoreMinIO:
		client, err := minio.New(sc.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(sc.AccessKey, sc.SecretKey, ""),
			Secure: sc.UseSSL,
			Region: sc.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		store = minioblob.NewStore(client, sc.Bucket, sc.Prefix)

	default:
		return nil, fmt.Errorf("unknown store kind %q", sc.Kind)
	}

	if sc.RateLimit > 0 {
		store = blobstore.NewRateLimitedStore(store, sc.RateLimit)
	}
	return store, nil
}
