package s3

import (
	"bytes"
	"context"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rablab/interactome/blobstore"
)

var _ blobstore.Downloader = (*Store)(nil)

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client Client
	bucket string
	prefix string
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "interactome/").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an existing blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	b, err := openBlob(ctx, s.client, s.bucket, s.key(name))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Put writes a blob with a single PutObject call.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	return err
}

// List returns all blob names with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return listObjects(ctx, s.client, s.bucket, s.key(prefix), s.prefix)
}

// Download fetches a whole object with the transfer manager, one ranged
// GET per part. blobstore.OpenReader reads S3 inputs through it.
func (s *Store) Download(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)
	b, err := openBlob(ctx, s.client, s.bucket, key)
	if err != nil {
		return nil, err
	}
	if b.Size() == 0 {
		return nil, nil
	}

	buf := manager.NewWriteAtBuffer(nil)
	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		d.Concurrency = 1
	})
	if _, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}
	return buf.Bytes(), nil
}
