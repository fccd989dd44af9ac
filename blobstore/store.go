package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rablab/interactome/internal/stream"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Writer is implemented by stores that accept new blobs.
type Writer interface {
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes starting at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader for length bytes starting at off.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Downloader is implemented by stores that fetch a whole blob in one
// transfer rather than through ranged reads.
type Downloader interface {
	Download(ctx context.Context, name string) ([]byte, error)
}

// OpenReader opens name and returns a reader over its whole content,
// decompressed according to the name's extension. Stores implementing
// Downloader are read through Download.
func OpenReader(ctx context.Context, store BlobStore, name string) (io.ReadCloser, error) {
	if d, ok := store.(Downloader); ok {
		data, err := d.Download(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		dec, err := stream.NewReader(bytes.NewReader(data), name)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", name, err)
		}
		return dec, nil
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	var raw io.ReadCloser
	if blob.Size() == 0 {
		raw = io.NopCloser(bytes.NewReader(nil))
	} else {
		raw, err = blob.ReadRange(ctx, 0, blob.Size())
		if err != nil {
			_ = blob.Close()
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}

	dec, err := stream.NewReader(raw, name)
	if err != nil {
		_ = raw.Close()
		_ = blob.Close()
		return nil, fmt.Errorf("decompress %s: %w", name, err)
	}

	return &blobReader{ReadCloser: dec, raw: raw, blob: blob}, nil
}

// ReadAll returns the decompressed content of name.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	rc, err := OpenReader(ctx, store, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

// Put compresses data according to the name's extension and writes it to a
// store implementing Writer.
func Put(ctx context.Context, store BlobStore, name string, data []byte) error {
	w, ok := store.(Writer)
	if !ok {
		return fmt.Errorf("put %s: store %T is read-only", name, store)
	}

	var buf bytes.Buffer
	enc, err := stream.NewWriter(&buf, name)
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.Put(ctx, name, buf.Bytes())
}

type blobReader struct {
	io.ReadCloser
	raw  io.ReadCloser
	blob Blob
}

func (r *blobReader) Close() error {
	return errors.Join(r.ReadCloser.Close(), r.raw.Close(), r.blob.Close())
}
