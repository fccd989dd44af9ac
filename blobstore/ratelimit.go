package blobstore

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"
)

// RateLimitedStore throttles the bytes read from an underlying store.
// It is meant for remote stores shared with other users.
type RateLimitedStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewRateLimitedStore limits reads of inner to bytesPerSec.
// If bytesPerSec <= 0, reads are unlimited.
func NewRateLimitedStore(inner BlobStore, bytesPerSec int) *RateLimitedStore {
	s := &RateLimitedStore{inner: inner}
	if bytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return s
}

// Open opens a blob for reading.
func (s *RateLimitedStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.limiter == nil {
		return b, nil
	}
	return &limitedBlob{Blob: b, limiter: s.limiter}, nil
}

// List returns all blob names with the given prefix.
func (s *RateLimitedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Put forwards data unchanged if the underlying store accepts writes.
func (s *RateLimitedStore) Put(ctx context.Context, name string, data []byte) error {
	w, ok := s.inner.(Writer)
	if !ok {
		return fmt.Errorf("put %s: store %T is read-only", name, s.inner)
	}
	return w.Put(ctx, name, data)
}

type limitedBlob struct {
	Blob
	limiter *rate.Limiter
}

func (b *limitedBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := wait(ctx, b.limiter, len(p)); err != nil {
		return 0, err
	}
	return b.Blob.ReadAt(ctx, p, off)
}

func (b *limitedBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	rc, err := b.Blob.ReadRange(ctx, off, length)
	if err != nil {
		return nil, err
	}
	return &limitedReader{ReadCloser: rc, ctx: ctx, limiter: b.limiter}, nil
}

type limitedReader struct {
	io.ReadCloser
	ctx     context.Context
	limiter *rate.Limiter
}

func (r *limitedReader) Read(p []byte) (int, error) {
	if burst := r.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := r.ReadCloser.Read(p)
	if n > 0 {
		if werr := wait(r.ctx, r.limiter, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

// wait consumes n tokens in chunks no larger than the burst size.
func wait(ctx context.Context, l *rate.Limiter, n int) error {
	burst := l.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := l.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
