// Package stream opens possibly compressed inputs.
//
// The compression is chosen from the file extension:
//
//	.gz   gzip  (GOA annotation files are distributed as *.gaf.gz)
//	.zst  zstd
//	.lz4  lz4 frame
//
// Anything else is returned as-is.
package stream

import (
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm of an input.
type CompressionType uint8

const (
	// CompressionNone indicates plain text.
	CompressionNone CompressionType = 0
	// CompressionGzip indicates a gzip stream.
	CompressionGzip CompressionType = 1
	// CompressionZSTD indicates a zstd stream.
	CompressionZSTD CompressionType = 2
	// CompressionLZ4 indicates an lz4 frame stream.
	CompressionLZ4 CompressionType = 3
)

// Detect returns the compression implied by the name's extension.
func Detect(name string) CompressionType {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// TrimExt strips a compression extension from name.
// "goa_fly.gaf.gz" becomes "goa_fly.gaf".
func TrimExt(name string) string {
	if Detect(name) == CompressionNone {
		return name
	}
	return strings.TrimSuffix(name, path.Ext(name))
}

// NewReader wraps r with the decompressor matching name.
// Closing the returned reader does not close r.
func NewReader(r io.Reader, name string) (io.ReadCloser, error) {
	switch Detect(name) {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w with the compressor matching name.
// Close must be called to flush; it does not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch Detect(name) {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
