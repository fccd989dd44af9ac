package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalBlobStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	// 1. Put a blob
	blobName := "orthologs/li2016_interactors.txt"
	data := []byte("hello world, this is a test blob for interactome")

	err := store.Put(ctx, blobName, data)
	require.NoError(t, err)

	// Verify file exists on disk
	expectedPath := filepath.Join(tmpDir, "orthologs", "li2016_interactors.txt")
	_, err = os.Stat(expectedPath)
	require.NoError(t, err)

	// 2. Open and ReadAt
	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 6) // "world"
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(buf))

	// 3. ReadRange
	// Read "this" (offset 13, length 4)
	rangeReader, err := blob.ReadRange(ctx, 13, 4)
	require.NoError(t, err)
	defer rangeReader.Close()

	rangeContent, err := io.ReadAll(rangeReader)
	require.NoError(t, err)
	require.Equal(t, "this", string(rangeContent))

	// 4. List
	require.NoError(t, store.Put(ctx, "bait.txt", []byte("x")))

	blobs, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"bait.txt", blobName}, blobs)

	blobs, err = store.List(ctx, "orthologs/")
	require.NoError(t, err)
	require.Equal(t, []string{blobName}, blobs)

	// 5. Missing blob
	_, err = store.Open(ctx, "missing.txt")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalBlobStore_ReadRange_Boundaries(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	blobName := "boundary.bin"
	require.NoError(t, store.Put(ctx, blobName, []byte("0123456789")))

	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	// Case 1: Read full range
	r, err := blob.ReadRange(ctx, 0, 10)
	require.NoError(t, err)
	content, _ := io.ReadAll(r)
	r.Close()
	require.Equal(t, "0123456789", string(content))

	// Case 2: Read past end
	r, err = blob.ReadRange(ctx, 8, 5)
	require.NoError(t, err)
	content, err = io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "89", string(content))
	r.Close()

	// Case 3: Offset past EOF
	_, err = blob.ReadRange(ctx, 20, 5)
	require.ErrorIs(t, err, io.EOF)
}

func TestLocalBlobStore_AbsolutePath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "abs.txt")
	require.NoError(t, os.WriteFile(path, []byte("abs"), 0o644))

	store := NewLocalStore("/nonexistent-root")
	data, err := ReadAll(context.Background(), store, path)
	require.NoError(t, err)
	require.Equal(t, "abs", string(data))
}
