// Package storage abstracts the object store uploads land in. The API only
// needs Put; serving files back is left to whatever fronts the bucket or
// directory.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
}

// DiskStore keeps objects under a root directory, one file per key. It stands
// in for a remote bucket in development and single-node deployments.
type DiskStore struct {
	Root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Root: root}, nil
}

func (s *DiskStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return f.Sync()
}
