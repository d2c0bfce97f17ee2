package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStorePut(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	if err != nil {
		t.Fatalf("NewDiskStore error: %v", err)
	}

	key := "uploads/abc123.png"
	if err := store.Put(context.Background(), key, strings.NewReader("payload"), "image/png"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "uploads", "abc123.png"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("stored content = %q, want payload", data)
	}
}

func TestDiskStorePutCancelledContext(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.Put(ctx, "uploads/x.bin", strings.NewReader("x"), ""); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
