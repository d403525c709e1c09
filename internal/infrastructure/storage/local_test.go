package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	name, size, err := store.Save(context.Background(), "report.pdf", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("payload")) {
		t.Errorf("size = %d, want %d", size, len("payload"))
	}
	if filepath.Ext(name) != ".pdf" {
		t.Errorf("stored name %q lost the extension", name)
	}
	if name == "report.pdf" {
		t.Error("stored name should not be the original")
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("content = %q", data)
	}

	if err := store.Remove(context.Background(), name); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Error("file should be gone")
	}

	// Already-gone files are not an error.
	if err := store.Remove(context.Background(), name); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestSaveUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	a, _, err := store.Save(context.Background(), "x.txt", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, _, err := store.Save(context.Background(), "x.txt", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Error("two saves of the same original should get distinct names")
	}
}

func TestRemoveRejectsPathEscape(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	for _, name := range []string{"", "../etc/passwd", "a/b"} {
		if err := store.Remove(context.Background(), name); err == nil {
			t.Errorf("Remove(%q) should fail", name)
		}
	}
}
