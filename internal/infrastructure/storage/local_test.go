package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

func TestLocalStore_Store_Success(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	name, err := store.Store(strings.NewReader("fake image bytes"), "photo.png")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected .png suffix, got %s", name)
	}
	if name == "photo.png" {
		t.Fatalf("stored name must differ from the original")
	}
	if len(name) != len("0123456789abcdef.png") {
		t.Fatalf("expected 16 hex chars plus extension, got %s", name)
	}
}

func TestLocalStore_Store_WritesBytes(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	name, err := store.Store(strings.NewReader("contents"), "pic.JPG")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("extension not lowercased: %s", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "contents" {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestLocalStore_Store_UnsupportedType(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	for _, name := range []string{"photo.txt", "script.sh", "noext", "archive.tar.gz"} {
		if _, err := store.Store(strings.NewReader("x"), name); !errors.Is(err, domain.ErrUnsupportedFileType) {
			t.Fatalf("%s: expected ErrUnsupportedFileType, got %v", name, err)
		}
	}
}

func TestLocalStore_Store_IgnoresPathComponents(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	name, err := store.Store(strings.NewReader("x"), "../../etc/evil.png")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if strings.ContainsAny(name, "/\\") {
		t.Fatalf("stored name carries path separators: %s", name)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("file not written inside the upload dir: %v", err)
	}
}

func TestLocalStore_Store_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewLocalStore(dir)

	if _, err := store.Store(strings.NewReader("x"), "a.gif"); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("upload dir not created: %v", err)
	}
}

func TestLocalStore_Store_NamesDoNotCollide(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	seen := make(map[string]struct{})
	for i := 0; i < 32; i++ {
		name, err := store.Store(strings.NewReader("x"), "same.jpeg")
		if err != nil {
			t.Fatalf("store failed: %v", err)
		}
		if _, dup := seen[name]; dup {
			t.Fatalf("name collision: %s", name)
		}
		seen[name] = struct{}{}
	}
}
