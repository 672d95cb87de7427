package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	store.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC) }
	return store
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	store := newTestLocalStorage(t)
	ctx := context.Background()

	key, err := store.Save(ctx, []byte("png-bytes"), SaveOptions{
		Category:  "plants",
		BaseName:  "20240309_140500_Holy Basil",
		Extension: "PNG",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key != "plants/2024/03/09/20240309_140500_holy-basil.png" {
		t.Fatalf("unexpected key %q", key)
	}

	absPath := filepath.Join(store.LocalBaseDir(), filepath.FromSlash(key))
	data, err := os.ReadFile(absPath)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("saved content = %q", data)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(absPath); !os.IsNotExist(err) {
		t.Errorf("expected file to be removed, stat err = %v", err)
	}

	// deleting twice is fine
	if err := store.Delete(ctx, key); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestLocalStorageDoesNotOverwrite(t *testing.T) {
	store := newTestLocalStorage(t)
	ctx := context.Background()
	opts := SaveOptions{Category: "identifications", BaseName: "leaf", Extension: "jpg"}

	first, err := store.Save(ctx, []byte("one"), opts)
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := store.Save(ctx, []byte("two"), opts)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct keys, both were %q", first)
	}
	if !strings.HasSuffix(second, "leaf-1.jpg") {
		t.Errorf("unexpected second key %q", second)
	}
}

func TestLocalStorageRejectsEmptyPayload(t *testing.T) {
	store := newTestLocalStorage(t)
	if _, err := store.Save(context.Background(), nil, SaveOptions{Category: "plants"}); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestLocalStorageDeleteRejectsTraversal(t *testing.T) {
	store := newTestLocalStorage(t)
	for _, key := range []string{"", "../secret.txt", "plants/../../etc/passwd"} {
		if err := store.Delete(context.Background(), key); err == nil {
			t.Errorf("Delete(%q) expected error", key)
		}
	}
}
