package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBuildObjectPath(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name     string
		category string
		base     string
		ext      string
		want     string
	}{
		{"plain", "plants", "tulsi", "png", "plants/2025/01/02/tulsi.png"},
		{"empty category", "", "tulsi", ".jpg", "misc/2025/01/02/tulsi.jpg"},
		{"unsafe base", "plants", "../My Neem!!", "gif", "plants/2025/01/02/my-neem.gif"},
		{"missing extension", "plants", "tulsi", "", "plants/2025/01/02/tulsi.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildObjectPath(tt.category, tt.base, tt.ext, now); got != tt.want {
				t.Errorf("buildObjectPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithKeySuffix(t *testing.T) {
	if got := withKeySuffix("a/b/leaf.png", 0); got != "a/b/leaf.png" {
		t.Errorf("attempt 0 = %q", got)
	}
	if got := withKeySuffix("a/b/leaf.png", 3); got != "a/b/leaf-3.png" {
		t.Errorf("attempt 3 = %q", got)
	}
}

func TestFirstFreeKey(t *testing.T) {
	taken := map[string]bool{"k/leaf.png": true, "k/leaf-1.png": true}
	key, err := firstFreeKey(context.Background(), "k/leaf.png", func(_ context.Context, key string) (bool, error) {
		return taken[key], nil
	})
	if err != nil {
		t.Fatalf("firstFreeKey: %v", err)
	}
	if key != "k/leaf-2.png" {
		t.Errorf("key = %q, want k/leaf-2.png", key)
	}

	_, err = firstFreeKey(context.Background(), "k/leaf.png", func(context.Context, string) (bool, error) {
		return true, nil
	})
	if !errors.Is(err, ErrKeyExhausted) {
		t.Errorf("expected ErrKeyExhausted, got %v", err)
	}
}

func TestDetectContentType(t *testing.T) {
	if got := detectContentType("png"); got != "image/png" {
		t.Errorf("png = %q", got)
	}
	if got := detectContentType("nope-ext"); got != "application/octet-stream" {
		t.Errorf("unknown = %q", got)
	}
}
