package persist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewDirStorage(dir)

	if _, ok, err := s.GetItem(ctx, "state"); err != nil || ok {
		t.Fatalf("GetItem on empty dir = ok %v, err %v", ok, err)
	}

	if err := s.SetItem(ctx, "state", `{"a":"1"}`); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}
	got, ok, err := s.GetItem(ctx, "state")
	if err != nil || !ok {
		t.Fatalf("GetItem() ok = %v, err = %v", ok, err)
	}
	if got != `{"a":"1"}` {
		t.Errorf("GetItem() = %q", got)
	}

	if err := s.SetItem(ctx, "state", `{}`); err != nil {
		t.Fatalf("SetItem() overwrite error = %v", err)
	}
	got, _, _ = s.GetItem(ctx, "state")
	if got != `{}` {
		t.Errorf("after overwrite GetItem() = %q", got)
	}

	if err := s.RemoveItem(ctx, "state"); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if err := s.RemoveItem(ctx, "state"); err != nil {
		t.Errorf("RemoveItem() on absent key error = %v", err)
	}
	if _, ok, _ := s.GetItem(ctx, "state"); ok {
		t.Error("key still present after RemoveItem")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("storage dir holds %d stray files", len(entries))
	}
}

func TestDirStorage_InvalidKey(t *testing.T) {
	s := NewDirStorage(t.TempDir())
	for _, key := range []string{"", "../escape", `a\b`, ".hidden"} {
		if err := s.SetItem(context.Background(), key, "x"); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("SetItem(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestMemoryStorage_CountsWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_ = s.SetItem(ctx, "a", "1")
	_ = s.RemoveItem(ctx, "a")
	_, _, _ = s.GetItem(ctx, "a")

	if s.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", s.Writes())
	}
}
