package curate

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	recs, err := Read(strings.NewReader(
		"{\"justification\":\"naïve\",\"label\":\"VALID\"}\n{\"justification\":\"x\",\"label\":\"UNSAFE\"}\n"), "in")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	ctx := context.Background()
	if err := store.Save(ctx, &Dataset{Name: "train", Records: recs}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "train.jsonl"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "{\"justification\":\"naïve\",\"label\":\"VALID\"}\n{\"justification\":\"x\",\"label\":\"UNSAFE\"}\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}

	loaded, err := store.Load(ctx, "train")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "train" {
		t.Errorf("Name = %q, want train", loaded.Name)
	}
	if len(loaded.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(loaded.Records))
	}
	if s, _ := loaded.Records[0].String("justification"); s != "naïve" {
		t.Errorf("justification = %q, want naïve", s)
	}
}

func TestFileStore_SaveEmpty(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Save(context.Background(), &Dataset{Name: "dev"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(store.Path("dev"))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestFileStore_List(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	ctx := context.Background()
	store.Save(ctx, &Dataset{Name: "alpha"})
	store.Save(ctx, &Dataset{Name: "beta"})
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)

	names, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	sort.Strings(names)
	if diff := cmp.Diff([]string{"alpha", "beta"}, names); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_LoadNotFound(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	_, err = store.Load(context.Background(), "nonexistent")
	if err == nil {
		t.Error("Load should fail for nonexistent dataset")
	}
}

func TestFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub", "nested")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	info, err := os.Stat(store.Dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("should have created directory")
	}
}

// Verify FileStore satisfies the Store interface at compile time.
var _ Store = (*FileStore)(nil)
