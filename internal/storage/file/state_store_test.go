package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vladislavdragonenkov/uneclaire/internal/storage/file"
)

func TestStateStore_LoadMissingFile(t *testing.T) {
	store := file.NewStateStore(filepath.Join(t.TempDir(), "cart.json"))

	payload, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected no state, got %q", payload)
	}
}

func TestStateStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cart.json")
	store := file.NewStateStore(path)

	want := []byte(`[{"name":"Éclair Classique","price":14999,"quantity":2}]`)
	if err := store.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestStateStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := file.NewStateStore(path)

	if err := store.Save([]byte(`[{"name":"A","price":100,"quantity":1}]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save([]byte(`[]`)); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected empty list payload, got %s", got)
	}

	// Временных файлов после записи оставаться не должно.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the state file in the dir, got %d entries", len(entries))
	}
}

func TestStateStore_Ping(t *testing.T) {
	store := file.NewStateStore(filepath.Join(t.TempDir(), "cart.json"))
	if err := store.Ping(); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
