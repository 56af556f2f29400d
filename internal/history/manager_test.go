package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewManagerAt failed: %v", err)
	}

	entries := []string{"rock", "jazz \"blue train\"", "nirvana"}
	if err := m.Save("filter.toml", entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := m.Load("filter.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(entries) {
		t.Fatalf("Expected %d entries, got %d", len(entries), len(loaded))
	}
	for i := range entries {
		if loaded[i] != entries[i] {
			t.Errorf("Entry %d: expected %q, got %q", i, entries[i], loaded[i])
		}
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	entries, err := m.Load("nope.toml")
	if err != nil {
		t.Fatalf("Load of missing file should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty history, got %v", entries)
	}
}

func TestLoadCorruptedFileReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("entries = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := m.Load("bad.toml")
	if err != nil {
		t.Fatalf("Load of corrupted file should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty history for corrupted file, got %v", entries)
	}
}
