package token

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "token"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSaveLoad(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("abc123"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "abc123" {
		t.Errorf("Load() = %q, want %q", got, "abc123")
	}
}

func TestSave_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions not supported on windows")
	}

	s := newTestStore(t)
	if err := s.Save("secret"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected file permissions 0600, got %o", info.Mode().Perm())
	}
}

func TestSave_Empty(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestLoad_Missing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "" {
		t.Errorf("expected empty token for missing file, got %q", got)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("expected token file to be removed")
	}

	// Clearing again is a no-op
	if err := s.Clear(); err != nil {
		t.Errorf("Clear() on missing file error = %v", err)
	}
}

func TestNewStore_DefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := NewStore("")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(s.Path()) != "token" {
		t.Errorf("unexpected default path %q", s.Path())
	}
}
