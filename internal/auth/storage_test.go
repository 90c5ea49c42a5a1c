package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	s := NewFileStorage(path)

	if _, ok := s.Get(KeyAccessToken); ok {
		t.Error("expected empty storage")
	}

	if err := s.Set(KeyAccessToken, "at"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(KeyRefreshToken, "rt"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh handle sees the persisted values.
	s2 := NewFileStorage(path)
	if v, ok := s2.Get(KeyAccessToken); !ok || v != "at" {
		t.Errorf("access = %q, %v", v, ok)
	}
	if v, ok := s2.Get(KeyRefreshToken); !ok || v != "rt" {
		t.Errorf("refresh = %q, %v", v, ok)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("credential file mode = %o, want 600", perm)
	}
}

func TestFileStorageRemoveLastKeyDeletesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewFileStorage(path)

	_ = s.Set(KeyAccessToken, "at")
	_ = s.Set(KeyRefreshToken, "rt")

	if err := s.Remove(KeyAccessToken); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := s.Get(KeyRefreshToken); !ok {
		t.Error("other key should survive")
	}

	if err := s.Remove(KeyRefreshToken); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file deleted once empty")
	}
}

func TestFileStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStorage(path)
	if _, ok := s.Get(KeyAccessToken); ok {
		t.Error("corrupt file should read as empty")
	}
	if err := s.Set(KeyAccessToken, "at"); err != nil {
		t.Fatalf("Set over corrupt file: %v", err)
	}
	if v, ok := s.Get(KeyAccessToken); !ok || v != "at" {
		t.Errorf("access = %q, %v", v, ok)
	}
}
