package osutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llamas.txt")

	if FileExists(path) {
		t.Errorf("FileExists(%q) = true, want false", path)
	}

	if err := os.WriteFile(path, []byte("llamas"), 0o600); err != nil {
		t.Fatalf("os.WriteFile(%q, contents, 0o600) = %v", path, err)
	}

	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false, want true", path)
	}
}
