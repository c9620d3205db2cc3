package fileutils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomicSameDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dst := filepath.Join(dir, "nested", "party_data.json")

	if _, err := os.Stat(dst); err == nil {
		t.Fatalf("expected %s to be missing", dst)
	}

	if err := WriteFileAtomicSameDir(dst, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(b) != "{\"a\":1}\n" {
		t.Fatalf("dst=%q", string(b))
	}

	// Overwrite replaces content and keeps a single trailing newline.
	if err := WriteFileAtomicSameDir(dst, []byte("second\n"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, _ = os.ReadFile(dst)
	if string(b) != "second\n" {
		t.Fatalf("dst=%q", string(b))
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries=%d, want 1", len(entries))
	}
}

func TestWriteFileAtomicSameDir_BadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	if err := WriteFileAtomicSameDir(filepath.Join(blocker, "out.json"), []byte("{}"), 0o644); err == nil {
		t.Fatalf("expected error when parent is a regular file")
	}
	if err := WriteFileAtomicSameDir("", []byte("{}"), 0o644); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
