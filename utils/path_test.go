package utils

import (
	"path/filepath"
	"testing"
)

func TestIsPathWithin(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b.txt")
	outside := filepath.Join(filepath.Dir(root), "outside.txt")

	if !IsPathWithin(child, root) {
		t.Fatalf("expected %s to be within %s", child, root)
	}
	if IsPathWithin(outside, root) {
		t.Fatalf("did not expect %s to be within %s", outside, root)
	}
}

func TestRelPath(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "src", "main.go")
	if got := RelPath(root, p); got != "src/main.go" {
		t.Fatalf("RelPath = %q", got)
	}
}
