package utils

import (
	"path/filepath"
	"strings"
)

// IsPathWithin returns true if the given path is within root.
func IsPathWithin(path, root string) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = path
	}
	absPath, err := filepath.Abs(resolved)
	if err != nil {
		return false
	}
	rResolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		rResolved = root
	}
	absRoot, err := filepath.Abs(rResolved)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// RelPath converts an absolute path under root into the slash-separated
// relative form used by ignore patterns and the checksum manifest.
func RelPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
