package scanner

import (
	"bufio"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"strings"

	"vigil/logger"
)

// ManifestName is the checksum manifest written into the scan root. The
// manifest never describes itself.
const ManifestName = ".vigil.sums"

// digestRe accepts legacy 128-bit and current 256-bit digests.
var digestRe = regexp.MustCompile(`^[0-9a-f]{32}$|^[0-9a-f]{64}$`)

// Manifest maps relative paths to hex digests.
type Manifest map[string]string

// LoadManifest reads a manifest file. Comment lines, blank lines and lines
// whose digest is not 32 or 64 lowercase hex characters are skipped without
// error. A missing file yields a nil manifest.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read checksum manifest: %w", err)
	}
	defer f.Close()

	m := make(Manifest)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		digest, rel, ok := strings.Cut(line, "  ")
		if !ok || rel == "" || !digestRe.MatchString(digest) {
			logger.Debugf("Skipping malformed manifest line: %q", line)
			continue
		}
		m[rel] = digest
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checksum manifest: %w", err)
	}
	return m, nil
}

type manifestEntry struct {
	digest string
	rel    string
}

// WriteManifest writes entries in the order given, one
// "<digest><two spaces><relative-path>" line each, replacing any existing
// manifest.
func WriteManifest(path string, entries []manifestEntry) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s\n", e.digest, e.rel)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write checksum manifest: %w", err)
	}
	return nil
}

// digestBytes hashes raw file content with the configured algorithm.
func digestBytes(data []byte, algorithm string) string {
	switch algorithm {
	case "md5":
		sum := md5.Sum(data)
		return hex.EncodeToString(sum[:])
	default:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	}
}
