package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
	"github.com/h2non/filetype"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"vigil/cache"
	"vigil/config"
	"vigil/logger"
	"vigil/rules"
	"vigil/utils"
)

// Scanner walks a source tree and produces one FileReport per analyzed file.
// A single I/O failure on any entry aborts the whole scan: a partially
// trusted report is worse than a clear failure.
type Scanner struct {
	cfg       *config.Config
	analyzers map[string]*Analyzer
	limiter   *rate.Limiter
	cache     *cache.Cache
	progress  func(delta int)
}

func New(cfg *config.Config) *Scanner {
	s := &Scanner{
		cfg:       cfg,
		analyzers: make(map[string]*Analyzer),
	}
	for _, rs := range rules.All() {
		s.analyzers[rs.Language] = NewAnalyzer(rs)
	}
	if cfg.MaxIOPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.MaxIOPerSecond), cfg.MaxIOPerSecond)
	}
	return s
}

// SetCache enables reuse of findings for unchanged content across runs.
func (s *Scanner) SetCache(c *cache.Cache) { s.cache = c }

// SetProgress registers a per-file progress callback. It may be called from
// multiple goroutines.
func (s *Scanner) SetProgress(fn func(delta int)) { s.progress = fn }

type walkEntry struct {
	path string
	rel  string
	info os.FileInfo
}

type fileResult struct {
	report *FileReport
	digest string
	rel    string
}

// Scan runs the whole pipeline: enumerate, filter, hash, verify or record
// checksums, analyze, aggregate. Report order equals enumeration order.
func (s *Scanner) Scan(ctx context.Context) ([]FileReport, error) {
	root, err := filepath.Abs(s.cfg.Root)
	if err != nil {
		return nil, scanFailure(err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, scanFailure(err)
	}
	if !info.IsDir() {
		return nil, scanFailure(fmt.Errorf("%s is not a directory", root))
	}

	ignores := utils.NewIgnoreSpec(s.cfg.Ignores(utils.DefaultIgnorePatterns))
	manifestPath := filepath.Join(root, ManifestName)

	var manifest Manifest
	if !s.cfg.CreateChecksums {
		manifest, err = LoadManifest(manifestPath)
		if err != nil {
			return nil, scanFailure(err)
		}
		if manifest != nil {
			logger.Debugf("Loaded checksum manifest with %d entries", len(manifest))
		}
	}

	entries, err := enumerate(ctx, root, info, ignores)
	if err != nil {
		return nil, scanFailure(err)
	}
	logger.Infof("Enumerated %d files under %s", len(entries), root)

	results := make([]*fileResult, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.ConcurrencyLevel, 1))
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			res, err := s.processEntry(gctx, entry, manifest)
			if err != nil {
				return err
			}
			results[i] = res
			if s.progress != nil {
				s.progress(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, scanFailure(err)
	}

	reports := make([]FileReport, 0, len(results))
	sums := make([]manifestEntry, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		sums = append(sums, manifestEntry{digest: res.digest, rel: res.rel})
		if res.report != nil {
			reports = append(reports, *res.report)
		}
	}

	if s.cfg.CreateChecksums {
		if err := WriteManifest(manifestPath, sums); err != nil {
			return nil, scanFailure(err)
		}
		logger.Infof("Wrote checksum manifest for %d files", len(sums))
	}
	return reports, nil
}

// processEntry hashes one file and either reports checksum drift or runs the
// analyzer for the file's language. Entries without a resolved language keep
// their digest but produce no report.
func (s *Scanner) processEntry(ctx context.Context, entry walkEntry, manifest Manifest) (*fileResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(entry.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", entry.rel, err)
	}
	res := &fileResult{
		digest: digestBytes(data, s.cfg.HashAlgorithm),
		rel:    entry.rel,
	}

	if want, ok := manifest[entry.rel]; ok && want != res.digest {
		// Drift detection takes precedence: the file is reported but its
		// content is not re-analyzed.
		res.report = &FileReport{
			Path:    entry.path,
			RelPath: entry.rel,
			Findings: []Finding{{
				IssueType: IssueChecksumMismatch,
				Message:   fmt.Sprintf("content digest %s does not match manifest entry %s", res.digest, want),
			}},
		}
		return res, nil
	}

	rs := rules.ForPath(entry.path)
	if rs == nil {
		return res, nil
	}

	report := &FileReport{
		Path:     entry.path,
		RelPath:  entry.rel,
		Language: rs.Language,
		MimeType: sniffMime(data),
	}
	ts := times.Get(entry.info)
	report.ModTime = ts.ModTime().UTC().Format(time.RFC3339)
	if ts.HasChangeTime() {
		report.ChangeTime = ts.ChangeTime().UTC().Format(time.RFC3339)
	}

	cacheKey := rs.Language + ":" + res.digest
	var findings []Finding
	if s.cache == nil || !s.cache.Get(cacheKey, &findings) {
		findings = s.analyzers[rs.Language].Analyze(string(data))
		if s.cache != nil {
			s.cache.Put(cacheKey, findings)
		}
	}
	if findings == nil {
		findings = []Finding{}
	}
	report.Findings = findings
	res.report = report
	return res, nil
}

// enumerate lists every regular file under root in deterministic depth-first
// order, dropping ignored paths and the manifest itself. Any directory read
// failure aborts the enumeration.
func enumerate(ctx context.Context, root string, rootInfo os.FileInfo, ignores *utils.IgnoreSpec) ([]walkEntry, error) {
	type item struct {
		path  string
		entry fs.DirEntry
	}
	stack := []item{{path: root, entry: fs.FileInfoToDirEntry(rootInfo)}}
	var entries []walkEntry

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.entry.IsDir() {
			if current.path != root && ignores.Match(utils.RelPath(root, current.path)) {
				continue
			}
			children, err := os.ReadDir(current.path)
			if err != nil {
				return nil, fmt.Errorf("failed to read directory %s: %w", current.path, err)
			}
			// ReadDir sorts by name; push reversed so the stack pops in order.
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, item{
					path:  filepath.Join(current.path, children[i].Name()),
					entry: children[i],
				})
			}
			continue
		}
		rel := utils.RelPath(root, current.path)
		if rel == ManifestName || ignores.Match(rel) {
			continue
		}

		var info os.FileInfo
		switch {
		case current.entry.Type().IsRegular():
			var err error
			info, err = current.entry.Info()
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", rel, err)
			}
		case current.entry.Type()&fs.ModeSymlink != 0:
			// Follow the link once. Broken links and links to anything but a
			// regular file are skipped; linked directories are never descended
			// into, which also rules out cycles.
			target, err := os.Stat(current.path)
			if err != nil || !target.Mode().IsRegular() {
				continue
			}
			info = target
		default:
			continue
		}
		entries = append(entries, walkEntry{path: current.path, rel: rel, info: info})
	}
	return entries, nil
}

func sniffMime(data []byte) string {
	head := data
	if len(head) > 262 {
		head = head[:262]
	}
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

func scanFailure(err error) error {
	return fmt.Errorf("failed to scan codebase: %w", err)
}
