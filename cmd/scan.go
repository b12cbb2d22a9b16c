package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"vigil/cache"
	"vigil/config"
	"vigil/logger"
	"vigil/output"
	"vigil/scanner"
	"vigil/utils"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a source tree for reliability and security findings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	f := scanCmd.Flags()
	f.BoolVar(&cfg.CreateChecksums, "create-sums", false, "record checksums instead of verifying them")
	f.StringSliceVar(&cfg.IgnorePatterns, "ignore", nil, "ignore patterns (replaces the built-in list)")
	f.StringVar(&cfg.HashAlgorithm, "hash-algorithm", cfg.HashAlgorithm, "checksum algorithm (md5 or sha256)")
	f.IntVar(&cfg.ConcurrencyLevel, "concurrency", cfg.ConcurrencyLevel, "number of concurrent file workers")
	f.StringVar(&cfg.NiceLevel, "nice", cfg.NiceLevel, "resource usage profile (high, medium, low)")
	f.IntVar(&cfg.MaxIOPerSecond, "max-io-per-second", 0, "limit file reads per second (0 = unlimited)")
	f.StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "output format (console or json)")
	f.StringVar(&cfg.OutputFile, "output", "", "write results to a file instead of stdout")
	f.StringVar(&cfg.CacheFile, "cache", "", "findings cache file, reused across runs")
	f.StringVar(&cfg.FailOn, "fail-on", "", "exit non-zero when findings at or above this severity exist")
	rootCmd.AddCommand(scanCmd)
}

func applyScanFlag(name string, fileCfg *config.Config) {
	switch name {
	case "create-sums":
		fileCfg.CreateChecksums = cfg.CreateChecksums
	case "ignore":
		fileCfg.IgnorePatterns = cfg.IgnorePatterns
	case "hash-algorithm":
		fileCfg.HashAlgorithm = cfg.HashAlgorithm
	case "concurrency":
		fileCfg.ConcurrencyLevel = cfg.ConcurrencyLevel
	case "nice":
		fileCfg.NiceLevel = cfg.NiceLevel
	case "max-io-per-second":
		fileCfg.MaxIOPerSecond = cfg.MaxIOPerSecond
	case "format":
		fileCfg.OutputFormat = cfg.OutputFormat
	case "output":
		fileCfg.OutputFile = cfg.OutputFile
	case "cache":
		fileCfg.CacheFile = cfg.CacheFile
	case "fail-on":
		fileCfg.FailOn = cfg.FailOn
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfg.Root = args[0]
	}
	cfg.ConcurrencySet = cfg.ConcurrencySet || cmd.Flags().Changed("concurrency")
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.AdjustConcurrency()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := &output.Metrics{StartTime: time.Now().UTC().Format(time.RFC3339)}
	s := scanner.New(cfg)

	for _, aux := range []string{cfg.OutputFile, cfg.CacheFile} {
		if aux != "" && utils.IsPathWithin(aux, cfg.Root) {
			logger.Warnf("%s is inside the scan root and will show up in future scans", aux)
		}
	}

	var store *cache.Cache
	if cfg.CacheFile != "" {
		var err error
		store, err = cache.Open(cfg.CacheFile)
		if err != nil {
			return err
		}
		s.SetCache(store)
	}

	var scanned atomic.Int64
	bar := newProgress()
	s.SetProgress(func(delta int) {
		scanned.Add(int64(delta))
		if bar != nil {
			_ = bar.Add(delta)
		}
	})

	reports, err := s.Scan(ctx)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}
	metrics.FilesScanned = int(scanned.Load())
	metrics.EndTime = time.Now().UTC().Format(time.RFC3339)

	sum := output.Summarize(reports)
	w, err := output.New(cfg.OutputFormat, cfg.OutputFile, metrics)
	if err != nil {
		return err
	}
	if err := w.Write(cfg.Root, reports, sum); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if store != nil {
		if err := store.Save(); err != nil {
			logger.Warnf("Could not persist findings cache: %v", err)
		} else {
			logger.Debugf("Findings cache holds %d entries", store.Len())
		}
	}

	if threshold, ok := output.ParseSeverity(cfg.FailOn); ok && sum.Exceeds(threshold) {
		return fmt.Errorf("findings at or above %s severity present", threshold)
	}
	return nil
}

// newProgress builds a spinner on stderr, or nil when suppressed so the
// callback stays cheap.
func newProgress() *progressbar.ProgressBar {
	if os.Getenv("VIGIL_DISABLE_PROGRESS") != "" {
		return nil
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("scanning"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionSetElapsedTime(true),
	)
}
