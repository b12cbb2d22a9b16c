package cmd

import (
	"github.com/spf13/cobra"

	"vigil/config"
	"vigil/logger"
)

var (
	cfg        = config.Default()
	configFile string
)

var rootCmd = &cobra.Command{
	Use:           "vigil",
	Short:         "vigil - static reliability and security scanner for source trees",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// File values sit between defaults and flags: load the file into a
		// fresh config, then re-apply whatever flags the user set.
		if configFile != "" {
			fileCfg := config.Default()
			if err := fileCfg.LoadFromFile(configFile); err != nil {
				return err
			}
			overlayFlags(cmd, fileCfg)
			*cfg = *fileCfg
		}
		logger.Init(cfg.LogLevel)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "YAML config file")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error, fatal, panic)")
}

func overlayFlags(cmd *cobra.Command, fileCfg *config.Config) {
	if cmd.Flags().Changed("log-level") {
		fileCfg.LogLevel = cfg.LogLevel
	}
	for _, name := range []string{
		"create-sums", "ignore", "hash-algorithm", "concurrency", "nice",
		"max-io-per-second", "format", "output", "cache", "fail-on",
	} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			applyScanFlag(name, fileCfg)
		}
	}
	fileCfg.ConcurrencySet = fileCfg.ConcurrencySet || cfg.ConcurrencySet
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
