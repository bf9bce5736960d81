package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamusis/techradar/internal/catalog"
	"github.com/kamusis/techradar/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagConfig  string
	flagDocs    string
	flagVerbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "radar",
	Short:        "Radar — generate technology radar data and index pages from markdown",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Radar scans a docs tree laid out as <docs>/<quadrant>/<ring>/*.md and
regenerates the radar visualization data and the per-quadrant index pages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(flagVerbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultFileName, "Path to radar.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDocs, "docs", "", "Docs root (overrides docs_dir from the config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the console logger used for per-document warnings.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// loadConfig reads --config and applies --docs. The radar data follows --docs
// unless radar.yaml sets data_file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDocs != "" {
		docs, err := config.ExpandPath(flagDocs)
		if err != nil {
			return nil, err
		}
		cfg.DocsDir = filepath.Clean(docs)
	}
	return cfg, nil
}

// scanDocs runs the catalog scanner over the configured docs root.
func scanDocs(cfg *config.Config) (*catalog.Result, error) {
	return catalog.NewScanner(cfg.DocsDir, logger).Scan()
}
