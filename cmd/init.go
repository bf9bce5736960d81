package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamusis/techradar/internal/catalog"
	"github.com/kamusis/techradar/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default radar.yaml and create the quadrant/ring directories",
	Long: `Bootstrap a radar docs tree.

An existing radar.yaml is never overwritten. Missing <docs>/<quadrant>/<ring>
directories are created; existing ones are left alone.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	printSection("radar init")

	// ── 1. Write radar.yaml if missing ───────────────────────────────────────
	if _, err := os.Stat(flagConfig); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		if flagDocs != "" {
			cfg.DocsDir = flagDocs
		}
		if err := config.Save(flagConfig, cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", flagConfig))
	} else if err != nil {
		return fmt.Errorf("cannot stat config %s: %w", flagConfig, err)
	} else {
		printSkip("", fmt.Sprintf("config already exists: %s", flagConfig))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// ── 2. Create the quadrant/ring skeleton ──────────────────────────────────
	created := 0
	for _, q := range catalog.Quadrants {
		for _, r := range catalog.Rings {
			dir := filepath.Join(cfg.DocsDir, q.Label(), r.Label())
			if _, err := os.Stat(dir); err == nil {
				continue
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("cannot create %s: %w", dir, err)
			}
			created++
		}
	}
	if created == 0 {
		printSkip("", fmt.Sprintf("docs tree already complete: %s", cfg.DocsDir))
	} else {
		printOK("", fmt.Sprintf("created %d ring directories under %s", created, cfg.DocsDir))
	}
	return nil
}
