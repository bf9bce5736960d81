package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kamusis/techradar/internal/catalog"
	"github.com/kamusis/techradar/internal/catalog/listing"
	"github.com/kamusis/techradar/internal/config"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Regenerate the per-quadrant index pages",
	Long: `Rewrite <docs>/<quadrant>/index.md for every quadrant directory, listing its
technologies ring by ring in title order. A quadrant without a directory still
gets a page when a header override moves a technology into it.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := scanDocs(cfg)
	if err != nil {
		return err
	}
	return writeIndexPages(cfg, res)
}

// writeIndexPages rewrites the index page of every quadrant directory in res and
// of every quadrant a header override moved a technology into.
func writeIndexPages(cfg *config.Config, res *catalog.Result) error {
	if len(res.Technologies) == 0 {
		printWarn("", "no technologies found — index pages not written")
		return nil
	}

	paged := map[catalog.Quadrant]bool{}
	for _, q := range listing.PageQuadrants(res) {
		paged[q] = true
	}
	for _, q := range catalog.Quadrants {
		if !paged[q] {
			printSkip(q.Label(), "directory not found")
		}
	}

	pages, err := listing.WritePages(cfg.DocsDir, cfg.IndexFile, res)
	for _, p := range pages {
		rel, relErr := filepath.Rel(cfg.DocsDir, p.Path)
		if relErr != nil {
			rel = p.Path
		}
		printOK(p.Quadrant.Label(), fmt.Sprintf("updated %s (%d technologies)", filepath.ToSlash(rel), p.Count))
	}
	return err
}
