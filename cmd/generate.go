package cmd

import (
	"errors"
	"fmt"

	"github.com/kamusis/techradar/internal/catalog"
	"github.com/kamusis/techradar/internal/catalog/radar"
	"github.com/kamusis/techradar/internal/config"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the radar visualization data file",
	Long: `Scan the docs tree and write the radar data script (data_file in radar.yaml)
that the browser visualization loads as window.radarData.

Nothing is written when no technologies are found.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := scanDocs(cfg)
	if err != nil {
		return err
	}
	return writeRadarData(cfg, res)
}

// writeRadarData projects res and writes the data file. An empty scan is a
// warning, not an error.
func writeRadarData(cfg *config.Config, res *catalog.Result) error {
	err := radar.Write(cfg.DataPath(), radar.Project(res.Technologies))
	if errors.Is(err, radar.ErrNoTechnologies) {
		printWarn("", "no technologies found — make sure markdown files have proper frontmatter")
		printSkip("", fmt.Sprintf("%s not written", cfg.DataPath()))
		return nil
	}
	if err != nil {
		return err
	}
	printOK("", fmt.Sprintf("radar data written: %s (%d technologies)", cfg.DataPath(), len(res.Technologies)))
	return nil
}
