package cmd

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Regenerate radar data and index pages from one scan",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := scanDocs(cfg)
	if err != nil {
		return err
	}

	printSection("Radar data")
	if err := writeRadarData(cfg, res); err != nil {
		return err
	}
	printSection("Index pages")
	return writeIndexPages(cfg, res)
}
