package cmd

import (
	"errors"
	"fmt"

	"github.com/kamusis/techradar/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the docs tree without writing anything",
	Long: `Scan every technology document and report the ones that would be skipped or
only partially applied: missing or malformed frontmatter, unreadable files, and
quadrant/ring overrides outside the fixed set.

Exits non-zero when any problem is found, so it can gate CI.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Warnings are printed below; keep the logger for debug output only.
	log := zap.NewNop()
	if flagVerbose {
		log = logger
	}
	res, err := catalog.NewScanner(cfg.DocsDir, log).Scan()
	if err != nil {
		return err
	}

	printSection("radar check")
	if len(res.Quadrants) == 0 {
		printMiss("", fmt.Sprintf("no quadrant directories under %s", cfg.DocsDir))
	}
	for _, w := range res.Warnings {
		if skipped(w.Err) {
			printErr(w.Path, describeWarning(w.Err))
		} else {
			printWarn(w.Path, describeWarning(w.Err))
		}
	}
	if len(res.Technologies) == 0 {
		printWarn("", "no technologies found")
	} else {
		printOK("", fmt.Sprintf("%d technologies parsed", len(res.Technologies)))
	}

	fmt.Println()
	if n := len(res.Warnings); n > 0 {
		return fmt.Errorf("%d problem(s) found", n)
	}
	printOK("", "docs tree is clean")
	return nil
}

func describeWarning(err error) string {
	switch {
	case errors.Is(err, catalog.ErrNoFrontmatter):
		return "no frontmatter — document skipped"
	case errors.Is(err, catalog.ErrMalformedFrontmatter):
		return fmt.Sprintf("%v — document skipped", err)
	case errors.Is(err, catalog.ErrUnreadable):
		return fmt.Sprintf("%v — document skipped", err)
	default:
		return err.Error()
	}
}

// skipped reports whether err kept the document out of the scan result.
func skipped(err error) bool {
	return errors.Is(err, catalog.ErrNoFrontmatter) ||
		errors.Is(err, catalog.ErrMalformedFrontmatter) ||
		errors.Is(err, catalog.ErrUnreadable)
}
