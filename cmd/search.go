package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kamusis/techradar/internal/catalog"
	"github.com/spf13/cobra"
)

var flagSearchK int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search technologies by keyword",
	Long: `Search the docs tree for technologies whose name, tags, description,
quadrant or ring contain every word of the query (case-insensitive).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchK, "k", 0, "Maximum number of results (0 = all)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := scanDocs(cfg)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results := catalog.Search(res.Technologies, query, flagSearchK)
	printSearchResults(query, results)
	return nil
}

func printSearchResults(query string, results []catalog.Technology) {
	fmt.Printf("\nradar search %q\n\n", query)
	fmt.Printf("Results (%d found):\n", len(results))
	if len(results) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, t := range results {
		fmt.Fprintf(w, "  %d.\t%s\t%s/%s\t%s\n", i+1, t.Name, t.Quadrant.Label(), t.Ring.Label(), t.SourcePath)
		if d := strings.TrimSpace(t.Description); d != "" {
			fmt.Fprintf(w, "  \t- %s\n", firstLine(d))
		}
	}
	_ = w.Flush()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
