package cmd

import (
	"github.com/spf13/cobra"
)

// searchCmd finds games whose summaries contain all given keywords.
var searchCmd = &cobra.Command{
	Use:   "search KEYWORD...",
	Short: "Find games whose summary contains all keywords",
	Long: `Search finds games whose summary contains every given keyword as a
case-sensitive substring. Matching is plain containment, not word-boundary
matching.`,
	Example: `  gamedex search zombie survival`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		matches, err := cat.SimilarTo(args...)
		if err != nil {
			return err
		}
		return renderGames(matches)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
