package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

// topCmd ranks games by user review score.
var topCmd = &cobra.Command{
	Use:     "top N",
	Short:   "Show the top N games by user review score",
	Example: `  gamedex top 10`,
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		ranked, err := cat.TopRated(n)
		if err != nil {
			return err
		}
		return renderGames(ranked)
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
}
