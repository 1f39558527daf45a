package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gamedex/gamedex/pkg/games"
)

// listCmd lists catalog games, optionally filtered by release date.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games from the catalog",
	Example: `  gamedex list                       # List all games
  gamedex list --after 10-Nov-2014   # Games released strictly after a date`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		after, _ := cmd.Flags().GetString("after")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		if after == "" {
			return renderGames(cat.All())
		}

		cutoff, err := time.ParseInLocation(games.DateFormat, after, time.UTC)
		if err != nil {
			return err
		}
		return renderGames(cat.ReleasedAfter(cutoff))
	},
}

func init() {
	listCmd.Flags().String("after", "", "only games released strictly after this date (02-Jan-2006)")
	rootCmd.AddCommand(listCmd)
}
