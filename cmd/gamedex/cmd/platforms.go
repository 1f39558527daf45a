package cmd

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gamedex/gamedex/internal/cmd/output"
	"github.com/gamedex/gamedex/internal/config"
)

// platformsCmd groups the catalog by platform.
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "Group games by platform",
	Example: `  gamedex platforms          # Game counts per platform
  gamedex platforms --best   # Highest user-rated game per platform`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		best, _ := cmd.Flags().GetBool("best")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		groups := cat.ByPlatform()
		platforms := make([]string, 0, len(groups))
		for p := range groups {
			platforms = append(platforms, p)
		}
		sort.Strings(platforms)

		format := output.DetectFormat(config.OutputFormat())

		if best {
			type bestEntry struct {
				Platform   string  `json:"platform" yaml:"platform"`
				Name       string  `json:"name" yaml:"name"`
				UserReview float64 `json:"user_review" yaml:"user_review"`
			}
			entries := make([]bestEntry, 0, len(platforms))
			for _, p := range platforms {
				top, err := cat.HighestRatedOn(p)
				if err != nil {
					return err
				}
				entries = append(entries, bestEntry{Platform: p, Name: top.Name, UserReview: top.UserReview})
			}
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), entries)
			}
			data := output.Data{Headers: []string{"platform", "name", "user_review"}}
			for _, e := range entries {
				data.Rows = append(data.Rows, []string{e.Platform, e.Name, strconv.FormatFloat(e.UserReview, 'f', 1, 64)})
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		}

		type platformEntry struct {
			Platform    string `json:"platform" yaml:"platform"`
			Games       int    `json:"games" yaml:"games"`
			YearsActive int    `json:"years_active" yaml:"years_active"`
		}
		entries := make([]platformEntry, 0, len(platforms))
		for _, p := range platforms {
			entries = append(entries, platformEntry{
				Platform:    p,
				Games:       len(groups[p]),
				YearsActive: cat.YearsActive(p),
			})
		}
		if format != output.FormatTable {
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), entries)
		}
		data := output.Data{Headers: []string{"platform", "games", "years_active"}}
		for _, e := range entries {
			data.Rows = append(data.Rows, []string{e.Platform, strconv.Itoa(e.Games), strconv.Itoa(e.YearsActive)})
		}
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
	},
}

func init() {
	platformsCmd.Flags().Bool("best", false, "show the highest user-rated game per platform")
	rootCmd.AddCommand(platformsCmd)
}
