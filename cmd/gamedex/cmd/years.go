package cmd

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gamedex/gamedex/internal/cmd/output"
	"github.com/gamedex/gamedex/internal/config"
)

// yearsCmd lists years in which high-scoring games were released.
var yearsCmd = &cobra.Command{
	Use:     "years",
	Short:   "List years with games at or above a meta score",
	Example: `  gamedex years --min-score 95`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		minScore, _ := cmd.Flags().GetInt("min-score")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		years := cat.YearsWithScoreAbove(minScore)
		sort.Ints(years)

		format := output.DetectFormat(config.OutputFormat())
		if format != output.FormatTable {
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), years)
		}

		data := output.Data{Headers: []string{"year"}}
		for _, y := range years {
			data.Rows = append(data.Rows, []string{strconv.Itoa(y)})
		}
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
	},
}

func init() {
	yearsCmd.Flags().Int("min-score", 90, "minimal meta score a game must have")
	rootCmd.AddCommand(yearsCmd)
}
