package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// namesCmd prints the names of games released in a given year.
var namesCmd = &cobra.Command{
	Use:     "names YEAR",
	Short:   "Print a comma-separated list of games released in a year",
	Example: `  gamedex names 1998`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		names := cat.NamesReleasedIn(year)
		if names != "" {
			fmt.Fprintln(cmd.OutOrStdout(), names)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(namesCmd)
}
