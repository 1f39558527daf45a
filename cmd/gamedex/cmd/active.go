package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// activeCmd reports how many years a platform has been live.
var activeCmd = &cobra.Command{
	Use:     "active PLATFORM",
	Short:   "Show the number of years a platform has been live",
	Example: `  gamedex active "Xbox One"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), cat.YearsActive(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activeCmd)
}
