package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"recipebox/fraction"
)

var fractionCmd = &cobra.Command{
	Use:   "fraction [amount...]",
	Short: "Show how ingredient amounts are displayed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", arg, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, fraction.Format(v))
		}
		return nil
	},
}
