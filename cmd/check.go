package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a vocabulary tree",
	Long: `Check runs one of the tree validators. Each subcommand prints its
findings and, except for categories, exits non-zero when any exist.`,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
