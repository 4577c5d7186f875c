package cmd

import (
	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/check"
)

var checkCategoriesCmd = &cobra.Command{
	Use:   "categories <folder>",
	Short: "Verify category stores agree with folders and leaf stores",
	Long: `Categories compares Categories.tsv against the folders and term
stores beside it, then each category's Subcategories.tsv against the leaf
stores inside. Mismatches are reported but do not fail the command; only a
missing folder or missing Categories.tsv does.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckCategories,
}

func init() {
	checkCmd.AddCommand(checkCategoriesCmd)
}

func runCheckCategories(cmd *cobra.Command, args []string) error {
	printer := printerFor(cmd)

	findings, err := check.Categories(args[0])
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	// Mismatches are advisory here; the exit code stays zero.
	printer.CheckResult("categories", findings)
	return nil
}
