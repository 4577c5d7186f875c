package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/check"
)

var checkLevelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Verify no category or subcategory name appears as a term",
	RunE:  runCheckLevels,
}

func init() {
	checkLevelsCmd.Flags().String("vocab", "", "vocabulary folder to scan")
	_ = checkLevelsCmd.MarkFlagRequired("vocab")

	checkCmd.AddCommand(checkLevelsCmd)
}

func runCheckLevels(cmd *cobra.Command, _ []string) error {
	printer := printerFor(cmd)

	vocabRoot, _ := cmd.Flags().GetString("vocab")

	findings, err := check.Levels(vocabRoot)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.CheckResult("levels", findings)
	if len(findings) > 0 {
		return fmt.Errorf("check levels failed with %d finding(s)", len(findings))
	}
	return nil
}
