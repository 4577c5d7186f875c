package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/check"
)

var checkSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Verify a vocabulary mirrors its source tree",
	RunE:  runCheckSync,
}

func init() {
	checkSyncCmd.Flags().String("terms", "", "source folder of term lists")
	checkSyncCmd.Flags().String("vocabulary", "", "vocabulary folder to compare")
	_ = checkSyncCmd.MarkFlagRequired("terms")
	_ = checkSyncCmd.MarkFlagRequired("vocabulary")

	checkCmd.AddCommand(checkSyncCmd)
}

func runCheckSync(cmd *cobra.Command, _ []string) error {
	printer := printerFor(cmd)

	termsRoot, _ := cmd.Flags().GetString("terms")
	vocabRoot, _ := cmd.Flags().GetString("vocabulary")

	findings, err := check.Synchronization(termsRoot, vocabRoot)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.CheckResult("sync", findings)
	if len(findings) > 0 {
		return fmt.Errorf("check sync failed with %d finding(s)", len(findings))
	}
	return nil
}
