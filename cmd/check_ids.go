package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/check"
	"github.com/onvoc/onvoc/internal/config"
	"github.com/onvoc/onvoc/internal/tsv"
)

var checkIDsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Verify terms and identifiers map one-to-one",
	RunE:  runCheckIDs,
}

func init() {
	checkIDsCmd.Flags().String("root", "", "vocabulary folder to scan")
	checkIDsCmd.Flags().Bool("strict", false, "treat malformed rows as errors")
	_ = checkIDsCmd.MarkFlagRequired("root")

	checkCmd.AddCommand(checkIDsCmd)
}

func runCheckIDs(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printer := printerFor(cmd)

	root, _ := cmd.Flags().GetString("root")
	strict := cfg.Strict
	if v, _ := cmd.Flags().GetBool("strict"); v {
		strict = true
	}

	findings, err := check.IDs(root, tsv.Options{Strict: strict})
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.CheckResult("ids", findings)
	if len(findings) > 0 {
		return fmt.Errorf("check ids failed with %d finding(s)", len(findings))
	}
	return nil
}
