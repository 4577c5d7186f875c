package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/check"
)

var checkMappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Verify mapping files against the vocabulary",
	Long: `Mappings checks every mapping store in a folder: each row's
vocabulary_id must exist in the vocabulary and its vocabulary_term must
match the term registered there. Files without the mapping columns are
skipped.`,
	RunE: runCheckMappings,
}

func init() {
	checkMappingsCmd.Flags().String("vocabulary", "", "vocabulary folder supplying identifiers")
	checkMappingsCmd.Flags().String("mappings", "", "folder of mapping stores to verify")
	_ = checkMappingsCmd.MarkFlagRequired("vocabulary")
	_ = checkMappingsCmd.MarkFlagRequired("mappings")

	checkCmd.AddCommand(checkMappingsCmd)
}

func runCheckMappings(cmd *cobra.Command, _ []string) error {
	printer := printerFor(cmd)

	vocabRoot, _ := cmd.Flags().GetString("vocabulary")
	mappingsDir, _ := cmd.Flags().GetString("mappings")

	res, err := check.Mappings(vocabRoot, mappingsDir, os.Stderr)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.Info(fmt.Sprintf("checked %d file(s), %d row(s)", res.Checked, res.Rows))
	if len(res.Skipped) > 0 {
		printer.Info(fmt.Sprintf("skipped %d file(s) without mapping columns", len(res.Skipped)))
	}

	printer.CheckResult("mappings", res.Findings)
	if len(res.Findings) > 0 {
		return fmt.Errorf("check mappings failed with %d finding(s)", len(res.Findings))
	}
	return nil
}
