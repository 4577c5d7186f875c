package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/check"
	"github.com/onvoc/onvoc/internal/config"
	"github.com/onvoc/onvoc/internal/tsv"
)

var checkAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every applicable validator in one pass",
	Long: `All runs the validators that apply to the given folders: ids and
levels always, sync when --terms is given, mappings when --mappings is
given. Findings from every validator are printed before the command
exits non-zero.`,
	RunE: runCheckAll,
}

func init() {
	checkAllCmd.Flags().String("vocabulary", "", "vocabulary folder to validate")
	checkAllCmd.Flags().String("terms", "", "source term folder to compare against")
	checkAllCmd.Flags().String("mappings", "", "folder of mapping stores to verify")
	checkAllCmd.Flags().Bool("strict", false, "treat malformed rows as errors")
	_ = checkAllCmd.MarkFlagRequired("vocabulary")

	checkCmd.AddCommand(checkAllCmd)
}

func runCheckAll(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printer := printerFor(cmd)

	vocabRoot, _ := cmd.Flags().GetString("vocabulary")
	termsRoot, _ := cmd.Flags().GetString("terms")
	mappingsDir, _ := cmd.Flags().GetString("mappings")
	strict := cfg.Strict
	if v, _ := cmd.Flags().GetBool("strict"); v {
		strict = true
	}

	steps := []check.Step{
		{Name: "ids", Fn: func() ([]check.Finding, error) {
			return check.IDs(vocabRoot, tsv.Options{Strict: strict})
		}},
		{Name: "levels", Fn: func() ([]check.Finding, error) {
			return check.Levels(vocabRoot)
		}},
	}
	if termsRoot != "" {
		steps = append(steps, check.Step{Name: "sync", Fn: func() ([]check.Finding, error) {
			return check.Synchronization(termsRoot, vocabRoot)
		}})
	}
	if mappingsDir != "" {
		steps = append(steps, check.Step{Name: "mappings", Fn: func() ([]check.Finding, error) {
			res, err := check.Mappings(vocabRoot, mappingsDir, os.Stderr)
			if err != nil {
				return nil, err
			}
			return res.Findings, nil
		}})
	}

	suite := &check.Suite{Steps: steps}
	report, err := suite.Run()
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	var elapsed time.Duration
	for _, o := range report.Outcomes {
		printer.CheckResult(o.Name, o.Findings)
		elapsed += o.Elapsed
	}
	printer.Info(fmt.Sprintf("ran %d check(s) in %s", len(report.Outcomes), elapsed))

	if !report.Clean {
		return fmt.Errorf("check all failed with %d finding(s)", report.Total())
	}
	return nil
}
