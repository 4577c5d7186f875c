package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/annotate"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Write identifier-annotated stores next to term lists",
	Long: `Annotate scans one or more folders for term-list files and writes a
sibling .tsv for each, pairing every term with its identifier from the
vocabulary. Terms the vocabulary does not know get a blank identifier.`,
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringSlice("folders", nil, "folders holding term lists to annotate")
	annotateCmd.Flags().String("vocabulary", "", "vocabulary folder supplying identifiers")
	annotateCmd.Flags().String("pattern", annotate.DefaultPattern, "glob for term-list files")
	_ = annotateCmd.MarkFlagRequired("folders")
	_ = annotateCmd.MarkFlagRequired("vocabulary")

	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, _ []string) error {
	printer := printerFor(cmd)

	folders, _ := cmd.Flags().GetStringSlice("folders")
	vocabDir, _ := cmd.Flags().GetString("vocabulary")
	pattern, _ := cmd.Flags().GetString("pattern")

	a := &annotate.Annotator{
		Vocabulary: vocabDir,
		Pattern:    pattern,
		Out:        os.Stdout,
		Warn:       os.Stderr,
	}
	res, err := a.Run(folders...)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.AnnotateSummary(res)
	return nil
}
