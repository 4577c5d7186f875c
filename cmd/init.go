package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/config"
	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/vocab"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Build a vocabulary tree from a folder of term lists",
	Long: `Init converts a source folder of category directories and plain-text
term files into a fresh vocabulary tree: Categories.tsv at the root, one
folder per category with its Subcategories.tsv, and one term store per
subcategory, every row carrying a newly assigned identifier.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("input", "", "source folder of category directories and term files")
	initCmd.Flags().String("output", "", "destination folder for the vocabulary tree")
	initCmd.Flags().String("prefix", "", "identifier prefix (overrides config)")
	_ = initCmd.MarkFlagRequired("input")
	_ = initCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printer := printerFor(cmd)

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	in := &tree.Initializer{
		Source: input,
		Output: output,
		Alloc:  vocab.NewAllocator(resolvePrefix(cmd, cfg), 0),
		Out:    os.Stdout,
	}
	res, err := in.Run()
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.InitSummary(res)
	return nil
}
