package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/ui"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the vocabulary hierarchy",
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().String("vocab", "", "vocabulary folder to list")
	_ = treeCmd.MarkFlagRequired("vocab")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, _ []string) error {
	printer := printerFor(cmd)

	vocabDir, _ := cmd.Flags().GetString("vocab")
	t, err := tree.LoadTree(vocabDir)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	// The listing is data, so it goes to stdout and only colors a terminal.
	r := &ui.TreeRenderer{NoColor: printer.NoColor || !ui.IsTerminal(os.Stdout)}
	fmt.Fprint(os.Stdout, r.Render(t))
	return nil
}
