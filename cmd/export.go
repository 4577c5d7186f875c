package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/config"
	"github.com/onvoc/onvoc/internal/export"
	"github.com/onvoc/onvoc/internal/tree"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a vocabulary tree as JSON, YAML, or SKOS",
	Long: `Export loads the vocabulary hierarchy and renders it in the chosen
format. The SKOS formats (turtle, ntriples) read an optional
vocabulary.toml scheme manifest next to the tree for the concept scheme's
title, namespace, and label.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("vocab", "", "vocabulary folder to render")
	exportCmd.Flags().String("format", "json", "output format: "+strings.Join(export.FormatNames(), ", "))
	exportCmd.Flags().String("output", "", "write to this file instead of stdout")
	exportCmd.Flags().String("scheme", "", "scheme manifest (default <vocab>/"+export.SchemeFile+")")
	_ = exportCmd.MarkFlagRequired("vocab")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printer := printerFor(cmd)

	vocabDir, _ := cmd.Flags().GetString("vocab")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	schemePath, _ := cmd.Flags().GetString("scheme")
	if schemePath == "" {
		schemePath = cfg.Scheme
	}
	if schemePath == "" {
		schemePath = filepath.Join(vocabDir, export.SchemeFile)
	}

	renderer, err := export.FormatByName(format)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	t, err := tree.LoadTree(vocabDir)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	scheme, err := export.LoadScheme(schemePath)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	rendered, err := renderer.Render(t, scheme)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if output == "" {
		fmt.Fprint(os.Stdout, rendered)
		return nil
	}
	if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.ExportWritten(output)
	return nil
}
