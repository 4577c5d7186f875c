package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onvoc/onvoc/internal/config"
	"github.com/onvoc/onvoc/internal/ui"
	"github.com/onvoc/onvoc/internal/vocab"
)

var rootCmd = &cobra.Command{
	Use:   "onvoc",
	Short: "Hierarchical controlled-vocabulary manager",
	Long: `Onvoc maintains TSV-backed controlled vocabularies: it builds and
synchronizes an identifier-assigned tree from plain term lists, validates
the result, and exports it for downstream consumers.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .onvoc.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colors in output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".onvoc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ONVOC")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// printerFor builds the status printer, honoring --no-color.
func printerFor(cmd *cobra.Command) *ui.Printer {
	p := ui.New()
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		p.NoColor = true
	}
	return p
}

// resolvePrefix returns the identifier prefix, flag first, then config.
func resolvePrefix(cmd *cobra.Command, cfg config.Config) vocab.Prefix {
	if p, _ := cmd.Flags().GetString("prefix"); p != "" {
		return vocab.Prefix(p)
	}
	return vocab.Prefix(cfg.Prefix)
}
