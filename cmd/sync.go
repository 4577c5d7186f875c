package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/onvoc/onvoc/internal/audit"
	"github.com/onvoc/onvoc/internal/config"
	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/ui"
	"github.com/onvoc/onvoc/internal/watch"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Append new terms from a source tree into a vocabulary",
	Long: `Sync walks the original source tree and appends any category,
subcategory, or term the vocabulary copy is missing, assigning fresh
identifiers above the highest one already on disk. Existing rows are never
rewritten, so identifiers stay stable across runs.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().String("original", "", "source folder the vocabulary mirrors")
	syncCmd.Flags().String("copy", "", "vocabulary folder that receives new rows")
	syncCmd.Flags().String("prefix", "", "identifier prefix (overrides config)")
	syncCmd.Flags().String("audit", "", "append JSONL audit events to this file (overrides config)")
	syncCmd.Flags().Bool("watch", false, "stay alive and re-synchronize when the source changes")
	_ = syncCmd.MarkFlagRequired("original")
	_ = syncCmd.MarkFlagRequired("copy")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printer := printerFor(cmd)

	original, _ := cmd.Flags().GetString("original")
	copyDir, _ := cmd.Flags().GetString("copy")
	watchMode, _ := cmd.Flags().GetBool("watch")

	emitter, err := openAudit(cmd, cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer emitter.Close()

	s := &tree.Synchronizer{
		Original: original,
		Copy:     copyDir,
		Prefix:   resolvePrefix(cmd, cfg),
		Out:      os.Stdout,
		Audit:    emitter,
	}

	res, err := s.Run()
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.SyncSummary(res)

	if !watchMode {
		return nil
	}
	return watchAndSync(s, printer)
}

// openAudit builds the audit emitter when --audit or the config names a
// log file. A nil emitter drops events.
func openAudit(cmd *cobra.Command, cfg config.Config) (*audit.Emitter, error) {
	path, _ := cmd.Flags().GetString("audit")
	if path == "" {
		path = cfg.AuditLog
	}
	if path == "" {
		return nil, nil
	}
	return audit.NewEmitter(path, uuid.NewString())
}

// watchAndSync re-runs the synchronizer after each debounced batch of
// source changes, until interrupted.
func watchAndSync(s *tree.Synchronizer, printer *ui.Printer) error {
	w, err := watch.NewWatcher(s.Original)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	printer.Info(fmt.Sprintf("watching %s for changes (ctrl-c to stop)", s.Original))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sigCh:
			printer.Info("shutting down...")
			return nil
		case batch, ok := <-w.Changes:
			if !ok {
				return nil
			}
			printer.Info(fmt.Sprintf("%d change(s) detected", len(batch)))
			res, err := s.Run()
			if err != nil {
				// Transient states (a half-written folder, say) should
				// not kill watch mode.
				printer.Warn(err.Error())
				continue
			}
			printer.SyncSummary(res)
		}
	}
}
