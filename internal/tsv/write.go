package tsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onvoc/onvoc/internal/vocab"
)

// WriteRows creates or truncates the store at path, writing header followed
// by rows. The parent directory is created when missing.
func WriteRows(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// WriteAll creates or truncates the store at path with the canonical header
// and one row per record, preserving order.
func WriteAll(path string, recs []vocab.Record) error {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{r.Term, string(r.ID), r.Comment}
	}
	return WriteRows(path, Header, rows)
}

// Append adds records to the store at path, creating it with just the
// canonical header first when it does not exist. Existing content is never
// rewritten or reordered.
func Append(path string, recs []vocab.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	_, statErr := os.Stat(path)
	exists := statErr == nil

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening term store: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if !exists {
		w.Write(Header)
	}
	for _, r := range recs {
		w.Write([]string{r.Term, string(r.ID), r.Comment})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return f.Close()
}

// EnsureFile creates an empty store (header only) at path when missing and
// leaves existing files untouched.
func EnsureFile(path string) error {
	return Append(path, nil)
}
