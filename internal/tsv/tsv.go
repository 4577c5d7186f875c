// Package tsv reads and writes the tab-separated term stores that make up a
// vocabulary tree: the root Categories.tsv, each category's
// Subcategories.tsv, and the leaf term files. Stores are append-friendly;
// nothing in this package ever rewrites or reorders existing rows except
// WriteRows, which the initializer uses to create files from scratch.
package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/onvoc/onvoc/internal/vocab"
)

// Canonical column names of a term store.
const (
	ColTerm    = "term"
	ColID      = "vocabulary_id"
	ColComment = "comment"
)

// Header is the canonical header row written to every new store.
var Header = []string{ColTerm, ColID, ColComment}

// Sentinel errors for structural problems surfaced in strict mode.
var (
	// ErrNoHeader indicates a store whose header row is missing or names
	// neither the term nor the vocabulary_id column.
	ErrNoHeader = errors.New("term store header missing or incomplete")
	// ErrShortRow indicates a data row with fewer cells than the columns
	// being read.
	ErrShortRow = errors.New("row has too few columns")
)

// Options control how term stores are parsed.
type Options struct {
	// Strict turns structural problems into errors. The default lenient
	// mode falls back to positional columns (term first, identifier
	// second) when the header is unusable and silently skips rows too
	// short to index, matching the historical tools.
	Strict bool
}

func newReader(f io.Reader) *csv.Reader {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// resolveColumns locates the term, identifier, and comment columns in a
// header row. In lenient mode an unusable header degrades to positions
// 0, 1, and 2.
func resolveColumns(path string, header []string, opts Options) (termIdx, idIdx, commentIdx int, err error) {
	termIdx = slices.Index(header, ColTerm)
	idIdx = slices.Index(header, ColID)
	commentIdx = slices.Index(header, ColComment)
	if termIdx < 0 || idIdx < 0 {
		if opts.Strict {
			return 0, 0, 0, fmt.Errorf("%s: %w", path, ErrNoHeader)
		}
		termIdx, idIdx, commentIdx = 0, 1, 2
	}
	return termIdx, idIdx, commentIdx, nil
}

// ReadRecords loads every data row of the store at path. Term and
// identifier cells are trimmed of surrounding whitespace; rows with empty
// cells are kept, since callers differ on whether they matter.
func ReadRecords(path string, opts Options) ([]vocab.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening term store: %w", err)
	}
	defer f.Close()

	r := newReader(f)
	header, err := r.Read()
	if err == io.EOF {
		if opts.Strict {
			return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	termIdx, idIdx, commentIdx, err := resolveColumns(path, header, opts)
	if err != nil {
		return nil, err
	}

	var recs []vocab.Record
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if len(row) <= max(termIdx, idIdx) {
			if opts.Strict {
				return nil, fmt.Errorf("%s: row %d: %w", path, rowNum, ErrShortRow)
			}
			continue
		}
		rec := vocab.Record{
			Term: strings.TrimSpace(row[termIdx]),
			ID:   vocab.ID(strings.TrimSpace(row[idIdx])),
		}
		if commentIdx >= 0 && len(row) > commentIdx {
			rec.Comment = row[commentIdx]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// TermIDMap loads the term to identifier mapping from the store at path.
// A missing file yields an empty map, rows missing either value are
// ignored, and later rows win on duplicate terms.
func TermIDMap(path string, opts Options) (map[string]vocab.ID, error) {
	m := make(map[string]vocab.ID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m, nil
	}
	recs, err := ReadRecords(path, opts)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		if r.Term != "" && r.ID != "" {
			m[r.Term] = r.ID
		}
	}
	return m, nil
}

// TermSet loads the set of non-empty terms in the store at path. A missing
// file yields an empty set.
func TermSet(path string, opts Options) (map[string]bool, error) {
	set := make(map[string]bool)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return set, nil
	}
	recs, err := ReadRecords(path, opts)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		if r.Term != "" {
			set[r.Term] = true
		}
	}
	return set, nil
}
