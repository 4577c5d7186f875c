package check

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/tsv"
)

// Column names of a mapping store. The vocabulary_id column is shared with
// the term stores.
const (
	colVocabTerm = "vocabulary_term"
	colMeshTerm  = "mesh_term"
	colMeshID    = "mesh_id"
)

// MappingsResult is the outcome of validating a mappings directory against
// a vocabulary tree.
type MappingsResult struct {
	Findings []Finding
	Skipped  []string // mapping files missing the required columns
	Checked  int      // mapping files validated
	Rows     int      // data rows across validated files
}

// Mappings validates every top-level mapping store in mappingsDir against
// the id-to-term assignments found under vocabRoot. A mapping row must name
// an identifier the vocabulary defines, and its vocabulary_term must match
// the term that identifier is assigned to. Files without the four mapping
// columns are skipped, not failed. Conflicting id assignments inside the
// vocabulary itself are reported to warn; check ids is the authority on
// those.
func Mappings(vocabRoot, mappingsDir string, warn io.Writer) (*MappingsResult, error) {
	if err := tree.CheckDir(vocabRoot); err != nil {
		return nil, err
	}
	if err := tree.CheckDir(mappingsDir); err != nil {
		return nil, err
	}
	if warn == nil {
		warn = io.Discard
	}

	assigned, err := vocabularyIDs(vocabRoot, warn)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(mappingsDir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", mappingsDir, err)
	}

	res := &MappingsResult{}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".tsv") {
			continue
		}
		t, err := tsv.ReadTable(filepath.Join(mappingsDir, e.Name()))
		if err != nil {
			return nil, err
		}
		termCol := t.Col(colVocabTerm)
		idCol := t.Col(tsv.ColID)
		if termCol < 0 || idCol < 0 || t.Col(colMeshTerm) < 0 || t.Col(colMeshID) < 0 {
			res.Skipped = append(res.Skipped, e.Name())
			continue
		}
		res.Checked++
		res.Rows += len(t.Rows)

		for i := range t.Rows {
			id := t.Cell(i, idCol)
			term := t.Cell(i, termCol)
			switch {
			case id == "":
				res.Findings = append(res.Findings, Finding{
					Tag:    TagEmptyColumn,
					Detail: fmt.Sprintf("%s row %d: empty %s", e.Name(), t.RowNum(i), tsv.ColID),
				})
			case term == "":
				res.Findings = append(res.Findings, Finding{
					Tag:    TagEmptyColumn,
					Detail: fmt.Sprintf("%s row %d: empty %s", e.Name(), t.RowNum(i), colVocabTerm),
				})
			default:
				expected, ok := assigned[id]
				if !ok {
					res.Findings = append(res.Findings, Finding{
						Tag:    TagUnknownID,
						Detail: fmt.Sprintf("%s row %d: %s is not defined in the vocabulary", e.Name(), t.RowNum(i), id),
					})
					break
				}
				if term != expected {
					res.Findings = append(res.Findings, Finding{
						Tag:    TagTermMismatch,
						Detail: fmt.Sprintf("%s row %d: %s maps to %q but the vocabulary has %q", e.Name(), t.RowNum(i), id, term, expected),
					})
				}
			}
		}
	}
	return res, nil
}

// vocabularyIDs builds the id-to-term map over every term store under
// root except the per-category Subcategories stores. The last assignment
// wins on conflict.
func vocabularyIDs(root string, warn io.Writer) (map[string]string, error) {
	assigned := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".tsv") || d.Name() == tree.SubcategoriesFile {
			return nil
		}
		recs, err := tsv.ReadRecords(path, tsv.Options{})
		if err != nil {
			return err
		}
		for _, r := range recs {
			if r.Term == "" || r.ID == "" {
				continue
			}
			id := string(r.ID)
			if prev, ok := assigned[id]; ok && prev != r.Term {
				rel, rerr := filepath.Rel(root, path)
				if rerr != nil {
					rel = path
				}
				fmt.Fprintf(warn, "warning: %s maps to both %q and %q (in %s)\n", id, prev, r.Term, rel)
			}
			assigned[id] = r.Term
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary ids from %s: %w", root, err)
	}
	return assigned, nil
}
