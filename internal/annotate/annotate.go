// Package annotate stamps vocabulary identifiers onto plain-text term
// files, writing a sibling .tsv next to every input.
package annotate

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/tsv"
)

// DefaultPattern selects the files an Annotator rewrites when no pattern
// is configured.
const DefaultPattern = "**/*.txt"

// Annotator pairs every matching term file with a sibling .tsv carrying
// the identifiers the vocabulary assigns to its terms.
type Annotator struct {
	Vocabulary string    // root of the ID-annotated vocabulary tree
	Pattern    string    // doublestar pattern relative to each folder
	Out        io.Writer // progress lines, defaults to io.Discard
	Warn       io.Writer // conflict and skip warnings, defaults to io.Discard
}

// Result counts what one Run touched.
type Result struct {
	Files int // term files annotated
	Terms int // rows written across all output stores
	Known int // rows that carried a known identifier
}

// Run annotates every file matching the pattern under each folder. Inputs
// are never modified; the output store sits beside its input with the
// extension swapped to .tsv. Unknown terms keep an empty identifier
// column, and .tsv files never match, whatever the pattern says.
func (a *Annotator) Run(folders ...string) (*Result, error) {
	if err := tree.CheckDir(a.Vocabulary); err != nil {
		return nil, err
	}
	out, warn := a.out(), a.warn()

	assigned, err := a.termIDs(warn)
	if err != nil {
		return nil, err
	}
	if len(assigned) == 0 {
		fmt.Fprintln(warn, "warning: no vocabulary terms loaded; all IDs will be blank")
	}

	pattern := a.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	res := &Result{}
	for _, folder := range folders {
		if err := tree.CheckDir(folder); err != nil {
			fmt.Fprintf(warn, "warning: skipping %s: %v\n", folder, err)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(folder), pattern)
		if err != nil {
			return nil, fmt.Errorf("matching %q under %s: %w", pattern, folder, err)
		}
		for _, m := range matches {
			path := filepath.Join(folder, filepath.FromSlash(m))
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(path), ".tsv") {
				continue
			}
			terms, known, err := a.annotateFile(path, assigned, out)
			if err != nil {
				return nil, err
			}
			res.Files++
			res.Terms += terms
			res.Known += known
		}
	}
	return res, nil
}

func (a *Annotator) annotateFile(path string, assigned map[string]string, out io.Writer) (terms, known int, err error) {
	lines, err := tree.ReadTerms(path)
	if err != nil {
		return 0, 0, err
	}
	rows := make([][]string, 0, len(lines))
	for _, term := range lines {
		id := assigned[term]
		if id != "" {
			known++
		}
		rows = append(rows, []string{term, id})
	}

	dst := strings.TrimSuffix(path, filepath.Ext(path)) + ".tsv"
	if err := tsv.WriteRows(dst, []string{tsv.ColTerm, tsv.ColID}, rows); err != nil {
		return 0, 0, err
	}
	fmt.Fprintf(out, "annotated %s -> %s\n", path, dst)
	return len(rows), known, nil
}

// termIDs maps every term under the vocabulary root to its identifier,
// reporting conflicting assignments to warn. The last assignment wins.
func (a *Annotator) termIDs(warn io.Writer) (map[string]string, error) {
	assigned := make(map[string]string)
	err := filepath.WalkDir(a.Vocabulary, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".tsv") {
			return nil
		}
		recs, err := tsv.ReadRecords(path, tsv.Options{})
		if err != nil {
			return err
		}
		for _, r := range recs {
			if r.Term == "" {
				continue
			}
			id := string(r.ID)
			if prev, ok := assigned[r.Term]; ok && prev != id {
				fmt.Fprintf(warn, "warning: term %q has conflicting IDs %q vs %q in %s\n", r.Term, prev, id, path)
			}
			assigned[r.Term] = id
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary terms from %s: %w", a.Vocabulary, err)
	}
	return assigned, nil
}

func (a *Annotator) out() io.Writer {
	if a.Out == nil {
		return io.Discard
	}
	return a.Out
}

func (a *Annotator) warn() io.Writer {
	if a.Warn == nil {
		return io.Discard
	}
	return a.Warn
}
