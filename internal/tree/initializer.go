package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/onvoc/onvoc/internal/tsv"
	"github.com/onvoc/onvoc/internal/vocab"
)

// Initializer builds an ID-annotated copy of a plain-text vocabulary tree.
// The source is never modified; stores under Output are written from
// scratch, so re-running over a populated output replaces it rather than
// merging (use the Synchronizer to grow an existing copy).
type Initializer struct {
	Source string
	Output string
	Alloc  *vocab.Allocator
	Out    io.Writer // progress lines, stdout in the CLI; nil discards
}

// InitResult summarizes one initializer run.
type InitResult struct {
	Categories    int
	Subcategories int
	Terms         int // leaf rows written, duplicate spellings included
	Stores        int // TSV files written
}

// Run converts the source tree. Categories are assigned identifiers first,
// then each category's subcategories and terms in lexical category order,
// so a fresh run over a stable tree is reproducible.
func (in *Initializer) Run() (*InitResult, error) {
	if err := CheckDir(in.Source); err != nil {
		return nil, err
	}
	out := in.out()
	res := &InitResult{}

	cats, err := ListCategoryDirs(in.Source)
	if err != nil {
		return nil, err
	}

	catRecs := make([]vocab.Record, len(cats))
	for i, folder := range cats {
		term := vocab.DisplayTerm(folder)
		catRecs[i] = vocab.Record{Term: term, ID: in.Alloc.GetOrCreate(term)}
	}
	catPath := filepath.Join(in.Output, CategoriesFile)
	if err := tsv.WriteAll(catPath, catRecs); err != nil {
		return nil, err
	}
	res.Categories = len(catRecs)
	res.Stores++
	fmt.Fprintf(out, "wrote %s (%d categories)\n", catPath, len(catRecs))

	for _, folder := range cats {
		srcDir := filepath.Join(in.Source, folder)
		outDir := filepath.Join(in.Output, folder)

		files, err := ListTermFiles(srcDir)
		if err != nil {
			return nil, err
		}

		stems := make([]string, len(files))
		for i, f := range files {
			stems[i] = Stem(f)
		}
		slices.Sort(stems)

		subRecs := make([]vocab.Record, len(stems))
		for i, stem := range stems {
			term := vocab.DisplayTerm(stem)
			subRecs[i] = vocab.Record{Term: term, ID: in.Alloc.GetOrCreate(term)}
		}
		subPath := filepath.Join(outDir, SubcategoriesFile)
		if err := tsv.WriteAll(subPath, subRecs); err != nil {
			return nil, err
		}
		res.Subcategories += len(subRecs)
		res.Stores++
		fmt.Fprintf(out, "wrote %s (%d subcategories)\n", subPath, len(subRecs))

		for _, fname := range files {
			terms, err := ReadTerms(filepath.Join(srcDir, fname))
			if err != nil {
				return nil, err
			}
			rows := make([]vocab.Record, len(terms))
			for i, term := range terms {
				rows[i] = vocab.Record{Term: term, ID: in.Alloc.GetOrCreate(term)}
			}
			leafPath := filepath.Join(outDir, Stem(fname)+".tsv")
			if err := tsv.WriteAll(leafPath, rows); err != nil {
				return nil, err
			}
			res.Terms += len(rows)
			res.Stores++
			fmt.Fprintf(out, "  wrote %s (%d terms)\n", leafPath, len(rows))
		}
	}
	return res, nil
}

func (in *Initializer) out() io.Writer {
	if in.Out == nil {
		return io.Discard
	}
	return in.Out
}
