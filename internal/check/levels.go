package check

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/tsv"
	"github.com/onvoc/onvoc/internal/vocab"
)

// Levels reports every category or subcategory display name that also
// appears as a leaf term somewhere under vocabRoot. Levels must stay
// disjoint: a string naming a tree level cannot simultaneously be a term
// inside one. Both the plain-text and ID-annotated forms are scanned.
func Levels(vocabRoot string) ([]Finding, error) {
	if err := tree.CheckDir(vocabRoot); err != nil {
		return nil, err
	}

	forbidden, err := levelNames(vocabRoot)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	err = filepath.WalkDir(vocabRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := d.Name()
		stem := tree.Stem(name)
		switch {
		case strings.EqualFold(filepath.Ext(name), ".txt"):
			if strings.EqualFold(stem, "Categories") || strings.EqualFold(stem, "Subcategories") {
				return nil
			}
			more, err := scanTermLines(path, forbidden)
			if err != nil {
				return err
			}
			findings = append(findings, more...)
		case strings.EqualFold(filepath.Ext(name), ".tsv"):
			if stem == "Categories" || stem == "Subcategories" {
				return nil
			}
			more, err := scanTermRows(path, forbidden)
			if err != nil {
				return err
			}
			findings = append(findings, more...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s for level names: %w", vocabRoot, err)
	}
	return findings, nil
}

// levelNames maps every category and subcategory display name to the
// finding tag it should raise. The map is built in sorted directory order;
// when a name exists at both levels the later entry decides the tag.
func levelNames(vocabRoot string) (map[string]string, error) {
	entries, err := os.ReadDir(vocabRoot)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", vocabRoot, err)
	}
	forbidden := make(map[string]string)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		forbidden[vocab.DisplayTerm(e.Name())] = TagCategoryAsTerm

		catDir := filepath.Join(vocabRoot, e.Name())
		files, err := os.ReadDir(catDir)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", catDir, err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			ext := filepath.Ext(f.Name())
			isTxt := strings.EqualFold(ext, ".txt")
			isLeaf := strings.EqualFold(ext, ".tsv") && f.Name() != tree.SubcategoriesFile
			if isTxt || isLeaf {
				forbidden[vocab.DisplayTerm(tree.Stem(f.Name()))] = TagSubcategoryAsTerm
			}
		}
	}
	return forbidden, nil
}

func scanTermLines(path string, forbidden map[string]string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var findings []Finding
	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		term := strings.TrimSpace(sc.Text())
		if tag, ok := forbidden[term]; ok {
			findings = append(findings, Finding{
				Tag:    tag,
				Detail: fmt.Sprintf("%q occurs in %s (line %d)", term, path, lineNo),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return findings, nil
}

func scanTermRows(path string, forbidden map[string]string) ([]Finding, error) {
	t, err := tsv.ReadTable(path)
	if err != nil {
		return nil, err
	}
	if len(t.Header) == 0 {
		return nil, nil
	}
	idx := t.Col(tsv.ColTerm)
	if idx < 0 {
		idx = 0
	}
	var findings []Finding
	for i := range t.Rows {
		term := t.Cell(i, idx)
		if tag, ok := forbidden[term]; ok {
			findings = append(findings, Finding{
				Tag:    tag,
				Detail: fmt.Sprintf("%q occurs in %s (row %d)", term, path, t.RowNum(i)),
			})
		}
	}
	return findings, nil
}
