package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/tsv"
)

// Synchronization cross-checks a plain-text terms tree against its
// ID-annotated vocabulary copy. Both directions are audited: category
// folders, subcategory files, and the terms inside each leaf pair. It
// never mutates either tree.
func Synchronization(termsRoot, vocabRoot string) ([]Finding, error) {
	if err := tree.CheckDir(termsRoot); err != nil {
		return nil, err
	}
	if err := tree.CheckDir(vocabRoot); err != nil {
		return nil, err
	}

	termsCats, err := dirNameSet(termsRoot)
	if err != nil {
		return nil, err
	}
	vocabCats, err := dirNameSet(vocabRoot)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, cat := range sortedKeys(termsCats) {
		if !vocabCats[cat] {
			findings = append(findings, Finding{
				Tag:    TagMissingCategoryFolder,
				Detail: fmt.Sprintf("%q exists in terms but not in vocabulary", cat),
			})
		}
	}
	for _, cat := range sortedKeys(vocabCats) {
		if !termsCats[cat] {
			findings = append(findings, Finding{
				Tag:    TagExtraCategoryFolder,
				Detail: fmt.Sprintf("%q exists in vocabulary but not in terms", cat),
			})
		}
	}

	for _, cat := range sortedKeys(termsCats) {
		if !vocabCats[cat] {
			continue
		}
		more, err := checkCategorySync(termsRoot, vocabRoot, cat)
		if err != nil {
			return nil, err
		}
		findings = append(findings, more...)
	}
	return findings, nil
}

func checkCategorySync(termsRoot, vocabRoot, cat string) ([]Finding, error) {
	termsDir := filepath.Join(termsRoot, cat)
	vocabDir := filepath.Join(vocabRoot, cat)

	files, err := tree.ListTermFiles(termsDir)
	if err != nil {
		return nil, err
	}
	termsSubs := make(map[string]bool, len(files))
	for _, f := range files {
		termsSubs[tree.Stem(f)] = true
	}
	_, vocabSubs, err := listEntries(vocabDir, tree.SubcategoriesFile)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, sub := range sortedKeys(termsSubs) {
		if !vocabSubs[sub] {
			findings = append(findings, Finding{
				Tag:    TagMissingSubcategory,
				Detail: fmt.Sprintf("%q under category %q is missing in vocabulary", sub+".tsv", cat),
			})
		}
	}
	for _, sub := range sortedKeys(vocabSubs) {
		if !termsSubs[sub] {
			findings = append(findings, Finding{
				Tag:    TagExtraSubcategory,
				Detail: fmt.Sprintf("%q under category %q is not in terms", sub+".tsv", cat),
			})
		}
	}

	for _, sub := range sortedKeys(termsSubs) {
		if !vocabSubs[sub] {
			continue
		}
		srcTerms, err := tree.ReadTerms(filepath.Join(termsDir, sub+".txt"))
		if err != nil {
			return nil, err
		}
		orig := make(map[string]bool, len(srcTerms))
		for _, t := range srcTerms {
			orig[t] = true
		}

		leafPath := filepath.Join(vocabDir, sub+".tsv")
		if _, err := os.Stat(leafPath); err != nil {
			findings = append(findings, Finding{
				Tag:    TagMissingTSV,
				Detail: fmt.Sprintf("expected %q under %q corresponding to terms", sub+".tsv", vocabDir),
			})
			continue
		}
		copied, err := tsv.TermSet(leafPath)
		if err != nil {
			return nil, err
		}

		for _, term := range sortedKeys(orig) {
			if !copied[term] {
				findings = append(findings, Finding{
					Tag:    TagMissingTerm,
					Detail: fmt.Sprintf("%q in terms/%s/%s.txt is not found in vocabulary/%s/%s.tsv", term, cat, sub, cat, sub),
				})
			}
		}
		for _, term := range sortedKeys(copied) {
			if !orig[term] {
				findings = append(findings, Finding{
					Tag:    TagExtraTerm,
					Detail: fmt.Sprintf("%q in vocabulary/%s/%s.tsv is not defined in terms/%s/%s.txt", term, cat, sub, cat, sub),
				})
			}
		}
	}
	return findings, nil
}

func dirNameSet(root string) (map[string]bool, error) {
	names, err := tree.ListCategoryDirs(root)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set, nil
}
