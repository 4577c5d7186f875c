package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/tsv"
	"github.com/onvoc/onvoc/internal/vocab"
)

// Categories verifies structural completeness of an ID-annotated tree:
// every term in Categories.tsv must have a matching folder or .tsv file
// (matched through the underscore naming convention) and vice versa, and
// the same bidirectional check runs inside every category folder between
// its Subcategories.tsv and its leaf stores. The terms "Categories" and
// "Subcategories" are exempt, since their stores share those names.
func Categories(target string) ([]Finding, error) {
	if err := tree.CheckDir(target); err != nil {
		return nil, err
	}
	catPath := filepath.Join(target, tree.CategoriesFile)
	if _, err := os.Stat(catPath); err != nil {
		return nil, fmt.Errorf("%s not found in %s", tree.CategoriesFile, target)
	}

	terms, err := storeTerms(catPath, "Categories")
	if err != nil {
		return nil, err
	}

	dirNames, stemNames, err := listEntries(target, tree.CategoriesFile)
	if err != nil {
		return nil, err
	}

	findings := compareLevel(terms, dirNames, stemNames, tree.CategoriesFile, "")

	// Recurse into every category folder that exists.
	for _, term := range sortedKeys(terms) {
		folder := vocab.FolderName(term)
		catDir := filepath.Join(target, folder)
		info, err := os.Stat(catDir)
		if err != nil || !info.IsDir() {
			continue // absence already reported at the top level
		}

		subPath := filepath.Join(catDir, tree.SubcategoriesFile)
		if _, err := os.Stat(subPath); err != nil {
			findings = append(findings, Finding{
				Tag:    TagMissingEntry,
				Detail: fmt.Sprintf("category %q has no %s", term, tree.SubcategoriesFile),
			})
			continue
		}
		subTerms, err := storeTerms(subPath, "Subcategories")
		if err != nil {
			return nil, err
		}
		_, leafStems, err := listEntries(catDir, tree.SubcategoriesFile)
		if err != nil {
			return nil, err
		}
		findings = append(findings, compareLevel(subTerms, map[string]bool{}, leafStems, tree.SubcategoriesFile, folder)...)
	}
	return findings, nil
}

// storeTerms loads the non-empty terms of a store, excluding the store's
// own self-referential name.
func storeTerms(path, selfName string) (map[string]bool, error) {
	recs, err := tsv.ReadRecords(path, tsv.Options{})
	if err != nil {
		return nil, err
	}
	terms := make(map[string]bool)
	for _, r := range recs {
		if r.Term != "" && r.Term != selfName {
			terms[r.Term] = true
		}
	}
	return terms, nil
}

// listEntries splits a directory into its subdirectory names and the stems
// of its .tsv files, excluding the named metadata store.
func listEntries(dir, exclude string) (dirNames, stemNames map[string]bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	dirNames = make(map[string]bool)
	stemNames = make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			dirNames[e.Name()] = true
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".tsv") && e.Name() != exclude {
			stemNames[tree.Stem(e.Name())] = true
		}
	}
	return dirNames, stemNames, nil
}

// compareLevel reports the bidirectional diff between the terms of a store
// and the entries that should mirror them. where is the category folder
// for subcategory-level comparisons, empty at the top level.
func compareLevel(terms, dirNames, stemNames map[string]bool, storeName, where string) []Finding {
	var findings []Finding

	loc := storeName
	if where != "" {
		loc = filepath.Join(where, storeName)
	}

	for _, term := range sortedKeys(terms) {
		name := vocab.FolderName(term)
		if !dirNames[name] && !stemNames[name] {
			detail := fmt.Sprintf("term %q has no %s.tsv or folder %q", term, name, name)
			if where != "" {
				detail = fmt.Sprintf("subcategory %q has no %s.tsv under %q", term, name, where)
			}
			findings = append(findings, Finding{Tag: TagMissingEntry, Detail: detail})
		}
	}

	wanted := make(map[string]bool, len(terms))
	for term := range terms {
		wanted[vocab.FolderName(term)] = true
	}
	for _, name := range sortedKeys(stemNames) {
		if !wanted[name] {
			findings = append(findings, Finding{
				Tag:    TagExtraEntry,
				Detail: fmt.Sprintf("%s.tsv matches no term in %s", joinWhere(where, name), loc),
			})
		}
	}
	for _, name := range sortedKeys(dirNames) {
		if !wanted[name] {
			findings = append(findings, Finding{
				Tag:    TagExtraEntry,
				Detail: fmt.Sprintf("folder %q matches no term in %s", joinWhere(where, name), loc),
			})
		}
	}
	return findings
}

func joinWhere(where, name string) string {
	if where == "" {
		return name
	}
	return filepath.Join(where, name)
}
