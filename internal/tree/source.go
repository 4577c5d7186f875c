package tree

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ListCategoryDirs returns the names of the immediate subdirectories of
// root in lexical order. Plain files at the top level are ignored.
func ListCategoryDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// ListTermFiles returns the names of the .txt files directly inside dir in
// lexical order. The extension match is case-insensitive and
// subdirectories are ignored.
func ListTermFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing term files: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// ReadTerms returns the non-blank lines of the term list at path, trimmed
// of surrounding whitespace, in file order with duplicates preserved.
func ReadTerms(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening term list: %w", err)
	}
	defer f.Close()

	var terms []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if term := strings.TrimSpace(sc.Text()); term != "" {
			terms = append(terms, term)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return terms, nil
}

// Stem strips the extension from a term file name: "Cortex.txt" yields
// "Cortex".
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
