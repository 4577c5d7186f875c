// Package tree builds and reconciles the two on-disk forms of a vocabulary:
// the plain-text source tree (category folders holding .txt term lists) and
// its ID-annotated copy (Categories.tsv, per-category Subcategories.tsv, and
// leaf term stores). The Initializer creates a copy from scratch; the
// Synchronizer appends whatever an existing copy is missing. Neither ever
// touches the source tree, and the copy only ever grows.
package tree

import (
	"errors"
	"fmt"
	"os"
)

// Store names fixed by the copy layout.
const (
	CategoriesFile    = "Categories.tsv"
	SubcategoriesFile = "Subcategories.tsv"
)

// ErrNotDirectory indicates a root path that is missing or not a directory.
var ErrNotDirectory = errors.New("path is missing or not a directory")

// CheckDir verifies that path names an existing directory.
func CheckDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrNotDirectory)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}
	return nil
}
