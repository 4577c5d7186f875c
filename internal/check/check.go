// Package check holds the read-only validators that audit a vocabulary
// tree: identifier bijection, structural completeness, source/copy drift,
// level names leaking into term lists, and external mapping files. Every
// validator walks, compares, and returns findings; none of them ever
// writes.
package check

import "fmt"

// Finding tags, one per diagnostic family.
const (
	TagTerm = "Term"
	TagID   = "ID"

	TagMissingCategoryFolder = "Missing Category Folder"
	TagExtraCategoryFolder   = "Extra Category Folder"
	TagMissingSubcategory    = "Missing Subcategory .tsv"
	TagExtraSubcategory      = "Extra Subcategory .tsv"
	TagMissingTSV            = "Missing .tsv File"
	TagMissingTerm           = "Missing Term"
	TagExtraTerm             = "Extra Term"

	TagMissingEntry = "Missing File or Folder"
	TagExtraEntry   = "Extra File or Folder"

	TagCategoryAsTerm    = "Category As Term"
	TagSubcategoryAsTerm = "Subcategory As Term"

	TagEmptyColumn  = "Empty Column"
	TagUnknownID    = "Unknown ID"
	TagTermMismatch = "Term Mismatch"
)

// Finding is one validator diagnostic.
type Finding struct {
	Tag    string
	Detail string
}

// String renders the finding in the conventional "[Tag] Detail" form.
func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s", f.Tag, f.Detail)
}
