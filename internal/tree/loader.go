package tree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/onvoc/onvoc/internal/tsv"
	"github.com/onvoc/onvoc/internal/vocab"
)

// LoadTree reads an ID-annotated copy into memory for rendering. The root
// Categories.tsv must exist; a category missing its Subcategories.tsv or a
// subcategory missing its leaf store simply loads as a childless node, so
// partially synchronized trees still render.
func LoadTree(vocabRoot string) (*vocab.Tree, error) {
	catRecs, err := tsv.ReadRecords(filepath.Join(vocabRoot, CategoriesFile), tsv.Options{})
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	t := &vocab.Tree{Categories: []*vocab.Node{}}
	for _, cat := range catRecs {
		catNode := &vocab.Node{ID: cat.ID, Label: cat.Term, Children: []*vocab.Node{}}
		catDir := filepath.Join(vocabRoot, vocab.FolderName(cat.Term))

		subRecs, err := readIfExists(filepath.Join(catDir, SubcategoriesFile))
		if err != nil {
			return nil, err
		}
		for _, sub := range subRecs {
			subNode := &vocab.Node{ID: sub.ID, Label: sub.Term, Children: []*vocab.Node{}}

			leafRecs, err := readIfExists(filepath.Join(catDir, vocab.FolderName(sub.Term)+".tsv"))
			if err != nil {
				return nil, err
			}
			for _, leaf := range leafRecs {
				subNode.Children = append(subNode.Children, &vocab.Node{
					ID:       leaf.ID,
					Label:    leaf.Term,
					Children: []*vocab.Node{},
				})
			}
			catNode.Children = append(catNode.Children, subNode)
		}
		t.Categories = append(t.Categories, catNode)
	}
	return t, nil
}

func readIfExists(path string) ([]vocab.Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return tsv.ReadRecords(path, tsv.Options{})
}
