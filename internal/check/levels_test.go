package check

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/onvoc/onvoc/internal/tree"
)

func TestLevelsCleanTree(t *testing.T) {
	t.Parallel()

	// Subcategories.tsv lists subcategory names by definition; the scan
	// must not flag the metadata stores themselves.
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Categories.tsv":                     storeHeader + "Brain Structures\tTEST:0000001\t\n",
		"Brain_Structures/Subcategories.tsv": storeHeader + "Cortex\tTEST:0000002\t\n",
		"Brain_Structures/Cortex.tsv":        storeHeader + "Hippocampus\tTEST:0000003\t\n",
	})

	findings, err := Levels(root)
	if err != nil {
		t.Fatalf("Levels: %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("findings = %v", findings)
	}
}

func TestLevelsCategoryNameAsTerm(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Categories.tsv":                     storeHeader + "Brain Structures\tTEST:0000001\t\n",
		"Brain_Structures/Subcategories.tsv": storeHeader + "Cortex\tTEST:0000002\t\n",
		"Brain_Structures/Cortex.tsv":        storeHeader + "Hippocampus\tTEST:0000003\t\nBrain Structures\tTEST:0000009\t\n",
	})

	findings, err := Levels(root)
	if err != nil {
		t.Fatalf("Levels: %v", err)
	}
	leaf := filepath.Join(root, "Brain_Structures", "Cortex.tsv")
	want := []Finding{{
		Tag:    TagCategoryAsTerm,
		Detail: fmt.Sprintf(`"Brain Structures" occurs in %s (row 3)`, leaf),
	}}
	if diff := cmp.Diff(want, findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestLevelsSubcategoryNameInTextFile(t *testing.T) {
	t.Parallel()

	// The plain-text source form is scanned too, with line positions.
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Brain_Structures/Cortex.txt": "Hippocampus\nCortex\n",
	})

	findings, err := Levels(root)
	if err != nil {
		t.Fatalf("Levels: %v", err)
	}
	src := filepath.Join(root, "Brain_Structures", "Cortex.txt")
	want := []Finding{{
		Tag:    TagSubcategoryAsTerm,
		Detail: fmt.Sprintf(`"Cortex" occurs in %s (line 2)`, src),
	}}
	if diff := cmp.Diff(want, findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestLevelsNameAtBothLevels(t *testing.T) {
	t.Parallel()

	// "Alpha" names a category and also a subcategory file in a later
	// directory; the later entry decides the reported kind.
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Alpha/Keep.txt": "Alpha\n",
		"Zeta/Alpha.txt": "ok\n",
	})

	findings, err := Levels(root)
	if err != nil {
		t.Fatalf("Levels: %v", err)
	}
	src := filepath.Join(root, "Alpha", "Keep.txt")
	want := []Finding{{
		Tag:    TagSubcategoryAsTerm,
		Detail: fmt.Sprintf(`"Alpha" occurs in %s (line 1)`, src),
	}}
	if diff := cmp.Diff(want, findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestLevelsMissingRoot(t *testing.T) {
	t.Parallel()

	if _, err := Levels(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, tree.ErrNotDirectory) {
		t.Errorf("error = %v, want ErrNotDirectory", err)
	}
}
