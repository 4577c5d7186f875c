package check

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/tsv"
)

func TestIDsCleanTree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Categories.tsv":                     storeHeader + "Brain Structures\tTEST:0000001\t\n",
		"Brain_Structures/Subcategories.tsv": storeHeader + "Cortex\tTEST:0000002\t\n",
		"Brain_Structures/Cortex.tsv":        storeHeader + "Hippocampus\tTEST:0000003\t\nAmygdala\tTEST:0000004\t\n",
	})

	findings, err := IDs(root, tsv.Options{})
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("findings = %v", findings)
	}
}

func TestIDsDetectsSharedID(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Cat/A.tsv": storeHeader + "Cortex\tTEST:0000005\t\n",
		"Cat/B.tsv": storeHeader + "Cerebellum\tTEST:0000005\t\n",
	})

	findings, err := IDs(root, tsv.Options{})
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	want := []Finding{{
		Tag:    TagID,
		Detail: `"TEST:0000005" is assigned to multiple terms: Cerebellum, Cortex`,
	}}
	if diff := cmp.Diff(want, findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestIDsDetectsRetaggedTerm(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Cat/A.tsv": storeHeader + "Cortex\tTEST:0000002\t\n",
		"Cat/B.tsv": storeHeader + "Cortex\tTEST:0000009\t\n",
	})

	findings, err := IDs(root, tsv.Options{})
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	want := []Finding{{
		Tag:    TagTerm,
		Detail: `"Cortex" has multiple IDs: TEST:0000002, TEST:0000009`,
	}}
	if diff := cmp.Diff(want, findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestIDsConsistentDuplicatesPass(t *testing.T) {
	t.Parallel()

	// The same assignment may appear in any number of stores.
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Cat/A.tsv": storeHeader + "shared\tTEST:0000005\t\n",
		"Cat/B.tsv": storeHeader + "shared\tTEST:0000005\t\n",
	})

	findings, err := IDs(root, tsv.Options{})
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("findings = %v", findings)
	}
}

func TestIDsStrictMode(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Cat/A.tsv": storeHeader + "lonely\n",
	})

	if _, err := IDs(root, tsv.Options{Strict: true}); !errors.Is(err, tsv.ErrShortRow) {
		t.Errorf("strict error = %v, want ErrShortRow", err)
	}

	findings, err := IDs(root, tsv.Options{})
	if err != nil {
		t.Fatalf("lenient IDs: %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("lenient findings = %v", findings)
	}
}

func TestIDsMissingRoot(t *testing.T) {
	t.Parallel()

	if _, err := IDs(filepath.Join(t.TempDir(), "nope"), tsv.Options{}); !errors.Is(err, tree.ErrNotDirectory) {
		t.Errorf("error = %v, want ErrNotDirectory", err)
	}
}
