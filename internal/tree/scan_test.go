package tree

import (
	"path/filepath"
	"testing"
)

func TestMaxAssignedID(t *testing.T) {
	t.Parallel()

	t.Run("empty tree", func(t *testing.T) {
		t.Parallel()
		got, err := MaxAssignedID(t.TempDir(), "TEST")
		if err != nil {
			t.Fatalf("MaxAssignedID: %v", err)
		}
		if got != 0 {
			t.Errorf("got %d, want 0", got)
		}
	})

	t.Run("nested stores", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, map[string]string{
			"Categories.tsv":  "term\tvocabulary_id\tcomment\nA Cat\tTEST:0000001\t\n",
			"A_Cat/One.tsv":   "term\tvocabulary_id\tcomment\nalpha\tTEST:0000009\t\n",
			"A_Cat/notes.txt": "TEST:9999999\n",
			"B_Cat/old.tsvx":  "term\tvocabulary_id\tcomment\nz\tTEST:0000050\t\n",
		})
		got, err := MaxAssignedID(root, "TEST")
		if err != nil {
			t.Fatalf("MaxAssignedID: %v", err)
		}
		if got != 9 {
			t.Errorf("got %d, want 9", got)
		}
	})

	t.Run("foreign and malformed identifiers ignored", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, map[string]string{
			"Categories.tsv": "term\tvocabulary_id\tcomment\n" +
				"a\tMESH:0000100\t\n" +
				"b\tTEST:123\t\n" +
				"c\tTEST:00000012\t\n" +
				"d\tTEST:0000003\t\n",
		})
		got, err := MaxAssignedID(root, "TEST")
		if err != nil {
			t.Fatalf("MaxAssignedID: %v", err)
		}
		if got != 3 {
			t.Errorf("got %d, want 3", got)
		}
	})

	t.Run("identifier column found by position", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, map[string]string{
			"odd.tsv": "label\tidentifier\nCortex\tTEST:0000021\n",
		})
		got, err := MaxAssignedID(root, "TEST")
		if err != nil {
			t.Fatalf("MaxAssignedID: %v", err)
		}
		if got != 21 {
			t.Errorf("got %d, want 21", got)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()
		if _, err := MaxAssignedID(filepath.Join(t.TempDir(), "nope"), "TEST"); err == nil {
			t.Error("scan of missing root succeeded")
		}
	})
}
