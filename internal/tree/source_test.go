package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListCategoryDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, d := range []string{"Zeta", "Alpha"} {
		if err := os.Mkdir(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ListCategoryDirs(root)
	if err != nil {
		t.Fatalf("ListCategoryDirs: %v", err)
	}
	if diff := cmp.Diff([]string{"Alpha", "Zeta"}, got); diff != "" {
		t.Errorf("dirs mismatch (-want +got):\n%s", diff)
	}
}

func TestListTermFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, map[string]string{
		"Cortex.txt":   "",
		"UPPER.TXT":    "",
		"notes.tsv":    "",
		"nested/x.txt": "",
	})

	got, err := ListTermFiles(dir)
	if err != nil {
		t.Fatalf("ListTermFiles: %v", err)
	}
	if diff := cmp.Diff([]string{"Cortex.txt", "UPPER.TXT"}, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTerms(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "terms.txt")
	if err := os.WriteFile(path, []byte("  frontal lobe \n\n\toccipital lobe\nfrontal lobe\n   \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTerms(path)
	if err != nil {
		t.Fatalf("ReadTerms: %v", err)
	}
	want := []string{"frontal lobe", "occipital lobe", "frontal lobe"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Cortex.txt", "Cortex"},
		{"White_Matter.TXT", "White_Matter"},
		{"noext", "noext"},
		{"two.dots.txt", "two.dots"},
	}
	for _, tt := range tests {
		if got := Stem(tt.in); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
