package tree

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/onvoc/onvoc/internal/vocab"
)

func writeSource(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestInitializerRoundTrip(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, map[string]string{
		"Brain_Structures/Cortex.txt": "frontal lobe\noccipital lobe\n",
	})

	in := &Initializer{Source: src, Output: out, Alloc: vocab.NewAllocator("TEST", 0)}
	res, err := in.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := readFile(t, filepath.Join(out, "Categories.tsv")); got !=
		"term\tvocabulary_id\tcomment\nBrain Structures\tTEST:0000001\t\n" {
		t.Errorf("Categories.tsv:\n%s", got)
	}
	if got := readFile(t, filepath.Join(out, "Brain_Structures", "Subcategories.tsv")); got !=
		"term\tvocabulary_id\tcomment\nCortex\tTEST:0000002\t\n" {
		t.Errorf("Subcategories.tsv:\n%s", got)
	}
	if got := readFile(t, filepath.Join(out, "Brain_Structures", "Cortex.tsv")); got !=
		"term\tvocabulary_id\tcomment\nfrontal lobe\tTEST:0000003\t\noccipital lobe\tTEST:0000004\t\n" {
		t.Errorf("Cortex.tsv:\n%s", got)
	}

	if res.Categories != 1 || res.Subcategories != 1 || res.Terms != 2 || res.Stores != 3 {
		t.Errorf("result = %+v", res)
	}
}

func TestInitializerSharedSpellingSharesID(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, map[string]string{
		"A_Cat/One.txt": "alpha\nshared\n",
		"A_Cat/Two.txt": "shared\nbeta\n",
	})

	in := &Initializer{Source: src, Output: out, Alloc: vocab.NewAllocator("TEST", 0)}
	if _, err := in.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// A Cat=1, One=2, Two=3, alpha=4, shared=5, beta=6.
	if got := readFile(t, filepath.Join(out, "A_Cat", "One.tsv")); got !=
		"term\tvocabulary_id\tcomment\nalpha\tTEST:0000004\t\nshared\tTEST:0000005\t\n" {
		t.Errorf("One.tsv:\n%s", got)
	}
	if got := readFile(t, filepath.Join(out, "A_Cat", "Two.tsv")); got !=
		"term\tvocabulary_id\tcomment\nshared\tTEST:0000005\t\nbeta\tTEST:0000006\t\n" {
		t.Errorf("Two.tsv:\n%s", got)
	}
}

func TestInitializerDuplicateLinesShareID(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, map[string]string{
		"Cat/List.txt": "dup\ndup\n",
	})

	in := &Initializer{Source: src, Output: out, Alloc: vocab.NewAllocator("TEST", 0)}
	if _, err := in.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Duplicate source lines keep their duplicate rows, sharing one identifier.
	want := "term\tvocabulary_id\tcomment\ndup\tTEST:0000003\t\ndup\tTEST:0000003\t\n"
	if got := readFile(t, filepath.Join(out, "Cat", "List.tsv")); got != want {
		t.Errorf("List.tsv:\n%s\nwant:\n%s", got, want)
	}
}

func TestInitializerMissingSource(t *testing.T) {
	t.Parallel()

	in := &Initializer{
		Source: filepath.Join(t.TempDir(), "nope"),
		Output: t.TempDir(),
		Alloc:  vocab.NewAllocator("TEST", 0),
	}
	if _, err := in.Run(); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("error = %v, want ErrNotDirectory", err)
	}
}

func TestInitializerEmptyCategoryWritesHeaderOnly(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "Empty_Cat"), 0o755); err != nil {
		t.Fatal(err)
	}

	in := &Initializer{Source: src, Output: out, Alloc: vocab.NewAllocator("TEST", 0)}
	if _, err := in.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := readFile(t, filepath.Join(out, "Empty_Cat", "Subcategories.tsv")); got !=
		"term\tvocabulary_id\tcomment\n" {
		t.Errorf("Subcategories.tsv:\n%s", got)
	}
}
