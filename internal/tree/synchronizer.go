package tree

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/onvoc/onvoc/internal/audit"
	"github.com/onvoc/onvoc/internal/tsv"
	"github.com/onvoc/onvoc/internal/vocab"
)

// Addition kinds, in the order the synchronizer discovers them.
const (
	AddedCategory    = "category"
	AddedSubcategory = "subcategory"
	AddedTerm        = "term"
)

// Addition records one row the synchronizer appended.
type Addition struct {
	Kind  string
	Term  string
	ID    vocab.ID
	Store string
}

// SyncResult summarizes one synchronizer run.
type SyncResult struct {
	Seed  int // highest identifier number found before allocating
	Added []Addition
}

// Count reports how many additions of the given kind the run made.
func (r *SyncResult) Count(kind string) int {
	n := 0
	for _, a := range r.Added {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Synchronizer reconciles a plain-text source tree into an existing
// ID-annotated copy. Categories, subcategories, and terms present in the
// source but absent from the copy are appended with fresh identifiers;
// rows are never rewritten, reordered, or deleted, so removals in the
// source leave the copy untouched. Re-running over unchanged trees writes
// nothing.
type Synchronizer struct {
	Original string
	Copy     string
	Prefix   vocab.Prefix
	Out      io.Writer      // progress lines, stdout in the CLI; nil discards
	Audit    *audit.Emitter // optional JSONL event stream; nil drops events
}

// Run scans the copy for its highest identifier, then walks the source and
// appends whatever is missing. Every run reseeds from disk, so interrupted
// or repeated runs never reuse an identifier.
func (s *Synchronizer) Run() (res *SyncResult, err error) {
	if err := CheckDir(s.Original); err != nil {
		return nil, err
	}
	if err := CheckDir(s.Copy); err != nil {
		return nil, err
	}

	seed, err := MaxAssignedID(s.Copy, s.Prefix)
	if err != nil {
		return nil, err
	}
	alloc := vocab.NewAllocator(s.Prefix, seed)
	res = &SyncResult{Seed: seed}

	_ = s.Audit.Emit(audit.KindRunStart, map[string]any{
		"original": s.Original,
		"copy":     s.Copy,
		"prefix":   string(s.Prefix),
		"seed":     seed,
	})
	defer func() {
		if err != nil {
			_ = s.Audit.Emit(audit.KindRunError, map[string]any{"error": err.Error()})
		}
	}()

	catPath := filepath.Join(s.Copy, CategoriesFile)
	if err := tsv.EnsureFile(catPath); err != nil {
		return nil, err
	}
	catIDs, err := tsv.TermIDMap(catPath, tsv.Options{})
	if err != nil {
		return nil, err
	}

	// Subcategory maps for categories the copy already tracks.
	subIDs := make(map[string]map[string]vocab.ID, len(catIDs))
	for catTerm := range catIDs {
		subPath := filepath.Join(s.Copy, vocab.FolderName(catTerm), SubcategoriesFile)
		m, err := tsv.TermIDMap(subPath, tsv.Options{})
		if err != nil {
			return nil, err
		}
		subIDs[catTerm] = m
	}

	cats, err := ListCategoryDirs(s.Original)
	if err != nil {
		return nil, err
	}

	for _, folder := range cats {
		srcCatDir := filepath.Join(s.Original, folder)
		copyCatDir := filepath.Join(s.Copy, folder)
		subPath := filepath.Join(copyCatDir, SubcategoriesFile)

		catTerm := vocab.DisplayTerm(folder)
		if _, ok := catIDs[catTerm]; !ok {
			id := alloc.Next()
			if err := tsv.Append(catPath, []vocab.Record{{Term: catTerm, ID: id}}); err != nil {
				return nil, err
			}
			catIDs[catTerm] = id
			subIDs[catTerm] = make(map[string]vocab.ID)
			s.note(res, Addition{Kind: AddedCategory, Term: catTerm, ID: id, Store: catPath})
		}
		// The category folder and its Subcategories.tsv may be missing even
		// for known categories when a prior run was interrupted.
		if err := tsv.EnsureFile(subPath); err != nil {
			return nil, err
		}
		if _, ok := subIDs[catTerm]; !ok {
			subIDs[catTerm] = make(map[string]vocab.ID)
		}

		files, err := ListTermFiles(srcCatDir)
		if err != nil {
			return nil, err
		}
		for _, fname := range files {
			stem := Stem(fname)
			subTerm := vocab.DisplayTerm(stem)
			leafPath := filepath.Join(copyCatDir, stem+".tsv")

			if _, ok := subIDs[catTerm][subTerm]; !ok {
				id := alloc.Next()
				if err := tsv.Append(subPath, []vocab.Record{{Term: subTerm, ID: id}}); err != nil {
					return nil, err
				}
				subIDs[catTerm][subTerm] = id
				s.note(res, Addition{Kind: AddedSubcategory, Term: subTerm, ID: id, Store: subPath})
			}
			if err := tsv.EnsureFile(leafPath); err != nil {
				return nil, err
			}

			terms, err := ReadTerms(filepath.Join(srcCatDir, fname))
			if err != nil {
				return nil, err
			}
			existing, err := tsv.TermIDMap(leafPath, tsv.Options{})
			if err != nil {
				return nil, err
			}

			var missing []vocab.Record
			for _, term := range terms {
				if _, ok := existing[term]; ok {
					continue
				}
				rec := vocab.Record{Term: term, ID: alloc.Next()}
				missing = append(missing, rec)
				s.note(res, Addition{Kind: AddedTerm, Term: term, ID: rec.ID, Store: leafPath})
			}
			if len(missing) > 0 {
				if err := tsv.Append(leafPath, missing); err != nil {
					return nil, err
				}
			}
		}
	}

	_ = s.Audit.Emit(audit.KindRunDone, map[string]any{
		"categories":    res.Count(AddedCategory),
		"subcategories": res.Count(AddedSubcategory),
		"terms":         res.Count(AddedTerm),
	})
	return res, nil
}

func (s *Synchronizer) note(res *SyncResult, a Addition) {
	res.Added = append(res.Added, a)
	out := s.Out
	if out == nil {
		out = io.Discard
	}
	fmt.Fprintf(out, "added %s %q (%s) to %s\n", a.Kind, a.Term, a.ID, a.Store)
	_ = s.Audit.Emit(audit.KindAdded, map[string]any{
		"kind":  a.Kind,
		"term":  a.Term,
		"id":    string(a.ID),
		"store": a.Store,
	})
}
