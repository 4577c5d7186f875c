package check

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/onvoc/onvoc/internal/tree"
	"github.com/onvoc/onvoc/internal/tsv"
)

// IDs walks every .tsv under root and verifies the one-to-one
// correspondence between terms and identifiers: a term bound to more than
// one identifier yields a Term finding, an identifier bound to more than
// one term yields an ID finding. Rows missing either value are ignored.
func IDs(root string, opts tsv.Options) ([]Finding, error) {
	if err := tree.CheckDir(root); err != nil {
		return nil, err
	}

	termToIDs := make(map[string]map[string]bool)
	idToTerms := make(map[string]map[string]bool)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".tsv") {
			return nil
		}
		recs, err := tsv.ReadRecords(path, opts)
		if err != nil {
			return err
		}
		for _, r := range recs {
			if r.Term == "" || r.ID == "" {
				continue
			}
			id := string(r.ID)
			if termToIDs[r.Term] == nil {
				termToIDs[r.Term] = make(map[string]bool)
			}
			termToIDs[r.Term][id] = true
			if idToTerms[id] == nil {
				idToTerms[id] = make(map[string]bool)
			}
			idToTerms[id][r.Term] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("checking identifiers under %s: %w", root, err)
	}

	var findings []Finding
	for _, term := range sortedKeys(termToIDs) {
		if ids := termToIDs[term]; len(ids) > 1 {
			findings = append(findings, Finding{
				Tag:    TagTerm,
				Detail: fmt.Sprintf("%q has multiple IDs: %s", term, strings.Join(sortedKeys(ids), ", ")),
			})
		}
	}
	for _, id := range sortedKeys(idToTerms) {
		if terms := idToTerms[id]; len(terms) > 1 {
			findings = append(findings, Finding{
				Tag:    TagID,
				Detail: fmt.Sprintf("%q is assigned to multiple terms: %s", id, strings.Join(sortedKeys(terms), ", ")),
			})
		}
	}
	return findings, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
