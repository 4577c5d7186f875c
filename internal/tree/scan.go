package tree

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/onvoc/onvoc/internal/tsv"
	"github.com/onvoc/onvoc/internal/vocab"
)

// MaxAssignedID walks every .tsv under root and returns the highest
// numeric identifier minted under prefix, or 0 when none exist yet.
// Identifiers under other prefixes and malformed cells are ignored, so the
// scan is safe on trees that mix vocabularies or carry damage; the
// validators report such problems, the scan just avoids reusing numbers.
func MaxAssignedID(root string, prefix vocab.Prefix) (int, error) {
	maxNum := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".tsv") {
			return nil
		}
		tbl, err := tsv.ReadTable(path)
		if err != nil {
			return err
		}
		if len(tbl.Header) == 0 {
			return nil
		}
		idIdx := tbl.Col(tsv.ColID)
		if idIdx < 0 {
			idIdx = 1
		}
		for i := range tbl.Rows {
			id := vocab.ID(tbl.Cell(i, idIdx))
			if n, ok := id.Number(prefix); ok && n > maxNum {
				maxNum = n
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scanning %s for identifiers: %w", root, err)
	}
	return maxNum, nil
}
