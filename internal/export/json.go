package export

import (
	"encoding/json"
	"fmt"

	"github.com/onvoc/onvoc/internal/vocab"
)

// JSONRenderer renders the tree as a JSON array of category nodes, each
// carrying id, label, and nested children.
type JSONRenderer struct{}

// Render produces the two-space indented JSON document. The scheme is not
// part of the catalog shape.
func (r *JSONRenderer) Render(t *vocab.Tree, _ Scheme) (string, error) {
	data, err := json.MarshalIndent(rootNodes(t), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON catalog: %w", err)
	}
	return string(data) + "\n", nil
}

// rootNodes keeps an empty tree rendering as an empty array, not null.
func rootNodes(t *vocab.Tree) []*vocab.Node {
	if t == nil || t.Categories == nil {
		return []*vocab.Node{}
	}
	return t.Categories
}
