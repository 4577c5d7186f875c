package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/onvoc/onvoc/internal/vocab"
)

// YAMLRenderer renders the same node shape as the JSON catalog in YAML.
type YAMLRenderer struct{}

func (r *YAMLRenderer) Render(t *vocab.Tree, _ Scheme) (string, error) {
	data, err := yaml.Marshal(rootNodes(t))
	if err != nil {
		return "", fmt.Errorf("marshaling YAML catalog: %w", err)
	}
	return string(data), nil
}
