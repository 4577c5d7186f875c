// Package export renders a loaded vocabulary tree into interchange
// formats: plain JSON and YAML catalogs, and SKOS as Turtle or N-Triples.
package export

import (
	"fmt"

	"github.com/onvoc/onvoc/internal/vocab"
)

// Renderer produces one serialization of a vocabulary tree.
type Renderer interface {
	// Render returns the full document for the tree under the scheme.
	Render(t *vocab.Tree, s Scheme) (string, error)
}

// FormatByName returns the Renderer implementation for the given name.
// Supported names: json, yaml, turtle, ntriples.
func FormatByName(name string) (Renderer, error) {
	switch name {
	case "json":
		return &JSONRenderer{}, nil
	case "yaml":
		return &YAMLRenderer{}, nil
	case "turtle":
		return &TurtleRenderer{}, nil
	case "ntriples":
		return &NTriplesRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %q", name)
	}
}

// FormatNames returns the list of all supported export format names.
func FormatNames() []string {
	return []string{"json", "yaml", "turtle", "ntriples"}
}
