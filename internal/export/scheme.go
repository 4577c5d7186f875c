package export

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/onvoc/onvoc/internal/vocab"
)

// SchemeFile is the conventional manifest name inside a vocabulary root.
const SchemeFile = "vocabulary.toml"

// Scheme describes the concept scheme a vocabulary is published under.
type Scheme struct {
	Title     string `toml:"title"`
	Namespace string `toml:"namespace"`
	Label     string `toml:"label"`
}

// DefaultScheme returns the scheme used when a vocabulary has no manifest.
func DefaultScheme() Scheme {
	return Scheme{
		Title:     "Alpha Controlled Vocabulary",
		Namespace: "http://www.onvoc/test/alpha#",
		Label:     "alpha",
	}
}

// manifest is the on-disk shape of vocabulary.toml.
type manifest struct {
	Scheme Scheme `toml:"scheme"`
}

// LoadScheme reads the scheme manifest at path. A missing file yields the
// default scheme, and fields the manifest leaves empty keep their default
// values, so a manifest may override just the namespace.
func LoadScheme(path string) (Scheme, error) {
	s := DefaultScheme()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return Scheme{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Scheme{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.Scheme.Title != "" {
		s.Title = m.Scheme.Title
	}
	if m.Scheme.Namespace != "" {
		s.Namespace = m.Scheme.Namespace
	}
	if m.Scheme.Label != "" {
		s.Label = m.Scheme.Label
	}
	return s, nil
}

// URI is the IRI of the concept scheme node itself.
func (s Scheme) URI() string {
	return s.Namespace + "scheme"
}

// ConceptURI mints the IRI for one identifier: the namespace followed by
// the identifier with its colon flattened to an underscore.
func (s Scheme) ConceptURI(id vocab.ID) string {
	return s.Namespace + strings.ReplaceAll(string(id), ":", "_")
}
