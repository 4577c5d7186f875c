package export

import (
	"fmt"
	"strings"

	"github.com/onvoc/onvoc/internal/vocab"
)

// Namespaces bound in every SKOS export.
const (
	rdfNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	owlNS  = "http://www.w3.org/2002/07/owl#"
	skosNS = "http://www.w3.org/2004/02/skos/core#"
)

// object is a triple object: an IRI reference or a plain literal.
type object struct {
	value string
	isIRI bool
}

func iriObj(v string) object { return object{value: v, isIRI: true} }
func litObj(v string) object { return object{value: v} }

// triple is one RDF statement with absolute subject and predicate IRIs.
type triple struct {
	subject   string
	predicate string
	obj       object
}

// skosTriples flattens the tree into SKOS statements: the scheme node
// first, then one block per concept in tree order. Categories are top
// concepts of the scheme; broader/narrower link adjacent levels.
func skosTriples(t *vocab.Tree, s Scheme) []triple {
	scheme := s.URI()
	ts := []triple{
		{scheme, rdfNS + "type", iriObj(skosNS + "ConceptScheme")},
		{scheme, skosNS + "prefLabel", litObj(s.Title)},
	}
	if t == nil {
		return ts
	}
	for _, cat := range t.Categories {
		catURI := s.ConceptURI(cat.ID)
		ts = append(ts, conceptTriples(catURI, cat.Label, scheme)...)
		ts = append(ts,
			triple{catURI, skosNS + "topConceptOf", iriObj(scheme)},
			triple{scheme, skosNS + "hasTopConcept", iriObj(catURI)},
		)
		for _, sub := range cat.Children {
			subURI := s.ConceptURI(sub.ID)
			ts = append(ts, conceptTriples(subURI, sub.Label, scheme)...)
			ts = append(ts,
				triple{catURI, skosNS + "narrower", iriObj(subURI)},
				triple{subURI, skosNS + "broader", iriObj(catURI)},
			)
			for _, leaf := range sub.Children {
				leafURI := s.ConceptURI(leaf.ID)
				ts = append(ts, conceptTriples(leafURI, leaf.Label, scheme)...)
				ts = append(ts,
					triple{subURI, skosNS + "narrower", iriObj(leafURI)},
					triple{leafURI, skosNS + "broader", iriObj(subURI)},
				)
			}
		}
	}
	return ts
}

func conceptTriples(uri, label, scheme string) []triple {
	return []triple{
		{uri, rdfNS + "type", iriObj(skosNS + "Concept")},
		{uri, rdfNS + "type", iriObj(owlNS + "NamedIndividual")},
		{uri, skosNS + "prefLabel", litObj(label)},
		{uri, skosNS + "inScheme", iriObj(scheme)},
	}
}

type prefixDef struct {
	name string
	ns   string
}

// TurtleRenderer renders the SKOS graph as Turtle: a prefix header, then
// one predicate list per subject in first-appearance order.
type TurtleRenderer struct{}

func (r *TurtleRenderer) Render(t *vocab.Tree, s Scheme) (string, error) {
	prefixes := []prefixDef{
		{"rdf", rdfNS},
		{"owl", owlNS},
		{"skos", skosNS},
		{s.Label, s.Namespace},
	}

	var order []string
	bySubject := make(map[string][]triple)
	for _, tr := range skosTriples(t, s) {
		if _, ok := bySubject[tr.subject]; !ok {
			order = append(order, tr.subject)
		}
		bySubject[tr.subject] = append(bySubject[tr.subject], tr)
	}

	var sb strings.Builder
	for _, p := range prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p.name, p.ns)
	}
	for _, subj := range order {
		sb.WriteString("\n")
		group := bySubject[subj]
		for i, tr := range group {
			if i == 0 {
				sb.WriteString(qname(subj, prefixes) + " ")
			} else {
				sb.WriteString("    ")
			}
			pred := "a"
			if tr.predicate != rdfNS+"type" {
				pred = qname(tr.predicate, prefixes)
			}
			sb.WriteString(pred + " " + renderObject(tr.obj, prefixes))
			if i == len(group)-1 {
				sb.WriteString(" .\n")
			} else {
				sb.WriteString(" ;\n")
			}
		}
	}
	return sb.String(), nil
}

// NTriplesRenderer renders the same SKOS graph as N-Triples: one
// absolute-IRI statement per line.
type NTriplesRenderer struct{}

func (r *NTriplesRenderer) Render(t *vocab.Tree, s Scheme) (string, error) {
	var sb strings.Builder
	for _, tr := range skosTriples(t, s) {
		obj := "<" + tr.obj.value + ">"
		if !tr.obj.isIRI {
			obj = `"` + escapeLiteral(tr.obj.value) + `"`
		}
		fmt.Fprintf(&sb, "<%s> <%s> %s .\n", tr.subject, tr.predicate, obj)
	}
	return sb.String(), nil
}

func renderObject(o object, prefixes []prefixDef) string {
	if o.isIRI {
		return qname(o.value, prefixes)
	}
	return `"` + escapeLiteral(o.value) + `"`
}

// qname compacts an absolute IRI against the declared prefixes, falling
// back to an angle-bracketed IRI reference.
func qname(iri string, prefixes []prefixDef) string {
	for _, p := range prefixes {
		if local, ok := strings.CutPrefix(iri, p.ns); ok && safeLocal(local) {
			return p.name + ":" + local
		}
	}
	return "<" + iri + ">"
}

// safeLocal reports whether the local part can appear in a prefixed name
// without escaping.
func safeLocal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// escapeLiteral escapes the characters Turtle and N-Triples require quoted
// literals to encode.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}
