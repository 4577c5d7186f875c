package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/onvoc/onvoc/internal/vocab"
)

// TreeRenderer produces an indented listing of a vocabulary hierarchy.
// Categories sit flush left, lower levels hang off box-drawing connectors,
// identifiers are dimmed.
type TreeRenderer struct {
	// NoColor disables ANSI styling.
	NoColor bool
}

// Render returns the listing plus a per-level count line.
func (r *TreeRenderer) Render(t *vocab.Tree) string {
	if t == nil || t.Len() == 0 {
		return r.colorize(styleMuted, "(empty vocabulary)") + "\n"
	}

	var sb strings.Builder
	for _, cat := range t.Categories {
		sb.WriteString(r.nodeLabel(cat, 0))
		sb.WriteByte('\n')
		r.renderChildren(&sb, cat.Children, "", 1)
	}

	sb.WriteByte('\n')
	sb.WriteString(r.colorize(styleMuted, r.countLine(t)))
	sb.WriteByte('\n')
	return sb.String()
}

func (r *TreeRenderer) renderChildren(sb *strings.Builder, children []*vocab.Node, prefix string, depth int) {
	for i, c := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(r.nodeLabel(c, depth))
		sb.WriteByte('\n')
		r.renderChildren(sb, c.Children, childPrefix, depth+1)
	}
}

// nodeLabel renders one node's display term, styled by level, with its
// identifier appended dimmed.
func (r *TreeRenderer) nodeLabel(n *vocab.Node, depth int) string {
	var label string
	switch depth {
	case 0:
		label = r.colorize(styleCategory, n.Label)
	case 1:
		label = r.colorize(styleSubcategory, n.Label)
	default:
		label = n.Label
	}
	if n.ID != "" {
		label += "  " + r.colorize(styleID, string(n.ID))
	}
	return label
}

func (r *TreeRenderer) countLine(t *vocab.Tree) string {
	var counts [3]int
	t.Walk(func(depth int, _ *vocab.Node) {
		if depth > 2 {
			depth = 2
		}
		counts[depth]++
	})
	return fmt.Sprintf("categories: %d, subcategories: %d, terms: %d",
		counts[0], counts[1], counts[2])
}

func (r *TreeRenderer) colorize(st lipgloss.Style, s string) string {
	if r.NoColor {
		return s
	}
	return st.Render(s)
}
