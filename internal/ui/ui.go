// Package ui renders human-readable command output for the onvoc CLI.
// Status lines go to stderr so stdout stays free for exported data.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/onvoc/onvoc/internal/annotate"
	"github.com/onvoc/onvoc/internal/check"
	"github.com/onvoc/onvoc/internal/tree"
)

// Printer writes styled status output. Styling is dropped when NoColor is
// set, so piped output stays clean.
type Printer struct {
	Out     io.Writer
	NoColor bool
}

// New returns a Printer on stderr, colored when stderr is a terminal.
func New() *Printer {
	return &Printer{Out: os.Stderr, NoColor: !isTerminal(os.Stderr)}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTerminal reports whether the writer is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func (p *Printer) render(st lipgloss.Style, s string) string {
	if p.NoColor {
		return s
	}
	return st.Render(s)
}

// Error prints a highlighted error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.render(styleFail, "error:"), msg)
}

// Warn prints a highlighted warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.render(styleWarning, "warning:"), msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Out, p.render(styleMuted, msg))
}

// CheckResult prints one validator's findings, or a clean line when there
// are none.
func (p *Printer) CheckResult(name string, findings []check.Finding) {
	if len(findings) == 0 {
		fmt.Fprintf(p.Out, "%s %s — no findings\n", p.render(stylePass, iconPass), name)
		return
	}
	fmt.Fprintf(p.Out, "%s %s — %d finding(s):\n", p.render(styleFail, iconFail), name, len(findings))
	for _, f := range findings {
		fmt.Fprintf(p.Out, "  %s\n", f.String())
	}
}

// InitSummary prints the outcome of a tree initialization.
func (p *Printer) InitSummary(res *tree.InitResult) {
	fmt.Fprintf(p.Out, "%s initialized — categories: %d, subcategories: %d, terms: %d, stores: %d\n",
		p.render(stylePass, iconPass), res.Categories, res.Subcategories, res.Terms, res.Stores)
}

// SyncSummary prints the outcome of a synchronizer run.
func (p *Printer) SyncSummary(res *tree.SyncResult) {
	if len(res.Added) == 0 {
		fmt.Fprintf(p.Out, "%s vocabulary is up to date\n", p.render(stylePass, iconPass))
		return
	}
	fmt.Fprintf(p.Out, "%s synchronized — categories: %d, subcategories: %d, terms: %d\n",
		p.render(stylePass, iconPass),
		res.Count(tree.AddedCategory), res.Count(tree.AddedSubcategory), res.Count(tree.AddedTerm))
}

// AnnotateSummary prints the outcome of an annotation run.
func (p *Printer) AnnotateSummary(res *annotate.Result) {
	fmt.Fprintf(p.Out, "%s annotated %d file(s) — terms: %d, known ids: %d\n",
		p.render(stylePass, iconPass), res.Files, res.Terms, res.Known)
}

// ExportWritten reports where an export landed.
func (p *Printer) ExportWritten(path string) {
	fmt.Fprintf(p.Out, "%s wrote %s\n", p.render(stylePass, iconPass), path)
}
