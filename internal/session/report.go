package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/zpass/internal/strength"
)

// SpaceWarning is printed when the password contains whitespace.
const SpaceWarning = "WARNING: Many systems do not allow spaces in passwords."

// Tips is the static advice printed after every report.
var Tips = []string{
	"Use at least 12 characters",
	"Include a mix of uppercase letters, lowercase letters, numbers, and special characters",
	"Avoid common words, phrases, or patterns (e.g., 'password', '1234')",
	"Avoid dictionary words (e.g., 'apple', 'house')",
	"Avoid personal information (e.g., name, birthdate)",
	"Use unique passwords for each account",
	"Consider using a password manager for secure storage",
	"Update passwords regularly but not too frequently",
	"Enable two-factor authentication where possible",
	"Avoid spaces in passwords",
}

var (
	colorBad  = lipgloss.Color("1")
	colorWarn = lipgloss.Color("3")
	colorGood = lipgloss.Color("2")
)

// Printer renders reports with styles bound to one renderer, so output to
// a terminal is coloured and output to a pipe is plain.
type Printer struct {
	heading lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
	ratings map[strength.Rating]lipgloss.Style
}

// NewPrinter creates a printer for the given renderer.
func NewPrinter(r *lipgloss.Renderer) Printer {
	bad := r.NewStyle().Foreground(colorBad).Bold(true)
	mid := r.NewStyle().Foreground(colorWarn).Bold(true)
	good := r.NewStyle().Foreground(colorGood).Bold(true)

	return Printer{
		heading: r.NewStyle().Bold(true),
		muted:   r.NewStyle().Faint(true),
		warn:    r.NewStyle().Foreground(colorWarn),
		ratings: map[strength.Rating]lipgloss.Style{
			strength.VeryWeak:  bad,
			strength.Weak:      bad,
			strength.Moderate:  mid,
			strength.Strong:    good,
			strength.Excellent: good,
		},
	}
}

// Render formats a full report followed by the general tips.
func (p Printer) Render(rep Report) string {
	res := rep.Result
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", p.heading.Render("Password Analysis:"))
	fmt.Fprintf(&b, "Strength: %s (Score: %d/100)\n", p.ratings[res.Rating].Render(res.Rating.String()), res.Score)
	fmt.Fprintf(&b, "Entropy: %.2f bits (max for length: %.1f bits)\n", res.Entropy, res.MaxEntropy)
	fmt.Fprintln(&b, p.muted.Render(fmt.Sprintf("Estimate: %d/4", res.Estimate)))
	if res.Has(strength.IssueContainsSpace) {
		fmt.Fprintln(&b, p.warn.Render(SpaceWarning))
	}

	p.list(&b, "Issues:", res.Issues)
	p.list(&b, "Recommendations:", res.Recommendations)

	if rep.Suggestion != "" {
		fmt.Fprintf(&b, "\n%s %s\n", p.heading.Render("Suggested Excellent Password:"), rep.Suggestion)
	}

	p.list(&b, "General Password Security Tips:", Tips)
	return b.String()
}

func (p Printer) list(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "\n%s\n", p.heading.Render(title))
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}
