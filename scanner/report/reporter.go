package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"gitlab.com/a11yker/a11yk"
)

const (
	reportTitle = "Basic Accessibility Report"
	noIssues    = "No accessibility issues found."
	disclaimer  = "Note: This is a heuristic, partial check and does NOT guarantee WCAG conformance."
	fullAudit   = "For a full audit, use professional tools and manual testing."
)

// Headers of the table, always in this order
var Headers = []string{"Category", "Issue", "Recommendation", "WCAG Reference"}

// Reporter renders findings as an aligned ASCII table
type Reporter struct {
	minWidth int
	width    *runewidth.Condition
}

var _ a11yk.Reporter = (*Reporter)(nil)

// New reporter, columns are never narrower than rules.MinColumnWidth
func New(rules *a11yk.Rules) *Reporter {
	minWidth := 0
	if rules != nil {
		minWidth = rules.MinColumnWidth
	}
	// ambiguous width runes are always narrow, whatever the locale says
	return &Reporter{minWidth: minWidth, width: &runewidth.Condition{EastAsianWidth: false}}
}

// Render the findings in the order given. The same findings always render to
// the same bytes; nothing time or environment dependent goes in here.
func (r *Reporter) Render(findings []*a11yk.Finding) string {
	var sb strings.Builder
	sb.WriteString(reportTitle + "\n")
	sb.WriteString(strings.Repeat("=", len(reportTitle)) + "\n")
	sb.WriteString(disclaimer + "\n")
	sb.WriteString(fullAudit + "\n\n")

	if len(findings) == 0 {
		sb.WriteString(noIssues + "\n")
		return sb.String()
	}

	rows := make([][]string, len(findings))
	for i, f := range findings {
		rows[i] = Row(f)
	}
	widths := r.columnWidths(rows)

	sb.WriteString(line(widths, "=") + "\n")
	sb.WriteString(r.formatRow(widths, Headers) + "\n")
	sb.WriteString(line(widths, "=") + "\n")
	for _, row := range rows {
		sb.WriteString(r.formatRow(widths, row) + "\n")
		sb.WriteString(line(widths, "-") + "\n")
	}
	return sb.String()
}

// Row cells for a finding. The locator is appended to the issue so several
// findings of the same kind can be told apart.
func Row(f *a11yk.Finding) []string {
	issue := f.Issue()
	if f.Locator() != "" {
		issue = fmt.Sprintf("%s (%s)", issue, f.Locator())
	}
	if f.Confidence() == a11yk.LowConfidence {
		issue += " [low confidence]"
	}
	return []string{
		cell(f.Category().String()),
		cell(issue),
		cell(f.Recommendation()),
		cell(f.WCAG()),
	}
}

func (r *Reporter) columnWidths(rows [][]string) []int {
	widths := make([]int, len(Headers))
	for i, h := range Headers {
		widths[i] = r.width.StringWidth(h)
		if widths[i] < r.minWidth {
			widths[i] = r.minWidth
		}
	}
	for _, row := range rows {
		for i, c := range row {
			if w := r.width.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (r *Reporter) formatRow(widths []int, cells []string) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, w := range widths {
		sb.WriteString(" ")
		sb.WriteString(r.width.FillRight(cells[i], w))
		sb.WriteString(" |")
	}
	return sb.String()
}

func line(widths []int, char string) string {
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	return strings.Repeat(char, total)
}

// cell keeps every row on a single line
func cell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Summary one line per category with findings, in check order
func Summary(findings []*a11yk.Finding) string {
	if len(findings) == 0 {
		return noIssues
	}
	counts := a11yk.CountByCategory(findings)
	parts := make([]string, 0, len(a11yk.Categories))
	for _, c := range a11yk.Categories {
		if counts[c] == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d", c, counts[c]))
	}
	return fmt.Sprintf("%d finding(s) - %s", len(findings), strings.Join(parts, ", "))
}
