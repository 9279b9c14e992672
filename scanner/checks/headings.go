package checks

import (
	"fmt"

	"gitlab.com/a11yker/a11yk"
)

// Headings checks the h1 count then looks for skipped levels (h2 -> h4).
// Going back up (h3 -> h1) is fine.
func Headings(rules *a11yk.Rules, doc a11yk.Document) []*a11yk.Finding {
	findings := make([]*a11yk.Finding, 0)
	headings := doc.Headings()

	h1s := 0
	for _, h := range headings {
		if h.Level == 1 {
			h1s++
		}
	}
	switch {
	case h1s == 0:
		findings = append(findings, a11yk.NewFinding(HeadingsID, a11yk.CatHeadings,
			"missing h1", "add exactly one top-level <h1> heading that describes the page", rules.WCAG.Headings))
	case h1s > 1:
		f := a11yk.NewFinding(HeadingsID, a11yk.CatHeadings,
			"multiple h1 elements", "use a single <h1> for the page title and h2-h6 for subsections", rules.WCAG.Headings)
		findings = append(findings, f.WithLocator(fmt.Sprintf("%d h1 elements", h1s)))
	}

	for i := 1; i < len(headings); i++ {
		prev, cur := headings[i-1], headings[i]
		if cur.Level <= prev.Level+1 {
			continue
		}
		f := a11yk.NewFinding(HeadingsID, a11yk.CatHeadings, "heading level skipped",
			"nest headings in order without skipping levels", rules.WCAG.Headings)
		findings = append(findings, f.WithLocator(fmt.Sprintf("%s after h%d", cur.Locator(rules.MaxLocatorLength), prev.Level)))
	}
	return findings
}
