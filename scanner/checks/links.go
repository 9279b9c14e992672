package checks

import (
	"strings"

	"gitlab.com/a11yker/a11yk"
)

// Links flags links with no name at all or with text that means nothing out of context
func Links(rules *a11yk.Rules, doc a11yk.Document) []*a11yk.Finding {
	findings := make([]*a11yk.Finding, 0)
	for _, link := range doc.Links() {
		text := strings.TrimSpace(link.Text)
		if text == "" {
			if strings.TrimSpace(link.AccessibleName) != "" {
				continue
			}
			f := a11yk.NewFinding(LinksID, a11yk.CatLinks, "link has no visible text",
				"give the link meaningful text or an accessible name (e.g. aria-label)", rules.WCAG.Links)
			findings = append(findings, f.WithLocator(link.Locator(rules.MaxLocatorLength)))
			continue
		}
		if isAmbiguous(rules.AmbiguousLinkPhrases, text) {
			f := a11yk.NewFinding(LinksID, a11yk.CatLinks, "ambiguous link text",
				"use link text that describes the destination or action", rules.WCAG.Links)
			findings = append(findings, f.WithLocator(link.Locator(rules.MaxLocatorLength)))
		}
	}
	return findings
}

func isAmbiguous(phrases []string, text string) bool {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	for _, p := range phrases {
		if strings.ToLower(strings.Join(strings.Fields(p), " ")) == normalized {
			return true
		}
	}
	return false
}
