package checks

import (
	"fmt"
	"unicode/utf8"

	"gitlab.com/a11yker/a11yk"
)

// Title findings, at most one
func Title(rules *a11yk.Rules, doc a11yk.Document) []*a11yk.Finding {
	title := doc.TitleText()
	if title == "" {
		return []*a11yk.Finding{
			a11yk.NewFinding(TitleID, a11yk.CatTitle, "missing or empty title", "add a descriptive <title>", rules.WCAG.Title),
		}
	}
	if utf8.RuneCountInString(title) < rules.MinTitleLength {
		f := a11yk.NewFinding(TitleID, a11yk.CatTitle, "title too short to be descriptive", "add a descriptive <title>", rules.WCAG.Title)
		return []*a11yk.Finding{f.WithLocator(fmt.Sprintf("title %q", a11yk.Truncate(title, rules.MaxLocatorLength)))}
	}
	return nil
}
