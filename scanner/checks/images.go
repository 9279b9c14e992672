package checks

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/a11yker/a11yk"
)

// Images produces at most one finding per image, first matching rule wins
func Images(rules *a11yk.Rules, doc a11yk.Document) []*a11yk.Finding {
	findings := make([]*a11yk.Finding, 0)
	for _, img := range doc.Images() {
		locator := img.Locator(rules.MaxLocatorLength)
		alt := strings.TrimSpace(img.Alt)
		switch {
		case !img.HasAlt:
			f := a11yk.NewFinding(ImagesID, a11yk.CatImages, "missing alt attribute",
				"add meaningful alt text, or alt=\"\" if the image is purely decorative", rules.WCAG.Images)
			findings = append(findings, f.WithLocator(locator))
		case alt == "":
			if img.Decorative() {
				continue
			}
			f := a11yk.NewFinding(ImagesID, a11yk.CatImages, "empty alt on a possibly non-decorative image",
				"confirm the image is decorative, otherwise describe it in the alt text", rules.WCAG.Images)
			findings = append(findings, f.WithLocator(locator).WithConfidence(a11yk.LowConfidence))
		case utf8.RuneCountInString(alt) < rules.MinAltLength || isPlaceholder(rules.AltPlaceholders, alt):
			f := a11yk.NewFinding(ImagesID, a11yk.CatImages, "alt text may be unclear",
				"make the alt text describe the image's purpose", rules.WCAG.Images)
			findings = append(findings, f.WithLocator(locator))
		}
	}
	return findings
}

func isPlaceholder(placeholders []string, alt string) bool {
	for _, p := range placeholders {
		if strings.EqualFold(strings.TrimSpace(p), alt) {
			return true
		}
	}
	return false
}
