package checks

import "gitlab.com/a11yker/a11yk"

// Forms flags controls with no label association
func Forms(rules *a11yk.Rules, doc a11yk.Document) []*a11yk.Finding {
	findings := make([]*a11yk.Finding, 0)
	for _, control := range doc.FormControls() {
		if control.HasLabel {
			continue
		}
		f := a11yk.NewFinding(FormsID, a11yk.CatForms, "form control missing associated label",
			"use <label for=\"id\">, wrap the control in a <label>, or add aria-label", rules.WCAG.Forms)
		findings = append(findings, f.WithLocator(control.Locator(rules.MaxLocatorLength)))
	}
	return findings
}
