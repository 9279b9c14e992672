// Package checks holds the heuristics run against a document. Each check is a
// pure function of the rules and the document.
package checks

import "gitlab.com/a11yker/a11yk"

// Check IDs
const (
	TitleID    = "A11Y-0001"
	HeadingsID = "A11Y-0002"
	ImagesID   = "A11Y-0003"
	LinksID    = "A11Y-0004"
	FormsID    = "A11Y-0005"
)

// Default checks in the order they run, which is also the report order
func Default() []*a11yk.Check {
	return []*a11yk.Check{
		{ID: TitleID, Name: "page title", Category: a11yk.CatTitle, Run: Title},
		{ID: HeadingsID, Name: "heading structure", Category: a11yk.CatHeadings, Run: Headings},
		{ID: ImagesID, Name: "image alt text", Category: a11yk.CatImages, Run: Images},
		{ID: LinksID, Name: "link text", Category: a11yk.CatLinks, Run: Links},
		{ID: FormsID, Name: "form labels", Category: a11yk.CatForms, Run: Forms},
	}
}

// ByID looks up a default check
func ByID(id string) *a11yk.Check {
	for _, c := range Default() {
		if c.ID == id {
			return c
		}
	}
	return nil
}
