package a11yk

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Document is the read-only view of a parsed page that checks query.
// Implementations never return errors, missing data is empty.
type Document interface {
	TitleText() string
	Headings() []*Heading
	Images() []*Image
	Links() []*Link
	FormControls() []*FormControl
}

// Heading h1-h6 in document order
type Heading struct {
	Level    int
	Text     string
	Position int
}

// Locator of the heading, h4 "Some text"
func (h *Heading) Locator(max int) string {
	tag := fmt.Sprintf("h%d", h.Level)
	if h.Text == "" {
		return fmt.Sprintf("%s #%d", tag, h.Position)
	}
	return fmt.Sprintf("%s %q", tag, Truncate(h.Text, max))
}

// Image an <img> element
type Image struct {
	Src        string
	Alt        string
	HasAlt     bool
	Role       string
	AriaHidden bool
	Position   int
}

// Decorative only if explicitly marked so. We don't guess from file names or sizes.
func (i *Image) Decorative() bool {
	role := strings.ToLower(strings.TrimSpace(i.Role))
	return role == "presentation" || role == "none" || i.AriaHidden
}

// Locator img[src=...] or img #position
func (i *Image) Locator(max int) string {
	if i.Src == "" || strings.HasPrefix(i.Src, "data:") {
		return fmt.Sprintf("img #%d", i.Position)
	}
	return fmt.Sprintf("img[src=%s]", Truncate(i.Src, max))
}

// Link an <a> element
type Link struct {
	Href string
	// Text is the visible text, whitespace collapsed
	Text string
	// AccessibleName fallback from aria-label, aria-labelledby, title or a contained image's alt
	AccessibleName string
	Position       int
}

// Locator a[href=...] or a #position
func (l *Link) Locator(max int) string {
	if l.Href == "" {
		if l.Text != "" {
			return fmt.Sprintf("a %q", Truncate(l.Text, max))
		}
		return fmt.Sprintf("a #%d", l.Position)
	}
	return fmt.Sprintf("a[href=%s]", Truncate(l.Href, max))
}

// FormControl input, select or textarea that a user fills in
type FormControl struct {
	Type      HTMLElementType
	InputType string
	ID        string
	Name      string
	// Label resolved text, HasLabel is true even if the label is empty
	Label    string
	HasLabel bool
	Position int
}

// Locator input#id, select[name=...] or textarea #position
func (c *FormControl) Locator(max int) string {
	tag := c.Type.String()
	if c.Type == INPUT && c.InputType != "" {
		tag = fmt.Sprintf("input[type=%s]", Truncate(c.InputType, max))
	}
	switch {
	case c.ID != "":
		return fmt.Sprintf("%s#%s", tag, Truncate(c.ID, max))
	case c.Name != "":
		return fmt.Sprintf("%s[name=%s]", tag, Truncate(c.Name, max))
	}
	return fmt.Sprintf("%s #%d", tag, c.Position)
}

// Truncate s to max runes, appending ... when cut. max <= 0 means no limit.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}
