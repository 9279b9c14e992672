// Package document adapts a parsed golang.org/x/net/html tree into the
// a11yk.Document queries the checks run against.
package document

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gitlab.com/a11yker/a11yk"
	"golang.org/x/net/html"
)

// input types that are either not presented or carry their own name (value/alt)
var unlabelledInputTypes = map[string]struct{}{
	"hidden": {},
	"submit": {},
	"reset":  {},
	"button": {},
	"image":  {},
}

// Document wraps the root node. It never modifies the tree.
type Document struct {
	root      *html.Node
	byID      map[string]*html.Node
	labelsFor map[string][]*html.Node
}

var _ a11yk.Document = (*Document)(nil)

// New document from an already parsed tree
func New(root *html.Node) *Document {
	d := &Document{
		root:      root,
		byID:      make(map[string]*html.Node),
		labelsFor: make(map[string][]*html.Node),
	}
	walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if id := NodeGetAttribute(n, "id"); id != "" {
			if _, exists := d.byID[id]; !exists {
				d.byID[id] = n
			}
		}
		if NodeType(n) == a11yk.LABEL {
			if forID := NodeGetAttribute(n, "for"); forID != "" {
				d.labelsFor[forID] = append(d.labelsFor[forID], n)
			}
		}
		return true
	})
	return d
}

// Parse html from the reader
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "html parse")
	}
	return New(root), nil
}

// ParseBytes parses raw html loaded from source, failures are *a11yk.ParseError
func ParseBytes(source string, raw []byte) (*Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &a11yk.ParseError{Source: source, Err: a11yk.ErrEmptyDocument}
	}
	doc, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, &a11yk.ParseError{Source: source, Err: err}
	}
	return doc, nil
}

// TitleText of the first <title>, empty if there isn't one
func (d *Document) TitleText() string {
	var title string
	found := false
	walk(d.root, func(n *html.Node) bool {
		if found {
			return false
		}
		if NodeType(n) == a11yk.TITLE {
			title = collapse(textContent(n))
			found = true
			return false
		}
		return true
	})
	return title
}

// Headings h1-h6 in document order
func (d *Document) Headings() []*a11yk.Heading {
	headings := make([]*a11yk.Heading, 0)
	walk(d.root, func(n *html.Node) bool {
		level := NodeType(n).HeadingLevel()
		if level == 0 {
			return true
		}
		headings = append(headings, &a11yk.Heading{
			Level:    level,
			Text:     NodeText(n),
			Position: len(headings) + 1,
		})
		return true
	})
	return headings
}

// Images all <img> elements
func (d *Document) Images() []*a11yk.Image {
	images := make([]*a11yk.Image, 0)
	walk(d.root, func(n *html.Node) bool {
		if NodeType(n) != a11yk.IMG {
			return true
		}
		images = append(images, &a11yk.Image{
			Src:        strings.TrimSpace(NodeGetAttribute(n, "src")),
			Alt:        NodeGetAttribute(n, "alt"),
			HasAlt:     NodeHasAttribute(n, "alt"),
			Role:       NodeGetAttribute(n, "role"),
			AriaHidden: strings.EqualFold(strings.TrimSpace(NodeGetAttribute(n, "aria-hidden")), "true"),
			Position:   len(images) + 1,
		})
		return true
	})
	return images
}

// Links all <a> elements, with or without href
func (d *Document) Links() []*a11yk.Link {
	links := make([]*a11yk.Link, 0)
	walk(d.root, func(n *html.Node) bool {
		if NodeType(n) != a11yk.A {
			return true
		}
		links = append(links, &a11yk.Link{
			Href:           strings.TrimSpace(NodeGetAttribute(n, "href")),
			Text:           NodeText(n),
			AccessibleName: d.linkName(n),
			Position:       len(links) + 1,
		})
		return true
	})
	return links
}

// FormControls inputs, selects and textareas a user is expected to fill in
func (d *Document) FormControls() []*a11yk.FormControl {
	controls := make([]*a11yk.FormControl, 0)
	walk(d.root, func(n *html.Node) bool {
		t := NodeType(n)
		if !t.IsFormControl() {
			return true
		}
		inputType := ""
		if t == a11yk.INPUT {
			inputType = strings.ToLower(strings.TrimSpace(NodeGetAttribute(n, "type")))
			if _, skip := unlabelledInputTypes[inputType]; skip {
				return true
			}
		}
		label, hasLabel := d.controlLabel(n)
		controls = append(controls, &a11yk.FormControl{
			Type:      t,
			InputType: inputType,
			ID:        strings.TrimSpace(NodeGetAttribute(n, "id")),
			Name:      strings.TrimSpace(NodeGetAttribute(n, "name")),
			Label:     label,
			HasLabel:  hasLabel,
			Position:  len(controls) + 1,
		})
		// a select's options or a textarea's content are not controls
		return false
	})
	return controls
}

// controlLabel resolves, in order: <label for=id>, a wrapping <label>,
// aria-label, aria-labelledby
func (d *Document) controlLabel(n *html.Node) (string, bool) {
	if id := strings.TrimSpace(NodeGetAttribute(n, "id")); id != "" {
		if labels, ok := d.labelsFor[id]; ok && len(labels) > 0 {
			return labelText(labels[0]), true
		}
	}
	if label := ancestor(n, a11yk.LABEL); label != nil {
		return labelText(label), true
	}
	if aria := collapse(NodeGetAttribute(n, "aria-label")); aria != "" {
		return aria, true
	}
	return d.labelledBy(n)
}

// labelledBy text of the elements referenced by aria-labelledby, true if any exist
func (d *Document) labelledBy(n *html.Node) (string, bool) {
	ids := strings.Fields(NodeGetAttribute(n, "aria-labelledby"))
	found := false
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		ref, ok := d.byID[id]
		if !ok {
			continue
		}
		found = true
		if text := NodeText(ref); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " "), found
}

// linkName is the accessible name a link has when its visible text is empty
func (d *Document) linkName(n *html.Node) string {
	if aria := collapse(NodeGetAttribute(n, "aria-label")); aria != "" {
		return aria
	}
	if name, _ := d.labelledBy(n); name != "" {
		return name
	}
	if title := collapse(NodeGetAttribute(n, "title")); title != "" {
		return title
	}
	alts := make([]string, 0)
	walk(n, func(c *html.Node) bool {
		if NodeType(c) == a11yk.IMG {
			if alt := collapse(NodeGetAttribute(c, "alt")); alt != "" {
				alts = append(alts, alt)
			}
		}
		return true
	})
	return strings.Join(alts, " ")
}

// textContent of every text node, used for <title> which only holds text
func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
