package mock

import (
	"strconv"

	"gitlab.com/a11yker/a11yk"
)

// Document is an in-memory a11yk.Document for check tests
type Document struct {
	Title    string
	HeadingS []*a11yk.Heading
	ImageS   []*a11yk.Image
	LinkS    []*a11yk.Link
	ControlS []*a11yk.FormControl
}

// TitleText returns Title
func (d *Document) TitleText() string { return d.Title }

// Headings returns HeadingS
func (d *Document) Headings() []*a11yk.Heading { return d.HeadingS }

// Images returns ImageS
func (d *Document) Images() []*a11yk.Image { return d.ImageS }

// Links returns LinkS
func (d *Document) Links() []*a11yk.Link { return d.LinkS }

// FormControls returns ControlS
func (d *Document) FormControls() []*a11yk.FormControl { return d.ControlS }

// MakeHeadings from levels, text is "Heading N"
func MakeHeadings(levels ...int) []*a11yk.Heading {
	h := make([]*a11yk.Heading, len(levels))
	for i, level := range levels {
		h[i] = &a11yk.Heading{Level: level, Text: "Heading " + strconv.Itoa(i+1), Position: i + 1}
	}
	return h
}
