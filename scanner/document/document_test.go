package document_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/a11yker/a11yk"
	"gitlab.com/a11yker/scanner/document"
)

func parse(t *testing.T, markup string) *document.Document {
	doc, err := document.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestTitleText(t *testing.T) {
	var inputs = []struct {
		in       string
		expected string
	}{
		{"<html><head><title>  My   Page \n</title></head></html>", "My Page"},
		{"<html><head><title></title></head></html>", ""},
		{"<html><head></head><body><p>no title</p></body></html>", ""},
		{"<title>First</title><title>Second</title>", "First"},
		{`<html><body><svg><title>icon</title></svg></body></html>`, ""},
		{"<title>Fish &amp; Chips</title>", "Fish & Chips"},
	}
	for _, in := range inputs {
		assert.Equal(t, in.expected, parse(t, in.in).TitleText(), in.in)
	}
}

func TestHeadings(t *testing.T) {
	doc := parse(t, `<body>
		<h1>Main <em>title</em></h1>
		<section><h2>Intro</h2><h4>Deep</h4></section>
		<template><h3>never rendered</h3></template>
		<h6></h6>
	</body>`)

	headings := doc.Headings()
	require.Len(t, headings, 4)
	assert.Equal(t, []int{1, 2, 4, 6}, []int{headings[0].Level, headings[1].Level, headings[2].Level, headings[3].Level})
	assert.Equal(t, "Main title", headings[0].Text)
	assert.Equal(t, "Deep", headings[2].Text)
	assert.Equal(t, "", headings[3].Text)
	assert.Equal(t, 4, headings[3].Position)
}

func TestImages(t *testing.T) {
	doc := parse(t, `<body>
		<img src="/a.png">
		<img src="/b.png" alt="">
		<img src="/c.png" alt="A cat" role="presentation">
		<img src="/d.png" alt="" aria-hidden="TRUE">
	</body>`)

	images := doc.Images()
	require.Len(t, images, 4)

	assert.False(t, images[0].HasAlt)
	assert.Equal(t, "/a.png", images[0].Src)
	assert.True(t, images[1].HasAlt)
	assert.Equal(t, "", images[1].Alt)
	assert.False(t, images[1].Decorative())
	assert.Equal(t, "A cat", images[2].Alt)
	assert.True(t, images[2].Decorative())
	assert.True(t, images[3].AriaHidden)
	assert.Equal(t, 4, images[3].Position)
}

func TestLinks(t *testing.T) {
	doc := parse(t, `<body>
		<span id="lbl">Account settings</span>
		<a href="/one"> Click
		   here </a>
		<a href="/two"></a>
		<a href="/three" aria-label="Close dialog"></a>
		<a href="/four"><img src="home.png" alt="Home"></a>
		<a href="/five" aria-labelledby="lbl"><svg></svg></a>
		<a href="/six" title="Search"><i class="icon"></i></a>
		<a href="/seven">Text<script>var x = 1;</script><style>a{}</style></a>
	</body>`)

	links := doc.Links()
	require.Len(t, links, 7)

	assert.Equal(t, "Click here", links[0].Text)
	assert.Equal(t, "/one", links[0].Href)
	assert.Equal(t, "", links[1].Text)
	assert.Equal(t, "", links[1].AccessibleName)
	assert.Equal(t, "Close dialog", links[2].AccessibleName)
	assert.Equal(t, "Home", links[3].AccessibleName)
	assert.Equal(t, "Account settings", links[4].AccessibleName)
	assert.Equal(t, "Search", links[5].AccessibleName)
	assert.Equal(t, "Text", links[6].Text)
}

func TestFormControls(t *testing.T) {
	doc := parse(t, `<body><form>
		<label for="email">Email address</label>
		<input id="email" type="email">
		<label>Name <input name="name"></label>
		<input id="search" aria-label="Search the site">
		<span id="phone-lbl">Phone</span><input id="phone" aria-labelledby="phone-lbl">
		<input id="orphan" type="text">
		<input type="hidden" name="csrf">
		<input type="submit" value="Send">
		<label>Country <select name="country"><option>Narnia</option></select></label>
		<textarea name="comment"></textarea>
		<input type="checkbox" name="agree" placeholder="agree">
	</form></body>`)

	controls := doc.FormControls()
	require.Len(t, controls, 8)

	assert.Equal(t, "email", controls[0].ID)
	assert.True(t, controls[0].HasLabel)
	assert.Equal(t, "Email address", controls[0].Label)

	assert.True(t, controls[1].HasLabel)
	assert.Equal(t, "Name", controls[1].Label)
	assert.Equal(t, "name", controls[1].Name)

	assert.Equal(t, "Search the site", controls[2].Label)
	assert.Equal(t, "Phone", controls[3].Label)

	assert.False(t, controls[4].HasLabel)
	assert.Equal(t, "orphan", controls[4].ID)

	assert.Equal(t, a11yk.SELECT, controls[5].Type)
	assert.True(t, controls[5].HasLabel)
	assert.Equal(t, "Country", controls[5].Label)

	assert.Equal(t, a11yk.TEXTAREA, controls[6].Type)
	assert.False(t, controls[6].HasLabel)

	// a placeholder is not a label
	assert.Equal(t, "checkbox", controls[7].InputType)
	assert.False(t, controls[7].HasLabel)
	assert.Equal(t, 8, controls[7].Position)
}

func TestFormLabelRemoved(t *testing.T) {
	with := parse(t, `<label for="q">Query</label><input id="q">`)
	without := parse(t, `<input id="q">`)

	require.Len(t, with.FormControls(), 1)
	require.Len(t, without.FormControls(), 1)
	assert.True(t, with.FormControls()[0].HasLabel)
	assert.False(t, without.FormControls()[0].HasLabel)
}

func TestParseBytes(t *testing.T) {
	_, err := document.ParseBytes("empty.html", []byte("  \n\t "))
	require.Error(t, err)
	var perr *a11yk.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "empty.html", perr.Source)
	assert.Equal(t, a11yk.ErrEmptyDocument, perr.Err)

	doc, err := document.ParseBytes("page.html", []byte("<title>Hello</title>"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", doc.TitleText())
}

func TestAccessorsFailSafe(t *testing.T) {
	doc := parse(t, "just some text")
	assert.Equal(t, "", doc.TitleText())
	assert.Empty(t, doc.Headings())
	assert.Empty(t, doc.Images())
	assert.Empty(t, doc.Links())
	assert.Empty(t, doc.FormControls())
}
