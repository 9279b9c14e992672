package a11yk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/a11yker/a11yk"
)

func TestLocators(t *testing.T) {
	var inputs = []struct {
		in       interface{ Locator(int) string }
		expected string
	}{
		{&a11yk.Heading{Level: 4, Text: "Deep section", Position: 3}, `h4 "Deep section"`},
		{&a11yk.Heading{Level: 2, Position: 7}, "h2 #7"},
		{&a11yk.Image{Src: "/logo.png", Position: 1}, "img[src=/logo.png]"},
		{&a11yk.Image{Src: "data:image/png;base64,AAAA", Position: 2}, "img #2"},
		{&a11yk.Image{Position: 5}, "img #5"},
		{&a11yk.Link{Href: "/more", Text: "more"}, "a[href=/more]"},
		{&a11yk.Link{Text: "Jump", Position: 2}, `a "Jump"`},
		{&a11yk.Link{Position: 9}, "a #9"},
		{&a11yk.FormControl{Type: a11yk.INPUT, InputType: "text", ID: "q"}, "input[type=text]#q"},
		{&a11yk.FormControl{Type: a11yk.SELECT, Name: "country"}, "select[name=country]"},
		{&a11yk.FormControl{Type: a11yk.TEXTAREA, Position: 4}, "textarea #4"},
	}
	for _, in := range inputs {
		assert.Equal(t, in.expected, in.in.Locator(40))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", a11yk.Truncate("short", 10))
	assert.Equal(t, "abcdefg...", a11yk.Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "héllo wo...", a11yk.Truncate("héllo wörld again", 11))
	assert.Equal(t, "ab", a11yk.Truncate("abcdef", 2))
	assert.Equal(t, "unlimited", a11yk.Truncate("unlimited", 0))
}

func TestDecorative(t *testing.T) {
	assert.True(t, (&a11yk.Image{Role: " Presentation "}).Decorative())
	assert.True(t, (&a11yk.Image{Role: "none"}).Decorative())
	assert.True(t, (&a11yk.Image{AriaHidden: true}).Decorative())
	assert.False(t, (&a11yk.Image{Role: "img"}).Decorative())
	assert.False(t, (&a11yk.Image{Src: "spacer.gif"}).Decorative())
}

func TestElementType(t *testing.T) {
	assert.Equal(t, a11yk.H3, a11yk.ElementType("H3"))
	assert.Equal(t, 3, a11yk.H3.HeadingLevel())
	assert.Equal(t, 0, a11yk.A.HeadingLevel())
	assert.Equal(t, a11yk.CUSTOM, a11yk.ElementType("blink"))
	assert.True(t, a11yk.TEXTAREA.IsFormControl())
	assert.False(t, a11yk.LABEL.IsFormControl())
	assert.True(t, a11yk.SCRIPT.IsHidden())
}
