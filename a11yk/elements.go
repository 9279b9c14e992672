package a11yk

import "strings"

// HTMLElementType tag name
type HTMLElementType int16

// revive:disable:var-naming
const (
	// METADATA
	TITLE HTMLElementType = iota + 1

	// Content
	H1
	H2
	H3
	H4
	H5
	H6

	// Inline Text
	A

	// Image and Multimedia
	IMG

	// Forms
	INPUT
	LABEL
	SELECT
	TEXTAREA

	// Not rendered, text inside is never visible
	SCRIPT
	STYLE
	TEMPLATE
	NOSCRIPT

	// Custom/Non-standard
	CUSTOM
)

// HTMLTypeMap for taking in a (lower case) tag name -> outputing HTMLElementType
var HTMLTypeMap = map[string]HTMLElementType{
	"title":    TITLE,
	"h1":       H1,
	"h2":       H2,
	"h3":       H3,
	"h4":       H4,
	"h5":       H5,
	"h6":       H6,
	"a":        A,
	"img":      IMG,
	"input":    INPUT,
	"label":    LABEL,
	"select":   SELECT,
	"textarea": TEXTAREA,
	"script":   SCRIPT,
	"style":    STYLE,
	"template": TEMPLATE,
	"noscript": NOSCRIPT,
}

// HTMLTypeToStrMap for taking a HTMLElementType -> tag name
var HTMLTypeToStrMap = map[HTMLElementType]string{
	TITLE:    "title",
	H1:       "h1",
	H2:       "h2",
	H3:       "h3",
	H4:       "h4",
	H5:       "h5",
	H6:       "h6",
	A:        "a",
	IMG:      "img",
	INPUT:    "input",
	LABEL:    "label",
	SELECT:   "select",
	TEXTAREA: "textarea",
	SCRIPT:   "script",
	STYLE:    "style",
	TEMPLATE: "template",
	NOSCRIPT: "noscript",
	CUSTOM:   "custom",
}

// ElementType looks up the type for a tag, CUSTOM if we don't track it
func ElementType(tag string) HTMLElementType {
	if t, ok := HTMLTypeMap[strings.ToLower(tag)]; ok {
		return t
	}
	return CUSTOM
}

func (t HTMLElementType) String() string {
	return HTMLTypeToStrMap[t]
}

// HeadingLevel returns 1-6 for heading types and 0 for everything else
func (t HTMLElementType) HeadingLevel() int {
	if t >= H1 && t <= H6 {
		return int(t-H1) + 1
	}
	return 0
}

// IsFormControl input, select or textarea
func (t HTMLElementType) IsFormControl() bool {
	switch t {
	case INPUT, SELECT, TEXTAREA:
		return true
	}
	return false
}

// IsHidden elements whose text content never renders
func (t HTMLElementType) IsHidden() bool {
	switch t {
	case SCRIPT, STYLE, TEMPLATE, NOSCRIPT:
		return true
	}
	return false
}
