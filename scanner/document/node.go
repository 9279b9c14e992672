package document

import (
	"strings"

	"gitlab.com/a11yker/a11yk"
	"golang.org/x/net/html"
)

// NodeHasAttribute returns true if the attribute exists, even with an empty value
func NodeHasAttribute(node *html.Node, attr string) bool {
	if node == nil {
		return false
	}
	attr = strings.ToLower(attr)
	for _, a := range node.Attr {
		if a.Namespace == "" && strings.ToLower(a.Key) == attr {
			return true
		}
	}
	return false
}

// NodeGetAttribute returns the attribute value or empty string
func NodeGetAttribute(node *html.Node, attr string) string {
	if node == nil {
		return ""
	}
	attr = strings.ToLower(attr)
	for _, a := range node.Attr {
		if a.Namespace == "" && strings.ToLower(a.Key) == attr {
			return a.Val
		}
	}
	return ""
}

// NodeType of an html element, CUSTOM for anything we don't track or for
// elements in the svg/math namespaces (their <title> isn't the page title)
func NodeType(node *html.Node) a11yk.HTMLElementType {
	if node == nil || node.Type != html.ElementNode || node.Namespace != "" {
		return a11yk.CUSTOM
	}
	return a11yk.ElementType(node.Data)
}

// NodeText visible text of the node and its children, whitespace collapsed.
// Text in script/style/template/noscript and under the hidden attribute is skipped.
func NodeText(node *html.Node) string {
	return collapse(nodeText(node, false))
}

// labelText like NodeText but skips the text of nested form controls
// (option values of a wrapped select aren't part of its label)
func labelText(node *html.Node) string {
	return collapse(nodeText(node, true))
}

func nodeText(node *html.Node, skipControls bool) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			t := NodeType(n)
			if t.IsHidden() || NodeHasAttribute(n, "hidden") {
				return
			}
			if skipControls && (t == a11yk.SELECT || t == a11yk.TEXTAREA) {
				return
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if node != nil {
		walk(node)
	}
	return sb.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// walk the tree in document order, fn returns false to skip a node's children.
// <template> contents are never rendered so they are always skipped.
func walk(node *html.Node, fn func(n *html.Node) bool) {
	if node == nil {
		return
	}
	if node.Type == html.ElementNode && NodeType(node) == a11yk.TEMPLATE {
		return
	}
	if !fn(node) {
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// ancestor returns the closest parent of the given type or nil
func ancestor(node *html.Node, elementType a11yk.HTMLElementType) *html.Node {
	for p := node.Parent; p != nil; p = p.Parent {
		if NodeType(p) == elementType {
			return p
		}
	}
	return nil
}
