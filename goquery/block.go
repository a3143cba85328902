package goquery

import (
	"iter"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockKeywords mark an ancestor as a pass block when they appear together
// with a degree-Celsius marker.
var blockKeywords = []string{"open", "offen", "updated", "aktualisiert"}

// findBlock walks up from the link's parent and returns the first ancestor
// whose text contains "°C" and a block keyword. It stops at the body or
// after maxDepth ancestors and returns nil then.
func findBlock(link *html.Node, maxDepth int) *html.Node {
	n := link.Parent
	for depth := 0; n != nil && depth < maxDepth; depth++ {
		if isTopLevel(n) {
			return nil
		}
		if isPassBlock(nodeText(n)) {
			return n
		}
		n = n.Parent
	}
	return nil
}

func isPassBlock(text string) bool {
	return strings.Contains(text, "°C") && containsKeyword(text, blockKeywords)
}

func isTopLevel(n *html.Node) bool {
	if n.Type == html.DocumentNode {
		return true
	}
	return n.Type == html.ElementNode && (n.DataAtom == atom.Body || n.DataAtom == atom.Html)
}

// textNodes yields the data of every text node below n in document order.
// Script and style contents are not page text and are skipped.
func textNodes(n *html.Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		walkText(n, yield)
	}
}

func walkText(n *html.Node, yield func(string) bool) bool {
	switch n.Type {
	case html.TextNode:
		return yield(n.Data)
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Template:
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walkText(c, yield) {
			return false
		}
	}
	return true
}

// nodeText concatenates all text below n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	for s := range textNodes(n) {
		sb.WriteString(s)
	}
	return sb.String()
}

// strippedText joins the trimmed, non-empty text nodes below n without
// a separator.
func strippedText(n *html.Node) string {
	var sb strings.Builder
	for s := range textNodes(n) {
		sb.WriteString(strings.TrimSpace(s))
	}
	return sb.String()
}

// firstLink returns the first <a> element below n in document order.
func firstLink(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.A {
			return c
		}
		if found := firstLink(c); found != nil {
			return found
		}
	}
	return nil
}

// attr returns the value of the named attribute, or "" if absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// containsKeyword reports whether text contains any keyword, ignoring case.
// Keywords must be lower case.
func containsKeyword(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
