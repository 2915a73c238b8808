package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// htmlNode adapts *html.Node to the Node interface.
type htmlNode struct {
	n *html.Node
}

// Parse reads an HTML document and returns its root node.
func Parse(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return htmlNode{n: doc}, nil
}

// ParseString is Parse for an in-memory document.
func ParseString(markup string) (Node, error) {
	return Parse(strings.NewReader(markup))
}

func (h htmlNode) Tag() string {
	if h.n.Type != html.ElementNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) Attr(name string) (string, bool) {
	for _, a := range h.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (h htmlNode) Classes() []string {
	class, ok := h.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

func (h htmlNode) Children() []Node {
	var children []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, htmlNode{n: c})
		}
	}
	return children
}

func (h htmlNode) NextSibling() Node {
	for s := h.n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return htmlNode{n: s}
		}
	}
	return nil
}

func (h htmlNode) Text(sep string) string {
	var parts []string
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				parts = append(parts, c.Data)
			case html.ElementNode:
				collect(c)
			}
		}
	}
	collect(h.n)
	return strings.Join(parts, sep)
}
