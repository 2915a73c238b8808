package dom

import "strings"

// Node is one element of a parsed document.
type Node interface {
	// Tag returns the lower-case element name, or "" for the document root.
	Tag() string
	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
	// Classes returns the whitespace separated entries of the class attribute.
	Classes() []string
	// Children returns the element children in document order.
	Children() []Node
	// NextSibling returns the next element sibling, or nil.
	NextSibling() Node
	// Text returns every descendant text node joined with sep.
	Text(sep string) string
}

// Selector matches elements by tag name and class list.
// An empty Tag matches any element.
type Selector struct {
	Tag     string
	Classes []string
}

// Class builds a selector from a tag and a space separated class list,
// e.g. Class("div", "def ddef_d db").
func Class(tag, classes string) Selector {
	return Selector{Tag: tag, Classes: strings.Fields(classes)}
}

// Match reports whether n has the selector's tag and carries every one
// of its classes, in any order.
func (s Selector) Match(n Node) bool {
	if n == nil {
		return false
	}
	if s.Tag != "" && n.Tag() != s.Tag {
		return false
	}
	return HasClasses(n, s.Classes...)
}

// HasClasses reports whether n carries all of the given classes.
func HasClasses(n Node, classes ...string) bool {
	have := n.Classes()
	for _, want := range classes {
		found := false
		for _, c := range have {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
