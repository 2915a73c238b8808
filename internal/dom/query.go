package dom

// FindAll returns every descendant of root matching sel, in document
// order. root itself is never part of the result.
func FindAll(root Node, sel Selector) []Node {
	var found []Node
	walk(root, func(n Node) bool {
		if sel.Match(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Find returns the first descendant of root matching sel, or nil.
func Find(root Node, sel Selector) Node {
	var found Node
	walk(root, func(n Node) bool {
		if sel.Match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// NextSiblingMatching returns the first following element sibling of n
// that matches sel, or nil.
func NextSiblingMatching(n Node, sel Selector) Node {
	if n == nil {
		return nil
	}
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if sel.Match(s) {
			return s
		}
	}
	return nil
}

// walk visits the descendants of root depth-first. Returning false from
// visit stops the walk.
func walk(root Node, visit func(Node) bool) bool {
	if root == nil {
		return true
	}
	for _, c := range root.Children() {
		if !visit(c) {
			return false
		}
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
