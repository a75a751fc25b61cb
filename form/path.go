// form/path.go

package form

import "strings"

// Resolve walks a slash-separated path from n. Each segment selects the
// first element child with that name; text and comment children are never
// matched. It returns nil as soon as a segment has no match. An empty path
// resolves to n itself.
func Resolve(n *Node, path string) *Node {
	if n == nil {
		return nil
	}
	cur := n
	for path != "" {
		seg := path
		if i := strings.IndexByte(path, '/'); i >= 0 {
			seg, path = path[:i], path[i+1:]
		} else {
			path = ""
		}
		cur = findByName(cur, seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func findByName(n *Node, name string) *Node {
	for _, c := range n.Children {
		if c.IsElement(name) {
			return c
		}
	}
	return nil
}

// TextValue returns the content of the first text child of the node at
// path. Comments and elements before it are skipped.
func TextValue(n *Node, path string) (string, bool) {
	p := Resolve(n, path)
	if p == nil {
		return "", false
	}
	for _, c := range p.Children {
		if c.Type == NodeText {
			return c.Content, true
		}
	}
	return "", false
}

// BoolValue reads a "true"/"false" property, returning def when the value is
// absent or is neither token.
func BoolValue(n *Node, path string, def bool) bool {
	v, ok := TextValue(n, path)
	if !ok {
		return def
	}
	switch v {
	case ValueTrue:
		return true
	case ValueFalse:
		return false
	}
	return def
}

// EnumValue reports whether the property at path holds exactly token.
func EnumValue(n *Node, path, token string) bool {
	v, ok := TextValue(n, path)
	return ok && v == token
}

// Title computes the caption for an element: the authored title if there is
// one, otherwise the element name in brackets. Absent when neither exists.
func Title(n *Node) (string, bool) {
	if t, ok := TextValue(n, PathTitle); ok {
		return t, true
	}
	if name, ok := TextValue(n, PathName); ok {
		return "[" + name + "]", true
	}
	return "", false
}
