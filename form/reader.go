// form/reader.go

package form

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ErrSourceUnavailable is returned when a descriptor cannot be opened or is
// not a well-formed document. Nothing should be built from such a source.
var ErrSourceUnavailable = errors.New("form source unavailable")

// ReadFile opens and parses the descriptor at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("form read: cannot open %q: %w: %w", path, ErrSourceUnavailable, err)
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// ReadDocument parses a descriptor into a generic node tree. Element names
// are stored without their namespace prefix, so "v8:item" is found as "item".
// Whitespace between elements is kept as text nodes, the same way a DOM
// parser keeps it; the path resolver skips them.
func ReadDocument(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("form read: malformed document: %w: %w", ErrSourceUnavailable, err)
	}

	roots := doc.ChildElements()
	switch len(roots) {
	case 0:
		return nil, fmt.Errorf("form read: no root element: %w", ErrSourceUnavailable)
	case 1:
	default:
		return nil, fmt.Errorf("form read: more than one root element: %w", ErrSourceUnavailable)
	}
	return &Document{Root: convert(roots[0])}, nil
}

// convert copies an etree element into a Node, keeping text and comment
// tokens in document order.
func convert(el *etree.Element) *Node {
	n := &Node{Type: NodeElement, Name: el.Tag}
	if len(el.Attr) > 0 {
		n.Attrs = make(map[string]string, len(el.Attr))
		for _, a := range el.Attr {
			n.Attrs[a.Key] = a.Value
		}
	}
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			n.Children = append(n.Children, convert(t))
		case *etree.CharData:
			appendText(n, t.Data)
		case *etree.Comment:
			n.Children = append(n.Children, &Node{Type: NodeComment, Content: t.Data})
		}
	}
	return n
}

// appendText merges adjacent character data (plain text and CDATA sections
// arrive as separate tokens) into a single text node.
func appendText(parent *Node, s string) {
	if n := len(parent.Children); n > 0 && parent.Children[n-1].Type == NodeText {
		parent.Children[n-1].Content += s
		return
	}
	parent.Children = append(parent.Children, &Node{Type: NodeText, Content: s})
}
