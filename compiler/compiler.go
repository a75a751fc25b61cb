// Package compiler turns a managed-form descriptor into a widget tree.
//
// The pass is a single synchronous descent over an immutable descriptor.
// Each builder receives its parent as an element value, builds its own
// widget, recurses into its children and finally hands the widget to the
// parent through place. Nothing built here is retained by the compiler
// once it has been placed.
package compiler

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/waozixyz/formview/form"
	"github.com/waozixyz/formview/widget"
)

const (
	// rootSpacing separates the top-level items of a form.
	rootSpacing = 2
	// strongSpacing separates the children of a strongly separated group.
	strongSpacing = 2
	// labelPlaceholder is what a static label field shows next to its caption.
	labelPlaceholder = "..."
)

// ErrStructure marks a descriptor that lacks a node the compiler cannot do
// without. Such a descriptor produces no widget tree at all.
var ErrStructure = errors.New("descriptor structure violation")

// StructureError names the element and the path that was expected under it.
type StructureError struct {
	Element string
	Path    string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("compile: %s: required %q is missing", e.Element, e.Path)
}

func (e *StructureError) Unwrap() error { return ErrStructure }

func missing(n *form.Node, path string) error {
	return &StructureError{Element: describe(n), Path: path}
}

// describe names a node for error and log messages.
func describe(n *form.Node) string {
	if n == nil {
		return "<nil>"
	}
	if name, ok := form.TextValue(n, form.PathName); ok {
		return n.Name + " " + name
	}
	if name := n.Attrs["name"]; name != "" {
		return n.Name + " " + name
	}
	return n.Name
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for debug tracing of the pass.
func WithLogger(l *zap.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.log = l
		}
	}
}

// Compiler holds the settings of a compile pass. It keeps no state between
// calls to Compile.
type Compiler struct {
	log *zap.Logger
}

func New(opts ...Option) *Compiler {
	c := &Compiler{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile builds the widget tree for doc with a default Compiler.
func Compile(doc *form.Document) (*widget.Box, error) {
	return New().Compile(doc)
}

// Compile builds the widget tree for doc. The returned box is not attached
// to anything; on error no tree is returned.
func (c *Compiler) Compile(doc *form.Document) (*widget.Box, error) {
	if doc == nil || doc.Root == nil {
		return nil, &StructureError{Element: "document", Path: form.ElemElements}
	}

	el := form.Resolve(doc.Root, form.ElemElements)
	if el == nil {
		return nil, missing(doc.Root, form.ElemElements)
	}
	grouping, ok := form.TextValue(el, form.PathChildrenGrouping)
	if !ok {
		return nil, missing(el, form.PathChildrenGrouping)
	}
	items := form.Resolve(el, form.PathContainedItems)
	if items == nil || len(items.Children) == 0 {
		return nil, missing(el, form.PathContainedItems)
	}

	orientation := widget.Horizontal
	if grouping == form.ValueVertical {
		orientation = widget.Vertical
	}
	root := widget.NewBox(orientation, rootSpacing)

	c.log.Debug("compiling form",
		zap.String("path", doc.Path),
		zap.Stringer("grouping", orientation),
		zap.Int("items", len(items.Elements())))

	if err := c.buildItems(sequential(form.KindGroup, root), items); err != nil {
		return nil, err
	}
	return root, nil
}

// element is the working record of one build call: the widget that
// children are placed into and how they are placed. Values are passed down
// by copy and never modified after construction.
type element struct {
	kind       form.Kind
	widget     widget.Widget
	sequential bool
	// table and row are set only while filling a two-column table.
	table *widget.Table
	row   int
}

func sequential(kind form.Kind, w widget.Packer) element {
	return element{kind: kind, widget: w, sequential: true}
}

func single(kind form.Kind, w widget.Bin) element {
	return element{kind: kind, widget: w}
}

func tableRow(t *widget.Table, row int) element {
	return element{kind: form.KindGroup, widget: t, table: t, row: row}
}

// place hands child over to parent. A sequential parent appends it,
// expanding along the packing axis; any other parent takes it as its only
// child.
func place(parent element, child widget.Widget) {
	if parent.sequential {
		parent.widget.(widget.Packer).PackStart(child, true, true, 0)
		return
	}
	parent.widget.(widget.Bin).SetChild(child)
}
