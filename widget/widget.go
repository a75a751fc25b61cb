// Package widget is a small, toolkit-neutral widget tree. The compiler
// builds it; the render backends lay it out and draw it.
package widget

// Widget is any node of the widget tree.
type Widget interface {
	Kind() string
	Children() []Widget
}

// Packer is a sequential container: children are packed one after another
// along its axis.
type Packer interface {
	Widget
	PackStart(child Widget, expand, fill bool, padding int)
}

// Bin is a container that holds exactly one child.
type Bin interface {
	Widget
	SetChild(child Widget)
	Child() Widget
}

// Orientation is the packing axis of a Box.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Walk visits w and its descendants depth first. Returning false from fn
// stops descent into the current widget's children.
func Walk(w Widget, fn func(w Widget, depth int) bool) {
	walk(w, 0, fn)
}

func walk(w Widget, depth int, fn func(Widget, int) bool) {
	if w == nil {
		return
	}
	if !fn(w, depth) {
		return
	}
	for _, c := range w.Children() {
		walk(c, depth+1, fn)
	}
}

// Count returns the number of widgets in the tree rooted at w.
func Count(w Widget) int {
	n := 0
	Walk(w, func(Widget, int) bool {
		n++
		return true
	})
	return n
}
