package compiler

import (
	"github.com/waozixyz/formview/form"
	"github.com/waozixyz/formview/widget"
)

type titleLocation uint8

const (
	titleLeft titleLocation = iota
	titleNone
	titleRight
)

func titleLocationOf(n *form.Node) titleLocation {
	v, _ := form.TextValue(n, form.PathTitleLocation)
	switch v {
	case form.ValueNone:
		return titleNone
	case form.ValueRight:
		return titleRight
	}
	return titleLeft
}

// justify applies a horizontal alignment property to a label. Values other
// than Left, Right and Auto leave the label as it is.
func justify(l *widget.Label, n *form.Node, path string) {
	v, ok := form.TextValue(n, path)
	if !ok {
		return
	}
	switch v {
	case form.ValueLeft, form.ValueAuto:
		l.SetAlignment(0, l.YAlign)
	case form.ValueRight:
		l.SetAlignment(1, l.YAlign)
	}
}

// composeField builds a Text or Input element: a caption and a value
// surface. In a table the two go into columns 0 and 1 of the current row;
// otherwise they are boxed together according to TitleLocation.
func (c *Compiler) composeField(parent element, n *form.Node, inTable bool) {
	caption, hasCaption := form.Title(n)
	editable := !form.EnumValue(n, form.PathType, form.ValueLabelField)

	if inTable {
		text := caption
		if hasCaption {
			label := widget.NewLabel(caption)
			justify(label, n, form.PathHeaderHorizontalAlign)
			parent.table.Attach(label, 0, parent.row, false)
			text = labelPlaceholder
		}
		parent.table.Attach(valueSurface(n, editable, text), 1, parent.row, true)
		return
	}

	loc := titleLocationOf(n)
	if !hasCaption || loc == titleNone {
		place(parent, valueSurface(n, editable, caption))
		return
	}

	label := widget.NewLabel(caption)
	justify(label, n, form.PathHeaderHorizontalAlign)
	value := valueSurface(n, editable, labelPlaceholder)

	box := widget.NewHBox(0)
	if loc == titleLeft {
		box.PackStart(label, false, false, 0)
	}
	box.PackStart(value, true, true, 0)
	if loc == titleRight {
		box.PackStart(label, false, false, 0)
	}
	place(parent, box)
}

// valueSurface is an entry for editable fields and a label showing text for
// label fields.
func valueSurface(n *form.Node, editable bool, text string) widget.Widget {
	if editable {
		return widget.NewEntry()
	}
	l := widget.NewLabel(text)
	justify(l, n, form.PathHorizontalAlign)
	return l
}

func (c *Compiler) buildCheckBox(parent element, n *form.Node) {
	title, _ := form.Title(n)
	place(parent, widget.NewCheckButton(title))
}
