package compiler

import (
	"go.uber.org/zap"

	"github.com/waozixyz/formview/form"
	"github.com/waozixyz/formview/widget"
)

// buildTable builds a list view whose columns come from the Text/Input
// leaves of the table's items, nested Columns included.
func (c *Compiler) buildTable(parent element, n *form.Node) error {
	items := form.Resolve(n, form.PathContainedItems)
	if items == nil {
		return missing(n, form.PathContainedItems)
	}

	count, err := countColumns(items)
	if err != nil {
		return err
	}
	view := widget.NewTreeView(count)
	if err := buildColumns(items, view); err != nil {
		return err
	}

	c.log.Debug("built table",
		zap.String("element", describe(n)), zap.Int("columns", count))

	scroll := widget.NewScrolledWindow()
	place(single(form.KindTable, scroll), view)
	place(parent, scroll)
	return nil
}

// countColumns counts the Text/Input leaves under items, descending into
// Columns groups.
func countColumns(items *form.Node) (int, error) {
	count := 0
	for _, n := range items.Children {
		switch n.Kind() {
		case form.KindText, form.KindInput:
			count++
		case form.KindColumns:
			sub := form.Resolve(n, form.PathContainedItems)
			if sub == nil {
				return 0, missing(n, form.PathContainedItems)
			}
			nested, err := countColumns(sub)
			if err != nil {
				return 0, err
			}
			count += nested
		}
	}
	return count, nil
}

// buildColumns appends one column per Text/Input leaf, in the same order
// countColumns visits them. Columns groups add no column of their own.
func buildColumns(items *form.Node, view *widget.TreeView) error {
	for _, n := range items.Children {
		switch n.Kind() {
		case form.KindText, form.KindInput:
			title, _ := form.Title(n)
			view.AppendColumn(&widget.TreeViewColumn{Title: title})
		case form.KindColumns:
			sub := form.Resolve(n, form.PathContainedItems)
			if sub == nil {
				return missing(n, form.PathContainedItems)
			}
			if err := buildColumns(sub, view); err != nil {
				return err
			}
		}
	}
	return nil
}
