package compiler

import (
	"go.uber.org/zap"

	"github.com/waozixyz/formview/form"
)

// build routes one descriptor node to the builder for its kind. Unknown
// kinds, text and comments produce nothing.
func (c *Compiler) build(parent element, n *form.Node) error {
	switch kind := n.Kind(); kind {
	case form.KindGroup:
		return c.buildGroup(parent, n)
	case form.KindText, form.KindInput:
		c.composeField(parent, n, false)
	case form.KindCheckBox:
		c.buildCheckBox(parent, n)
	case form.KindPages:
		return c.buildPages(parent, n)
	case form.KindTable:
		return c.buildTable(parent, n)
	case form.KindPage, form.KindColumns:
		// Built only by their Pages and Table owners.
		c.log.Debug("ignoring element outside its container",
			zap.Stringer("kind", kind), zap.String("element", describe(n)))
	case form.KindUnknown:
		if n.Type == form.NodeElement {
			c.log.Debug("skipping unsupported element", zap.String("element", describe(n)))
		}
	}
	return nil
}

// buildItems builds every child of a ContainedItems node in order.
func (c *Compiler) buildItems(parent element, items *form.Node) error {
	for _, n := range items.Children {
		if err := c.build(parent, n); err != nil {
			return err
		}
	}
	return nil
}
