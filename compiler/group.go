package compiler

import (
	"go.uber.org/zap"

	"github.com/waozixyz/formview/form"
	"github.com/waozixyz/formview/widget"
)

func (c *Compiler) buildGroup(parent element, n *form.Node) error {
	groupType, ok := form.TextValue(n, form.PathType)
	if !ok {
		return missing(n, form.PathType)
	}
	if groupType != form.ValueUsualGroup {
		c.log.Debug("skipping group type",
			zap.String("element", describe(n)), zap.String("type", groupType))
		return nil
	}
	return c.buildUsualGroup(parent, n)
}

func (c *Compiler) buildUsualGroup(parent element, n *form.Node) error {
	grouping, ok := form.TextValue(n, form.PathGroup)
	if !ok {
		return missing(n, form.PathGroup)
	}
	orientation := widget.Vertical
	if grouping == form.ValueHorizontal {
		orientation = widget.Horizontal
	}
	strong := form.EnumValue(n, form.PathRepresentation, form.ValueStrongSeparation)
	showTitle := form.BoolValue(n, form.PathShowTitle, true)

	spacing := 0
	if strong {
		spacing = strongSpacing
	}
	box := widget.NewBox(orientation, spacing)
	group := sequential(form.KindGroup, box)

	if items := form.Resolve(n, form.PathContainedItems); items != nil {
		var err error
		if orientation == widget.Vertical {
			err = c.buildCollapsed(group, items)
		} else {
			err = c.buildItems(group, items)
		}
		if err != nil {
			return err
		}
	}

	if !strong {
		place(parent, box)
		return nil
	}

	frame := widget.NewFrame("")
	if showTitle {
		if title, ok := form.Title(n); ok {
			frame.SetCaption(title)
		}
	}
	place(single(form.KindGroup, frame), box)
	place(parent, frame)
	return nil
}

// buildCollapsed builds the items of a vertical group. Every run of two or
// more consecutive Text/Input elements becomes a single two-column table;
// everything else is built on its own.
func (c *Compiler) buildCollapsed(group element, items *form.Node) error {
	siblings := items.Children
	for i := 0; i < len(siblings); {
		members, span := fieldRun(siblings[i:])
		if len(members) > 1 {
			c.buildFieldTable(group, members)
			i += span
			continue
		}
		if err := c.build(group, siblings[i]); err != nil {
			return err
		}
		i++
	}
	return nil
}

// fieldRun collects the run of Text/Input elements at the head of nodes.
// Text and comment nodes inside the run do not end it; any other element
// does. span is the number of siblings the run covers.
func fieldRun(nodes []*form.Node) (members []*form.Node, span int) {
	for i, n := range nodes {
		if n.Type != form.NodeElement {
			continue
		}
		if !n.Kind().IsField() {
			break
		}
		members = append(members, n)
		span = i + 1
	}
	return members, span
}

func (c *Compiler) buildFieldTable(group element, members []*form.Node) {
	table := widget.NewTable(len(members), 2)
	place(group, table)

	c.log.Debug("collapsing field run into table",
		zap.Int("rows", len(members)), zap.String("first", describe(members[0])))

	for row, m := range members {
		c.composeField(tableRow(table, row), m, true)
	}
}

func (c *Compiler) buildPages(parent element, n *form.Node) error {
	items := form.Resolve(n, form.PathContainedItems)
	if items == nil {
		return missing(n, form.PathContainedItems)
	}

	nb := widget.NewNotebook()
	nb.ShowTabs = form.EnumValue(n, form.PathPagesRepresentation, form.ValueTabsOnTop)

	for _, child := range items.Children {
		if child.Kind() != form.KindPage {
			continue
		}
		if err := c.buildPage(nb, child); err != nil {
			return err
		}
	}

	place(parent, nb)
	return nil
}

func (c *Compiler) buildPage(nb *widget.Notebook, n *form.Node) error {
	title, _ := form.Title(n)

	orientation := widget.Horizontal
	if grouping, ok := form.TextValue(n, form.PathGrouping); ok && grouping != form.ValueHorizontal {
		orientation = widget.Vertical
	}
	box := widget.NewBox(orientation, 0)

	if items := form.Resolve(n, form.PathContainedItems); items != nil {
		if err := c.buildItems(sequential(form.KindPage, box), items); err != nil {
			return err
		}
	}

	nb.AppendPage(box, title)
	return nil
}
