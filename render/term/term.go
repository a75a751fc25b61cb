// render/term/term.go

// Package term renders a widget tree as text for a terminal.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/waozixyz/formview/widget"
)

const defaultEntryWidth = 20

// Options controls terminal rendering.
type Options struct {
	// Width caps the width of the output; 0 leaves it unbounded.
	Width int
	// EntryWidth is the number of cells an empty entry occupies.
	EntryWidth int
}

// Styles used for the decorated parts of the output.
var (
	captionStyle   = lipgloss.NewStyle().Bold(true)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Reverse(true)
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
)

// Render returns the text form of the tree rooted at w.
func Render(w widget.Widget, opts Options) string {
	if opts.EntryWidth <= 0 {
		opts.EntryWidth = defaultEntryWidth
	}
	r := renderer{opts: opts}
	out := r.render(w)
	if opts.Width > 0 {
		out = lipgloss.NewStyle().MaxWidth(opts.Width).Render(out)
	}
	return out
}

type renderer struct {
	opts Options
}

func (r renderer) render(w widget.Widget) string {
	switch w := w.(type) {
	case nil:
		return ""
	case *widget.Label:
		return w.Text
	case *widget.Entry:
		return r.entry(w)
	case *widget.CheckButton:
		mark := "[ ]"
		if w.Active {
			mark = "[x]"
		}
		if w.Label == "" {
			return mark
		}
		return mark + " " + w.Label
	case *widget.Box:
		return r.box(w)
	case *widget.Frame:
		return r.frame(w)
	case *widget.Table:
		return r.table(w)
	case *widget.Notebook:
		return r.notebook(w)
	case *widget.ScrolledWindow:
		return r.render(w.Child())
	case *widget.TreeView:
		return r.treeView(w)
	}
	return ""
}

func (r renderer) entry(e *widget.Entry) string {
	width := max(r.opts.EntryWidth, lipgloss.Width(e.Text))
	return "[" + e.Text + strings.Repeat("_", width-lipgloss.Width(e.Text)) + "]"
}

func (r renderer) box(b *widget.Box) string {
	parts := make([]string, 0, len(b.Items))
	for _, it := range b.Items {
		if s := r.render(it.Widget); s != "" {
			parts = append(parts, s)
		}
	}
	if b.Orientation == widget.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	for i := 1; i < len(parts); i++ {
		parts[i] = " " + parts[i]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// frame draws a rounded border around the child with the caption set into
// the top edge.
func (r renderer) frame(f *widget.Frame) string {
	caption := ""
	if f.Caption != "" {
		caption = " " + f.Caption + " "
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(borderStyle.GetForeground()).
		Padding(0, 1)
	content := r.render(f.Child())
	if need := lipgloss.Width(caption) + 1; lipgloss.Width(content)+2 < need {
		style = style.Width(need)
	}
	body := style.Render(content)

	b := lipgloss.RoundedBorder()
	fillWidth := lipgloss.Width(body) - 3 - lipgloss.Width(caption)
	top := borderStyle.Render(b.TopLeft+b.Top) +
		captionStyle.Render(caption) +
		borderStyle.Render(strings.Repeat(b.Top, max(fillWidth, 0))+b.TopRight)
	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

// table lays out a grid; every column is as wide as its widest cell and
// labels are aligned inside it.
func (r renderer) table(t *widget.Table) string {
	cells := make([][]string, t.Rows)
	for i := range cells {
		cells[i] = make([]string, t.Cols)
	}
	widths := make([]int, t.Cols)
	for _, c := range t.Cells {
		s := r.render(c.Widget)
		cells[c.Row][c.Col] = s
		widths[c.Col] = max(widths[c.Col], lipgloss.Width(s))
	}

	lines := make([]string, t.Rows)
	for row := range cells {
		parts := make([]string, t.Cols)
		for col, s := range cells[row] {
			pos := lipgloss.Left
			if l, ok := t.At(col, row).(*widget.Label); ok {
				pos = lipgloss.Position(l.XAlign)
			}
			parts[col] = lipgloss.PlaceHorizontal(widths[col], pos, s)
			if col > 0 {
				parts[col] = " " + parts[col]
			}
		}
		lines[row] = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r renderer) notebook(nb *widget.Notebook) string {
	page := r.render(nb.CurrentPage())
	if !nb.ShowTabs || len(nb.Pages) == 0 {
		return page
	}
	tabs := make([]string, len(nb.Pages))
	for i, p := range nb.Pages {
		style := tabStyle
		if i == nb.Current {
			style = activeTabStyle
		}
		tabs[i] = style.Render(p.Tab)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	rule := borderStyle.Render(strings.Repeat("─", max(lipgloss.Width(strip), lipgloss.Width(page))))
	return lipgloss.JoinVertical(lipgloss.Left, strip, rule, page)
}

func (r renderer) treeView(tv *widget.TreeView) string {
	headers := make([]string, len(tv.Columns))
	for i, c := range tv.Columns {
		headers[i] = c.Title
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(tv.Rows...).
		Render()
}
