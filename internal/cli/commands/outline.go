package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/waozixyz/formview/widget"
)

// NewOutlineCommand creates the outline command.
func NewOutlineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "outline [form.xml]",
		Short: "Show the widget tree of a form",
		Long:  `Compile a form and list every widget of the resulting tree, depth first.`,
		Example: `  formview outline
  formview outline forms/Order.xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := compileForm(cmd, formPath(cmd, args))
			if err != nil {
				return err
			}
			renderOutline(cmd.OutOrStdout(), root)
			return nil
		},
	}
}

func renderOutline(w io.Writer, root widget.Widget) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"#", "Widget", "Details"})

	n := 0
	widget.Walk(root, func(wd widget.Widget, depth int) bool {
		n++
		t.AppendRow(table.Row{n, strings.Repeat("  ", depth) + wd.Kind(), describeWidget(wd)})
		return true
	})

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d widgets)\n", n)
}

// describeWidget summarizes the properties that matter for a widget kind.
func describeWidget(w widget.Widget) string {
	switch w := w.(type) {
	case *widget.Box:
		return fmt.Sprintf("%s, spacing %d, %d items", w.Orientation, w.Spacing, len(w.Items))
	case *widget.Frame:
		return fmt.Sprintf("caption %q", w.Caption)
	case *widget.Label:
		return fmt.Sprintf("%q xalign %.1f", w.Text, w.XAlign)
	case *widget.Entry:
		if w.Text != "" {
			return fmt.Sprintf("%q", w.Text)
		}
		return ""
	case *widget.CheckButton:
		return fmt.Sprintf("%q", w.Label)
	case *widget.Table:
		return fmt.Sprintf("%d rows x %d cols", w.Rows, w.Cols)
	case *widget.Notebook:
		tabs := "hidden"
		if w.ShowTabs {
			tabs = "shown"
		}
		return fmt.Sprintf("%d pages, tabs %s", len(w.Pages), tabs)
	case *widget.TreeView:
		titles := make([]string, len(w.Columns))
		for i, c := range w.Columns {
			titles[i] = c.Title
		}
		return fmt.Sprintf("%d columns: %s", len(w.Columns), strings.Join(titles, ", "))
	}
	return ""
}
