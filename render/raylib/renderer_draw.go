// render/raylib/renderer_draw.go
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/waozixyz/formview/render/layout"
	"github.com/waozixyz/formview/widget"
)

// --- Palette ---

var (
	colorText        = rl.NewColor(30, 30, 30, 255)
	colorBorder      = rl.NewColor(160, 160, 160, 255)
	colorFocus       = rl.NewColor(70, 130, 210, 255)
	colorField       = rl.White
	colorTabActive   = rl.NewColor(250, 250, 250, 255)
	colorTabInactive = rl.NewColor(215, 213, 210, 255)
	colorHeader      = rl.NewColor(225, 223, 220, 255)
	colorCheckMark   = rl.NewColor(50, 50, 50, 255)
)

// draw paints w and then its visible children.
func (r *RaylibRenderer) draw(w widget.Widget) {
	b, ok := r.layout.Bounds(w)
	if !ok {
		return
	}

	switch w := w.(type) {
	case *widget.Label:
		r.drawLabel(w, b)
	case *widget.Entry:
		r.drawEntry(w, b)
	case *widget.CheckButton:
		r.drawCheckButton(w, b)
	case *widget.Frame:
		r.drawFrame(w, b)
		r.draw(w.Child())
	case *widget.Notebook:
		r.drawTabs(w)
		r.draw(w.CurrentPage())
	case *widget.ScrolledWindow:
		r.drawScrolled(w, b)
	case *widget.TreeView:
		r.drawTreeView(w, b)
	default:
		for _, c := range w.Children() {
			r.draw(c)
		}
	}
}

func (r *RaylibRenderer) text(s string, x, y float32, c rl.Color) {
	rl.DrawText(s, int32(x), int32(y), r.fontSize, c)
}

func outline(b layout.Rect, c rl.Color) {
	rl.DrawRectangleLines(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), c)
}

func fill(b layout.Rect, c rl.Color) {
	rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), c)
}

// alignedText places s inside b: xalign 0 is flush left, 1 flush right.
func (r *RaylibRenderer) alignedText(s string, b layout.Rect, xalign, yalign float32) {
	pad := r.layout.Spacing().Pad
	tw := float32(rl.MeasureText(s, r.fontSize))
	x := b.X + pad + max(b.W-2*pad-tw, 0)*xalign
	y := b.Y + max(b.H-float32(r.fontSize), 0)*yalign
	r.text(s, x, y, colorText)
}

func (r *RaylibRenderer) drawLabel(l *widget.Label, b layout.Rect) {
	r.alignedText(l.Text, b, l.XAlign, l.YAlign)
}

func (r *RaylibRenderer) drawEntry(e *widget.Entry, b layout.Rect) {
	fill(b, colorField)
	border := colorBorder
	if e.Focused {
		border = colorFocus
	}
	outline(b, border)

	rl.BeginScissorMode(int32(b.X), int32(b.Y), int32(b.W), int32(b.H))
	r.alignedText(e.Text, b, 0, 0.5)
	if e.Focused && int(rl.GetTime()*2)%2 == 0 {
		pad := r.layout.Spacing().Pad
		x := b.X + pad + float32(rl.MeasureText(e.Text, r.fontSize)) + 1
		rl.DrawLine(int32(x), int32(b.Y+pad), int32(x), int32(b.Y+b.H-pad), colorText)
	}
	rl.EndScissorMode()
}

func (r *RaylibRenderer) drawCheckButton(c *widget.CheckButton, b layout.Rect) {
	sp := r.layout.Spacing()
	box := layout.Rect{X: b.X + sp.Pad, Y: b.Y + (b.H-sp.CheckSize)/2, W: sp.CheckSize, H: sp.CheckSize}
	fill(box, colorField)
	outline(box, colorBorder)
	if c.Active {
		inset := sp.CheckSize / 4
		fill(layout.Rect{X: box.X + inset, Y: box.Y + inset, W: box.W - 2*inset, H: box.H - 2*inset}, colorCheckMark)
	}
	if c.Label != "" {
		r.text(c.Label, box.X+box.W+sp.CheckGap, b.Y+(b.H-float32(r.fontSize))/2, colorText)
	}
}

// drawFrame draws the border with the caption cut into its top edge.
func (r *RaylibRenderer) drawFrame(f *widget.Frame, b layout.Rect) {
	sp := r.layout.Spacing()
	edge := b
	if f.Caption != "" {
		half := r.layout.FrameTop(f) / 2
		edge = layout.Rect{X: b.X, Y: b.Y + half, W: b.W, H: b.H - half}
	}
	outline(edge, colorBorder)

	if f.Caption == "" {
		return
	}
	tw := float32(rl.MeasureText(f.Caption, r.fontSize))
	x := b.X + sp.TabPadding
	fill(layout.Rect{X: x - sp.Pad, Y: b.Y, W: tw + 2*sp.Pad, H: float32(r.fontSize)}, r.config.DefaultBg)
	r.text(f.Caption, x, b.Y, colorText)
}

func (r *RaylibRenderer) drawTabs(nb *widget.Notebook) {
	tabs := r.layout.Tabs(nb)
	for i, t := range tabs {
		bg := colorTabInactive
		if i == nb.Current {
			bg = colorTabActive
		}
		fill(t, bg)
		outline(t, colorBorder)
		r.alignedText(nb.Pages[i].Tab, t, 0.5, 0.5)
	}
}

// drawScrolled clips the child to the viewport.
func (r *RaylibRenderer) drawScrolled(s *widget.ScrolledWindow, b layout.Rect) {
	outline(b, colorBorder)
	child := s.Child()
	if child == nil {
		return
	}
	clip := r.layout.Clip(child)
	if clip.Empty() {
		return
	}
	rl.BeginScissorMode(int32(clip.X), int32(clip.Y), int32(clip.W), int32(clip.H))
	r.draw(child)
	rl.EndScissorMode()
}

// drawTreeView draws the column header row and the list rows. Columns
// share the width equally.
func (r *RaylibRenderer) drawTreeView(t *widget.TreeView, b layout.Rect) {
	fill(b, colorField)
	if len(t.Columns) == 0 {
		return
	}
	row := r.layout.RowHeight()
	colW := b.W / float32(len(t.Columns))

	fill(layout.Rect{X: b.X, Y: b.Y, W: b.W, H: row}, colorHeader)
	for i, c := range t.Columns {
		cell := layout.Rect{X: b.X + float32(i)*colW, Y: b.Y, W: colW, H: row}
		outline(cell, colorBorder)
		r.alignedText(c.Title, cell, 0, 0.5)
	}

	for ri, values := range t.Rows {
		y := b.Y + float32(ri+1)*row
		for ci := range t.Columns {
			if ci >= len(values) {
				break
			}
			r.alignedText(values[ci], layout.Rect{X: b.X + float32(ci)*colW, Y: y, W: colW, H: row}, 0, 0.5)
		}
	}
}
