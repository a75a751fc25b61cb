// render/layout/layout.go

// Package layout sizes and positions a widget tree the way a box-packing
// toolkit does. It knows nothing about drawing; a backend supplies text
// metrics and reads back the rectangles.
package layout

import (
	"github.com/waozixyz/formview/widget"
)

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o, empty when they do not meet.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Size is a natural (requested) size.
type Size struct {
	W, H float32
}

// Metrics measures text in the backend's font.
type Metrics interface {
	TextWidth(text string) float32
	LineHeight() float32
}

// Spacing holds the fixed gaps and minimum sizes used while measuring.
type Spacing struct {
	Pad           float32
	FrameInset    float32
	ColumnGap     float32
	RowGap        float32
	CheckSize     float32
	CheckGap      float32
	EntryMinWidth float32
	TabPadding    float32
	ScrollRows    float32
}

func DefaultSpacing(scale float32) Spacing {
	if scale < 1 {
		scale = 1
	}
	return Spacing{
		Pad:           3 * scale,
		FrameInset:    6 * scale,
		ColumnGap:     6 * scale,
		RowGap:        2 * scale,
		CheckSize:     14 * scale,
		CheckGap:      6 * scale,
		EntryMinWidth: 120 * scale,
		TabPadding:    10 * scale,
		ScrollRows:    5,
	}
}

// Layout holds the result of one Arrange pass.
type Layout struct {
	metrics Metrics
	sp      Spacing

	natural map[widget.Widget]Size
	rects   map[widget.Widget]Rect
	clips   map[widget.Widget]Rect
	tabs    map[*widget.Notebook][]Rect
	scroll  map[*widget.ScrolledWindow]float32
	order   []widget.Widget
}

func New(m Metrics, sp Spacing) *Layout {
	l := &Layout{metrics: m, sp: sp}
	l.reset()
	return l
}

func (l *Layout) reset() {
	l.natural = make(map[widget.Widget]Size)
	l.rects = make(map[widget.Widget]Rect)
	l.clips = make(map[widget.Widget]Rect)
	l.tabs = make(map[*widget.Notebook][]Rect)
	l.scroll = make(map[*widget.ScrolledWindow]float32)
	l.order = l.order[:0]
}

// Arrange measures root and assigns every visible widget a rectangle
// inside bounds. Results of the previous pass are discarded.
func (l *Layout) Arrange(root widget.Widget, bounds Rect) {
	l.reset()
	if root == nil {
		return
	}
	l.arrange(root, bounds, bounds)
}

// Bounds returns the rectangle assigned to w in the last pass. Widgets on
// hidden notebook pages have none.
func (l *Layout) Bounds(w widget.Widget) (Rect, bool) {
	r, ok := l.rects[w]
	return r, ok
}

// Clip returns the visible part of the area w may draw into.
func (l *Layout) Clip(w widget.Widget) Rect {
	return l.clips[w]
}

// Tabs returns the tab rectangles of a notebook, empty when tabs are hidden.
func (l *Layout) Tabs(nb *widget.Notebook) []Rect {
	return l.tabs[nb]
}

// TabAt returns the index of the tab of nb under (x, y), or -1.
func (l *Layout) TabAt(nb *widget.Notebook, x, y float32) int {
	for i, r := range l.tabs[nb] {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// ScrollLimit is how far the child of s can scroll before its end shows.
func (l *Layout) ScrollLimit(s *widget.ScrolledWindow) float32 {
	return l.scroll[s]
}

// HitTest returns the innermost visible widget under (x, y), or nil.
func (l *Layout) HitTest(x, y float32) widget.Widget {
	for i := len(l.order) - 1; i >= 0; i-- {
		w := l.order[i]
		if l.clips[w].Contains(x, y) && l.rects[w].Contains(x, y) {
			return w
		}
	}
	return nil
}

func (l *Layout) Spacing() Spacing { return l.sp }

// RowHeight is the height of a single line of text with padding.
func (l *Layout) RowHeight() float32 {
	return l.metrics.LineHeight() + 2*l.sp.Pad
}

// Measure returns the natural size of w.
func (l *Layout) Measure(w widget.Widget) Size {
	if w == nil {
		return Size{}
	}
	if s, ok := l.natural[w]; ok {
		return s
	}
	s := l.measure(w)
	l.natural[w] = s
	return s
}

func (l *Layout) measure(w widget.Widget) Size {
	pad := l.sp.Pad
	row := l.RowHeight()

	switch w := w.(type) {
	case *widget.Label:
		return Size{W: l.metrics.TextWidth(w.Text) + 2*pad, H: row}
	case *widget.Entry:
		return Size{W: max(l.sp.EntryMinWidth, l.metrics.TextWidth(w.Text)+2*pad), H: row}
	case *widget.CheckButton:
		width := l.sp.CheckSize + 2*pad
		if w.Label != "" {
			width += l.sp.CheckGap + l.metrics.TextWidth(w.Label)
		}
		return Size{W: width, H: max(l.sp.CheckSize+2*pad, row)}
	case *widget.Box:
		return l.measureBox(w)
	case *widget.Frame:
		child := l.Measure(w.Child())
		width := max(child.W, l.captionWidth(w))
		return Size{W: width + 2*l.sp.FrameInset, H: child.H + l.FrameTop(w) + l.sp.FrameInset}
	case *widget.Table:
		cols, rows := l.tableTracks(w)
		return Size{W: sum(cols) + gaps(len(cols), l.sp.ColumnGap), H: sum(rows) + gaps(len(rows), l.sp.RowGap)}
	case *widget.Notebook:
		var s Size
		for _, p := range w.Pages {
			ps := l.Measure(p.Child)
			s.W, s.H = max(s.W, ps.W), max(s.H, ps.H)
		}
		if w.ShowTabs {
			strip := float32(0)
			for _, p := range w.Pages {
				strip += l.tabWidth(p.Tab)
			}
			s.W = max(s.W, strip)
			s.H += row
		}
		return s
	case *widget.ScrolledWindow:
		child := l.Measure(w.Child())
		return Size{W: child.W, H: min(child.H, l.sp.ScrollRows*row)}
	case *widget.TreeView:
		width := float32(0)
		for _, c := range w.Columns {
			width += l.metrics.TextWidth(c.Title) + 2*l.sp.TabPadding
		}
		rows := max(len(w.Rows), 1)
		return Size{W: max(width, l.sp.EntryMinWidth), H: row * float32(rows+1)}
	}
	return Size{}
}

func (l *Layout) measureBox(b *widget.Box) Size {
	var s Size
	for _, it := range b.Items {
		cs := l.Measure(it.Widget)
		p := 2 * float32(it.Padding)
		if b.Orientation == widget.Horizontal {
			s.W += cs.W + p
			s.H = max(s.H, cs.H)
		} else {
			s.H += cs.H + p
			s.W = max(s.W, cs.W)
		}
	}
	along := gaps(len(b.Items), float32(b.Spacing))
	if b.Orientation == widget.Horizontal {
		s.W += along
	} else {
		s.H += along
	}
	return s
}

// FrameTop is the distance from a frame's top edge to its child.
func (l *Layout) FrameTop(f *widget.Frame) float32 {
	if f.Caption == "" {
		return l.sp.FrameInset
	}
	return max(l.metrics.LineHeight(), l.sp.FrameInset)
}

func (l *Layout) captionWidth(f *widget.Frame) float32 {
	if f.Caption == "" {
		return 0
	}
	return l.metrics.TextWidth(f.Caption) + 2*l.sp.TabPadding
}

func (l *Layout) tabWidth(text string) float32 {
	return l.metrics.TextWidth(text) + 2*l.sp.TabPadding
}

// tableTracks returns the natural width of every column and height of
// every row.
func (l *Layout) tableTracks(t *widget.Table) (cols, rows []float32) {
	cols = make([]float32, t.Cols)
	rows = make([]float32, t.Rows)
	for _, c := range t.Cells {
		s := l.Measure(c.Widget)
		cols[c.Col] = max(cols[c.Col], s.W)
		rows[c.Row] = max(rows[c.Row], s.H)
	}
	return cols, rows
}

func (l *Layout) arrange(w widget.Widget, r, clip Rect) {
	if w == nil {
		return
	}
	l.rects[w] = r
	l.clips[w] = clip
	l.order = append(l.order, w)

	switch w := w.(type) {
	case *widget.Box:
		l.arrangeBox(w, r, clip)
	case *widget.Frame:
		top := l.FrameTop(w)
		inset := l.sp.FrameInset
		l.arrange(w.Child(), Rect{X: r.X + inset, Y: r.Y + top, W: r.W - 2*inset, H: r.H - top - inset}, clip)
	case *widget.Table:
		l.arrangeTable(w, r, clip)
	case *widget.Notebook:
		l.arrangeNotebook(w, r, clip)
	case *widget.ScrolledWindow:
		child := l.Measure(w.Child())
		limit := max(child.H-r.H, 0)
		l.scroll[w] = limit
		w.OffsetY = min(max(w.OffsetY, 0), limit)
		l.arrange(w.Child(), Rect{X: r.X, Y: r.Y - w.OffsetY, W: r.W, H: max(child.H, r.H)}, clip.Intersect(r))
	}
}

// arrangeBox gives every child its natural size along the axis and shares
// what is left equally between the expanding children. A filling child
// takes its whole slot; any other child is centered in it.
func (l *Layout) arrangeBox(b *widget.Box, r, clip Rect) {
	if len(b.Items) == 0 {
		return
	}
	horizontal := b.Orientation == widget.Horizontal
	avail, pos := r.H, r.Y
	if horizontal {
		avail, pos = r.W, r.X
	}

	natural := make([]float32, len(b.Items))
	used := gaps(len(b.Items), float32(b.Spacing))
	expanders := 0
	for i, it := range b.Items {
		s := l.Measure(it.Widget)
		natural[i] = s.H
		if horizontal {
			natural[i] = s.W
		}
		used += natural[i] + 2*float32(it.Padding)
		if it.Expand {
			expanders++
		}
	}
	share := float32(0)
	if extra := avail - used; extra > 0 && expanders > 0 {
		share = extra / float32(expanders)
	}

	for i, it := range b.Items {
		pad := float32(it.Padding)
		slot := natural[i] + 2*pad
		if it.Expand {
			slot += share
		}
		size, offset := natural[i], pad
		if it.Fill {
			size = slot - 2*pad
		} else {
			offset = (slot - size) / 2
		}
		child := Rect{X: r.X, Y: pos + offset, W: r.W, H: size}
		if horizontal {
			child = Rect{X: pos + offset, Y: r.Y, W: size, H: r.H}
		}
		l.arrange(it.Widget, child, clip)
		pos += slot + float32(b.Spacing)
	}
}

// arrangeTable keeps column 0 at its natural width and shares the rest of
// the width between the columns that hold an expanding cell. Rows keep
// their natural height.
func (l *Layout) arrangeTable(t *widget.Table, r, clip Rect) {
	cols, rows := l.tableTracks(t)
	if len(cols) == 0 {
		return
	}
	expand := make([]bool, len(cols))
	for _, c := range t.Cells {
		if c.Expand && c.Col > 0 {
			expand[c.Col] = true
		}
	}
	growing := 0
	for _, e := range expand {
		if e {
			growing++
		}
	}
	extra := r.W - sum(cols) - gaps(len(cols), l.sp.ColumnGap)
	if extra > 0 && growing > 0 {
		for i, e := range expand {
			if e {
				cols[i] += extra / float32(growing)
			}
		}
	}

	colX := make([]float32, len(cols))
	x := r.X
	for i, w := range cols {
		colX[i] = x
		x += w + l.sp.ColumnGap
	}
	rowY := make([]float32, len(rows))
	y := r.Y
	for i, h := range rows {
		rowY[i] = y
		y += h + l.sp.RowGap
	}

	for _, c := range t.Cells {
		l.arrange(c.Widget, Rect{X: colX[c.Col], Y: rowY[c.Row], W: cols[c.Col], H: rows[c.Row]}, clip)
	}
}

func (l *Layout) arrangeNotebook(nb *widget.Notebook, r, clip Rect) {
	page := r
	if nb.ShowTabs {
		h := l.RowHeight()
		x := r.X
		tabs := make([]Rect, len(nb.Pages))
		for i, p := range nb.Pages {
			w := l.tabWidth(p.Tab)
			tabs[i] = Rect{X: x, Y: r.Y, W: w, H: h}
			x += w
		}
		l.tabs[nb] = tabs
		page = Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	}
	l.arrange(nb.CurrentPage(), page, clip)
}

func sum(v []float32) float32 {
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

// gaps is the space taken by the gaps between n items.
func gaps(n int, gap float32) float32 {
	if n < 2 {
		return 0
	}
	return float32(n-1) * gap
}
