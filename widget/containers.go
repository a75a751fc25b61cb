package widget

// Packing is one child of a Box together with its packing options.
type Packing struct {
	Widget  Widget
	Expand  bool
	Fill    bool
	Padding int
}

// Box packs children along one axis.
type Box struct {
	Orientation Orientation
	Spacing     int
	Items       []Packing
}

func NewBox(o Orientation, spacing int) *Box {
	return &Box{Orientation: o, Spacing: spacing}
}

func NewHBox(spacing int) *Box { return NewBox(Horizontal, spacing) }
func NewVBox(spacing int) *Box { return NewBox(Vertical, spacing) }

func (b *Box) Kind() string { return "Box" }

func (b *Box) PackStart(child Widget, expand, fill bool, padding int) {
	b.Items = append(b.Items, Packing{Widget: child, Expand: expand, Fill: fill, Padding: padding})
}

func (b *Box) Children() []Widget {
	out := make([]Widget, len(b.Items))
	for i, it := range b.Items {
		out[i] = it.Widget
	}
	return out
}

// bin is the single-slot storage shared by Frame and ScrolledWindow.
type bin struct {
	child Widget
}

func (b *bin) SetChild(child Widget) { b.child = child }
func (b *bin) Child() Widget         { return b.child }

func (b *bin) Children() []Widget {
	if b.child == nil {
		return nil
	}
	return []Widget{b.child}
}

// Frame draws a border around its child with an optional caption.
type Frame struct {
	bin
	Caption string
}

func NewFrame(caption string) *Frame { return &Frame{Caption: caption} }

func (f *Frame) Kind() string           { return "Frame" }
func (f *Frame) SetCaption(text string) { f.Caption = text }

// ScrolledWindow clips its child and scrolls it.
type ScrolledWindow struct {
	bin
	OffsetY float32
}

func NewScrolledWindow() *ScrolledWindow { return &ScrolledWindow{} }

func (s *ScrolledWindow) Kind() string { return "ScrolledWindow" }

// Cell is a widget attached to one cell of a Table.
type Cell struct {
	Widget Widget
	Col    int
	Row    int
	Expand bool
}

// Table is a fixed grid of cells, filled by Attach.
type Table struct {
	Rows  int
	Cols  int
	Cells []Cell
}

func NewTable(rows, cols int) *Table {
	return &Table{Rows: rows, Cols: cols}
}

func (t *Table) Kind() string { return "Table" }

// Attach puts child into the cell at (col, row). The grid grows when the
// cell lies outside it.
func (t *Table) Attach(child Widget, col, row int, expand bool) {
	if row >= t.Rows {
		t.Rows = row + 1
	}
	if col >= t.Cols {
		t.Cols = col + 1
	}
	t.Cells = append(t.Cells, Cell{Widget: child, Col: col, Row: row, Expand: expand})
}

// At returns the widget attached at (col, row), or nil.
func (t *Table) At(col, row int) Widget {
	for _, c := range t.Cells {
		if c.Col == col && c.Row == row {
			return c.Widget
		}
	}
	return nil
}

func (t *Table) Children() []Widget {
	out := make([]Widget, len(t.Cells))
	for i, c := range t.Cells {
		out[i] = c.Widget
	}
	return out
}

// NotebookPage is one page of a Notebook.
type NotebookPage struct {
	Child Widget
	Tab   string
}

// Notebook shows one page at a time, optionally with a strip of tabs.
type Notebook struct {
	Pages    []NotebookPage
	ShowTabs bool
	Current  int
}

func NewNotebook() *Notebook { return &Notebook{ShowTabs: true} }

func (n *Notebook) Kind() string { return "Notebook" }

// AppendPage adds a page and returns its index.
func (n *Notebook) AppendPage(child Widget, tab string) int {
	n.Pages = append(n.Pages, NotebookPage{Child: child, Tab: tab})
	return len(n.Pages) - 1
}

// SetCurrent switches to page i; out of range indexes are ignored.
func (n *Notebook) SetCurrent(i int) {
	if i >= 0 && i < len(n.Pages) {
		n.Current = i
	}
}

// CurrentPage returns the visible page's child, or nil for an empty notebook.
func (n *Notebook) CurrentPage() Widget {
	if n.Current < 0 || n.Current >= len(n.Pages) {
		return nil
	}
	return n.Pages[n.Current].Child
}

func (n *Notebook) Children() []Widget {
	out := make([]Widget, len(n.Pages))
	for i, p := range n.Pages {
		out[i] = p.Child
	}
	return out
}
