package widget

// Label shows static text. XAlign and YAlign place the text inside the
// label's allocation, 0 being left/top and 1 right/bottom.
type Label struct {
	Text   string
	XAlign float32
	YAlign float32
}

func NewLabel(text string) *Label {
	return &Label{Text: text, XAlign: 0.5, YAlign: 0.5}
}

func (l *Label) Kind() string       { return "Label" }
func (l *Label) Children() []Widget { return nil }

func (l *Label) SetAlignment(x, y float32) {
	l.XAlign, l.YAlign = x, y
}

// Entry is a single-line editable text field.
type Entry struct {
	Text     string
	Editable bool
	Focused  bool
}

func NewEntry() *Entry { return &Entry{Editable: true} }

func (e *Entry) Kind() string       { return "Entry" }
func (e *Entry) Children() []Widget { return nil }

// CheckButton is a toggle with a caption.
type CheckButton struct {
	Label  string
	Active bool
}

func NewCheckButton(label string) *CheckButton { return &CheckButton{Label: label} }

func (c *CheckButton) Kind() string       { return "CheckButton" }
func (c *CheckButton) Children() []Widget { return nil }

func (c *CheckButton) Toggle() { c.Active = !c.Active }

// TreeViewColumn is one visible column of a TreeView.
type TreeViewColumn struct {
	Title string
}

// TreeView displays rows of a list model. ModelColumns is the number of
// string columns in the model; Columns are the visible columns.
type TreeView struct {
	ModelColumns int
	Columns      []*TreeViewColumn
	Rows         [][]string
}

func NewTreeView(modelColumns int) *TreeView {
	return &TreeView{ModelColumns: modelColumns}
}

func (t *TreeView) Kind() string       { return "TreeView" }
func (t *TreeView) Children() []Widget { return nil }

// AppendColumn adds a visible column and returns the new column count.
func (t *TreeView) AppendColumn(c *TreeViewColumn) int {
	t.Columns = append(t.Columns, c)
	return len(t.Columns)
}
