package layout

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waozixyz/formview/widget"
)

// fixedMetrics measures every rune as 8 pixels and every line as 10.
type fixedMetrics struct{}

func (fixedMetrics) TextWidth(text string) float32 { return 8 * float32(utf8.RuneCountInString(text)) }
func (fixedMetrics) LineHeight() float32           { return 10 }

func newLayout() *Layout {
	return New(fixedMetrics{}, DefaultSpacing(1))
}

func bounds(t *testing.T, l *Layout, w widget.Widget) Rect {
	t.Helper()
	r, ok := l.Bounds(w)
	require.True(t, ok, "%s was not arranged", w.Kind())
	return r
}

func TestMeasure_Leaves(t *testing.T) {
	l := newLayout()

	tests := []struct {
		name string
		w    widget.Widget
		want Size
	}{
		{name: "label", w: widget.NewLabel("abc"), want: Size{W: 30, H: 16}},
		{name: "empty entry uses the minimum width", w: widget.NewEntry(), want: Size{W: 120, H: 16}},
		{name: "check button without caption", w: widget.NewCheckButton(""), want: Size{W: 20, H: 20}},
		{name: "check button with caption", w: widget.NewCheckButton("ok"), want: Size{W: 42, H: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Measure(tt.w))
		})
	}
}

func TestArrange_VerticalBoxSharesExtraSpace(t *testing.T) {
	l := newLayout()
	a, b := widget.NewLabel("a"), widget.NewLabel("b")
	box := widget.NewVBox(2)
	box.PackStart(a, true, true, 0)
	box.PackStart(b, true, true, 0)

	l.Arrange(box, Rect{W: 200, H: 100})

	assert.Equal(t, Rect{X: 0, Y: 0, W: 200, H: 49}, bounds(t, l, a))
	assert.Equal(t, Rect{X: 0, Y: 51, W: 200, H: 49}, bounds(t, l, b))
}

func TestArrange_FixedCaptionAndExpandingValue(t *testing.T) {
	l := newLayout()
	caption, value := widget.NewLabel("ab"), widget.NewEntry()
	box := widget.NewHBox(0)
	box.PackStart(caption, false, false, 0)
	box.PackStart(value, true, true, 0)

	l.Arrange(box, Rect{W: 300, H: 20})

	assert.Equal(t, Rect{X: 0, Y: 0, W: 22, H: 20}, bounds(t, l, caption))
	assert.Equal(t, Rect{X: 22, Y: 0, W: 278, H: 20}, bounds(t, l, value))
}

func TestArrange_NonFillChildIsCentered(t *testing.T) {
	l := newLayout()
	label := widget.NewLabel("ab")
	box := widget.NewHBox(0)
	box.PackStart(label, true, false, 0)

	l.Arrange(box, Rect{W: 100, H: 20})

	assert.Equal(t, Rect{X: 39, Y: 0, W: 22, H: 20}, bounds(t, l, label))
}

func TestArrange_TwoColumnTable(t *testing.T) {
	l := newLayout()
	table := widget.NewTable(2, 2)
	short, long := widget.NewLabel("A"), widget.NewLabel("Long")
	e0, e1 := widget.NewEntry(), widget.NewEntry()
	table.Attach(short, 0, 0, false)
	table.Attach(e0, 1, 0, true)
	table.Attach(long, 0, 1, false)
	table.Attach(e1, 1, 1, true)

	l.Arrange(table, Rect{W: 300, H: 100})

	assert.Equal(t, Rect{X: 0, Y: 0, W: 38, H: 16}, bounds(t, l, short), "captions share the widest caption width")
	assert.Equal(t, Rect{X: 44, Y: 0, W: 256, H: 16}, bounds(t, l, e0), "values take the rest")
	assert.Equal(t, Rect{X: 44, Y: 18, W: 256, H: 16}, bounds(t, l, e1))
	assert.Equal(t, Size{W: 164, H: 34}, l.Measure(table))
}

func TestArrange_Frame(t *testing.T) {
	l := newLayout()
	child := widget.NewLabel("x")
	frame := widget.NewFrame("Cap")
	frame.SetChild(child)

	l.Arrange(frame, Rect{W: 100, H: 50})

	assert.Equal(t, Rect{X: 6, Y: 10, W: 88, H: 34}, bounds(t, l, child))

	frame.SetCaption("")
	l.Arrange(frame, Rect{W: 100, H: 50})
	assert.Equal(t, Rect{X: 6, Y: 6, W: 88, H: 38}, bounds(t, l, child))
}

func TestArrange_NotebookShowsOnlyCurrentPage(t *testing.T) {
	l := newLayout()
	first, second := widget.NewLabel("1"), widget.NewLabel("2")
	nb := widget.NewNotebook()
	nb.AppendPage(first, "One")
	nb.AppendPage(second, "Two")

	l.Arrange(nb, Rect{W: 200, H: 100})

	require.Len(t, l.Tabs(nb), 2)
	assert.Equal(t, Rect{X: 44, Y: 0, W: 44, H: 16}, l.Tabs(nb)[1])
	assert.Equal(t, Rect{X: 0, Y: 16, W: 200, H: 84}, bounds(t, l, first))
	_, ok := l.Bounds(second)
	assert.False(t, ok)

	assert.Equal(t, 1, l.TabAt(nb, 50, 5))
	assert.Equal(t, -1, l.TabAt(nb, 150, 5))

	nb.SetCurrent(1)
	l.Arrange(nb, Rect{W: 200, H: 100})
	_, ok = l.Bounds(first)
	assert.False(t, ok)
	bounds(t, l, second)
}

func TestArrange_NotebookWithoutTabs(t *testing.T) {
	l := newLayout()
	page := widget.NewLabel("1")
	nb := widget.NewNotebook()
	nb.ShowTabs = false
	nb.AppendPage(page, "One")

	l.Arrange(nb, Rect{W: 200, H: 100})

	assert.Empty(t, l.Tabs(nb))
	assert.Equal(t, Rect{W: 200, H: 100}, bounds(t, l, page))
}

func TestArrange_ScrolledWindowClampsOffset(t *testing.T) {
	l := newLayout()
	view := widget.NewTreeView(1)
	view.AppendColumn(&widget.TreeViewColumn{Title: "Col"})
	view.Rows = make([][]string, 10)
	scroll := widget.NewScrolledWindow()
	scroll.SetChild(view)

	assert.Equal(t, float32(80), l.Measure(scroll).H, "five rows are visible by default")

	scroll.OffsetY = 500
	l.Arrange(scroll, Rect{W: 200, H: 80})

	assert.Equal(t, float32(96), l.ScrollLimit(scroll))
	assert.Equal(t, float32(96), scroll.OffsetY)
	assert.Equal(t, Rect{X: 0, Y: -96, W: 200, H: 176}, bounds(t, l, view))
	assert.Equal(t, Rect{W: 200, H: 80}, l.Clip(view))
}

func TestHitTest(t *testing.T) {
	l := newLayout()
	check := widget.NewCheckButton("ok")
	entry := widget.NewEntry()
	box := widget.NewVBox(0)
	box.PackStart(check, false, false, 0)
	box.PackStart(entry, false, false, 0)

	l.Arrange(box, Rect{W: 200, H: 100})

	assert.Same(t, check, l.HitTest(10, 10))
	assert.Same(t, entry, l.HitTest(10, 25))
	assert.Same(t, box, l.HitTest(10, 90), "empty space belongs to the box")
	assert.Nil(t, l.HitTest(300, 10))
}

func TestHitTest_RespectsScrollClip(t *testing.T) {
	l := newLayout()
	inner := widget.NewVBox(0)
	var last *widget.Entry
	for i := 0; i < 10; i++ {
		last = widget.NewEntry()
		inner.PackStart(last, false, false, 0)
	}
	scroll := widget.NewScrolledWindow()
	scroll.SetChild(inner)

	l.Arrange(scroll, Rect{W: 200, H: 40})

	r := bounds(t, l, last)
	assert.Nil(t, l.HitTest(r.X+1, r.Y+1), "rows below the viewport cannot be hit")
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, a.Intersect(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.True(t, a.Intersect(Rect{X: 20, Y: 20, W: 5, H: 5}).Empty())
}
