// render/raylib/renderer_events.go
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/waozixyz/formview/widget"
)

// scrollStep is how many rows one wheel notch scrolls.
const scrollStep = 3

// PollEvents handles mouse and keyboard input against the last layout.
func (r *RaylibRenderer) PollEvents() {
	if !rl.IsWindowReady() || r.root == nil {
		return
	}

	mouse := rl.GetMousePosition()
	hit := r.layout.HitTest(mouse.X, mouse.Y)

	cursor := rl.MouseCursorDefault
	switch w := hit.(type) {
	case *widget.CheckButton:
		cursor = rl.MouseCursorPointingHand
	case *widget.Entry:
		if w.Editable {
			cursor = rl.MouseCursorIBeam
		}
	case *widget.Notebook:
		if r.layout.TabAt(w, mouse.X, mouse.Y) >= 0 {
			cursor = rl.MouseCursorPointingHand
		}
	}
	rl.SetMouseCursor(cursor)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		r.click(hit, mouse)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		r.scroll(mouse, wheel)
	}
	if r.focused != nil {
		r.typeInto(r.focused)
	}
}

func (r *RaylibRenderer) click(hit widget.Widget, mouse rl.Vector2) {
	switch w := hit.(type) {
	case *widget.CheckButton:
		w.Toggle()
		r.log.Debug("check button toggled", zap.String("label", w.Label), zap.Bool("active", w.Active))
		r.focus(nil)
	case *widget.Entry:
		if w.Editable {
			r.focus(w)
		}
	case *widget.Notebook:
		if i := r.layout.TabAt(w, mouse.X, mouse.Y); i >= 0 {
			w.SetCurrent(i)
			r.log.Debug("notebook page switched", zap.Int("page", i), zap.String("tab", w.Pages[i].Tab))
		}
		r.focus(nil)
	default:
		r.focus(nil)
	}
}

func (r *RaylibRenderer) focus(e *widget.Entry) {
	if r.focused != nil {
		r.focused.Focused = false
	}
	r.focused = e
	if e != nil {
		e.Focused = true
	}
}

// scroll moves the innermost scrolled window under the mouse.
func (r *RaylibRenderer) scroll(mouse rl.Vector2, wheel float32) {
	var target *widget.ScrolledWindow
	widget.Walk(r.root, func(w widget.Widget, _ int) bool {
		b, ok := r.layout.Bounds(w)
		if !ok || !b.Contains(mouse.X, mouse.Y) {
			return ok
		}
		if s, isScroll := w.(*widget.ScrolledWindow); isScroll {
			target = s
		}
		return true
	})
	if target == nil {
		return
	}
	limit := r.layout.ScrollLimit(target)
	target.OffsetY = min(max(target.OffsetY-wheel*scrollStep*r.layout.RowHeight(), 0), limit)
}

// typeInto applies this frame's typed characters and backspaces to e.
func (r *RaylibRenderer) typeInto(e *widget.Entry) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		e.Text += string(rune(ch))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		if runes := []rune(e.Text); len(runes) > 0 {
			e.Text = string(runes[:len(runes)-1])
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		r.focus(nil)
	}
}
