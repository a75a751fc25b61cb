// render/raylib/raylib_renderer.go
package raylib

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/waozixyz/formview/render"
	"github.com/waozixyz/formview/render/layout"
	"github.com/waozixyz/formview/widget"
)

// RaylibRenderer implements render.Renderer with the Raylib graphics
// library. It lays the widget tree out every frame, draws it and routes
// mouse and keyboard input to the widgets.
type RaylibRenderer struct {
	config      render.WindowConfig
	scaleFactor float32
	fontSize    int32
	log         *zap.Logger

	root    widget.Widget
	layout  *layout.Layout
	focused *widget.Entry
}

// NewRaylibRenderer creates a renderer. A nil logger discards output.
func NewRaylibRenderer(log *zap.Logger) *RaylibRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	r := &RaylibRenderer{
		config:      render.DefaultWindowConfig(),
		scaleFactor: 1.0,
		log:         log,
	}
	r.setScale(1.0)
	return r
}

func (r *RaylibRenderer) setScale(scale float32) {
	r.scaleFactor = float32(math.Max(1.0, float64(scale)))
	r.fontSize = int32(render.BaseFontSize * r.scaleFactor)
	r.layout = layout.New(fontMetrics{size: r.fontSize}, layout.DefaultSpacing(r.scaleFactor))
}

// Init initializes the Raylib window according to the provided configuration.
func (r *RaylibRenderer) Init(config render.WindowConfig) error {
	r.config = config
	r.setScale(config.ScaleFactor)

	r.log.Info("initializing window",
		zap.Int("width", config.Width),
		zap.Int("height", config.Height),
		zap.String("title", config.Title),
		zap.Float32("scale", r.scaleFactor))

	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)

	if config.Resizable {
		rl.SetWindowState(rl.FlagWindowResizable)
	} else {
		rl.ClearWindowState(rl.FlagWindowResizable)
		rl.SetWindowSize(config.Width, config.Height)
	}

	// Center on the current monitor.
	monitor := rl.GetCurrentMonitor()
	rl.SetWindowPosition(
		(rl.GetMonitorWidth(monitor)-config.Width)/2,
		(rl.GetMonitorHeight(monitor)-config.Height)/2)

	rl.SetTargetFPS(60)

	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib renderer: window is not ready after InitWindow")
	}
	return nil
}

// SetRoot replaces the drawn tree. Entry focus does not carry over.
func (r *RaylibRenderer) SetRoot(root widget.Widget) {
	if r.focused != nil {
		r.focused.Focused = false
		r.focused = nil
	}
	r.root = root
	r.log.Debug("widget tree set", zap.Int("widgets", widget.Count(root)))
}

// RenderFrame lays out the current tree inside the window border and draws it.
func (r *RaylibRenderer) RenderFrame() {
	if rl.IsWindowResized() && r.config.Resizable {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		if w != r.config.Width || h != r.config.Height {
			r.config.Width, r.config.Height = w, h
			r.log.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
		}
	}

	r.layout.Arrange(r.root, r.contentBounds())
	if r.root != nil {
		r.draw(r.root)
	}
}

// contentBounds is the window area left inside the border.
func (r *RaylibRenderer) contentBounds() layout.Rect {
	border := float32(r.config.Border) * r.scaleFactor
	return layout.Rect{
		X: border,
		Y: border,
		W: max(float32(r.config.Width)-2*border, 0),
		H: max(float32(r.config.Height)-2*border, 0),
	}
}

// Cleanup closes the Raylib window.
func (r *RaylibRenderer) Cleanup() {
	if rl.IsWindowReady() {
		r.log.Info("closing window")
		rl.CloseWindow()
	}
}

// ShouldClose returns true if the Raylib window has been signaled to close.
func (r *RaylibRenderer) ShouldClose() bool {
	return rl.IsWindowReady() && rl.WindowShouldClose()
}

func (r *RaylibRenderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(r.config.DefaultBg)
}

func (r *RaylibRenderer) EndFrame() {
	rl.EndDrawing()
}

// fontMetrics measures text with the default Raylib font.
type fontMetrics struct {
	size int32
}

func (m fontMetrics) TextWidth(text string) float32 {
	return float32(rl.MeasureText(text, m.size))
}

func (m fontMetrics) LineHeight() float32 { return float32(m.size) }

var _ render.Renderer = (*RaylibRenderer)(nil)
