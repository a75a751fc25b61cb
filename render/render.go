// render/render.go
package render

import (
	"image/color"

	"github.com/waozixyz/formview/widget"
)

const (
	BaseFontSize = 18.0
	// DefaultBorder is the gap between the window edge and the form.
	DefaultBorder = 8
)

// WindowConfig holds the settings of the host window a form is shown in.
type WindowConfig struct {
	Width       int
	Height      int
	Title       string
	Resizable   bool
	ScaleFactor float32
	Border      int
	DefaultBg   color.RGBA
}

// Renderer defines the interface a widget-tree display backend implements.
type Renderer interface {
	// Init creates the window.
	Init(config WindowConfig) error

	// SetRoot replaces the tree that is drawn. A nil root clears the window.
	SetRoot(root widget.Widget)

	// RenderFrame lays out and draws the current tree.
	RenderFrame()

	// PollEvents handles input for the current tree.
	PollEvents()

	BeginFrame()
	EndFrame()

	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool

	// Cleanup releases the window.
	Cleanup()
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:       800,
		Height:      600,
		Title:       "1C 8.3 Managed Form",
		Resizable:   true,
		ScaleFactor: 1.0,
		Border:      DefaultBorder,
		DefaultBg:   color.RGBA{R: 237, G: 236, B: 235, A: 255},
	}
}
