package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/waozixyz/formview/internal/app"
	"github.com/waozixyz/formview/internal/config"
	"github.com/waozixyz/formview/render"
)

// RendererFactory creates the window backend used by view.
type RendererFactory func(log *zap.Logger) render.Renderer

// NewViewCommand creates the view command.
func NewViewCommand(newRenderer RendererFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [form.xml]",
		Short: "Show a form in a window",
		Long: `Compile a form and show it in a window.

With --watch the form is recompiled whenever the file changes; if the new
version does not compile the previous one stays on screen.`,
		Example: `  formview view Form.xml
  formview view --watch --width 1024 --height 768`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			log := GetLogger(cmd.Context())
			return app.Run(cmd.Context(), newRenderer(log.Named("raylib")), app.Options{
				FormPath: formPath(cmd, args),
				Window:   WindowConfig(cfg.Window),
				Watch:    cfg.Watch,
				Logger:   log,
			})
		},
	}

	cmd.Flags().Bool("watch", false, "Reload the form when the file changes")
	cmd.Flags().Int("width", 0, "Window width")
	cmd.Flags().Int("height", 0, "Window height")
	cmd.Flags().String("title", "", "Window title")
	cmd.Flags().Float64("scale", 0, "UI scale factor")
	cmd.Flags().Int("border", 0, "Window border width in pixels")
	return cmd
}

// WindowConfig converts configured window settings for the renderer.
func WindowConfig(w config.WindowConfig) render.WindowConfig {
	out := render.DefaultWindowConfig()
	out.Width = w.Width
	out.Height = w.Height
	out.Title = w.Title
	out.Resizable = w.Resizable
	out.ScaleFactor = float32(w.Scale)
	out.Border = w.Border
	return out
}
