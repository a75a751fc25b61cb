// internal/app/run.go
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/waozixyz/formview/compiler"
	"github.com/waozixyz/formview/form"
	"github.com/waozixyz/formview/render"
	"github.com/waozixyz/formview/widget"
)

// Options configures Run.
type Options struct {
	FormPath string
	Window   render.WindowConfig
	// Watch recompiles the form whenever its file changes.
	Watch  bool
	Logger *zap.Logger
}

// Load reads the form at path and compiles it.
func Load(path string, c *compiler.Compiler) (*widget.Box, error) {
	doc, err := form.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.Compile(doc)
}

// Run is the core application logic, independent of the specific renderer.
// It compiles the form, opens the window and runs the frame loop until the
// window is closed or ctx is done.
func Run(ctx context.Context, renderer render.Renderer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	comp := compiler.New(compiler.WithLogger(log.Named("compiler")))

	log.Info("loading form", zap.String("path", opts.FormPath))
	root, err := Load(opts.FormPath, comp)
	if err != nil {
		return err
	}
	log.Debug("form compiled", zap.Int("widgets", widget.Count(root)))

	if err := renderer.Init(opts.Window); err != nil {
		renderer.Cleanup()
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer renderer.Cleanup()
	renderer.SetRoot(root)

	var changes <-chan struct{}
	if opts.Watch {
		w, err := Watch(ctx, opts.FormPath, log.Named("watch"))
		if err != nil {
			log.Warn("watch disabled", zap.Error(err))
		} else {
			defer func() { _ = w.Close() }()
			changes = w.Changes()
		}
	}

	log.Debug("entering main loop")
	for !renderer.ShouldClose() {
		select {
		case <-ctx.Done():
			log.Debug("context done, leaving main loop")
			return nil
		case <-changes:
			reload(renderer, opts.FormPath, comp, log)
		default:
		}

		renderer.PollEvents()
		renderer.BeginFrame()
		renderer.RenderFrame()
		renderer.EndFrame()
	}

	log.Debug("window closed")
	return nil
}

// reload recompiles the form. On failure the current tree stays on screen.
func reload(renderer render.Renderer, path string, comp *compiler.Compiler, log *zap.Logger) {
	root, err := Load(path, comp)
	if err != nil {
		log.Warn("reload failed, keeping the previous form", zap.Error(err))
		return
	}
	log.Info("form reloaded", zap.String("path", path))
	renderer.SetRoot(root)
}
