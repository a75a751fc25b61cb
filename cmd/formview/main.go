// cmd/formview/main.go
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/waozixyz/formview/internal/cli"
	"github.com/waozixyz/formview/render"
	"github.com/waozixyz/formview/render/raylib"
)

func main() {
	newRenderer := func(log *zap.Logger) render.Renderer {
		return raylib.NewRaylibRenderer(log)
	}
	if err := cli.Execute(newRenderer); err != nil {
		os.Exit(1)
	}
}
