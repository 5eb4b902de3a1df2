//go:build js && wasm

// Command wasm draws the default scene on a canvas. Build it with
// GOOS=js GOARCH=wasm into cmd/wasm-demo/main.wasm.
package main

import (
	"os"

	"github.com/kjkrol/cloth/internal/app"
	"github.com/kjkrol/cloth/internal/config"
	"github.com/kjkrol/cloth/internal/platform"
	"github.com/kjkrol/cloth/pkg/gfx"
)

func main() {
	conf := config.Default()
	logger := conf.Log.Logger(os.Stdout)
	gfx.SetLogger(logger)

	canvas := platform.NewCanvas(conf.Window)
	defer canvas.Close()

	if err := app.Run(canvas, conf.Scene); err != nil {
		logger.Error("render loop", "err", err)
	}
}
