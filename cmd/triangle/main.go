//go:build !js

// Command triangle opens a desktop window and draws the configured scene.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/kjkrol/cloth/internal/app"
	"github.com/kjkrol/cloth/internal/config"
	"github.com/kjkrol/cloth/internal/platform"
	"github.com/kjkrol/cloth/pkg/gfx"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config overlaying the defaults")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := conf.Log.Logger(os.Stderr)
	gfx.SetLogger(logger)

	win, err := platform.NewWindow(conf.Window)
	if err != nil {
		logger.Error("open window", "err", err)
		os.Exit(1)
	}

	err = app.Run(win, conf.Scene)
	win.Close()
	if err != nil {
		logger.Error("render loop", "err", err)
		os.Exit(1)
	}
}
