// Package config loads the host configuration: window geometry, logging,
// the demo scene and the wasm dev server.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultTOML []byte

type Config struct {
	Window Window `toml:"window"`
	Log    Log    `toml:"log"`
	Scene  Scene  `toml:"scene"`
	Server Server `toml:"server"`
}

type Window struct {
	PositionX   int    `toml:"position_x"`
	PositionY   int    `toml:"position_y"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	BorderWidth int    `toml:"border_width"`
	Title       string `toml:"title"`
	VSync       bool   `toml:"vsync"`
}

type Log struct {
	Level string `toml:"level"`
}

type Scene struct {
	Vertices []float32 `toml:"vertices"`
}

// VertexCount is the number of xyz triples in the scene.
func (s Scene) VertexCount() int32 {
	return int32(len(s.Vertices) / 3)
}

type Server struct {
	Addr string `toml:"addr"`
	Dir  string `toml:"dir"`
}

// Default returns the embedded configuration.
func Default() Config {
	var c Config
	if err := decode(defaultTOML, &c); err != nil {
		panic(fmt.Errorf("config: embedded default: %w", err))
	}
	return c
}

// Parse overlays data on the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	// a vertices key replaces the default scene rather than extending it
	defaults := c.Scene.Vertices
	c.Scene.Vertices = nil
	if err := decode(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if c.Scene.Vertices == nil {
		c.Scene.Vertices = defaults
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads path and overlays it on the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func decode(data []byte, c *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(c)
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		keys := make([]string, 0, len(strict.Errors))
		for i := range strict.Errors {
			keys = append(keys, strings.Join(strict.Errors[i].Key(), "."))
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return err
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if len(c.Scene.Vertices)%3 != 0 {
		errs = append(errs, fmt.Errorf("scene has %d floats, want a multiple of 3", len(c.Scene.Vertices)))
	}
	if _, err := c.Log.level(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (l Log) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return level, nil
}

// Logger builds a text logger writing to w at the configured level.
func (l Log) Logger(w io.Writer) *slog.Logger {
	level, err := l.level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
