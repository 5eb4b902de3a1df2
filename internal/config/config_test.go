package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 600, c.Window.Height)
	assert.Equal(t, "cloth", c.Window.Title)
	assert.True(t, c.Window.VSync)
	assert.Equal(t, int32(3), c.Scene.VertexCount())
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.NoError(t, c.Validate())
}

func TestParse_Overlay(t *testing.T) {
	c, err := Parse([]byte(`
[window]
width = 1024
title = "overlay"

[log]
level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, 1024, c.Window.Width)
	assert.Equal(t, 600, c.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, "overlay", c.Window.Title)
	assert.Len(t, c.Scene.Vertices, 9)
	assert.True(t, c.Log.Logger(os.Stderr).Enabled(context.Background(), slog.LevelDebug))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "[window]\ncolour = 1\n", "unknown keys: window.colour"},
		{"bad size", "[window]\nwidth = 0\n", "must be positive"},
		{"partial vertex", "[scene]\nvertices = [0.0, 1.0]\n", "multiple of 3"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "cloth.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scene]\nvertices = [1.0, 2.0, 3.0]\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, c.Scene.Vertices)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	var sb strings.Builder
	logger := Log{Level: "warn"}.Logger(&sb)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, sb.String(), "hidden")
	assert.Contains(t, sb.String(), "shown")
}
