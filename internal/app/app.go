// Package app is the host loop shared by the desktop and browser builds:
// build a renderer on a window, keep its viewport in sync with the window,
// upload the scene once and draw it every frame.
package app

import (
	"fmt"

	"github.com/kjkrol/cloth/internal/config"
	"github.com/kjkrol/cloth/pkg/gfx"
)

// Window is the host side of a render loop.
type Window interface {
	gfx.Surface
	Size() (width, height uint32)
	OnResize(fn func(width, height uint32))
	// Run calls frame once per display refresh until the window closes.
	Run(frame func()) error
}

// Run drives scene on win until the window closes.
func Run(win Window, scene config.Scene, opts ...gfx.Option) error {
	r, err := gfx.NewRenderer(win, opts...)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer r.Close()

	r.Resize(win.Size())
	win.OnResize(r.Resize)

	if err := r.SetVertices(scene.Vertices); err != nil {
		return fmt.Errorf("app: upload scene: %w", err)
	}
	count := scene.VertexCount()
	return win.Run(func() {
		r.Render(count)
	})
}
