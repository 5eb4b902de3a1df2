//go:build js && wasm

package platform

import (
	"fmt"
	"syscall/js"

	"github.com/kjkrol/cloth/internal/config"
	"github.com/kjkrol/cloth/internal/driver"
	"github.com/kjkrol/cloth/pkg/gfx"
)

type listener struct {
	target js.Value
	typ    string
	fn     js.Func
}

// Canvas is an HTML canvas element rendered through WebGL2.
type Canvas struct {
	canvas    js.Value
	driver    *driver.WebGL
	listeners []listener
	frameID   js.Value
	done      chan struct{}
	closed    bool
}

// NewCanvas appends a canvas styled after conf to the document body.
func NewCanvas(conf config.Window) *Canvas {
	doc := js.Global().Get("document")
	doc.Set("title", conf.Title)

	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", conf.Width)
	canvas.Set("height", conf.Height)
	style := canvas.Get("style")
	style.Set("border", fmt.Sprintf("%dpx solid black", conf.BorderWidth))
	style.Set("position", "absolute")
	style.Set("left", fmt.Sprintf("%dpx", conf.PositionX))
	style.Set("top", fmt.Sprintf("%dpx", conf.PositionY))
	canvas.Call("setAttribute", "tabindex", "0")
	doc.Get("body").Call("appendChild", canvas)

	c := &Canvas{canvas: canvas, done: make(chan struct{})}
	c.listen(js.Global(), "pagehide", func(js.Value) { c.Close() })
	return c
}

func (c *Canvas) listen(target js.Value, typ string, f func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		f(e)
		return nil
	})
	target.Call("addEventListener", typ, fn)
	c.listeners = append(c.listeners, listener{target: target, typ: typ, fn: fn})
}

// Context requests a webgl2 context from the canvas.
func (c *Canvas) Context() (gfx.Context, error) {
	if c.driver != nil {
		return c.driver, nil
	}
	d, err := driver.NewWebGL(c.canvas.Call("getContext", "webgl2"))
	if err != nil {
		return nil, err
	}
	c.driver = d
	return d, nil
}

func (c *Canvas) Size() (uint32, uint32) {
	return pixelSize(c.canvas.Get("width").Int(), c.canvas.Get("height").Int())
}

// OnResize stretches the canvas over the browser window whenever the
// window is resized and reports the new size.
func (c *Canvas) OnResize(fn func(width, height uint32)) {
	c.listen(js.Global(), "resize", func(js.Value) {
		win := js.Global()
		c.canvas.Set("width", win.Get("innerWidth").Int())
		c.canvas.Set("height", win.Get("innerHeight").Int())
		fn(c.Size())
	})
}

// Run calls frame on every animation frame until Close.
func (c *Canvas) Run(frame func()) error {
	var loop js.Func
	loop = js.FuncOf(func(js.Value, []js.Value) any {
		if c.closed {
			return nil
		}
		frame()
		c.frameID = js.Global().Call("requestAnimationFrame", loop)
		return nil
	})
	c.frameID = js.Global().Call("requestAnimationFrame", loop)
	<-c.done
	js.Global().Call("cancelAnimationFrame", c.frameID)
	loop.Release()
	return nil
}

func (c *Canvas) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, l := range c.listeners {
		l.target.Call("removeEventListener", l.typ, l.fn)
		l.fn.Release()
	}
	c.listeners = nil
	c.canvas.Call("remove")
	close(c.done)
}
