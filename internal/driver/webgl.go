//go:build js && wasm

package driver

import (
	"errors"
	"syscall/js"
	"unsafe"

	"github.com/gogpu/naga/glsl"

	"github.com/kjkrol/cloth/pkg/gfx"
)

// WebGL issues commands to a WebGL2RenderingContext. JS objects are kept
// in a table and handed out as small integer names, so gfx never sees a
// js.Value.
type WebGL struct {
	gl           js.Value
	float32Array js.Value
	uint8Array   js.Value
	nextID       uint32
	objects      map[uint32]js.Value
}

var _ gfx.Context = (*WebGL)(nil)

// NewWebGL wraps the value returned by canvas.getContext("webgl2").
func NewWebGL(ctx js.Value) (*WebGL, error) {
	if ctx.IsUndefined() || ctx.IsNull() {
		return nil, errors.New("webgl2 context is required")
	}
	return &WebGL{
		gl:           ctx,
		float32Array: js.Global().Get("Float32Array"),
		uint8Array:   js.Global().Get("Uint8Array"),
		objects:      make(map[uint32]js.Value),
	}, nil
}

func (d *WebGL) track(v js.Value) uint32 {
	if v.IsUndefined() || v.IsNull() {
		return 0
	}
	d.nextID++
	d.objects[d.nextID] = v
	return d.nextID
}

func (d *WebGL) object(id uint32) js.Value {
	if v, ok := d.objects[id]; ok {
		return v
	}
	return js.Null()
}

func (d *WebGL) forget(id uint32) js.Value {
	v := d.object(id)
	delete(d.objects, id)
	return v
}

// floats copies data into a fresh Float32Array.
func (d *WebGL) floats(data []float32) js.Value {
	arr := d.float32Array.New(len(data))
	if len(data) == 0 {
		return arr
	}
	view := d.uint8Array.New(arr.Get("buffer"), arr.Get("byteOffset"), arr.Get("byteLength"))
	js.CopyBytesToJS(view, unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4))
	return arr
}

func (d *WebGL) ShadingLanguage() glsl.Version {
	return glsl.VersionES300
}

func (d *WebGL) CreateShader(ty gfx.Enum) gfx.ShaderID {
	return gfx.ShaderID(d.track(d.gl.Call("createShader", int(ty))))
}

func (d *WebGL) ShaderSource(s gfx.ShaderID, src string) {
	d.gl.Call("shaderSource", d.object(uint32(s)), src)
}

func (d *WebGL) CompileShader(s gfx.ShaderID) {
	d.gl.Call("compileShader", d.object(uint32(s)))
}

func (d *WebGL) GetShaderi(s gfx.ShaderID, pname gfx.Enum) int {
	return paramInt(d.gl.Call("getShaderParameter", d.object(uint32(s)), int(pname)))
}

func (d *WebGL) GetShaderInfoLog(s gfx.ShaderID) string {
	return stringOrEmpty(d.gl.Call("getShaderInfoLog", d.object(uint32(s))))
}

func (d *WebGL) DeleteShader(s gfx.ShaderID) {
	d.gl.Call("deleteShader", d.forget(uint32(s)))
}

func (d *WebGL) CreateProgram() gfx.ProgramID {
	return gfx.ProgramID(d.track(d.gl.Call("createProgram")))
}

func (d *WebGL) AttachShader(p gfx.ProgramID, s gfx.ShaderID) {
	d.gl.Call("attachShader", d.object(uint32(p)), d.object(uint32(s)))
}

func (d *WebGL) LinkProgram(p gfx.ProgramID) {
	d.gl.Call("linkProgram", d.object(uint32(p)))
}

func (d *WebGL) GetProgrami(p gfx.ProgramID, pname gfx.Enum) int {
	return paramInt(d.gl.Call("getProgramParameter", d.object(uint32(p)), int(pname)))
}

func (d *WebGL) GetProgramInfoLog(p gfx.ProgramID) string {
	return stringOrEmpty(d.gl.Call("getProgramInfoLog", d.object(uint32(p))))
}

func (d *WebGL) UseProgram(p gfx.ProgramID) {
	d.gl.Call("useProgram", d.object(uint32(p)))
}

func (d *WebGL) DeleteProgram(p gfx.ProgramID) {
	d.gl.Call("deleteProgram", d.forget(uint32(p)))
}

func (d *WebGL) CreateBuffer() gfx.BufferID {
	return gfx.BufferID(d.track(d.gl.Call("createBuffer")))
}

func (d *WebGL) BindBuffer(target gfx.Enum, b gfx.BufferID) {
	d.gl.Call("bindBuffer", int(target), d.object(uint32(b)))
}

func (d *WebGL) BufferData(target gfx.Enum, data []float32, usage gfx.Enum) {
	d.gl.Call("bufferData", int(target), d.floats(data), int(usage))
}

func (d *WebGL) DeleteBuffer(b gfx.BufferID) {
	d.gl.Call("deleteBuffer", d.forget(uint32(b)))
}

func (d *WebGL) Viewport(x, y, width, height int) {
	d.gl.Call("viewport", x, y, width, height)
}

func (d *WebGL) ClearColor(r, g, b, a float32) {
	d.gl.Call("clearColor", r, g, b, a)
}

func (d *WebGL) Clear(mask gfx.Enum) {
	d.gl.Call("clear", int(mask))
}

func (d *WebGL) EnableVertexAttribArray(index uint32) {
	d.gl.Call("enableVertexAttribArray", index)
}

func (d *WebGL) VertexAttribPointer(index uint32, size int, ty gfx.Enum, normalized bool, stride, offset int) {
	d.gl.Call("vertexAttribPointer", index, size, int(ty), normalized, stride, offset)
}

func (d *WebGL) DrawArrays(mode gfx.Enum, first, count int) {
	d.gl.Call("drawArrays", int(mode), first, count)
}

func (d *WebGL) GetError() gfx.Enum {
	return gfx.Enum(d.gl.Call("getError").Int())
}

// paramInt maps a get*Parameter result (boolean for status queries,
// number otherwise) to the GL integer convention.
func paramInt(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNumber:
		return v.Int()
	default:
		return 0
	}
}

func stringOrEmpty(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
