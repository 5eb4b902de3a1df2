//go:build !js

package driver

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/gogpu/naga/glsl"

	"github.com/kjkrol/cloth/pkg/gfx"
)

// GL issues commands to the OpenGL 3.3 core context current on the
// calling thread.
type GL struct {
	vao uint32
}

var _ gfx.Context = (*GL)(nil)

// NewGL loads the GL entry points. The context must already be current.
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	d := &GL{}
	// core profile has no default vertex array object
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gfx.Logger().Debug("gl driver ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	return d, nil
}

// Release deletes the vertex array object created by NewGL.
func (d *GL) Release() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *GL) ShadingLanguage() glsl.Version {
	return glsl.Version330
}

func (d *GL) CreateShader(ty gfx.Enum) gfx.ShaderID {
	return gfx.ShaderID(gl.CreateShader(uint32(ty)))
}

func (d *GL) ShaderSource(s gfx.ShaderID, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(s), 1, csrc, nil)
}

func (d *GL) CompileShader(s gfx.ShaderID) {
	gl.CompileShader(uint32(s))
}

func (d *GL) GetShaderi(s gfx.ShaderID, pname gfx.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (d *GL) GetShaderInfoLog(s gfx.ShaderID) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *GL) DeleteShader(s gfx.ShaderID) {
	gl.DeleteShader(uint32(s))
}

func (d *GL) CreateProgram() gfx.ProgramID {
	return gfx.ProgramID(gl.CreateProgram())
}

func (d *GL) AttachShader(p gfx.ProgramID, s gfx.ShaderID) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *GL) LinkProgram(p gfx.ProgramID) {
	gl.LinkProgram(uint32(p))
}

func (d *GL) GetProgrami(p gfx.ProgramID, pname gfx.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (d *GL) GetProgramInfoLog(p gfx.ProgramID) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *GL) UseProgram(p gfx.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (d *GL) DeleteProgram(p gfx.ProgramID) {
	gl.DeleteProgram(uint32(p))
}

func (d *GL) CreateBuffer() gfx.BufferID {
	var b uint32
	gl.GenBuffers(1, &b)
	return gfx.BufferID(b)
}

func (d *GL) BindBuffer(target gfx.Enum, b gfx.BufferID) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (d *GL) BufferData(target gfx.Enum, data []float32, usage gfx.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*4, gl.Ptr(data), uint32(usage))
}

func (d *GL) DeleteBuffer(b gfx.BufferID) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (d *GL) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *GL) Clear(mask gfx.Enum) {
	gl.Clear(uint32(mask))
}

func (d *GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *GL) VertexAttribPointer(index uint32, size int, ty gfx.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (d *GL) DrawArrays(mode gfx.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (d *GL) GetError() gfx.Enum {
	return gfx.Enum(gl.GetError())
}
