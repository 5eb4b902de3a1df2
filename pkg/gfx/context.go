package gfx

import "github.com/gogpu/naga/glsl"

// Enum mirrors a GLenum. WebGL2 exposes the same numeric values, so one set
// of constants serves both drivers.
type Enum uint32

const (
	NO_ERROR         Enum = 0
	TRIANGLES        Enum = 0x0004
	OUT_OF_MEMORY    Enum = 0x0505
	FLOAT            Enum = 0x1406
	COLOR_BUFFER_BIT Enum = 0x4000
	ARRAY_BUFFER     Enum = 0x8892
	STATIC_DRAW      Enum = 0x88E4
	FRAGMENT_SHADER  Enum = 0x8B30
	VERTEX_SHADER    Enum = 0x8B31
	COMPILE_STATUS   Enum = 0x8B81
	LINK_STATUS      Enum = 0x8B82
)

// Driver object names. Zero is never a valid object.
type (
	ShaderID  uint32
	ProgramID uint32
	BufferID  uint32
)

// Context is the command-submission service of a rendering surface.
// Every call is issued synchronously and never waits for the GPU.
type Context interface {
	// ShadingLanguage reports the GLSL dialect accepted by ShaderSource.
	ShadingLanguage() glsl.Version

	CreateShader(ty Enum) ShaderID
	ShaderSource(s ShaderID, src string)
	CompileShader(s ShaderID)
	GetShaderi(s ShaderID, pname Enum) int
	GetShaderInfoLog(s ShaderID) string
	DeleteShader(s ShaderID)

	CreateProgram() ProgramID
	AttachShader(p ProgramID, s ShaderID)
	LinkProgram(p ProgramID)
	GetProgrami(p ProgramID, pname Enum) int
	GetProgramInfoLog(p ProgramID) string
	UseProgram(p ProgramID)
	DeleteProgram(p ProgramID)

	CreateBuffer() BufferID
	BindBuffer(target Enum, b BufferID)
	BufferData(target Enum, data []float32, usage Enum)
	DeleteBuffer(b BufferID)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, ty Enum, normalized bool, stride, offset int)
	DrawArrays(mode Enum, first, count int)
	GetError() Enum
}

// Surface is a host drawable that can hand out a rendering context.
type Surface interface {
	Context() (Context, error)
}
