// Package gfxtest provides a recording gfx.Context for tests. It keeps
// just enough driver state to check what a sequence of commands would
// leave behind: object lifetimes, buffer contents, the color buffer and
// the vertices each draw call reads.
package gfxtest

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gogpu/naga/glsl"
	"github.com/kjkrol/cloth/pkg/gfx"
)

// Call is one recorded driver command.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// DrawCall describes a DrawArrays command together with the vertex data
// attribute 0 pointed at when it was issued.
type DrawCall struct {
	Mode     gfx.Enum
	First    int
	Count    int
	Program  gfx.ProgramID
	Vertices []float32
}

// CompileFunc decides whether src compiles. A false result must come with
// the info log the driver would report.
type CompileFunc func(ty gfx.Enum, src string) (ok bool, log string)

// LinkFunc decides whether the attached shaders link.
type LinkFunc func(attached []AttachedShader) (ok bool, log string)

type AttachedShader struct {
	Type   gfx.Enum
	Source string
}

type shaderObject struct {
	ty       gfx.Enum
	src      string
	compiled bool
	log      string
}

type programObject struct {
	attached []gfx.ShaderID
	linked   bool
	log      string
}

type attribLayout struct {
	buffer gfx.BufferID
	size   int
	ty     gfx.Enum
	stride int
	offset int
}

// Recorder implements gfx.Context and gfx.Surface.
type Recorder struct {
	Dialect glsl.Version
	Compile CompileFunc
	Link    LinkFunc

	calls   []Call
	failOn  map[string]bool
	nextID  uint32
	pending gfx.Enum

	shaders  map[gfx.ShaderID]*shaderObject
	programs map[gfx.ProgramID]*programObject
	buffers  map[gfx.BufferID][]float32

	boundArray gfx.BufferID
	current    gfx.ProgramID
	clearColor [4]float32
	color      [4]float32
	viewport   [4]int
	enabled    map[uint32]bool
	attribs    map[uint32]attribLayout
	draws      []DrawCall
}

var _ gfx.Context = (*Recorder)(nil)

// New returns a Recorder speaking GLSL 3.30 core with the default compile
// and link rules.
func New() *Recorder {
	return &Recorder{
		Dialect:  glsl.Version330,
		Compile:  CheckGLSL,
		Link:     CheckInterface,
		failOn:   make(map[string]bool),
		shaders:  make(map[gfx.ShaderID]*shaderObject),
		programs: make(map[gfx.ProgramID]*programObject),
		buffers:  make(map[gfx.BufferID][]float32),
		enabled:  make(map[uint32]bool),
		attribs:  make(map[uint32]attribLayout),
	}
}

// Context hands out the recorder itself.
func (r *Recorder) Context() (gfx.Context, error) {
	return r, nil
}

// FailOn makes the named commands fail: Create* calls return a zero
// object and BufferData raises OUT_OF_MEMORY.
func (r *Recorder) FailOn(names ...string) {
	for _, name := range names {
		r.failOn[name] = true
	}
}

// Reset forgets recorded calls and draws but keeps driver objects.
func (r *Recorder) Reset() {
	r.calls = nil
	r.draws = nil
}

func (r *Recorder) Calls() []Call {
	return slices.Clone(r.calls)
}

// Names lists the recorded command names in issue order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Index returns the position of the first call named name, or -1.
func (r *Recorder) Index(name string) int {
	for i, c := range r.calls {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (r *Recorder) Draws() []DrawCall {
	return slices.Clone(r.draws)
}

// ColorBuffer returns the color the last color clear wrote.
func (r *Recorder) ColorBuffer() [4]float32 {
	return r.color
}

// ViewportRect returns x, y, width and height of the last Viewport call.
func (r *Recorder) ViewportRect() [4]int {
	return r.viewport
}

// BufferContents returns a copy of the data stored in b.
func (r *Recorder) BufferContents(b gfx.BufferID) []float32 {
	return slices.Clone(r.buffers[b])
}

// ShaderSourceOf returns the text the driver received for s.
func (r *Recorder) ShaderSourceOf(s gfx.ShaderID) string {
	if obj, ok := r.shaders[s]; ok {
		return obj.src
	}
	return ""
}

func (r *Recorder) LiveShaders() int  { return len(r.shaders) }
func (r *Recorder) LivePrograms() int { return len(r.programs) }
func (r *Recorder) LiveBuffers() int  { return len(r.buffers) }

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

func (r *Recorder) ShadingLanguage() glsl.Version {
	return r.Dialect
}

func (r *Recorder) CreateShader(ty gfx.Enum) gfx.ShaderID {
	r.record("CreateShader", ty)
	if r.failOn["CreateShader"] {
		return 0
	}
	id := gfx.ShaderID(r.id())
	r.shaders[id] = &shaderObject{ty: ty}
	return id
}

func (r *Recorder) ShaderSource(s gfx.ShaderID, src string) {
	r.record("ShaderSource", s, src)
	if obj, ok := r.shaders[s]; ok {
		obj.src = src
	}
}

func (r *Recorder) CompileShader(s gfx.ShaderID) {
	r.record("CompileShader", s)
	obj, ok := r.shaders[s]
	if !ok {
		return
	}
	obj.compiled, obj.log = r.Compile(obj.ty, obj.src)
}

func (r *Recorder) GetShaderi(s gfx.ShaderID, pname gfx.Enum) int {
	r.record("GetShaderi", s, pname)
	obj, ok := r.shaders[s]
	if !ok || pname != gfx.COMPILE_STATUS || !obj.compiled {
		return 0
	}
	return 1
}

func (r *Recorder) GetShaderInfoLog(s gfx.ShaderID) string {
	r.record("GetShaderInfoLog", s)
	if obj, ok := r.shaders[s]; ok {
		return obj.log
	}
	return ""
}

func (r *Recorder) DeleteShader(s gfx.ShaderID) {
	r.record("DeleteShader", s)
	delete(r.shaders, s)
}

func (r *Recorder) CreateProgram() gfx.ProgramID {
	r.record("CreateProgram")
	if r.failOn["CreateProgram"] {
		return 0
	}
	id := gfx.ProgramID(r.id())
	r.programs[id] = &programObject{}
	return id
}

func (r *Recorder) AttachShader(p gfx.ProgramID, s gfx.ShaderID) {
	r.record("AttachShader", p, s)
	if obj, ok := r.programs[p]; ok {
		obj.attached = append(obj.attached, s)
	}
}

func (r *Recorder) LinkProgram(p gfx.ProgramID) {
	r.record("LinkProgram", p)
	obj, ok := r.programs[p]
	if !ok {
		return
	}
	attached := make([]AttachedShader, 0, len(obj.attached))
	for _, s := range obj.attached {
		sh, ok := r.shaders[s]
		if !ok || !sh.compiled {
			obj.linked, obj.log = false, "ERROR: attached shader is not compiled"
			return
		}
		attached = append(attached, AttachedShader{Type: sh.ty, Source: sh.src})
	}
	obj.linked, obj.log = r.Link(attached)
}

func (r *Recorder) GetProgrami(p gfx.ProgramID, pname gfx.Enum) int {
	r.record("GetProgrami", p, pname)
	obj, ok := r.programs[p]
	if !ok || pname != gfx.LINK_STATUS || !obj.linked {
		return 0
	}
	return 1
}

func (r *Recorder) GetProgramInfoLog(p gfx.ProgramID) string {
	r.record("GetProgramInfoLog", p)
	if obj, ok := r.programs[p]; ok {
		return obj.log
	}
	return ""
}

func (r *Recorder) UseProgram(p gfx.ProgramID) {
	r.record("UseProgram", p)
	r.current = p
}

func (r *Recorder) DeleteProgram(p gfx.ProgramID) {
	r.record("DeleteProgram", p)
	delete(r.programs, p)
	if r.current == p {
		r.current = 0
	}
}

func (r *Recorder) CreateBuffer() gfx.BufferID {
	r.record("CreateBuffer")
	if r.failOn["CreateBuffer"] {
		return 0
	}
	id := gfx.BufferID(r.id())
	r.buffers[id] = nil
	return id
}

func (r *Recorder) BindBuffer(target gfx.Enum, b gfx.BufferID) {
	r.record("BindBuffer", target, b)
	if target == gfx.ARRAY_BUFFER {
		r.boundArray = b
	}
}

func (r *Recorder) BufferData(target gfx.Enum, data []float32, usage gfx.Enum) {
	r.record("BufferData", target, slices.Clone(data), usage)
	if target != gfx.ARRAY_BUFFER || r.boundArray == 0 {
		return
	}
	if r.failOn["BufferData"] {
		r.pending = gfx.OUT_OF_MEMORY
		return
	}
	r.buffers[r.boundArray] = slices.Clone(data)
}

func (r *Recorder) DeleteBuffer(b gfx.BufferID) {
	r.record("DeleteBuffer", b)
	delete(r.buffers, b)
	if r.boundArray == b {
		r.boundArray = 0
	}
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
	r.viewport = [4]int{x, y, width, height}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
	r.clearColor = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask gfx.Enum) {
	r.record("Clear", mask)
	if mask&gfx.COLOR_BUFFER_BIT != 0 {
		r.color = r.clearColor
	}
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
	r.enabled[index] = true
}

func (r *Recorder) VertexAttribPointer(index uint32, size int, ty gfx.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", index, size, ty, normalized, stride, offset)
	r.attribs[index] = attribLayout{buffer: r.boundArray, size: size, ty: ty, stride: stride, offset: offset}
}

func (r *Recorder) DrawArrays(mode gfx.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
	draw := DrawCall{Mode: mode, First: first, Count: count, Program: r.current}
	if layout, ok := r.attribs[0]; ok && r.enabled[0] && layout.size > 0 {
		data := r.buffers[layout.buffer]
		start := min(first*layout.size, len(data))
		end := min((first+count)*layout.size, len(data))
		if start >= 0 && end >= start {
			draw.Vertices = slices.Clone(data[start:end])
		}
	}
	r.draws = append(r.draws, draw)
}

func (r *Recorder) GetError() gfx.Enum {
	r.record("GetError")
	code := r.pending
	r.pending = gfx.NO_ERROR
	return code
}

// UnavailableSurface is a surface whose context request always fails.
type UnavailableSurface struct {
	Err error
}

func (s UnavailableSurface) Context() (gfx.Context, error) {
	if s.Err == nil {
		return nil, errors.New("webgl2 not supported")
	}
	return nil, s.Err
}

// CheckGLSL is the default compile rule: the source needs a main function
// and balanced braces and parentheses.
func CheckGLSL(_ gfx.Enum, src string) (bool, string) {
	depth := map[rune]int{}
	line := 1
	for _, ch := range src {
		switch ch {
		case '\n':
			line++
		case '{', '(':
			depth[ch]++
		case '}':
			depth['{']--
			if depth['{'] < 0 {
				return false, fmt.Sprintf("ERROR: 0:%d: '}' : syntax error", line)
			}
		case ')':
			depth['(']--
			if depth['('] < 0 {
				return false, fmt.Sprintf("ERROR: 0:%d: ')' : syntax error", line)
			}
		}
	}
	if depth['{'] != 0 || depth['('] != 0 {
		return false, fmt.Sprintf("ERROR: 0:%d: '' : syntax error, unexpected end of file", line)
	}
	if !strings.Contains(src, "void main") {
		return false, "ERROR: 0:1: 'main' : function not defined"
	}
	return true, ""
}

var ioDecl = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:(?:flat|smooth|noperspective)\s+)?(in|out)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*;`)

// CheckInterface is the default link rule: one vertex and one fragment
// shader, and every fragment input written by the vertex shader with the
// same type.
func CheckInterface(attached []AttachedShader) (bool, string) {
	var vs, fs []string
	for _, a := range attached {
		switch a.Type {
		case gfx.VERTEX_SHADER:
			vs = append(vs, a.Source)
		case gfx.FRAGMENT_SHADER:
			fs = append(fs, a.Source)
		}
	}
	if len(vs) != 1 || len(fs) != 1 {
		return false, "ERROR: program needs exactly one vertex and one fragment shader"
	}

	outputs := make(map[string]string)
	for _, m := range ioDecl.FindAllStringSubmatch(vs[0], -1) {
		if m[1] == "out" {
			outputs[m[3]] = m[2]
		}
	}
	for _, m := range ioDecl.FindAllStringSubmatch(fs[0], -1) {
		if m[1] != "in" {
			continue
		}
		ty, ok := outputs[m[3]]
		if !ok {
			return false, fmt.Sprintf("ERROR: Linking fragment shader: input '%s' not written by vertex shader", m[3])
		}
		if ty != m[2] {
			return false, fmt.Sprintf("ERROR: Linking: type mismatch for '%s' (%s vs %s)", m[3], ty, m[2])
		}
	}
	return true, ""
}
