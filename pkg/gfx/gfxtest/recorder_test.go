package gfxtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/cloth/pkg/gfx"
)

func TestCheckGLSL(t *testing.T) {
	tests := []struct {
		name string
		src  string
		ok   bool
	}{
		{"valid", "void main() { gl_Position = vec4(0.0); }", true},
		{"no main", "float f() { return 1.0; }", false},
		{"open brace", "void main() {", false},
		{"stray paren", "void main()) {}", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, log := CheckGLSL(gfx.VERTEX_SHADER, tt.src)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				assert.NotEmpty(t, log)
			}
		})
	}
}

func TestCheckInterface(t *testing.T) {
	vs := AttachedShader{Type: gfx.VERTEX_SHADER, Source: "out vec2 vUV;\nvoid main() {}"}

	ok, _ := CheckInterface([]AttachedShader{vs, {Type: gfx.FRAGMENT_SHADER, Source: "in vec2 vUV;\nvoid main() {}"}})
	assert.True(t, ok)

	ok, log := CheckInterface([]AttachedShader{vs, {Type: gfx.FRAGMENT_SHADER, Source: "in vec3 vUV;\nvoid main() {}"}})
	assert.False(t, ok)
	assert.Contains(t, log, "type mismatch")

	ok, log = CheckInterface([]AttachedShader{vs, vs})
	assert.False(t, ok)
	assert.Contains(t, log, "exactly one")
}

func TestRecorder_DrawReadsBoundAttribute(t *testing.T) {
	r := New()
	b := r.CreateBuffer()
	r.BindBuffer(gfx.ARRAY_BUFFER, b)
	r.BufferData(gfx.ARRAY_BUFFER, []float32{1, 2, 3, 4, 5, 6}, gfx.STATIC_DRAW)
	r.EnableVertexAttribArray(0)
	r.VertexAttribPointer(0, 3, gfx.FLOAT, false, 0, 0)

	r.DrawArrays(gfx.TRIANGLES, 1, 1)
	r.DrawArrays(gfx.TRIANGLES, 0, 5)

	draws := r.Draws()
	assert.Equal(t, []float32{4, 5, 6}, draws[0].Vertices)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, draws[1].Vertices, "overrun reads only what was uploaded")
}

func TestRecorder_GetErrorResets(t *testing.T) {
	r := New()
	r.FailOn("BufferData")
	r.BindBuffer(gfx.ARRAY_BUFFER, r.CreateBuffer())
	r.BufferData(gfx.ARRAY_BUFFER, []float32{1}, gfx.STATIC_DRAW)

	assert.Equal(t, gfx.OUT_OF_MEMORY, r.GetError())
	assert.Equal(t, gfx.NO_ERROR, r.GetError())
}
