package gfx

import _ "embed"

// Built-in shader pair: pass-through position, solid white fragments. Both
// files omit the #version line so they compile under every dialect.
var (
	//go:embed shaders/vertex.glsl
	vertexShaderSource string
	//go:embed shaders/fragment.glsl
	fragmentShaderSource string
)

// DefaultVertexShader returns the built-in vertex stage.
func DefaultVertexShader() Source { return GLSL(vertexShaderSource) }

// DefaultFragmentShader returns the built-in fragment stage.
func DefaultFragmentShader() Source { return GLSL(fragmentShaderSource) }
