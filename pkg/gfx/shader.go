package gfx

import (
	"strings"

	"github.com/gogpu/naga/glsl"
)

// Stage selects the pipeline stage of a shader unit.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Enum returns the driver shader type of the stage.
func (s Stage) Enum() Enum {
	if s == StageFragment {
		return FRAGMENT_SHADER
	}
	return VERTEX_SHADER
}

// Language is the shading language a Source is written in.
type Language uint8

const (
	// LanguageGLSL sources are handed to the driver. A source without a
	// #version line gets the context dialect header prepended.
	LanguageGLSL Language = iota
	// LanguageWGSL sources are translated to the context dialect first.
	LanguageWGSL
)

// Source is the text of one shader stage.
type Source struct {
	Language Language
	Text     string
}

// GLSL wraps GLSL text.
func GLSL(text string) Source { return Source{Language: LanguageGLSL, Text: text} }

// WGSL wraps WGSL text.
func WGSL(text string) Source { return Source{Language: LanguageWGSL, Text: text} }

// Shader is a compiled shader unit. It only lives until it is linked.
type Shader struct {
	ctx   Context
	id    ShaderID
	stage Stage
}

func (s *Shader) Stage() Stage { return s.stage }

func (s *Shader) ID() ShaderID { return s.id }

// Release deletes the driver object. Safe to call more than once.
func (s *Shader) Release() {
	if s == nil || s.id == 0 {
		return
	}
	s.ctx.DeleteShader(s.id)
	s.id = 0
}

// Compile builds one shader stage from src.
func Compile(ctx Context, stage Stage, src Source) (*Shader, error) {
	if strings.TrimSpace(src.Text) == "" {
		return nil, &CompileError{Stage: stage, Log: "empty shader source"}
	}
	text, err := resolveSource(ctx.ShadingLanguage(), stage, src)
	if err != nil {
		return nil, err
	}

	id := ctx.CreateShader(stage.Enum())
	if id == 0 {
		return nil, &AllocationError{Object: stage.String() + " shader"}
	}
	ctx.ShaderSource(id, text)
	ctx.CompileShader(id)
	if ctx.GetShaderi(id, COMPILE_STATUS) == 0 {
		log := strings.TrimSpace(ctx.GetShaderInfoLog(id))
		ctx.DeleteShader(id)
		if log == "" {
			log = unknownCompileError
		}
		return nil, &CompileError{Stage: stage, Log: log}
	}
	Logger().Debug("shader compiled", "stage", stage, "id", id)
	return &Shader{ctx: ctx, id: id, stage: stage}, nil
}

func resolveSource(dialect glsl.Version, stage Stage, src Source) (string, error) {
	switch src.Language {
	case LanguageWGSL:
		return translateWGSL(dialect, stage, src.Text)
	default:
		return withDialectHeader(dialect, src.Text), nil
	}
}

// withDialectHeader prefixes text with the version directive (and default
// float precision on ES) unless it already declares a version.
func withDialectHeader(dialect glsl.Version, text string) string {
	if strings.HasPrefix(strings.TrimSpace(text), "#version") {
		return text
	}
	var sb strings.Builder
	sb.WriteString("#version " + dialect.String() + "\n")
	if dialect.ES {
		sb.WriteString("precision highp float;\n")
		sb.WriteString("precision highp int;\n")
	}
	sb.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}
