package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/cloth/pkg/gfx"
	"github.com/kjkrol/cloth/pkg/gfx/gfxtest"
)

func TestStage(t *testing.T) {
	assert.Equal(t, "vertex", gfx.StageVertex.String())
	assert.Equal(t, "fragment", gfx.StageFragment.String())
	assert.Equal(t, gfx.VERTEX_SHADER, gfx.StageVertex.Enum())
	assert.Equal(t, gfx.FRAGMENT_SHADER, gfx.StageFragment.Enum())
}

func TestCompile(t *testing.T) {
	rec := gfxtest.New()

	sh, err := gfx.Compile(rec, gfx.StageVertex, gfx.DefaultVertexShader())
	require.NoError(t, err)
	assert.Equal(t, gfx.StageVertex, sh.Stage())
	assert.NotZero(t, sh.ID())
	assert.Equal(t, 1, rec.LiveShaders())

	src := rec.ShaderSourceOf(sh.ID())
	assert.Regexp(t, `^#version 330 core\n`, src)
	assert.Contains(t, src, "aPosition")

	sh.Release()
	sh.Release()
	assert.Equal(t, 0, rec.LiveShaders())
	assert.Equal(t, 1, rec.Count("DeleteShader"))
}

func TestCompile_KeepsExplicitVersion(t *testing.T) {
	rec := gfxtest.New()
	text := "#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"

	sh, err := gfx.Compile(rec, gfx.StageFragment, gfx.GLSL(text))
	require.NoError(t, err)
	assert.Equal(t, text, rec.ShaderSourceOf(sh.ID()))
}

func TestCompile_Failure(t *testing.T) {
	rec := gfxtest.New()

	_, err := gfx.Compile(rec, gfx.StageFragment, gfx.GLSL(brokenShader))
	var compileErr *gfx.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, gfx.StageFragment, compileErr.Stage)
	assert.Contains(t, compileErr.Log, "syntax error")
	assert.Contains(t, err.Error(), "fragment")
	assert.Equal(t, 0, rec.LiveShaders(), "failed shader must be deleted")
}

func TestCompile_UnknownErrorFallback(t *testing.T) {
	rec := gfxtest.New()
	rec.Compile = func(gfx.Enum, string) (bool, string) { return false, "  \n" }

	_, err := gfx.Compile(rec, gfx.StageVertex, gfx.DefaultVertexShader())
	var compileErr *gfx.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "unknown compile error", compileErr.Log)
}

func TestCompile_EmptySourceSkipsDriver(t *testing.T) {
	rec := gfxtest.New()

	_, err := gfx.Compile(rec, gfx.StageVertex, gfx.GLSL(" \t\n"))
	assert.ErrorIs(t, err, gfx.ErrCompile)
	assert.Equal(t, 0, rec.Count("CreateShader"))
}

func TestCompile_AllocationError(t *testing.T) {
	rec := gfxtest.New()
	rec.FailOn("CreateShader")

	_, err := gfx.Compile(rec, gfx.StageVertex, gfx.DefaultVertexShader())
	var allocErr *gfx.AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, "vertex shader", allocErr.Object)
	assert.Equal(t, 0, rec.Count("ShaderSource"))
}
