package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/cloth/pkg/gfx"
	"github.com/kjkrol/cloth/pkg/gfx/gfxtest"
)

func compilePair(t *testing.T, rec *gfxtest.Recorder, vs, fs gfx.Source) (*gfx.Shader, *gfx.Shader) {
	t.Helper()
	v, err := gfx.Compile(rec, gfx.StageVertex, vs)
	require.NoError(t, err)
	f, err := gfx.Compile(rec, gfx.StageFragment, fs)
	require.NoError(t, err)
	return v, f
}

func TestLink(t *testing.T) {
	rec := gfxtest.New()
	vs, fs := compilePair(t, rec, gfx.DefaultVertexShader(), gfx.DefaultFragmentShader())

	p, err := gfx.Link(rec, vs, fs)
	require.NoError(t, err)
	assert.NotZero(t, p.ID())
	assert.Equal(t, 2, rec.Count("AttachShader"))
	assert.Equal(t, 0, rec.LiveShaders())
	assert.Equal(t, 1, rec.LivePrograms())

	p.Release()
	p.Release()
	assert.Equal(t, 0, rec.LivePrograms())
	assert.Equal(t, 1, rec.Count("DeleteProgram"))
}

func TestLink_MatchingVaryings(t *testing.T) {
	rec := gfxtest.New()
	vertex := gfx.GLSL(`layout(location = 0) in vec3 aPosition;
out vec4 vColor;

void main() {
    vColor = vec4(aPosition, 1.0);
    gl_Position = vec4(aPosition, 1.0);
}
`)
	vs, fs := compilePair(t, rec, vertex, gfx.GLSL(varyingFragment))

	_, err := gfx.Link(rec, vs, fs)
	assert.NoError(t, err)
}

func TestLink_SameStageRejectedByDriver(t *testing.T) {
	rec := gfxtest.New()
	a, err := gfx.Compile(rec, gfx.StageVertex, gfx.DefaultVertexShader())
	require.NoError(t, err)
	b, err := gfx.Compile(rec, gfx.StageVertex, gfx.DefaultVertexShader())
	require.NoError(t, err)

	_, err = gfx.Link(rec, a, b)
	var linkErr *gfx.LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.NotEmpty(t, linkErr.Log)
	assert.Equal(t, 0, rec.LivePrograms())
	assert.Equal(t, 0, rec.LiveShaders())
}

func TestLink_UnknownErrorFallback(t *testing.T) {
	rec := gfxtest.New()
	rec.Link = func([]gfxtest.AttachedShader) (bool, string) { return false, "" }
	vs, fs := compilePair(t, rec, gfx.DefaultVertexShader(), gfx.DefaultFragmentShader())

	_, err := gfx.Link(rec, vs, fs)
	assert.ErrorIs(t, err, gfx.ErrLink)
	assert.EqualError(t, err, "gfx: program link failed: unknown link error")
}

func TestLink_AllocationError(t *testing.T) {
	rec := gfxtest.New()
	vs, fs := compilePair(t, rec, gfx.DefaultVertexShader(), gfx.DefaultFragmentShader())
	rec.FailOn("CreateProgram")

	_, err := gfx.Link(rec, vs, fs)
	assert.ErrorIs(t, err, gfx.ErrAllocation)
	assert.Equal(t, 0, rec.LiveShaders())
	assert.Equal(t, 0, rec.Count("AttachShader"))
}
