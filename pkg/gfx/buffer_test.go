package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/cloth/pkg/gfx"
	"github.com/kjkrol/cloth/pkg/gfx/gfxtest"
)

func TestVertexBuffer_Upload(t *testing.T) {
	rec := gfxtest.New()
	buf, err := gfx.AllocateVertexBuffer(rec)
	require.NoError(t, err)
	assert.Empty(t, rec.BufferContents(buf.ID()))

	first := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	require.NoError(t, buf.Upload(first))
	assert.Equal(t, first, rec.BufferContents(buf.ID()))
	assert.Equal(t, 3, buf.Vertices())

	second := []float32{9, 9, 9}
	require.NoError(t, buf.Upload(second))
	assert.Equal(t, second, rec.BufferContents(buf.ID()))
	assert.Equal(t, 1, buf.Vertices())

	for _, c := range rec.Calls() {
		if c.Name == "BufferData" {
			assert.Equal(t, gfx.ARRAY_BUFFER, c.Args[0])
			assert.Equal(t, gfx.STATIC_DRAW, c.Args[2])
		}
	}
	assert.Less(t, rec.Index("BindBuffer"), rec.Index("BufferData"))
}

func TestVertexBuffer_UploadOutOfMemory(t *testing.T) {
	rec := gfxtest.New()
	buf, err := gfx.AllocateVertexBuffer(rec)
	require.NoError(t, err)
	require.NoError(t, buf.Upload([]float32{1, 2, 3}))

	rec.FailOn("BufferData")
	err = buf.Upload([]float32{4, 5, 6})
	var allocErr *gfx.AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, "buffer storage", allocErr.Object)
	assert.Equal(t, 0, buf.Vertices())
}

func TestVertexBuffer_AllocationError(t *testing.T) {
	rec := gfxtest.New()
	rec.FailOn("CreateBuffer")

	buf, err := gfx.AllocateVertexBuffer(rec)
	assert.Nil(t, buf)
	assert.ErrorIs(t, err, gfx.ErrAllocation)
}

func TestVertexBuffer_Release(t *testing.T) {
	rec := gfxtest.New()
	buf, err := gfx.AllocateVertexBuffer(rec)
	require.NoError(t, err)

	buf.Release()
	buf.Release()
	assert.Equal(t, 0, rec.LiveBuffers())
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
}
