package gfx

import "github.com/kjkrol/gokg/pkg/geom"

// Viewport is the drawable rectangle most recently handed to the driver.
// Its origin is always (0, 0).
type Viewport struct {
	rect    geom.AABB[uint32]
	version uint64
}

func NewViewport(width, height uint32) Viewport {
	return Viewport{rect: geom.NewAABBAt(geom.NewVec[uint32](0, 0), width, height)}
}

func (v Viewport) Rect() geom.AABB[uint32] {
	return v.rect
}

func (v Viewport) Size() geom.Vec[uint32] {
	return geom.NewVec(v.rect.BottomRight.X-v.rect.TopLeft.X, v.rect.BottomRight.Y-v.rect.TopLeft.Y)
}

// Version counts the resizes applied so far.
func (v Viewport) Version() uint64 {
	return v.version
}

func (v *Viewport) resize(width, height uint32) {
	v.rect = geom.NewAABBAt(geom.NewVec[uint32](0, 0), width, height)
	v.version++
}
