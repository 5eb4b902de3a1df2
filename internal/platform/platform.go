// Package platform provides the host surfaces: a GLFW window on desktop
// builds and an HTML canvas on js/wasm builds. Both satisfy gfx.Surface.
package platform

// pixelSize converts a size reported by the windowing system, which may be
// negative or zero while minimized, to viewport dimensions.
func pixelSize(width, height int) (uint32, uint32) {
	return uint32(max(width, 0)), uint32(max(height, 0))
}
