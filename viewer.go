package geodesic

import "image/color"

// Viewer is whatever displays the point cloud.
type Viewer interface {
	CreateMarker(pos Point3, col color.RGBA, glossiness float64)
	CreateLight(pos Point3)
	CreateGroundPlane()
}

// Loop is a per-frame driver. Advance reports false once the viewer has closed.
type Loop interface {
	Advance() bool
	ExitRequested() bool
}

// RunLoop advances l until it stops or asks to exit, returning the number of
// frames advanced.
func RunLoop(l Loop) int {
	frames := 0
	for l.Advance() && !l.ExitRequested() {
		frames++
	}
	return frames
}

// DefaultLightPosition is where SetupScene puts its point light.
var DefaultLightPosition = Point3{X: 0, Y: 5, Z: 5}

// SetupScene adds the light and the ground plane.
func SetupScene(v Viewer) {
	v.CreateLight(DefaultLightPosition)
	v.CreateGroundPlane()
}
