package geodesic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultFov  = 60.0
	DefaultNear = 1.0
	DefaultFar  = 10.0

	maxPitch = math.Pi/2 - 0.01
)

var (
	DefaultCameraPosition = Point3{X: 0, Y: 3, Z: 1}
	cameraUp              = mgl64.Vec3{0, 0, 1}
)

// Camera orbits a target point. Z is up.
type Camera struct {
	target   mgl64.Vec3
	distance float64
	yaw      float64
	pitch    float64
	fov      float64
	near     float64
	far      float64
}

// NewOrbitCamera places a camera at pos looking at target.
func NewOrbitCamera(pos, target Point3) *Camera {
	offset := pos.Vec3().Sub(target.Vec3())
	distance := offset.Len()

	c := &Camera{
		target:   target.Vec3(),
		distance: distance,
		fov:      DefaultFov,
		near:     DefaultNear,
		far:      DefaultFar,
	}
	if distance > 0 {
		c.yaw = math.Atan2(offset.Y(), offset.X())
		c.pitch = mgl64.Clamp(math.Asin(offset.Z()/distance), -maxPitch, maxPitch)
	}
	return c
}

func NewDefaultCamera() *Camera {
	return NewOrbitCamera(DefaultCameraPosition, Point3{})
}

func (c *Camera) Position() Point3 {
	cp := math.Cos(c.pitch)
	offset := mgl64.Vec3{
		cp * math.Cos(c.yaw),
		cp * math.Sin(c.yaw),
		math.Sin(c.pitch),
	}.Mul(c.distance)
	return Point3FromVec3(c.target.Add(offset))
}

func (c *Camera) Target() Point3 {
	return Point3FromVec3(c.target)
}

func (c *Camera) Distance() float64 {
	return c.distance
}

// AddAngle orbits by yaw around the up axis and by pitch towards it, both in
// radians. Pitch stops short of the poles.
func (c *Camera) AddAngle(yaw, pitch float64) {
	c.yaw = math.Mod(c.yaw+yaw, 2*math.Pi)
	c.pitch = mgl64.Clamp(c.pitch+pitch, -maxPitch, maxPitch)
}

// Zoom moves the camera along its view direction, keeping it between the near
// and far planes.
func (c *Camera) Zoom(delta float64) {
	c.distance = mgl64.Clamp(c.distance+delta, c.near, c.far)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position().Vec3(), c.target, cameraUp)
}

func (c *Camera) Projection(width, height int) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return mgl64.Perspective(mgl64.DegToRad(c.fov), aspect, c.near, c.far)
}

// Project maps p to screen coordinates with y growing downwards. depth is the
// distance in front of the camera; ok is false for points behind it.
func (c *Camera) Project(p Point3, width, height int) (x, y, depth float64, ok bool) {
	view := c.View()
	proj := c.Projection(width, height)

	clip := proj.Mul4(view).Mul4x1(p.Vec3().Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}

	win := mgl64.Project(p.Vec3(), view, proj, 0, 0, width, height)
	return win.X(), float64(height) - win.Y(), clip.W(), true
}

// Fov is the vertical field of view in degrees.
func (c *Camera) Fov() float64 {
	return c.fov
}
