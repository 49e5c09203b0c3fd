package geodesic

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a position in model space. It has no identity beyond its value.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func Point3FromVec3(v mgl64.Vec3) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}

func (p Point3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func (p Point3) Add(other Point3) Point3 {
	return Point3FromVec3(p.Vec3().Add(other.Vec3()))
}

func (p Point3) Scale(s float64) Point3 {
	return Point3FromVec3(p.Vec3().Mul(s))
}

func (p Point3) Magnitude() float64 {
	return p.Vec3().Len()
}

// DistanceTo
func (p Point3) DistanceTo(other Point3) float64 {
	return p.Vec3().Sub(other.Vec3()).Len()
}

// ApproxEqual reports whether every coordinate differs by at most eps.
func (p Point3) ApproxEqual(other Point3, eps float64) bool {
	return math.Abs(p.X-other.X) <= eps &&
		math.Abs(p.Y-other.Y) <= eps &&
		math.Abs(p.Z-other.Z) <= eps
}

func (p Point3) Array() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}
