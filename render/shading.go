package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/geodesic"
)

const (
	ambient  = 0.2
	diffuse  = 0.8
	specular = 0.5
)

// shade lights a marker sitting on the unit sphere: ambient plus Lambert
// diffuse against light, plus a Blinn-Phong highlight sharpened by glossiness.
func shade(m geodesic.Marker, light, eye geodesic.Point3) color.RGBA {
	pos := m.Position.Vec3()
	normal := pos
	if normal.Len() > 0 {
		normal = normal.Normalize()
	}

	toLight := unit(light.Vec3().Sub(pos))
	toEye := unit(eye.Vec3().Sub(pos))

	intensity := ambient + diffuse*math.Max(0, normal.Dot(toLight))

	highlight := 0.0
	if half := toLight.Add(toEye); half.Len() > 0 && m.Glossiness > 0 {
		highlight = specular * math.Pow(math.Max(0, normal.Dot(half.Normalize())), m.Glossiness)
	}

	return color.RGBA{
		R: channel(m.Color.R, intensity, highlight),
		G: channel(m.Color.G, intensity, highlight),
		B: channel(m.Color.B, intensity, highlight),
		A: m.Color.A,
	}
}

func unit(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

func channel(c uint8, intensity, highlight float64) uint8 {
	v := float64(c)*intensity + 255*highlight
	return uint8(mgl64.Clamp(math.Round(v), 0, 255))
}

type rect struct {
	x, y, side float64
}

// markerRect sizes a marker of world size at the given depth for a vertical
// field of view fov (degrees) on a screen height pixels high.
func markerRect(x, y, depth, size, fov float64, height int) rect {
	focal := float64(height) / (2 * math.Tan(mgl64.DegToRad(fov)/2))
	side := math.Max(1, size*focal/depth)
	return rect{x: x - side/2, y: y - side/2, side: side}
}
