package geodesic

import (
	"image/color"
	"sort"
)

const (
	// GroundZ is the height of the ground plane, just below the sphere.
	GroundZ    = -1.2
	GroundSize = 2.0
)

var GroundColor = color.RGBA{R: 0xBF, G: 0x00, B: 0x00, A: 0xFF}

type Marker struct {
	Position   Point3
	Color      color.RGBA
	Glossiness float64
}

// Scene is a Viewer that records what it is asked to show. Renderers draw
// from it.
type Scene struct {
	markers []Marker
	lights  []Point3
	ground  bool
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) CreateMarker(pos Point3, col color.RGBA, glossiness float64) {
	s.markers = append(s.markers, Marker{Position: pos, Color: col, Glossiness: glossiness})
}

func (s *Scene) CreateLight(pos Point3) {
	s.lights = append(s.lights, pos)
}

func (s *Scene) CreateGroundPlane() {
	s.ground = true
}

func (s *Scene) Markers() []Marker {
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

func (s *Scene) Lights() []Point3 {
	out := make([]Point3, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *Scene) HasGround() bool {
	return s.ground
}

// Light returns the first light, or DefaultLightPosition when none was added.
func (s *Scene) Light() Point3 {
	if len(s.lights) == 0 {
		return DefaultLightPosition
	}
	return s.lights[0]
}

// GroundCorners returns the four corners of the ground plane, counter-clockwise
// seen from above.
func (s *Scene) GroundCorners() [4]Point3 {
	h := GroundSize / 2
	return [4]Point3{
		{X: -h, Y: -h, Z: GroundZ},
		{X: h, Y: -h, Z: GroundZ},
		{X: h, Y: h, Z: GroundZ},
		{X: -h, Y: h, Z: GroundZ},
	}
}

// Bounds returns the bounding box of all markers. ok is false for an empty scene.
func (s *Scene) Bounds() (lo, hi Point3, ok bool) {
	if len(s.markers) == 0 {
		return Point3{}, Point3{}, false
	}
	lo, hi = s.markers[0].Position, s.markers[0].Position
	for _, m := range s.markers[1:] {
		p := m.Position
		lo = Point3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = Point3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi, true
}

// MarkersByDistance returns the markers sorted farthest first from eye, the
// order a painter's algorithm draws them in.
func (s *Scene) MarkersByDistance(eye Point3) []Marker {
	sorted := s.Markers()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position.DistanceTo(eye) > sorted[j].Position.DistanceTo(eye)
	})
	return sorted
}
