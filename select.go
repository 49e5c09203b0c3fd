package geodesic

import (
	"image/color"
	"log"
)

// DefaultCutoff drops roughly the lowest quarter of the sphere.
const DefaultCutoff = -0.4

// Selection is a stored point that passed the height filter.
type Selection struct {
	Key      Key
	Raw      Point3
	Position Point3 // Raw projected onto the unit sphere
}

// Select keeps every point with Z above cutoff, ordered by key.
func Select(store *PointStore, cutoff float64) []Selection {
	var selected []Selection
	for _, k := range store.Keys() {
		p, _ := store.Get(k)
		if p.Z <= cutoff {
			continue
		}
		selected = append(selected, Selection{
			Key:      k,
			Raw:      p,
			Position: Normalize(p),
		})
	}
	return selected
}

type MarkerStyle struct {
	Color      color.RGBA
	Glossiness float64
}

var DefaultMarkerStyle = MarkerStyle{
	Color:      color.RGBA{R: 0x10, G: 0x10, B: 0xFF, A: 0xFF},
	Glossiness: 80,
}

// Export places one marker per selection and returns how many were placed.
func Export(selected []Selection, v Viewer, style MarkerStyle) int {
	for _, s := range selected {
		v.CreateMarker(s.Position, style.Color, style.Glossiness)
	}
	log.Printf("Markers: %d", len(selected))
	return len(selected)
}
