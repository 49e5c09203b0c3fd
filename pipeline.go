package geodesic

import "log"

type Options struct {
	Lat      float64
	LongStep float64
	Cutoff   float64
	Style    MarkerStyle
}

func DefaultOptions() Options {
	return Options{
		Lat:      DefaultLat,
		LongStep: DefaultLongStep,
		Cutoff:   DefaultCutoff,
		Style:    DefaultMarkerStyle,
	}
}

// Pipeline generates the icosahedron, subdivides it once and selects the
// points to display. It holds no state between builds.
type Pipeline struct {
	opts  Options
	faces []Face
}

func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{
		opts:  opts,
		faces: IcosahedronFaces[:],
	}
}

type Result struct {
	Vertices [12]Point3
	Store    *PointStore
	Selected []Selection
	style    MarkerStyle
}

func (p *Pipeline) Build() *Result {
	log.Println("Generating icosahedron vertices...")
	vertices := IcosahedronVertices(p.opts.Lat, p.opts.LongStep)

	log.Println("Subdividing faces...")
	store := Subdivide(vertices[:], p.faces)
	log.Printf("Points: %d (vertices %d, edge points %d, centroids %d)",
		store.Len(), store.CountKind(KindVertex), store.CountKind(KindEdge), store.CountKind(KindCentroid))

	selected := Select(store, p.opts.Cutoff)
	log.Printf("Selected: %d above z=%.2f", len(selected), p.opts.Cutoff)

	return &Result{
		Vertices: vertices,
		Store:    store,
		Selected: selected,
		style:    p.opts.Style,
	}
}

// Export hands the selected points to v and returns how many were placed.
func (r *Result) Export(v Viewer) int {
	return Export(r.Selected, v, r.style)
}
