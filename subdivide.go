package geodesic

// EdgeDivisor splits every edge into thirds.
const EdgeDivisor = 3.0

// DividePoint returns the point (div-1)/div of the way from a to b.
func DividePoint(a, b Point3, div float64) Point3 {
	sum := a.Add(b.Scale(div - 1))
	return Point3{X: sum.X / div, Y: sum.Y / div, Z: sum.Z / div}
}

// EdgePoint is (a + 2b) / 3. It is not a midpoint: EdgePoint(a, b) lies next
// to b and EdgePoint(b, a) lies next to a.
func EdgePoint(a, b Point3) Point3 {
	return DividePoint(a, b, EdgeDivisor)
}

func Centroid(a, b, c Point3) Point3 {
	sum := a.Add(b).Add(c)
	return Point3{X: sum.X / 3, Y: sum.Y / 3, Z: sum.Z / 3}
}

// Subdivide builds a new store holding every vertex under its VertexKey and,
// for each face, the six directed edge points and the face centroid.
//
// Faces sharing an edge insert the same keys with the same values, so the
// result holds each distinct point once. Face indices outside vertices panic.
func Subdivide(vertices []Point3, faces []Face) *PointStore {
	if err := ValidateFaces(faces, len(vertices)); err != nil {
		panic(err)
	}

	store := NewPointStore()
	for i, p := range vertices {
		store.Insert(VertexKey(i), p)
	}
	for _, f := range faces {
		subdivideFace(store, vertices, f)
	}
	return store
}

func subdivideFace(store *PointStore, vertices []Point3, f Face) {
	for _, e := range f.Edges() {
		store.Insert(EdgeKey(e[0], e[1]), EdgePoint(vertices[e[0]], vertices[e[1]]))
	}
	store.Insert(CentroidKey(f[0], f[1], f[2]), Centroid(vertices[f[0]], vertices[f[1]], vertices[f[2]]))
}
