package geodesic

import "fmt"

// Face is an ordered triple of vertex indices. The order only matters for the
// keys generated from it.
type Face [3]int

// IcosahedronFaces fans five triangles from vertex 0, interleaves ten between
// the two bands and fans the last five from vertex 11.
var IcosahedronFaces = [20]Face{
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 4},
	{0, 4, 5},
	{0, 5, 1},
	{1, 6, 2},
	{6, 2, 7},
	{2, 7, 3},
	{7, 3, 8},
	{3, 8, 4},
	{8, 4, 9},
	{4, 9, 5},
	{9, 5, 10},
	{5, 10, 1},
	{10, 1, 6},
	{11, 6, 7},
	{11, 7, 8},
	{11, 8, 9},
	{11, 9, 10},
	{11, 10, 6},
}

// Edges returns the six directed vertex pairs of the face:
// (p1,p2) (p2,p1) (p2,p3) (p3,p2) (p3,p1) (p1,p3).
func (f Face) Edges() [6][2]int {
	p1, p2, p3 := f[0], f[1], f[2]
	return [6][2]int{
		{p1, p2}, {p2, p1},
		{p2, p3}, {p3, p2},
		{p3, p1}, {p1, p3},
	}
}

// ValidateFaces checks that every face index addresses one of vertexCount vertices.
func ValidateFaces(faces []Face, vertexCount int) error {
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= vertexCount {
				return fmt.Errorf("face %d %v, index %d of %d vertices: %w", i, f, idx, vertexCount, ErrFaceIndex)
			}
		}
	}
	return nil
}

// UndirectedEdges returns each edge of the face list once, smaller index first.
func UndirectedEdges(faces []Face) [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, f := range faces {
		for _, e := range f.Edges() {
			a, b := min(e[0], e[1]), max(e[0], e[1])
			if seen[[2]int{a, b}] {
				continue
			}
			seen[[2]int{a, b}] = true
			edges = append(edges, [2]int{a, b})
		}
	}
	return edges
}
