package geodesic

// Normalize projects p onto the unit sphere.
//
// A zero-magnitude input cannot be reached from a well-formed icosahedron, so it
// panics with ErrZeroMagnitude instead of returning NaN coordinates.
func Normalize(p Point3) Point3 {
	v := p.Vec3()
	if v.Len() == 0 {
		panic(ErrZeroMagnitude)
	}
	return Point3FromVec3(v.Normalize())
}
