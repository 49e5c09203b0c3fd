package geodesic

import (
	"math"

	"github.com/golang/geo/s1"
)

const (
	// DefaultLat is the latitude of the two pentagonal bands, atan(1/2) in degrees.
	DefaultLat = 26.57
	// DefaultLongStep is half the longitude spacing inside a band.
	DefaultLongStep = 36.0
)

// LatLong is a position on the sphere in degrees.
type LatLong struct {
	Lat  float64
	Long float64
}

// Point converts to Cartesian coordinates. Latitude is shifted by 90 degrees
// before use as the polar angle, so Lat 90 and Lat -90 land on z = -1 and z = 1
// whatever the longitude.
func (ll LatLong) Point() Point3 {
	long := (s1.Angle(ll.Long) * s1.Degree).Radians()
	polar := (s1.Angle(ll.Lat+90) * s1.Degree).Radians()

	return Point3{
		X: math.Cos(long) * math.Sin(polar),
		Y: math.Sin(long) * math.Sin(polar),
		Z: math.Cos(polar),
	}
}

// IcosahedronLatLongs returns the 12 base vertex positions: the lat 90 pole,
// five points at +lat on even multiples of longStep, five at -lat on odd
// multiples, then the lat -90 pole.
func IcosahedronLatLongs(lat, longStep float64) [12]LatLong {
	var lls [12]LatLong
	lls[0] = LatLong{Lat: 90, Long: 0}
	for i := 0; i < 5; i++ {
		lls[1+i] = LatLong{Lat: lat, Long: float64(2*i) * longStep}
		lls[6+i] = LatLong{Lat: -lat, Long: float64(2*i+1) * longStep}
	}
	lls[11] = LatLong{Lat: -90, Long: 0}
	return lls
}

func IcosahedronVertices(lat, longStep float64) [12]Point3 {
	var pnts [12]Point3
	for i, ll := range IcosahedronLatLongs(lat, longStep) {
		pnts[i] = ll.Point()
	}
	return pnts
}
