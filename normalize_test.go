package geodesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []Point3{
		NewPoint3(3, 4, 0),
		NewPoint3(0, 0, -0.2),
		NewPoint3(1e-3, 2e-3, -5e-4),
		NewPoint3(-7, 12, 0.5),
	}

	for _, p := range testCases {
		n := Normalize(p)
		assert.InDelta(t, 1.0, n.Magnitude(), float64EqualityThreshold, "%v", p)

		// colinear and pointing the same way
		cross := p.Vec3().Cross(n.Vec3())
		assert.InDelta(t, 0.0, cross.Len(), float64EqualityThreshold, "%v", p)
		assert.Greater(t, p.Vec3().Dot(n.Vec3()), 0.0)

		again := Normalize(n)
		assert.True(t, again.ApproxEqual(n, 1e-12), "%v vs %v", again, n)
	}
}

func TestNormalizePanicsOnZero(t *testing.T) {
	assert.PanicsWithValue(t, ErrZeroMagnitude, func() {
		Normalize(Point3{})
	})
}

func TestNormalizeKeepsVerticesInPlace(t *testing.T) {
	for _, v := range IcosahedronVertices(DefaultLat, DefaultLongStep) {
		assert.True(t, Normalize(v).ApproxEqual(v, 1e-9))
	}
}
