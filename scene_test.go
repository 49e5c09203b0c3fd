package geodesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneRecords(t *testing.T) {
	s := NewScene()
	assert.False(t, s.HasGround())
	assert.Equal(t, DefaultLightPosition, s.Light())

	SetupScene(s)
	s.CreateMarker(NewPoint3(1, 0, 0), DefaultMarkerStyle.Color, 80)

	assert.True(t, s.HasGround())
	assert.Equal(t, []Point3{DefaultLightPosition}, s.Lights())
	require.Len(t, s.Markers(), 1)
	assert.Equal(t, Marker{Position: NewPoint3(1, 0, 0), Color: DefaultMarkerStyle.Color, Glossiness: 80}, s.Markers()[0])
}

func TestSceneMarkersIsACopy(t *testing.T) {
	s := NewScene()
	s.CreateMarker(NewPoint3(1, 0, 0), GroundColor, 1)

	m := s.Markers()
	m[0].Glossiness = 99
	assert.Equal(t, 1.0, s.Markers()[0].Glossiness)
}

func TestSceneBounds(t *testing.T) {
	s := NewScene()
	_, _, ok := s.Bounds()
	assert.False(t, ok)

	s.CreateMarker(NewPoint3(1, -2, 0.5), GroundColor, 0)
	s.CreateMarker(NewPoint3(-1, 3, 0), GroundColor, 0)
	s.CreateMarker(NewPoint3(0, 0, 2), GroundColor, 0)

	lo, hi, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, NewPoint3(-1, -2, 0), lo)
	assert.Equal(t, NewPoint3(1, 3, 2), hi)
}

func TestSceneMarkersByDistance(t *testing.T) {
	s := NewScene()
	s.CreateMarker(NewPoint3(0, 1, 0), GroundColor, 0)
	s.CreateMarker(NewPoint3(0, -1, 0), GroundColor, 0)
	s.CreateMarker(NewPoint3(0, 0, 0), GroundColor, 0)

	sorted := s.MarkersByDistance(NewPoint3(0, 5, 0))
	require.Len(t, sorted, 3)
	assert.Equal(t, -1.0, sorted[0].Position.Y)
	assert.Equal(t, 0.0, sorted[1].Position.Y)
	assert.Equal(t, 1.0, sorted[2].Position.Y)
}

func TestGroundCorners(t *testing.T) {
	corners := NewScene().GroundCorners()
	for _, c := range corners {
		assert.Equal(t, GroundZ, c.Z)
		assert.Equal(t, GroundSize/2, max(c.X, -c.X))
	}
}
