package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/smasonuk/geodesic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `{"geometry": {"cutoff": -0.9}, "display": {"markerColor": "#00ff00"}}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -0.9, s.Geometry.Cutoff)
	assert.Equal(t, geodesic.DefaultLat, s.Geometry.Lat)
	assert.Equal(t, "#00ff00", s.Display.MarkerColor)
	assert.Equal(t, 640, s.Display.Width)
	require.NoError(t, s.Validate())
}

func TestLoadMalformed(t *testing.T) {
	path := writeSettings(t, `{"geometry": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing settings file")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"lat zero", func(s *Settings) { s.Geometry.Lat = 0 }},
		{"lat ninety", func(s *Settings) { s.Geometry.Lat = 90 }},
		{"long step", func(s *Settings) { s.Geometry.LongStep = -36 }},
		{"cutoff", func(s *Settings) { s.Geometry.Cutoff = -1.5 }},
		{"width", func(s *Settings) { s.Display.Width = 0 }},
		{"marker size", func(s *Settings) { s.Display.MarkerSize = 0 }},
		{"marker color", func(s *Settings) { s.Display.MarkerColor = "blue" }},
		{"ground color", func(s *Settings) { s.Display.Ground = "#12345z" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSettings), "%v", err)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#1010FF")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x10, B: 0xFF, A: 0xFF}, c)
	assert.Equal(t, "#1010FF", FormatColor(c))

	_, err = ParseColor("#1010F")
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestPipelineOptions(t *testing.T) {
	opts := Default().PipelineOptions()
	assert.Equal(t, geodesic.DefaultOptions(), opts)
}
