package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"

	"github.com/smasonuk/geodesic"
)

// ErrInvalidSettings is wrapped with the offending field by Validate.
var ErrInvalidSettings = errors.New("config: invalid settings")

type Settings struct {
	Geometry GeometrySettings `json:"geometry"`
	Display  DisplaySettings  `json:"display"`
	Server   ServerSettings   `json:"server"`
}

type GeometrySettings struct {
	Lat      float64 `json:"lat"`
	LongStep float64 `json:"longStep"`
	Cutoff   float64 `json:"cutoff"`
}

type DisplaySettings struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Title       string  `json:"title"`
	MarkerColor string  `json:"markerColor"`
	Glossiness  float64 `json:"glossiness"`
	MarkerSize  float64 `json:"markerSize"`
	Background  string  `json:"background"`
	Ground      string  `json:"ground"`
}

type ServerSettings struct {
	Addr string `json:"addr"`
}

func Default() Settings {
	return Settings{
		Geometry: GeometrySettings{
			Lat:      geodesic.DefaultLat,
			LongStep: geodesic.DefaultLongStep,
			Cutoff:   geodesic.DefaultCutoff,
		},
		Display: DisplaySettings{
			Width:       640,
			Height:      640,
			Title:       "Geodesic Point Cloud",
			MarkerColor: "#1010FF",
			Glossiness:  80,
			MarkerSize:  0.05,
			Background:  "#000000",
			Ground:      "#BF0000",
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}

// Load reads settings from path on top of the defaults. A missing file is not
// an error.
func Load(path string) (Settings, error) {
	settings := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No %s found, using defaults", path)
			return settings, nil
		}
		return settings, fmt.Errorf("could not open settings file %s: %w", path, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing settings file %s: %w", path, err)
	}
	log.Printf("Loaded settings from %s", path)

	return settings, nil
}

func (s Settings) Validate() error {
	g := s.Geometry
	if g.Lat <= 0 || g.Lat >= 90 {
		return fmt.Errorf("geometry.lat %v must be in (0, 90): %w", g.Lat, ErrInvalidSettings)
	}
	if g.LongStep <= 0 {
		return fmt.Errorf("geometry.longStep %v must be positive: %w", g.LongStep, ErrInvalidSettings)
	}
	if g.Cutoff < -1 || g.Cutoff > 1 {
		return fmt.Errorf("geometry.cutoff %v must be in [-1, 1]: %w", g.Cutoff, ErrInvalidSettings)
	}

	d := s.Display
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("display size %dx%d must be positive: %w", d.Width, d.Height, ErrInvalidSettings)
	}
	if d.MarkerSize <= 0 {
		return fmt.Errorf("display.markerSize %v must be positive: %w", d.MarkerSize, ErrInvalidSettings)
	}
	for name, hex := range map[string]string{
		"display.markerColor": d.MarkerColor,
		"display.background":  d.Background,
		"display.ground":      d.Ground,
	} {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// PipelineOptions assumes the settings have been validated.
func (s Settings) PipelineOptions() geodesic.Options {
	markerColor, _ := ParseColor(s.Display.MarkerColor)
	return geodesic.Options{
		Lat:      s.Geometry.Lat,
		LongStep: s.Geometry.LongStep,
		Cutoff:   s.Geometry.Cutoff,
		Style: geodesic.MarkerStyle{
			Color:      markerColor,
			Glossiness: s.Display.Glossiness,
		},
	}
}

// ParseColor parses "#rrggbb" into an opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q is not #rrggbb: %w", hex, ErrInvalidSettings)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not #rrggbb: %w", hex, ErrInvalidSettings)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
