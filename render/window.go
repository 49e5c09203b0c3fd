package render

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/geodesic"
)

type Options struct {
	Width      int
	Height     int
	Title      string
	MarkerSize float64
	Background color.RGBA
	Ground     color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Width:      640,
		Height:     640,
		Title:      "Geodesic Point Cloud",
		MarkerSize: 0.05,
		Background: color.RGBA{A: 0xFF},
		Ground:     geodesic.GroundColor,
	}
}

// Window shows a scene through an orbit camera. It implements ebiten.Game and
// geodesic.Loop.
type Window struct {
	scene        *geodesic.Scene
	camera       *geodesic.Camera
	opts         Options
	lastX, lastY int
	dragged      bool
}

func NewWindow(scene *geodesic.Scene, camera *geodesic.Camera, opts Options) *Window {
	return &Window{
		scene:  scene,
		camera: camera,
		opts:   opts,
	}
}

// Advance applies one frame of mouse input to the camera: left drag orbits,
// the wheel zooms.
func (w *Window) Advance() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.dragged = true
		w.lastX, w.lastY = ebiten.CursorPosition()
	}
	if w.dragged {
		x, y := ebiten.CursorPosition()
		dx := float64(x-w.lastX) / 200.0
		dy := float64(y-w.lastY) / 200.0
		w.camera.AddAngle(-dx, dy)
		w.lastX, w.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.dragged = false
	}

	if _, wheel := ebiten.Wheel(); wheel != 0 {
		w.camera.Zoom(-wheel * 0.2)
	}
	return true
}

func (w *Window) ExitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (w *Window) Update() error {
	if !w.Advance() || w.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.opts.Background)

	if w.scene.HasGround() {
		w.drawGround(screen)
	}

	eye := w.camera.Position()
	light := w.scene.Light()
	for _, m := range w.scene.MarkersByDistance(eye) {
		x, y, depth, ok := w.camera.Project(m.Position, w.opts.Width, w.opts.Height)
		if !ok {
			continue
		}
		r := markerRect(x, y, depth, w.opts.MarkerSize, w.camera.Fov(), w.opts.Height)
		drawMarker(screen, r, shade(m, light, eye))
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nMarkers: %d", ebiten.ActualFPS(), len(w.scene.Markers())))
}

func (w *Window) drawGround(screen *ebiten.Image) {
	corners := w.scene.GroundCorners()
	xp := make([]float32, 0, len(corners))
	yp := make([]float32, 0, len(corners))
	for _, c := range corners {
		x, y, _, ok := w.camera.Project(c, w.opts.Width, w.opts.Height)
		if !ok {
			return
		}
		xp = append(xp, float32(x))
		yp = append(yp, float32(y))
	}

	fillConvexPolygon(screen, xp, yp, w.opts.Ground)
	drawPolygonOutline(screen, xp, yp, 1, color.RGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xFF})
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.opts.Width, w.opts.Height
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(w *Window) error {
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)

	log.Println("Opening window...")
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	log.Println("Window closed.")
	return nil
}
