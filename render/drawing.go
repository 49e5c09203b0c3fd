package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

func colorVertex(x, y float32, clr color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255.0,
		ColorG: float32(clr.G) / 255.0,
		ColorB: float32(clr.B) / 255.0,
		ColorA: float32(clr.A) / 255.0,
	}
}

func fillConvexPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	vertices := make([]ebiten.Vertex, len(xp))
	for i := range xp {
		vertices[i] = colorVertex(xp[i], yp[i], clr)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, indices, whiteSubImage(), op)
}

func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: strokeWidth})
	for i := range vertices {
		vertices[i].ColorR = float32(clr.R) / 255.0
		vertices[i].ColorG = float32(clr.G) / 255.0
		vertices[i].ColorB = float32(clr.B) / 255.0
		vertices[i].ColorA = float32(clr.A) / 255.0
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	screen.DrawTriangles(vertices, indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawMarker fills r, already laid out by markerRect.
func drawMarker(screen *ebiten.Image, r rect, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.side), float32(r.side), clr, true)
}
