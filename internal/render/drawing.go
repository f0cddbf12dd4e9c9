package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is the source coordinate of the solid white texel used for
// untextured triangles.
const whitePixel = 1

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image

	outlineColor = color.RGBA{R: 255, G: 255, B: 255, A: 96}
)

func solidWhite() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

func drawBatch(screen *ebiten.Image, b batch) {
	src := b.texture
	op := &ebiten.DrawTrianglesOptions{}
	if src == nil {
		src = solidWhite()
	} else {
		op.Address = ebiten.AddressRepeat
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawTriangles(b.vertices, b.indices, src, op)
}

func drawTriangleOutline(screen *ebiten.Image, t projectedTriangle, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(t.v[0].X, t.v[0].Y)
	path.LineTo(t.v[1].X, t.v[1].Y)
	path.LineTo(t.v[2].X, t.v[2].Y)
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1})

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = whitePixel
		vertices[i].SrcY = whitePixel
	}
	screen.DrawTriangles(vertices, indices, solidWhite(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
