// Package render draws textured meshes onto an ebiten screen. Triangles from
// every model are projected on the CPU, sorted back to front and painted in
// that order, so objects may overlap freely without a depth buffer.
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps a batch addressable with uint16 indices.
const maxBatchVertices = 65535 / 3 * 3

type sceneTriangle struct {
	projectedTriangle
	texture *ebiten.Image
}

// Scene gathers the triangles drawn by models during one frame. Flush paints
// and forgets them.
type Scene struct {
	Width, Height int
	// Background fills the screen at Flush; nil leaves it as is.
	Background color.Color
	// Wireframe outlines every triangle after it is filled.
	Wireframe bool

	tris []sceneTriangle
}

func NewScene(width, height int) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		Background: color.Black,
	}
}

func (s *Scene) add(tris []projectedTriangle, texture *ebiten.Image) {
	for _, t := range tris {
		s.tris = append(s.tris, sceneTriangle{projectedTriangle: t, texture: texture})
	}
}

// Len is the number of triangles waiting for Flush.
func (s *Scene) Len() int {
	return len(s.tris)
}

func (s *Scene) Flush(screen *ebiten.Image) {
	if s.Background != nil {
		screen.Fill(s.Background)
	}
	sortBackToFront(s.tris)
	for _, b := range batches(s.tris) {
		drawBatch(screen, b)
	}
	if s.Wireframe {
		for _, t := range s.tris {
			drawTriangleOutline(screen, t.projectedTriangle, outlineColor)
		}
	}
	s.tris = s.tris[:0]
}

func sortBackToFront(tris []sceneTriangle) {
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].depth > tris[j].depth
	})
}

// batch is a run of consecutive triangles sharing one texture.
type batch struct {
	texture  *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// batches splits sorted triangles into runs that can each be drawn with one
// DrawTriangles call without changing the paint order.
func batches(tris []sceneTriangle) []batch {
	var out []batch
	var cur *batch
	for _, t := range tris {
		if cur == nil || cur.texture != t.texture || len(cur.vertices)+3 > maxBatchVertices {
			out = append(out, batch{texture: t.texture})
			cur = &out[len(out)-1]
		}
		w, h := textureSize(t.texture)
		for _, v := range t.v {
			srcX, srcY := v.U*w, (1-v.V)*h
			if t.texture == nil {
				srcX, srcY = whitePixel, whitePixel
			}
			cur.indices = append(cur.indices, uint16(len(cur.vertices)))
			cur.vertices = append(cur.vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   srcX,
				SrcY:   srcY,
				ColorR: v.Shade,
				ColorG: v.Shade,
				ColorB: v.Shade,
				ColorA: 1,
			})
		}
	}
	return out
}

func textureSize(img *ebiten.Image) (float32, float32) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}
