package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NewSphere builds a UV sphere centred on the origin with segments slices
// around the Y axis and segments/2 stacks from pole to pole. The seam column
// is duplicated so texture coordinates wrap from u=0 to u=1. Fewer than 3
// slices or 2 stacks are raised to those minimums.
func NewSphere(radius float32, segments int) *Mesh {
	slices := max(segments, 3)
	stacks := max(segments/2, 2)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (slices+1)*(stacks+1)),
		Indices:  make([]uint32, 0, slices*stacks*6),
	}
	for i := 0; i <= stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		sinT, cosT := math.Sincos(theta)
		for j := 0; j <= slices; j++ {
			phi := 2 * math.Pi * float64(j) / float64(slices)
			sinP, cosP := math.Sincos(phi)
			n := mgl32.Vec3{float32(sinT * sinP), float32(cosT), float32(sinT * cosP)}
			m.Vertices = append(m.Vertices, Vertex{
				Position: n.Mul(radius),
				Normal:   n,
				UV:       mgl32.Vec2{float32(j) / float32(slices), 1 - float32(i)/float32(stacks)},
			})
		}
	}

	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := i*row + j
			b := a + row
			c := b + 1
			d := a + 1
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}
	return m
}

var cubeFaces = []struct {
	normal mgl32.Vec3
	right  mgl32.Vec3
	up     mgl32.Vec3
}{
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
}

// Cube is an axis aligned cube with edge length size and each face mapped to
// the whole texture. It stands in when no mesh file is given.
func Cube(size float32) *Mesh {
	h := size / 2
	m := &Mesh{}
	corners := []struct {
		s, t float32
		uv   mgl32.Vec2
	}{
		{-1, -1, mgl32.Vec2{0, 0}},
		{1, -1, mgl32.Vec2{1, 0}},
		{1, 1, mgl32.Vec2{1, 1}},
		{-1, 1, mgl32.Vec2{0, 1}},
	}
	for _, f := range cubeFaces {
		base := uint32(len(m.Vertices))
		for _, c := range corners {
			p := f.normal.Add(f.right.Mul(c.s)).Add(f.up.Mul(c.t)).Mul(h)
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: f.normal, UV: c.uv})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
