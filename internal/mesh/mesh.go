// Package mesh holds indexed triangle meshes: a generated UV sphere, a
// built-in cube and meshes read from Wavefront OBJ files. Front faces wind
// counter-clockwise.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/smasonuk/twinview"
)

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c uint32) {
	return m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]
}

// Transform applies t to every position and the linear part of t to every
// normal. Normals are renormalised, which keeps them right for rotations and
// uniform scales.
func (m *Mesh) Transform(t twinview.Matrix4) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = t.TransformPoint(v.Position)
		if n := t.TransformDirection(v.Normal); n.Len() > 0 {
			v.Normal = n.Normalize()
		}
	}
}

// Bounds returns the axis aligned bounding box. An empty mesh gives two zero
// vectors.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], v.Position[a])
			hi[a] = max(hi[a], v.Position[a])
		}
	}
	return lo, hi
}

// Centre moves the mesh so the centre of its bounding box is the origin.
func (m *Mesh) Centre() {
	lo, hi := m.Bounds()
	c := lo.Add(hi).Mul(0.5)
	m.Transform(twinview.Translate(-c[0], -c[1], -c[2]))
}

// FitTo scales the mesh uniformly about the origin so that its largest
// bounding box extent becomes size. A mesh with no extent is left alone.
func (m *Mesh) FitTo(size float32) {
	lo, hi := m.Bounds()
	ext := hi.Sub(lo)
	largest := max(ext[0], ext[1], ext[2])
	if largest == 0 {
		return
	}
	m.Transform(twinview.Scale(size / largest))
}

// builder de-duplicates vertices while a mesh is assembled.
type builder[K comparable] struct {
	mesh  *Mesh
	index map[K]uint32
}

func newBuilder[K comparable]() *builder[K] {
	return &builder[K]{
		mesh:  &Mesh{},
		index: make(map[K]uint32),
	}
}

func (b *builder[K]) add(key K, v Vertex) uint32 {
	if i, found := b.index[key]; found {
		return i
	}
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	i := uint32(len(b.mesh.Vertices) - 1)
	b.index[key] = i
	return i
}

func (b *builder[K]) triangle(a, c, d uint32) {
	b.mesh.Indices = append(b.mesh.Indices, a, c, d)
}
