package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/smasonuk/twinview"
	"github.com/smasonuk/twinview/internal/mesh"
)

const (
	ambient = 0.35
	diffuse = 0.65
)

// screenVertex is a vertex after projection: window pixels with y down,
// NDC depth, texture coordinates and a light level in [0, 1].
type screenVertex struct {
	X, Y  float32
	Depth float32
	U, V  float32
	Shade float32
}

type projectedTriangle struct {
	v [3]screenVertex
	// depth is the mean NDC depth, larger is farther away.
	depth float32
}

// project transforms every triangle of m to window coordinates. Triangles
// crossing the near plane are clipped to it, and those that face away from
// the eye or lie wholly beyond the far plane are dropped. Light comes from
// the eye, so a surface facing the viewer is fully lit.
func project(m *mesh.Mesh, modelView, projection twinview.Matrix4, width, height int) []projectedTriangle {
	mvp := twinview.Multiply(projection, modelView)
	w, h := float32(width), float32(height)

	verts := make([]clipVertex, len(m.Vertices))
	for i, v := range m.Vertices {
		var shade float32 = ambient
		if n := modelView.TransformDirection(v.Normal); n.Len() > 0 {
			shade += diffuse * max(0, n.Normalize()[2])
		}
		verts[i] = clipVertex{
			pos:   mvp.Transform(v.Position.Vec4(1)),
			u:     v.UV[0],
			v:     v.UV[1],
			shade: min(shade, 1),
		}
	}

	tris := make([]projectedTriangle, 0, m.TriangleCount())
	poly := make([]clipVertex, 0, 4)
	screen := make([]screenVertex, 0, 4)
	for t := 0; t < m.TriangleCount(); t++ {
		ia, ib, ic := m.Triangle(t)
		tri := [3]clipVertex{verts[ia], verts[ib], verts[ic]}
		poly = clipNear(tri, poly)

		screen = screen[:0]
		for _, c := range poly {
			if c.pos[3] <= 0 {
				screen = screen[:0]
				break
			}
			ndc := c.pos.Vec3().Mul(1 / c.pos[3])
			screen = append(screen, screenVertex{
				X:     (ndc[0] + 1) / 2 * w,
				Y:     (1 - ndc[1]) / 2 * h,
				Depth: ndc[2],
				U:     c.u,
				V:     c.v,
				Shade: c.shade,
			})
		}

		for i := 1; i+1 < len(screen); i++ {
			a, b, c := screen[0], screen[i], screen[i+1]
			if a.Depth > 1 && b.Depth > 1 && c.Depth > 1 {
				continue
			}
			// Window y points down, so counter-clockwise in NDC is clockwise here.
			if signedArea(a, b, c) >= 0 {
				continue
			}
			tris = append(tris, projectedTriangle{
				v:     [3]screenVertex{a, b, c},
				depth: (a.Depth + b.Depth + c.Depth) / 3,
			})
		}
	}
	return tris
}

func signedArea(a, b, c screenVertex) float32 {
	ab := mgl32.Vec2{b.X - a.X, b.Y - a.Y}
	ac := mgl32.Vec2{c.X - a.X, c.Y - a.Y}
	return (ab[0]*ac[1] - ab[1]*ac[0]) / 2
}
