package render

import "github.com/go-gl/mathgl/mgl32"

// clipVertex is a vertex in clip space carrying the attributes that are
// interpolated when an edge is cut.
type clipVertex struct {
	pos   mgl32.Vec4
	u, v  float32
	shade float32
}

// nearDistance is the signed distance to the near plane in clip space,
// positive on the visible side (NDC z >= -1).
func nearDistance(c clipVertex) float32 {
	return c.pos[2] + c.pos[3]
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	return clipVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		u:     a.u + (b.u-a.u)*t,
		v:     a.v + (b.v-a.v)*t,
		shade: a.shade + (b.shade-a.shade)*t,
	}
}

// clipNear keeps the part of the triangle in front of the near plane. The
// result has 0, 3 or 4 corners in the original winding order and is written
// into out.
func clipNear(tri [3]clipVertex, out []clipVertex) []clipVertex {
	out = out[:0]
	for i := range tri {
		cur, next := tri[i], tri[(i+1)%3]
		dc, dn := nearDistance(cur), nearDistance(next)
		if dc >= 0 {
			out = append(out, cur)
		}
		if (dc >= 0) != (dn >= 0) {
			out = append(out, lerpClip(cur, next, dc/(dc-dn)))
		}
	}
	if len(out) < 3 {
		return out[:0]
	}
	return out
}
