package twinview

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Matrix4 is a 4x4 transform stored column-major: the element at row r,
// column c lives at index c*4+r. The layout is the one glUniformMatrix4fv and
// mgl32.Mat4 use, so a Matrix4 converts to and from mgl32.Mat4 for free.
//
// Matrix4 is a value type. Every function here returns a new matrix.
type Matrix4 [16]float32

// Axis selects the rotation axis for Rotate.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func Identity() Matrix4 {
	return Matrix4(mgl32.Ident4())
}

// RotateX, RotateY and RotateZ share one right-handed convention: a positive
// angle turns counter-clockwise when looking from the positive axis towards
// the origin. RotateX(π/2) takes +Y to +Z, RotateY(π/2) takes +Z to +X and
// RotateZ(π/2) takes +X to +Y.
func RotateX(angle float32) Matrix4 {
	return Matrix4(mgl32.HomogRotate3DX(angle))
}

func RotateY(angle float32) Matrix4 {
	return Matrix4(mgl32.HomogRotate3DY(angle))
}

func RotateZ(angle float32) Matrix4 {
	return Matrix4(mgl32.HomogRotate3DZ(angle))
}

// Rotate dispatches to RotateX, RotateY or RotateZ. Unknown axes give the
// identity.
func Rotate(axis Axis, angle float32) Matrix4 {
	switch axis {
	case AxisX:
		return RotateX(angle)
	case AxisY:
		return RotateY(angle)
	case AxisZ:
		return RotateZ(angle)
	}
	return Identity()
}

// Scale is a uniform scale. Scale(0) is allowed and collapses everything to
// the origin.
func Scale(factor float32) Matrix4 {
	return Matrix4(mgl32.Scale3D(factor, factor, factor))
}

func Translate(x, y, z float32) Matrix4 {
	return Matrix4(mgl32.Translate3D(x, y, z))
}

// Perspective is the symmetric OpenGL projection. Eye space is right-handed
// with the camera looking down -Z; after the homogeneous divide a point at
// z = -near lands on depth -1 and a point at z = -far on depth +1.
//
// Arguments are not checked. fovy must be in (0, π), aspect > 0 and
// 0 < near < far, otherwise the result is degenerate or mirrored.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	return Matrix4(mgl32.Perspective(fovy, aspect, near, far))
}

// Multiply returns a·b. Applied to a column vector, b acts first and a second:
// Multiply(a, b).Transform(v) == a.Transform(b.Transform(v)).
func Multiply(a, b Matrix4) Matrix4 {
	return Matrix4(mgl32.Mat4(a).Mul4(mgl32.Mat4(b)))
}

// Mul is Multiply(m, b).
func (m Matrix4) Mul(b Matrix4) Matrix4 {
	return Multiply(m, b)
}

func (m Matrix4) Transform(v mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Mat4(m).Mul4x1(v)
}

// TransformPoint applies m to the point p (w = 1) and drops w without
// dividing, which is exact for every constructor except Perspective.
func (m Matrix4) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return m.Transform(p.Vec4(1)).Vec3()
}

// TransformDirection applies the linear part of m to d, ignoring translation.
func (m Matrix4) TransformDirection(d mgl32.Vec3) mgl32.Vec3 {
	return m.Transform(d.Vec4(0)).Vec3()
}

func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Floats returns the 16 elements in column-major order, ready for a uniform
// upload.
func (m Matrix4) Floats() []float32 {
	out := make([]float32, 16)
	copy(out, m[:])
	return out
}

// ApproxEqual reports whether every element of m is within eps of the same
// element of b. NaN never compares equal.
func (m Matrix4) ApproxEqual(b Matrix4, eps float32) bool {
	for i := range m {
		if !(mgl32.Abs(m[i]-b[i]) <= eps) {
			return false
		}
	}
	return true
}

// String prints the matrix row by row, the way it reads on paper.
func (m Matrix4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		for col := 0; col < 4; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%6.2f", m.At(row, col)))
		}
	}
	return sb.String()
}
