package twinview

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const float32EqualityThreshold = 1e-5

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= float32EqualityThreshold
}

func vecAlmostEqual(a, b mgl32.Vec4) bool {
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func vec3AlmostEqual(a, b mgl32.Vec3) bool {
	return vecAlmostEqual(a.Vec4(0), b.Vec4(0))
}

var sampleMatrices = []struct {
	name string
	m    Matrix4
}{
	{"identity", Identity()},
	{"rotate x", RotateX(0.7)},
	{"rotate y", RotateY(-1.3)},
	{"rotate z", RotateZ(2.1)},
	{"scale", Scale(2.5)},
	{"translate", Translate(1, -2, 3)},
	{"perspective", Perspective(math.Pi/4, 1.5, 0.1, 100)},
	{"arbitrary", Matrix4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
}

func TestIdentityIsNeutral(t *testing.T) {
	for _, tc := range sampleMatrices {
		t.Run(tc.name, func(t *testing.T) {
			if got := Multiply(Identity(), tc.m); !got.ApproxEqual(tc.m, float32EqualityThreshold) {
				t.Errorf("I·M = \n%v\nwant\n%v", got, tc.m)
			}
			if got := Multiply(tc.m, Identity()); !got.ApproxEqual(tc.m, float32EqualityThreshold) {
				t.Errorf("M·I = \n%v\nwant\n%v", got, tc.m)
			}
		})
	}
}

func TestConstructorsKeepAffineLastRow(t *testing.T) {
	for _, tc := range sampleMatrices[:6] {
		t.Run(tc.name, func(t *testing.T) {
			for col, want := range []float32{0, 0, 0, 1} {
				if got := tc.m.At(3, col); got != want {
					t.Errorf("At(3, %d) = %v, want %v", col, got, want)
				}
			}
		})
	}
}

func TestZeroRotationIsIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		if got := Rotate(axis, 0); !got.ApproxEqual(Identity(), float32EqualityThreshold) {
			t.Errorf("Rotate(%d, 0) = \n%v", axis, got)
		}
	}
}

func TestRotationInverseCancels(t *testing.T) {
	angles := []float32{0.1, 1, -2.5, math.Pi, 7.3}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, a := range angles {
			got := Multiply(Rotate(axis, a), Rotate(axis, -a))
			if !got.ApproxEqual(Identity(), float32EqualityThreshold) {
				t.Errorf("axis %d, angle %v: R(a)·R(-a) = \n%v", axis, a, got)
			}
		}
	}
}

func TestRotationComposesAdditively(t *testing.T) {
	pairs := [][2]float32{{0.2, 0.3}, {1, -0.4}, {-2, 2.5}, {math.Pi / 2, math.Pi / 2}}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, p := range pairs {
			got := Multiply(Rotate(axis, p[0]), Rotate(axis, p[1]))
			want := Rotate(axis, p[0]+p[1])
			if !got.ApproxEqual(want, float32EqualityThreshold) {
				t.Errorf("axis %d, %v+%v: got \n%v\nwant\n%v", axis, p[0], p[1], got, want)
			}
		}
	}
}

func TestRotationHandedness(t *testing.T) {
	testCases := []struct {
		name string
		m    Matrix4
		in   mgl32.Vec4
		want mgl32.Vec4
	}{
		{"x takes +y to +z", RotateX(math.Pi / 2), mgl32.Vec4{0, 1, 0, 1}, mgl32.Vec4{0, 0, 1, 1}},
		{"y takes +z to +x", RotateY(math.Pi / 2), mgl32.Vec4{0, 0, 1, 1}, mgl32.Vec4{1, 0, 0, 1}},
		{"z takes +x to +y", RotateZ(math.Pi / 2), mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec4{0, 1, 0, 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Transform(tc.in); !vecAlmostEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRotateUnknownAxis(t *testing.T) {
	if got := Rotate(Axis(7), 1); got != Identity() {
		t.Errorf("Rotate(7, 1) = \n%v", got)
	}
}

func TestTranslateOrigin(t *testing.T) {
	m := Translate(3, -4, 5)
	got := m.Transform(mgl32.Vec4{0, 0, 0, 1})
	if want := (mgl32.Vec4{3, -4, 5, 1}); !vecAlmostEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if m[12] != 3 || m[13] != -4 || m[14] != 5 {
		t.Errorf("translation not in last column: %v", m)
	}
}

func TestScalePoint(t *testing.T) {
	for _, s := range []float32{0, 0.5, 1, -2, 10} {
		got := Scale(s).Transform(mgl32.Vec4{1, 1, 1, 1})
		if want := (mgl32.Vec4{s, s, s, 1}); !vecAlmostEqual(got, want) {
			t.Errorf("Scale(%v): got %v, want %v", s, got, want)
		}
	}
}

func TestPerspectiveRightAngle(t *testing.T) {
	p := Perspective(math.Pi/2, 1.0, 0.1, 100.0)
	if !almostEqual(p.At(0, 0), 1) || !almostEqual(p.At(1, 1), 1) {
		t.Errorf("diagonal = %v, %v, want 1, 1", p.At(0, 0), p.At(1, 1))
	}
	if p.At(3, 2) != -1 || p.At(3, 3) != 0 {
		t.Errorf("last row = %v %v %v %v, want 0 0 -1 0", p.At(3, 0), p.At(3, 1), p.At(3, 2), p.At(3, 3))
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.5, 50
	p := Perspective(math.Pi/3, 16.0/9.0, near, far)

	testCases := []struct {
		name string
		z    float32
		want float32
	}{
		{"near plane", -near, -1},
		{"far plane", -far, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clip := p.Transform(mgl32.Vec4{0, 0, tc.z, 1})
			if got := clip[2] / clip[3]; math.Abs(float64(got-tc.want)) > 1e-4 {
				t.Errorf("depth = %v, want %v", got, tc.want)
			}
			if !almostEqual(clip[3], -tc.z) {
				t.Errorf("w = %v, want %v", clip[3], -tc.z)
			}
		})
	}
}

func TestMultiplyOrder(t *testing.T) {
	a := Translate(1, 0, 0)
	b := RotateZ(math.Pi / 2)
	p := mgl32.Vec4{1, 0, 0, 1}

	// b first, then a: (1,0,0) -> (0,1,0) -> (1,1,0)
	if got, want := Multiply(a, b).Transform(p), (mgl32.Vec4{1, 1, 0, 1}); !vecAlmostEqual(got, want) {
		t.Errorf("a·b: got %v, want %v", got, want)
	}
	// a first, then b: (1,0,0) -> (2,0,0) -> (0,2,0)
	if got, want := Multiply(b, a).Transform(p), (mgl32.Vec4{0, 2, 0, 1}); !vecAlmostEqual(got, want) {
		t.Errorf("b·a: got %v, want %v", got, want)
	}
	if got := a.Mul(b); got != Multiply(a, b) {
		t.Errorf("Mul differs from Multiply")
	}
}

func TestTransformPointAndDirection(t *testing.T) {
	m := Multiply(Translate(0, 0, -3), RotateY(math.Pi/2))
	if got, want := m.TransformPoint(mgl32.Vec3{0, 0, 1}), (mgl32.Vec3{1, 0, -3}); !vec3AlmostEqual(got, want) {
		t.Errorf("point: got %v, want %v", got, want)
	}
	if got, want := m.TransformDirection(mgl32.Vec3{0, 0, 1}), (mgl32.Vec3{1, 0, 0}); !vec3AlmostEqual(got, want) {
		t.Errorf("direction: got %v, want %v", got, want)
	}
}

func TestFloatsColumnMajor(t *testing.T) {
	m := Translate(7, 8, 9)
	f := m.Floats()
	if len(f) != 16 {
		t.Fatalf("len = %d", len(f))
	}
	if f[12] != 7 || f[13] != 8 || f[14] != 9 || f[15] != 1 {
		t.Errorf("Floats() = %v", f)
	}
	f[0] = 42
	if m[0] != 1 {
		t.Errorf("Floats shares storage with the matrix")
	}
}

func TestNaNPropagates(t *testing.T) {
	nan := float32(math.NaN())
	got := Multiply(Translate(nan, 0, 0), Identity())
	if !math.IsNaN(float64(got[12])) {
		t.Errorf("got %v, want NaN", got[12])
	}
	if got.ApproxEqual(got, 1) {
		t.Errorf("a matrix holding NaN compared equal to itself")
	}
}

func TestString(t *testing.T) {
	want := "  1.00   0.00   0.00   2.00\n" +
		"  0.00   1.00   0.00   3.00\n" +
		"  0.00   0.00   1.00   4.00\n" +
		"  0.00   0.00   0.00   1.00"
	if got := Translate(2, 3, 4).String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
