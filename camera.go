package twinview

// CameraPlacement is the fixed view transform shared by every object: the
// scene is pushed Distance units down -Z, then tilted by Pitch about X and
// turned by Yaw about Y. Angles are radians.
type CameraPlacement struct {
	Distance float32
	Pitch    float32
	Yaw      float32
}

// Matrix folds the placement together as
// Multiply(Multiply(Translate(0, 0, -Distance), RotateX(Pitch)), RotateY(Yaw)).
func (c CameraPlacement) Matrix() Matrix4 {
	m := Translate(0, 0, -c.Distance)
	m = Multiply(m, RotateX(c.Pitch))
	m = Multiply(m, RotateY(c.Yaw))
	return m
}

// Projection holds the perspective parameters. FovY is the vertical field of
// view in radians.
type Projection struct {
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

func (p Projection) Matrix() Matrix4 {
	return Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}
