package twinview

// RotationState is a yaw/pitch pair in radians. Phi turns about Y, Theta
// about X.
type RotationState struct {
	Phi   float32
	Theta float32
}

// RotationSource is an input device that owns a RotationState. Poll samples
// the device and updates the state; Rotation returns the current snapshot.
type RotationSource interface {
	Poll()
	Rotation() RotationState
}

// Poll does nothing; a bare RotationState is a source that never moves.
func (r RotationState) Poll() {}

func (r RotationState) Rotation() RotationState {
	return r
}

// Orientation is RotateY(Phi)·RotateX(Theta): the pitch is taken in the
// already yawed frame.
func Orientation(r RotationState) Matrix4 {
	return Multiply(RotateY(r.Phi), RotateX(r.Theta))
}
