package twinview

// Drawable is the rendering side of an object. Draw receives the object's own
// model-view matrix together with the shared projection.
type Drawable interface {
	Draw(modelView, projection Matrix4)
}

type object struct {
	name     string
	source   RotationSource
	drawable Drawable
}

// ObjectTransform pairs a drawable with the model-view computed for it this
// frame.
type ObjectTransform struct {
	Name      string
	Drawable  Drawable
	Rotation  RotationState
	ModelView Matrix4
}

// FrameTransforms is everything one frame needs: a projection shared by all
// objects and one model-view per object, in registration order.
type FrameTransforms struct {
	Projection Matrix4
	Objects    []ObjectTransform
}

// Render hands every object its matrices. Objects with a nil Drawable are
// skipped.
func (f FrameTransforms) Render() {
	for _, o := range f.Objects {
		if o.Drawable == nil {
			continue
		}
		o.Drawable.Draw(o.ModelView, f.Projection)
	}
}

// Composer builds the per-frame matrices for a fixed camera and projection.
// It keeps no matrices between frames; all moving state lives in the
// rotation sources.
type Composer struct {
	camera     CameraPlacement
	projection Projection
	objects    []object
}

func NewComposer(camera CameraPlacement, projection Projection) *Composer {
	return &Composer{
		camera:     camera,
		projection: projection,
	}
}

func (c *Composer) AddObject(name string, source RotationSource, d Drawable) {
	if source == nil {
		source = RotationState{}
	}
	c.objects = append(c.objects, object{name: name, source: source, drawable: d})
}

func (c *Composer) Camera() CameraPlacement {
	return c.camera
}

func (c *Composer) Projection() Projection {
	return c.projection
}

// Compose polls each rotation source once and returns the matrices for this
// frame. Each model-view is Multiply(Orientation(state), camera).
func (c *Composer) Compose() FrameTransforms {
	camera := c.camera.Matrix()

	frame := FrameTransforms{
		Projection: c.projection.Matrix(),
		Objects:    make([]ObjectTransform, 0, len(c.objects)),
	}
	for _, o := range c.objects {
		o.source.Poll()
		state := o.source.Rotation()
		frame.Objects = append(frame.Objects, ObjectTransform{
			Name:      o.name,
			Drawable:  o.drawable,
			Rotation:  state,
			ModelView: Multiply(Orientation(state), camera),
		})
	}
	return frame
}
