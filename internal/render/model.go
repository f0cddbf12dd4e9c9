package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/twinview"
	"github.com/smasonuk/twinview/internal/mesh"
)

// Model is a mesh with an optional texture. Drawing it queues its visible
// triangles in the scene.
type Model struct {
	Mesh    *mesh.Mesh
	Texture *ebiten.Image

	scene *Scene
}

var _ twinview.Drawable = (*Model)(nil)

func NewModel(scene *Scene, m *mesh.Mesh, texture *ebiten.Image) *Model {
	return &Model{Mesh: m, Texture: texture, scene: scene}
}

func (m *Model) Draw(modelView, projection twinview.Matrix4) {
	tris := project(m.Mesh, modelView, projection, m.scene.Width, m.scene.Height)
	m.scene.add(tris, m.Texture)
}
