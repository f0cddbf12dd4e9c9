package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/smasonuk/twinview"
	"github.com/smasonuk/twinview/internal/config"
	"github.com/smasonuk/twinview/internal/render"
	"github.com/smasonuk/twinview/internal/rotator"
)

type Game struct {
	width, height int
	composer      *twinview.Composer
	scene         *render.Scene
	mouse         *rotator.MouseRotator
	frame         twinview.FrameTransforms
}

func NewGame(cfg config.Config, wireframe bool) (*Game, error) {
	g := &Game{
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		composer: twinview.NewComposer(cfg.Placement(), cfg.Perspective()),
		scene:    render.NewScene(cfg.Window.Width, cfg.Window.Height),
	}
	g.scene.Wireframe = wireframe

	a, err := loadAssets(cfg)
	if err != nil {
		return nil, err
	}

	input := rotator.Ebiten()
	keys := rotator.NewKeyRotator(input, cfg.KeyRate())
	g.mouse = rotator.NewMouseRotator(input, g.width, g.height)

	g.composer.AddObject("mesh", keys, render.NewModel(g.scene, a.mesh, a.meshTexture))
	g.composer.AddObject("sphere", g.mouse, render.NewModel(g.scene, a.sphere, a.sphereTexture))
	return g, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.frame = g.composer.Compose()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Render()
	g.scene.Flush(screen)

	msg := fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS())
	for _, o := range g.frame.Objects {
		msg += fmt.Sprintf("\n%-6s phi %6.1f theta %6.1f", o.Name,
			mgl32.RadToDeg(o.Rotation.Phi), mgl32.RadToDeg(o.Rotation.Theta))
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
