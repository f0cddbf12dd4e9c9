package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/smasonuk/twinview/internal/config"
	"github.com/smasonuk/twinview/internal/mesh"
	"github.com/smasonuk/twinview/internal/texture"
)

const (
	noiseSeed    = 1
	noiseWidth   = 512
	noiseHeight  = 256
	checkerSize  = 256
	checkerCells = 8
)

type assets struct {
	mesh          *mesh.Mesh
	meshTexture   *ebiten.Image
	sphere        *mesh.Mesh
	sphereTexture *ebiten.Image
}

func loadAssets(cfg config.Config) (*assets, error) {
	a := &assets{}

	var err error
	if cfg.Mesh.Path == "" {
		log.Println("No mesh given, using a cube.")
		a.mesh = mesh.Cube(1)
	} else {
		log.Printf("Loading mesh %s...", cfg.Mesh.Path)
		if a.mesh, err = loadMesh(cfg.Mesh.Path); err != nil {
			return nil, err
		}
		log.Printf("Mesh has %d triangles, %d vertices.", a.mesh.TriangleCount(), len(a.mesh.Vertices))
	}
	a.mesh.Centre()
	a.mesh.FitTo(cfg.Mesh.Size)

	log.Printf("Creating sphere with %d segments...", cfg.Sphere.Segments)
	a.sphere = mesh.NewSphere(cfg.Sphere.Radius, cfg.Sphere.Segments)

	checker := func() image.Image {
		return texture.Checker(checkerSize, checkerSize, checkerCells,
			color.RGBA{R: 200, G: 60, B: 40, A: 255}, color.RGBA{R: 240, G: 230, B: 210, A: 255})
	}
	if a.meshTexture, err = loadTexture(cfg.Mesh.Texture, checker); err != nil {
		return nil, err
	}
	noise := func() image.Image {
		return texture.Noise(noiseWidth, noiseHeight, noiseSeed)
	}
	if a.sphereTexture, err = loadTexture(cfg.Sphere.Texture, noise); err != nil {
		return nil, err
	}
	return a, nil
}

// loadMesh reads an OBJ file, showing a progress bar when stderr is a
// terminal.
func loadMesh(fileName string) (*mesh.Mesh, error) {
	var progress mesh.Progress
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = func(size int64) io.WriteCloser {
			return progressbar.DefaultBytes(size, fmt.Sprintf("load %s", fileName))
		}
	}
	return mesh.LoadOBJ(fileName, progress)
}

func loadTexture(fileName string, fallback func() image.Image) (*ebiten.Image, error) {
	var img image.Image
	if fileName == "" {
		img = fallback()
	} else {
		log.Printf("Loading texture %s...", fileName)
		var err error
		if img, err = texture.Load(fileName); err != nil {
			return nil, err
		}
	}
	return ebiten.NewImageFromImage(img), nil
}
