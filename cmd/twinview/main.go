package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/twinview"
	"github.com/smasonuk/twinview/internal/config"
)

type options struct {
	configPath    string
	meshPath      string
	meshTexture   string
	sphereTexture string
	wireframe     bool
	dump          bool
	phiDeg        float64
	thetaDeg      float64
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML settings file.")
	flag.StringVar(&opts.meshPath, "mesh", "", "Wavefront OBJ file for the keyboard object (default: a cube).")
	flag.StringVar(&opts.meshTexture, "mesh-texture", "", "Texture image for the mesh (default: a checkerboard).")
	flag.StringVar(&opts.sphereTexture, "sphere-texture", "", "Texture image for the sphere (default: generated noise).")
	flag.BoolVar(&opts.wireframe, "wireframe", false, "Outline every triangle.")
	flag.BoolVar(&opts.dump, "dump", false, "Print the matrices of one frame and exit without opening a window.")
	flag.Float64Var(&opts.phiDeg, "phi", 0, "Rotation about Y in degrees for -dump.")
	flag.Float64Var(&opts.thetaDeg, "theta", 0, "Rotation about X in degrees for -dump.")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if opts.meshPath != "" {
		cfg.Mesh.Path = opts.meshPath
	}
	if opts.meshTexture != "" {
		cfg.Mesh.Texture = opts.meshTexture
	}
	if opts.sphereTexture != "" {
		cfg.Sphere.Texture = opts.sphereTexture
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if opts.dump {
		rotation := twinview.RotationState{
			Phi:   mgl32.DegToRad(float32(opts.phiDeg)),
			Theta: mgl32.DegToRad(float32(opts.thetaDeg)),
		}
		dumpFrame(os.Stdout, cfg, rotation)
		return nil
	}

	log.Println("Initializing viewer...")
	game, err := NewGame(cfg, opts.wireframe)
	if err != nil {
		return err
	}
	log.Println("Initialization Complete.")

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("viewer stopped: %w", err)
	}
	return nil
}

// dumpFrame composes a single frame in which both objects hold rotation and
// prints its matrices.
func dumpFrame(w io.Writer, cfg config.Config, rotation twinview.RotationState) {
	c := twinview.NewComposer(cfg.Placement(), cfg.Perspective())
	c.AddObject("mesh", rotation, nil)
	c.AddObject("sphere", rotation, nil)
	frame := c.Compose()

	fmt.Fprintf(w, "projection:\n%v\n", frame.Projection)
	for _, o := range frame.Objects {
		fmt.Fprintf(w, "\n%s model-view:\n%v\n", o.Name, o.ModelView)
	}
}
