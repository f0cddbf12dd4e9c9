// Package config loads the viewer settings from YAML. Angles are written in
// degrees in the file and converted to radians on the way out.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/smasonuk/twinview"
)

var (
	ErrInvalidFov      = errors.New("field of view must be between 0 and 180 degrees")
	ErrInvalidAspect   = errors.New("aspect ratio must not be negative")
	ErrInvalidNear     = errors.New("near plane must be positive")
	ErrInvalidFar      = errors.New("far plane must be beyond the near plane")
	ErrInvalidDistance = errors.New("camera distance must be positive")
	ErrInvalidWindow   = errors.New("window size must be positive")
	ErrInvalidSphere   = errors.New("sphere needs a positive radius and at least 3 segments")
	ErrInvalidMeshSize = errors.New("mesh size must be positive")
	ErrInvalidAngle    = errors.New("camera angles and key rate must be finite")
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Camera struct {
	Distance float32 `yaml:"distance"`
	PitchDeg float32 `yaml:"pitch_deg"`
	YawDeg   float32 `yaml:"yaw_deg"`
}

type Projection struct {
	FovDeg float32 `yaml:"fov_deg"`
	// Aspect of 0 means width/height of the window.
	Aspect float32 `yaml:"aspect"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

type Sphere struct {
	Radius   float32 `yaml:"radius"`
	Segments int     `yaml:"segments"`
	Texture  string  `yaml:"texture"`
}

type Mesh struct {
	Path    string `yaml:"path"`
	Texture string `yaml:"texture"`
	// Size is the largest extent the mesh is scaled to after loading.
	Size float32 `yaml:"size"`
}

type Input struct {
	KeyRateDeg float32 `yaml:"key_rate_deg"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Sphere     Sphere     `yaml:"sphere"`
	Mesh       Mesh       `yaml:"mesh"`
	Input      Input      `yaml:"input"`
}

func Default() Config {
	return Config{
		Window: Window{Width: 600, Height: 600, Title: "twinview"},
		Camera: Camera{Distance: 3, PitchDeg: 22.5, YawDeg: 45},
		Projection: Projection{
			FovDeg: 45,
			Aspect: 1,
			Near:   0.1,
			Far:    100,
		},
		Sphere: Sphere{Radius: 0.3, Segments: 50},
		Mesh:   Mesh{Size: 1},
		Input:  Input{KeyRateDeg: 90},
	}
}

// Load reads a YAML file on top of Default, so keys left out of the file keep
// their default values. The result is validated.
func Load(fileName string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(fileName)
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", fileName, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", fileName, err)
	}
	return cfg, nil
}

// Validate reports every problem at once; check for a specific one with
// errors.Is. Every comparison is written so that NaN fails it.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, ErrInvalidWindow)
	}
	if !positive(c.Camera.Distance) {
		errs = append(errs, ErrInvalidDistance)
	}
	if !finite(c.Camera.PitchDeg) || !finite(c.Camera.YawDeg) || !finite(c.Input.KeyRateDeg) {
		errs = append(errs, ErrInvalidAngle)
	}
	if !(c.Projection.FovDeg > 0 && c.Projection.FovDeg < 180) {
		errs = append(errs, ErrInvalidFov)
	}
	if !(c.Projection.Aspect >= 0) || !finite(c.Projection.Aspect) {
		errs = append(errs, ErrInvalidAspect)
	}
	if !positive(c.Projection.Near) {
		errs = append(errs, ErrInvalidNear)
	} else if !(c.Projection.Far > c.Projection.Near) || !finite(c.Projection.Far) {
		errs = append(errs, ErrInvalidFar)
	}
	if !positive(c.Sphere.Radius) || c.Sphere.Segments < 3 {
		errs = append(errs, ErrInvalidSphere)
	}
	if !positive(c.Mesh.Size) {
		errs = append(errs, ErrInvalidMeshSize)
	}
	return errors.Join(errs...)
}

func finite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// positive is false for NaN and +Inf as well as for x <= 0.
func positive(x float32) bool {
	return x > 0 && finite(x)
}

func (c Config) Placement() twinview.CameraPlacement {
	return twinview.CameraPlacement{
		Distance: c.Camera.Distance,
		Pitch:    mgl32.DegToRad(c.Camera.PitchDeg),
		Yaw:      mgl32.DegToRad(c.Camera.YawDeg),
	}
}

func (c Config) Perspective() twinview.Projection {
	aspect := c.Projection.Aspect
	if aspect == 0 {
		aspect = float32(c.Window.Width) / float32(c.Window.Height)
	}
	return twinview.Projection{
		FovY:   mgl32.DegToRad(c.Projection.FovDeg),
		Aspect: aspect,
		Near:   c.Projection.Near,
		Far:    c.Projection.Far,
	}
}

// KeyRate is the keyboard turn rate in radians per second.
func (c Config) KeyRate() float32 {
	return mgl32.DegToRad(c.Input.KeyRateDeg)
}
