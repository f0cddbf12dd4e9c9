// Package rotator turns keyboard and mouse input into the phi/theta angles
// that orient an object. Both rotators satisfy twinview.RotationSource.
package rotator

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

type Keyboard interface {
	IsKeyPressed(key ebiten.Key) bool
}

type Pointer interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
}

// EbitenInput reads the live ebiten input state. Its methods must be called
// from the game's Update.
type EbitenInput struct{}

func Ebiten() EbitenInput {
	return EbitenInput{}
}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func clamp(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// wrapAngle maps a to [0, 2π).
func wrapAngle(a float32) float32 {
	w := math.Mod(float64(a), 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	r := float32(w)
	if r >= 2*math.Pi {
		r = 0
	}
	return r
}
