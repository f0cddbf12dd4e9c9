package rotator

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/twinview"
)

// DefaultKeyRate is a quarter turn per second.
const DefaultKeyRate = math.Pi / 2

// maxKeyStep bounds the time credited to one poll so a stalled window does
// not spin the object when it resumes.
const maxKeyStep = 250 * time.Millisecond

// KeyRotator turns the object with the arrow keys: right and left change
// phi, up and down change theta, each at Rate radians per second.
type KeyRotator struct {
	Rate float32

	keys  Keyboard
	now   func() time.Time
	last  time.Time
	state twinview.RotationState
}

func NewKeyRotator(keys Keyboard, rate float32) *KeyRotator {
	return &KeyRotator{
		Rate: rate,
		keys: keys,
		now:  time.Now,
	}
}

func (k *KeyRotator) Poll() {
	t := k.now()
	if k.last.IsZero() {
		k.last = t
		return
	}
	dt := max(min(t.Sub(k.last), maxKeyStep), 0)
	k.last = t
	step := k.Rate * float32(dt.Seconds())

	if k.keys.IsKeyPressed(ebiten.KeyArrowRight) {
		k.state.Phi += step
	}
	if k.keys.IsKeyPressed(ebiten.KeyArrowLeft) {
		k.state.Phi -= step
	}
	if k.keys.IsKeyPressed(ebiten.KeyArrowUp) {
		k.state.Theta += step
	}
	if k.keys.IsKeyPressed(ebiten.KeyArrowDown) {
		k.state.Theta -= step
	}
	k.state.Phi = wrapAngle(k.state.Phi)
}

func (k *KeyRotator) Rotation() twinview.RotationState {
	return k.state
}

// MouseRotator turns the object while the left button is dragged. A drag
// across the full window width is half a turn of phi; a drag over the full
// height is half a turn of theta. Theta stays within [-π/2, π/2].
type MouseRotator struct {
	pointer       Pointer
	width, height int

	dragging     bool
	lastX, lastY int
	state        twinview.RotationState
}

func NewMouseRotator(pointer Pointer, width, height int) *MouseRotator {
	return &MouseRotator{
		pointer: pointer,
		width:   max(width, 1),
		height:  max(height, 1),
	}
}

func (m *MouseRotator) Poll() {
	x, y := m.pointer.CursorPosition()
	if !m.pointer.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		m.dragging = false
		return
	}
	if !m.dragging {
		m.dragging = true
		m.lastX, m.lastY = x, y
		return
	}

	dx := float32(x - m.lastX)
	dy := float32(y - m.lastY)
	m.lastX, m.lastY = x, y

	m.state.Phi += math.Pi * dx / float32(m.width)
	m.state.Theta += math.Pi * dy / float32(m.height)
	m.state.Theta = clamp(m.state.Theta, -math.Pi/2, math.Pi/2)
}

func (m *MouseRotator) Rotation() twinview.RotationState {
	return m.state
}
