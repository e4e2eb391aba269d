package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// KeyRepeating is true on the frame key goes down and then at the repeat
// rate while it is held.
func KeyRepeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py, rx, ry, rw, rh float64) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

// PointerPhase is what the primary pointer did this frame.
type PointerPhase int

const (
	PointerIdle PointerPhase = iota
	PointerPressed
	PointerMoved
	PointerReleased
)

// PointerEvent is one frame of primary pointer input in screen coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
}

// Pointer merges the left mouse button and the first touch into a single
// press/move/release stream.
type Pointer struct {
	touchID  ebiten.TouchID
	touching bool
	mouse    bool
	x, y     float64

	justPressed []ebiten.TouchID
}

// Poll reads this frame's input. Call once per Update.
func (p *Pointer) Poll() PointerEvent {
	if ev, ok := p.pollTouch(); ok {
		return ev
	}
	return p.pollMouse()
}

func (p *Pointer) pollTouch() (PointerEvent, bool) {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			return PointerEvent{Phase: PointerReleased, X: p.x, Y: p.y}, true
		}
		return p.moveTo(ebiten.TouchPosition(p.touchID)), true
	}
	if p.mouse {
		return PointerEvent{}, false
	}
	p.justPressed = inpututil.AppendJustPressedTouchIDs(p.justPressed[:0])
	if len(p.justPressed) == 0 {
		return PointerEvent{}, false
	}
	p.touchID = p.justPressed[0]
	p.touching = true
	tx, ty := ebiten.TouchPosition(p.touchID)
	p.x, p.y = float64(tx), float64(ty)
	return PointerEvent{Phase: PointerPressed, X: p.x, Y: p.y}, true
}

func (p *Pointer) pollMouse() PointerEvent {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.mouse = true
		p.x, p.y = float64(mx), float64(my)
		return PointerEvent{Phase: PointerPressed, X: p.x, Y: p.y}
	case p.mouse && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.mouse = false
		return PointerEvent{Phase: PointerReleased, X: float64(mx), Y: float64(my)}
	case p.mouse:
		return p.moveTo(mx, my)
	}
	return PointerEvent{Phase: PointerIdle, X: float64(mx), Y: float64(my)}
}

func (p *Pointer) moveTo(ix, iy int) PointerEvent {
	x, y := float64(ix), float64(iy)
	if x == p.x && y == p.y {
		return PointerEvent{Phase: PointerIdle, X: x, Y: y}
	}
	p.x, p.y = x, y
	return PointerEvent{Phase: PointerMoved, X: x, Y: y}
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}
