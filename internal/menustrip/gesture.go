package menustrip

import "math"

// Gesture turns pointer input in viewport coordinates into strip touches.
// A press that travels further than Slop cancels the touch and scrolls the
// strip instead.
type Gesture struct {
	Strip *Strip
	Slop  float64

	pressed  bool
	dragging bool
	startX   float64
	lastX    float64
}

func (g *Gesture) Press(x, y float64) {
	g.pressed, g.dragging = true, false
	g.startX, g.lastX = x, x
	g.Strip.TouchBegan(x, y)
}

func (g *Gesture) Move(x, y float64) {
	if !g.pressed {
		return
	}
	if !g.dragging && math.Abs(x-g.startX) > g.Slop {
		g.dragging = true
		g.Strip.TouchCancelled()
	}
	if g.dragging {
		g.Strip.ScrollBy(g.lastX - x)
	}
	g.lastX = x
}

func (g *Gesture) Release(x, y float64) {
	if g.pressed && !g.dragging {
		g.Strip.TouchEnded(x, y)
	}
	g.pressed, g.dragging = false, false
}

// Active reports whether a press is being tracked.
func (g *Gesture) Active() bool { return g.pressed }
