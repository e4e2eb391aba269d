package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/pagestrip/internal/menustrip"
)

// StripView hosts a menu strip on screen. Pointer input is translated to
// viewport coordinates for the strip's gesture.
type StripView struct {
	Gesture  *menustrip.Gesture
	X, Y     float64
	FontSize float64
	// BottomPadding lifts the focus indicator off the strip's bottom edge.
	BottomPadding float64
}

func NewStripView(g *menustrip.Gesture, fontSize float64) *StripView {
	return &StripView{Gesture: g, FontSize: fontSize}
}

func (v *StripView) strip() *menustrip.Strip { return v.Gesture.Strip }

func (v *StripView) contains(x, y float64) bool {
	s := v.strip()
	return PointInRect(x, y, v.X, v.Y, s.Width(), s.Height())
}

// HandlePointer returns true if the event belongs to the strip.
func (v *StripView) HandlePointer(ev PointerEvent) bool {
	lx, ly := ev.X-v.X, ev.Y-v.Y
	switch ev.Phase {
	case PointerPressed:
		if !v.contains(ev.X, ev.Y) {
			return false
		}
		v.Gesture.Press(lx, ly)
		return true
	case PointerMoved:
		if !v.Gesture.Active() {
			return false
		}
		v.Gesture.Move(lx, ly)
		return true
	case PointerReleased:
		if !v.Gesture.Active() {
			return false
		}
		v.Gesture.Release(lx, ly)
		return true
	}
	return false
}

// HandleWheel scrolls the strip when the cursor is over it.
func (v *StripView) HandleWheel(cursorX, cursorY float64) {
	if !v.contains(cursorX, cursorY) {
		return
	}
	wx, wy := MouseWheelDelta()
	if d := wx + wy; d != 0 {
		v.strip().ScrollBy(-d * ScrollWheelSpeed)
	}
}

func (v *StripView) Draw(dst *ebiten.Image) {
	s := v.strip()
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 {
		return
	}
	clip := image.Rect(int(v.X), int(v.Y), int(v.X+w), int(v.Y+h))
	sub := dst.SubImage(clip).(*ebiten.Image)

	vector.DrawFilledRect(sub, float32(v.X), float32(v.Y), float32(w), float32(h), ColorSurface, false)
	vector.DrawFilledRect(sub, float32(v.X), float32(v.Y+h-1), float32(w), 1, ColorSurfaceHover, false)

	off := s.ContentOffset()
	for _, c := range s.Cells() {
		cx := v.X + c.Frame.X - off
		if cx+c.Frame.W < v.X || cx > v.X+w {
			continue
		}
		clr := ColorTextSecondary
		if c.Selected {
			clr = ColorText
		}
		label := fmt.Sprint(c.Content)
		DrawTextCentered(sub, label, cx+c.Frame.W/2, v.Y+c.Frame.H/2, v.FontSize, clr)
	}

	ind := s.Indicator()
	if ind == nil || ind.Hidden {
		return
	}
	ix := v.X + ind.CenterX - off - ind.Width/2
	iy := v.Y + h - ind.Height - v.BottomPadding
	vector.DrawFilledRect(sub, float32(ix), float32(iy), float32(ind.Width), float32(ind.Height), ColorPrimary, false)
}
