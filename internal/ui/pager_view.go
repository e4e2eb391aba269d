package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/pagestrip/internal/pager"
)

// PagerView hosts a pager on screen: it feeds pointer input to the drag
// gesture and draws the visible pages.
type PagerView struct {
	Gesture *pager.Gesture
	X, Y    float64

	// DrawPage renders one page into its screen rectangle.
	DrawPage func(dst *ebiten.Image, page pager.Page, x, y, w, h float64)

	tracking bool
}

func NewPagerView(g *pager.Gesture) *PagerView {
	return &PagerView{Gesture: g, DrawPage: DrawPageContent}
}

func (v *PagerView) contains(x, y float64) bool {
	p := v.Gesture.Pager
	return PointInRect(x, y, v.X, v.Y, p.Width(), p.Height())
}

// HandlePointer returns true if the event belongs to the pager.
func (v *PagerView) HandlePointer(ev PointerEvent) bool {
	switch ev.Phase {
	case PointerPressed:
		if !v.contains(ev.X, ev.Y) {
			return false
		}
		v.Gesture.Press(ev.X)
		v.tracking = true
		return true
	case PointerMoved:
		if !v.tracking {
			return false
		}
		v.Gesture.Move(ev.X)
		return true
	case PointerReleased:
		if !v.tracking {
			return false
		}
		v.tracking = false
		v.Gesture.Release()
		return true
	}
	return false
}

func (v *PagerView) Draw(dst *ebiten.Image) {
	p := v.Gesture.Pager
	w, h := p.Width(), p.Height()
	if w <= 0 || h <= 0 {
		return
	}
	clip := image.Rect(int(v.X), int(v.Y), int(v.X+w), int(v.Y+h))
	sub := dst.SubImage(clip).(*ebiten.Image)
	for _, pf := range p.VisiblePages() {
		x := v.X + pf.Frame.X - p.Offset()
		v.DrawPage(sub, pf.Page, x, v.Y, pf.Frame.W, pf.Frame.H)
	}
}
