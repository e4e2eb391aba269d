package pager

import (
	"math"

	"github.com/depeter/pagestrip/internal/paging"
)

// settleDistance is how close to a page edge a release must land to end
// without deceleration.
const settleDistance = 0.5

// Decelerator is an Animator that can be interrupted by a new touch.
type Decelerator interface {
	Animator
	Running() bool
	Cancel()
}

// Gesture turns raw horizontal pointer positions into the drag
// notifications a native scroll view sends, including the snap-to-page
// deceleration after release.
type Gesture struct {
	Pager    *Pager
	Animator Decelerator
	// Slop is the distance a press must travel before it becomes a drag.
	Slop float64
	// FlickVelocity is the per-move distance above which a release pages
	// in the direction of travel instead of to the nearest page.
	FlickVelocity float64

	pressed     bool
	dragging    bool
	startX      float64
	startOffset float64
	lastX       float64
	velocity    float64
}

// Dragging reports whether the current press has become a drag.
func (g *Gesture) Dragging() bool { return g.dragging }

// Press starts tracking a pointer at x. Pressing while the content is still
// decelerating grabs it and continues the same manual scroll.
func (g *Gesture) Press(x float64) {
	g.pressed = true
	g.startX, g.lastX = x, x
	g.velocity = 0
	g.startOffset = g.Pager.Offset()

	if g.Pager.State() == StateDecelerating {
		g.stopAnimation()
		g.startOffset = g.Pager.Offset()
		g.dragging = true
		g.Pager.WillBeginDragging()
	}
}

// Move reports the pointer at x.
func (g *Gesture) Move(x float64) {
	if !g.pressed {
		return
	}
	if !g.dragging {
		if math.Abs(x-g.startX) <= g.Slop {
			return
		}
		g.stopAnimation()
		g.startX, g.lastX = x, x
		g.startOffset = g.Pager.Offset()
		g.dragging = true
		g.Pager.WillBeginDragging()
		return
	}
	g.velocity = g.lastX - x
	g.lastX = x
	g.Pager.DidScroll(g.rubberBand(g.startOffset + g.startX - x))
}

// Release ends the press. A drag settles on the nearest page, or the next
// page in the direction of a flick.
func (g *Gesture) Release() {
	dragging := g.dragging
	g.pressed, g.dragging = false, false
	if !dragging {
		return
	}

	p := g.Pager
	cur := p.Offset()
	dest := paging.PageOffset(g.snapIndex(cur), p.Width())

	if g.Animator == nil || math.Abs(dest-cur) < settleDistance {
		p.DidScroll(dest)
		p.DidEndDragging(false)
		return
	}
	p.DidEndDragging(true)
	g.Animator.Start(cur, dest, p.DidScroll, func(finished bool) {
		if finished {
			p.DidEndDecelerating()
		}
	})
}

func (g *Gesture) snapIndex(offset float64) int {
	p := g.Pager
	target := p.CurrentPageIndex()
	if w := p.Width(); w > 0 {
		base := int(math.Floor(offset / w))
		switch {
		case g.velocity > g.FlickVelocity:
			target = base + 1
		case g.velocity < -g.FlickVelocity:
			target = base
		}
	}
	return max(0, min(p.PageCount()-1, target))
}

func (g *Gesture) stopAnimation() {
	if g.Animator != nil && g.Animator.Running() {
		g.Animator.Cancel()
	}
}

// rubberBand damps offsets past either end of the content.
func (g *Gesture) rubberBand(offset float64) float64 {
	const damping = 3
	maxOffset := max(g.Pager.ContentWidth()-g.Pager.Width(), 0)
	switch {
	case offset < 0:
		return offset / damping
	case offset > maxOffset:
		return maxOffset + (offset-maxOffset)/damping
	}
	return offset
}
