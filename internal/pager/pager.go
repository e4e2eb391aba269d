// Package pager implements a horizontally paging content container. It owns
// the pages, the scroll offset and the drag lifecycle, and reports manual
// scroll progress to a Delegate. Rendering and touch delivery belong to the
// host, which feeds scroll notifications in.
package pager

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/depeter/pagestrip/internal/paging"
)

// ErrIndexOutOfRange is returned by ScrollItemTo for an index outside [0, PageCount).
var ErrIndexOutOfRange = errors.New("page index out of range")

// Page is an opaque content unit supplied by the DataSource.
type Page any

// DataSource supplies the pages. PageAt never returns nil for a valid index.
type DataSource interface {
	PageCount() int
	PageAt(index int) Page
}

// Delegate receives manual (user-driven) scroll events.
type Delegate interface {
	WillBeginManualScroll(index int)
	DidManualScroll(index int, percent float64)
	DidEndManualScroll(index int)
}

// NopDelegate implements Delegate with no-ops. Embed it to override a subset.
type NopDelegate struct{}

func (NopDelegate) WillBeginManualScroll(int)    {}
func (NopDelegate) DidManualScroll(int, float64) {}
func (NopDelegate) DidEndManualScroll(int)       {}

// Animator runs animated scrolls. step receives intermediate offsets; done is
// called exactly once, possibly on a later frame.
type Animator interface {
	Start(from, to float64, step func(v float64), done func(finished bool))
}

// DragState is the manual scroll lifecycle.
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
	StateDecelerating
)

func (s DragState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDecelerating:
		return "decelerating"
	}
	return fmt.Sprintf("DragState(%d)", int(s))
}

// Rect is a frame in content coordinates.
type Rect struct {
	X, Y, W, H float64
}

// PageFrame pairs a page with its frame.
type PageFrame struct {
	Index int
	Page  Page
	Frame Rect
}

// Pager is the content container. All methods must be called from the
// host's UI loop.
type Pager struct {
	DataSource DataSource
	Delegate   Delegate
	Animator   Animator
	Logger     *slog.Logger

	pages     []Page
	width     float64
	height    float64
	offsetX   float64
	leftIndex int
	state     DragState
}

// New creates a Pager. Any argument may be nil.
func New(ds DataSource, delegate Delegate, animator Animator) *Pager {
	return &Pager{
		DataSource: ds,
		Delegate:   delegate,
		Animator:   animator,
	}
}

func (p *Pager) log() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Pager) delegate() Delegate {
	if p.Delegate == nil {
		return NopDelegate{}
	}
	return p.Delegate
}

// LoadData discards all pages and rebuilds them from the data source,
// stopping any animation and ending any manual scroll without events.
// Without a data source it does nothing.
func (p *Pager) LoadData() {
	if p.DataSource == nil {
		p.log().Debug("pager: load skipped, no data source")
		return
	}
	p.stopAnimation()
	p.state = StateIdle

	n := max(p.DataSource.PageCount(), 0)
	p.pages = make([]Page, n)
	for i := range p.pages {
		p.pages[i] = p.DataSource.PageAt(i)
	}
	p.leftIndex = 0
	p.offsetX = 0
	p.log().Debug("pager: loaded", "pages", n)
}

// SetBounds is the layout pass. Page frames follow the new width and the
// current page stays aligned.
func (p *Pager) SetBounds(width, height float64) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	if p.state == StateIdle {
		p.offsetX = paging.PageOffset(p.leftIndex, width)
	}
}

// ScrollItemTo moves to page index. When animated the move runs through the
// Animator and the page index is committed in its completion; otherwise it
// is applied at once and onComplete(true) is called before returning.
// A manual scroll still in progress is dropped without an end event.
func (p *Pager) ScrollItemTo(index int, animated bool, onComplete func(finished bool)) error {
	if index < 0 || index >= len(p.pages) {
		p.log().Warn("pager: scroll rejected", "index", index, "pages", len(p.pages))
		return fmt.Errorf("scroll to %d of %d: %w", index, len(p.pages), ErrIndexOutOfRange)
	}
	target := paging.PageOffset(index, p.width)

	if p.state != StateIdle {
		p.log().Debug("pager: manual scroll superseded", "state", p.state, "index", index)
		p.state = StateIdle
	}

	if !animated || p.Animator == nil {
		p.offsetX = target
		p.leftIndex = index
		if onComplete != nil {
			onComplete(true)
		}
		return nil
	}

	p.Animator.Start(p.offsetX, target,
		func(v float64) { p.offsetX = v },
		func(finished bool) {
			p.leftIndex = index
			if onComplete != nil {
				onComplete(finished)
			}
		})
	return nil
}

// WillBeginDragging is called by the host when a drag starts. A drag that
// grabs the content mid-deceleration continues the manual scroll already in
// progress and is not reported again.
func (p *Pager) WillBeginDragging() {
	if p.state == StateDecelerating {
		p.state = StateDragging
		return
	}
	p.leftIndex = p.computeLeftIndex()
	p.delegate().WillBeginManualScroll(p.leftIndex)
	p.state = StateDragging
}

// DidScroll records the host's new offset. While a manual scroll is in
// progress it reports the nearest page and percent.
func (p *Pager) DidScroll(offsetX float64) {
	p.offsetX = offsetX
	if p.state == StateIdle {
		return
	}
	p.leftIndex = p.computeLeftIndex()
	prog := paging.ProgressAt(p.offsetX, p.width, len(p.pages))
	p.delegate().DidManualScroll(prog.Index, prog.Percent)
}

// DidEndDragging is called when the finger lifts. With willDecelerate the
// end of the manual scroll is reported by DidEndDecelerating instead.
func (p *Pager) DidEndDragging(willDecelerate bool) {
	if p.state == StateIdle {
		return
	}
	if willDecelerate {
		p.state = StateDecelerating
		return
	}
	p.endManualScroll()
}

// DidEndDecelerating is called when the content settles after a fling.
// Offsets outside the content (elastic overscroll) are ignored.
func (p *Pager) DidEndDecelerating() {
	if p.offsetX < 0 || p.offsetX >= p.ContentWidth() {
		p.log().Debug("pager: deceleration end ignored out of bounds", "offset", p.offsetX)
		return
	}
	p.endManualScroll()
}

func (p *Pager) endManualScroll() {
	if p.state != StateIdle {
		p.leftIndex = p.computeLeftIndex()
		p.delegate().DidEndManualScroll(p.leftIndex)
	}
	p.state = StateIdle
}

// stopAnimation cancels a running animation when the Animator supports it.
func (p *Pager) stopAnimation() {
	if c, ok := p.Animator.(interface{ Cancel() }); ok {
		c.Cancel()
	}
}

func (p *Pager) computeLeftIndex() int {
	return paging.LeftIndex(p.offsetX, p.width, len(p.pages))
}

// CurrentPageIndex is the page nearest to the live offset.
func (p *Pager) CurrentPageIndex() int {
	return paging.ProgressAt(p.offsetX, p.width, len(p.pages)).Index
}

// CurrentPagePercent is the normalized progress at the live offset.
func (p *Pager) CurrentPagePercent() float64 {
	return paging.ProgressAt(p.offsetX, p.width, len(p.pages)).Percent
}

func (p *Pager) PageCount() int        { return len(p.pages) }
func (p *Pager) LeftIndex() int        { return p.leftIndex }
func (p *Pager) Offset() float64       { return p.offsetX }
func (p *Pager) Width() float64        { return p.width }
func (p *Pager) Height() float64       { return p.height }
func (p *Pager) State() DragState      { return p.state }
func (p *Pager) ContentWidth() float64 { return float64(len(p.pages)) * p.width }

// PageFrame returns the frame of page i in content coordinates.
func (p *Pager) PageFrame(i int) Rect {
	return Rect{X: float64(i) * p.width, W: p.width, H: p.height}
}

// VisiblePages returns the pages whose frames intersect the viewport.
func (p *Pager) VisiblePages() []PageFrame {
	if p.width <= 0 {
		return nil
	}
	var out []PageFrame
	for i, pg := range p.pages {
		f := p.PageFrame(i)
		if f.X < p.offsetX+p.width && p.offsetX < f.X+f.W {
			out = append(out, PageFrame{Index: i, Page: pg, Frame: f})
		}
	}
	return out
}
