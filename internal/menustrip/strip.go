// Package menustrip implements a horizontally scrolling menu of cells with a
// focus indicator that can follow a pager's scroll progress.
package menustrip

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/depeter/pagestrip/internal/paging"
	"github.com/depeter/pagestrip/internal/scroll"
)

// ErrIndexOutOfRange is returned by ScrollItemTo for an index outside [0, ItemCount).
var ErrIndexOutOfRange = errors.New("menu index out of range")

// DataSource supplies cell content and widths. CellAt never returns nil for
// a valid index.
type DataSource interface {
	ItemCount() int
	CellAt(index int) any
	WidthAt(index int) float64
}

// Delegate receives selections made by touch.
type Delegate interface {
	DidSelectItem(index int)
}

// DelegateFunc adapts a function to Delegate.
type DelegateFunc func(index int)

func (f DelegateFunc) DidSelectItem(index int) { f(index) }

// Animator runs animated scrolls; see pager.Animator. The strip animates a
// normalized progress from 0 to 1.
type Animator interface {
	Start(from, to float64, step func(v float64), done func(finished bool))
}

// Cell is one menu entry. Cells are rebuilt on every LoadData.
type Cell struct {
	Identifier string
	Index      int
	Width      float64
	Frame      Rect
	Selected   bool
	Content    any
}

// Indicator is the focus marker. View is whatever the host registered.
type Indicator struct {
	View    any
	Width   float64
	Height  float64
	CenterX float64
	Hidden  bool
}

// Strip is the menu. All methods must be called from the host's UI loop.
type Strip struct {
	DataSource DataSource
	Delegate   Delegate
	Animator   Animator
	Options    Options
	Logger     *slog.Logger

	cells     []*Cell
	layout    Layout
	width     float64
	height    float64
	offsetX   float64
	indicator *Indicator
	selected  int
	// resolved is the cell the percent-driven path last settled on.
	resolved   int
	touchIndex *int
	laidOut    bool
}

// New creates a Strip with the given options. ds and delegate may be nil.
func New(ds DataSource, delegate Delegate, opts Options) *Strip {
	return &Strip{
		DataSource: ds,
		Delegate:   delegate,
		Options:    opts,
		selected:   -1,
		resolved:   -1,
	}
}

func (s *Strip) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// RegisterFocusIndicator installs view as the focus indicator, sized w×h.
// It stays hidden until the first layout pass.
func (s *Strip) RegisterFocusIndicator(view any, w, h float64) {
	s.indicator = &Indicator{View: view, Width: w, Height: h, Hidden: true}
	if s.laidOut {
		s.indicator.Hidden = len(s.cells) == 0
		if s.selected >= 0 {
			s.indicator.CenterX = s.cells[s.selected].Frame.MidX()
		}
	}
}

// LoadData rebuilds every cell from the data source, selects the first one
// and scrolls it into place without animation.
func (s *Strip) LoadData() {
	if s.DataSource == nil {
		s.log().Debug("menustrip: load skipped, no data source")
		return
	}
	s.selected = 0
	s.resolved = 0
	s.offsetX = 0
	s.touchIndex = nil

	n := max(s.DataSource.ItemCount(), 0)
	s.cells = make([]*Cell, n)
	for i := range s.cells {
		content := s.DataSource.CellAt(i)
		s.cells[i] = &Cell{
			Identifier: fmt.Sprintf("cell-%d", i),
			Index:      i,
			Width:      s.DataSource.WidthAt(i),
			Content:    content,
		}
	}
	s.relayout()
	s.log().Debug("menustrip: loaded", "items", n, "content_width", s.layout.ContentWidth)

	if n == 0 {
		s.selected = -1
		s.resolved = -1
		return
	}
	_ = s.ScrollItemTo(0, false, nil)
}

// SetBounds is the layout pass: cell frames take the strip height and the
// selected cell is re-centred.
func (s *Strip) SetBounds(width, height float64) {
	changed := width != s.width || height != s.height
	s.width = width
	s.height = height
	s.laidOut = true
	s.relayout()
	if changed && s.selected >= 0 && s.selected < len(s.cells) {
		_ = s.ScrollItemTo(s.selected, false, nil)
	}
}

func (s *Strip) relayout() {
	widths := make([]float64, len(s.cells))
	for i, c := range s.cells {
		widths[i] = c.Width
	}
	s.layout = ComputeLayout(widths, s.height, s.Options)
	for i, c := range s.cells {
		c.Frame = s.layout.Frames[i]
	}
	if s.indicator != nil && s.laidOut {
		s.indicator.Hidden = len(s.cells) == 0
	}
}

func (s *Strip) targetOffset(centerX float64) float64 {
	return CenteredOffset(centerX, s.width, s.layout.ContentWidth, s.Options.SafeInsets)
}

func (s *Strip) setSelected(index int) {
	for _, c := range s.cells {
		c.Selected = false
	}
	if index >= 0 && index < len(s.cells) {
		s.cells[index].Selected = true
	}
	s.selected = index
}

func (s *Strip) setIndicatorCenter(x float64) {
	if s.indicator != nil {
		s.indicator.CenterX = x
	}
}

func (s *Strip) indicatorCenter() float64 {
	if s.indicator != nil {
		return s.indicator.CenterX
	}
	if s.selected >= 0 && s.selected < len(s.cells) {
		return s.cells[s.selected].Frame.MidX()
	}
	return 0
}

// ScrollItemTo selects cell index, centres it in the viewport and moves the
// indicator onto it. It does not notify the delegate.
func (s *Strip) ScrollItemTo(index int, animated bool, onComplete func(finished bool)) error {
	if index < 0 || index >= len(s.cells) {
		s.log().Warn("menustrip: scroll rejected", "index", index, "items", len(s.cells))
		return fmt.Errorf("scroll to %d of %d: %w", index, len(s.cells), ErrIndexOutOfRange)
	}
	center := s.cells[index].Frame.MidX()
	offset := s.targetOffset(center)
	s.setSelected(index)
	s.resolved = index

	if !animated || s.Animator == nil {
		s.setIndicatorCenter(center)
		s.offsetX = offset
		if onComplete != nil {
			onComplete(true)
		}
		return nil
	}

	fromCenter, fromOffset := s.indicatorCenter(), s.offsetX
	s.Animator.Start(0, 1,
		func(t float64) {
			s.setIndicatorCenter(scroll.Lerp(fromCenter, center, t))
			s.offsetX = scroll.Lerp(fromOffset, offset, t)
		},
		func(finished bool) {
			if onComplete != nil {
				onComplete(finished)
			}
		})
	return nil
}

// ScrollItemToPercent follows a pager mid-drag. The indicator is placed
// between the two cells that percent spans and the selection moves to
// whichever of them the indicator is nearer to. Past the last cell it does
// nothing.
func (s *Strip) ScrollItemToPercent(index int, percent float64) {
	left, p := paging.CorrectScrollTarget(index, percent)
	right := left + 1
	if left < 0 || right >= len(s.cells) {
		return
	}
	leftMid := s.cells[left].Frame.MidX()
	rightMid := s.cells[right].Frame.MidX()
	center := leftMid + (rightMid-leftMid)*p

	s.setIndicatorCenter(center)
	s.offsetX = s.targetOffset(center)

	resolved := left
	if center >= (leftMid+rightMid)/2 {
		resolved = right
	}
	if resolved != s.resolved {
		s.resolved = resolved
		s.setSelected(resolved)
	}
}

// ScrollBy moves the content offset by dx within the scrollable range,
// leaving selection and indicator untouched.
func (s *Strip) ScrollBy(dx float64) {
	minX, maxX := OffsetRange(s.width, s.layout.ContentWidth, s.Options.SafeInsets)
	s.offsetX = clamp(s.offsetX+dx, minX, maxX)
}

func (s *Strip) Cells() []*Cell         { return s.cells }
func (s *Strip) ItemCount() int         { return len(s.cells) }
func (s *Strip) SelectedIndex() int     { return s.selected }
func (s *Strip) ContentOffset() float64 { return s.offsetX }
func (s *Strip) ContentWidth() float64  { return s.layout.ContentWidth }
func (s *Strip) TotalSpacing() float64  { return s.layout.TotalSpacing }
func (s *Strip) Width() float64         { return s.width }
func (s *Strip) Height() float64        { return s.height }
func (s *Strip) Indicator() *Indicator  { return s.indicator }
