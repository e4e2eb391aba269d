package menustrip

// Rect is a frame in content coordinates.
type Rect struct {
	X, Y, W, H float64
}

// MidX is the horizontal centre of r.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// Contains reports whether (x, y) lies in r. The right and bottom edges are
// exclusive so adjacent cells never both contain a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Insets are the safe-area insets at the strip's horizontal edges.
type Insets struct {
	Left, Right float64
}

// Options configures cell spacing and edge padding.
type Options struct {
	CellSpacing     float64
	LeadingPadding  float64
	TrailingPadding float64
	SafeInsets      Insets
}

// DefaultOptions returns the spacing used when none is configured.
func DefaultOptions() Options {
	return Options{
		CellSpacing:     10,
		LeadingPadding:  20,
		TrailingPadding: 20,
	}
}

// Layout is the computed geometry of a strip.
type Layout struct {
	Frames       []Rect
	TotalSpacing float64
	ContentWidth float64
}

// ComputeLayout places cells left to right. Cell i starts at
// leading + sum(widths[:i]) + i*spacing and spans the full height.
func ComputeLayout(widths []float64, height float64, opts Options) Layout {
	n := len(widths)
	l := Layout{
		Frames:       make([]Rect, n),
		TotalSpacing: opts.CellSpacing*float64(max(n-1, 0)) + opts.LeadingPadding + opts.TrailingPadding,
	}
	x := opts.LeadingPadding
	sum := 0.0
	for i, w := range widths {
		l.Frames[i] = Rect{X: x, W: w, H: height}
		x += w + opts.CellSpacing
		sum += w
	}
	l.ContentWidth = sum + l.TotalSpacing
	return l
}

// OffsetRange returns the scrollable offset bounds for a viewport.
func OffsetRange(viewportWidth, contentWidth float64, insets Insets) (minX, maxX float64) {
	minX = -insets.Left
	maxX = max(viewportWidth, contentWidth+insets.Right) - viewportWidth
	return minX, maxX
}

// CenteredOffset is the offset that puts centerX in the middle of the
// viewport, clamped to OffsetRange.
func CenteredOffset(centerX, viewportWidth, contentWidth float64, insets Insets) float64 {
	minX, maxX := OffsetRange(viewportWidth, contentWidth, insets)
	return clamp(centerX-viewportWidth/2, minX, maxX)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
