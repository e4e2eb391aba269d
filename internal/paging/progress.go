// Package paging converts a continuous horizontal scroll offset into a page
// index plus a fractional progress toward the neighbouring page, and back.
package paging

import "math"

// Progress is the paging position derived from a scroll offset.
// Percent is in [-0.5, 0.5): negative while the nearer page is to the right
// of the left page, zero when exactly on a page.
type Progress struct {
	Index   int
	Percent float64
}

// LeftSideFraction returns how far past the left page boundary offsetX is,
// as a fraction of pageWidth. The result is in [0, 1) for offsetX >= 0.
// A non-positive pageWidth yields 0.
func LeftSideFraction(offsetX, pageWidth float64) float64 {
	if pageWidth <= 0 {
		return 0
	}
	return math.Mod(offsetX, pageWidth) / pageWidth
}

// NormalizedPercent re-centres a left-side fraction around the nearer page.
func NormalizedPercent(leftFraction float64) float64 {
	if leftFraction >= 0.5 {
		return leftFraction - 1
	}
	return leftFraction
}

// CurrentIndex returns the page nearest to the offset. Exactly half way
// rounds toward the right neighbour.
func CurrentIndex(leftIndex int, leftFraction float64, maxIndex int) int {
	if leftFraction >= 0.5 {
		return min(maxIndex, leftIndex+1)
	}
	return leftIndex
}

// CorrectScrollTarget maps a negative percent toward index onto a positive
// percent from its left neighbour, so interpolation always runs left to
// right. Index 0 is left unchanged.
func CorrectScrollTarget(index int, percent float64) (leftIndex int, adjusted float64) {
	if percent < 0 && index > 0 {
		return index - 1, percent + 1
	}
	return index, percent
}

// LeftIndex returns the page whose left edge is at or before offsetX,
// clamped to [0, pageCount-1].
func LeftIndex(offsetX, pageWidth float64, pageCount int) int {
	if pageWidth <= 0 || pageCount <= 0 {
		return 0
	}
	idx := int(math.Floor(offsetX / pageWidth))
	return max(0, min(idx, pageCount-1))
}

// PageOffset is the scroll offset at which page index is settled.
func PageOffset(index int, pageWidth float64) float64 {
	return float64(index) * pageWidth
}

// ProgressAt computes the nearest page and normalized percent for offsetX.
func ProgressAt(offsetX, pageWidth float64, pageCount int) Progress {
	left := LeftIndex(offsetX, pageWidth, pageCount)
	frac := LeftSideFraction(offsetX, pageWidth)
	return Progress{
		Index:   CurrentIndex(left, frac, max(pageCount-1, 0)),
		Percent: NormalizedPercent(frac),
	}
}
