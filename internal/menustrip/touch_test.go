package menustrip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTouchSelectsSameCell(t *testing.T) {
	t.Parallel()

	s, sel := newStrip(t, widths{50, 50, 50}, Options{}, 150)
	s.TouchBegan(110, 10)
	idx, ok := s.TouchIndex()
	require.True(t, ok)
	require.Equal(t, 2, idx)

	s.TouchEnded(140, 30)
	require.Equal(t, []int{2}, sel.got)
	_, ok = s.TouchIndex()
	require.False(t, ok)
}

func TestTouchMovedToOtherCellEmitsNothing(t *testing.T) {
	t.Parallel()

	s, sel := newStrip(t, widths{50, 50, 50}, Options{}, 150)
	s.TouchBegan(110, 10)
	s.TouchEnded(60, 10)
	require.Empty(t, sel.got)
	_, ok := s.TouchIndex()
	require.False(t, ok)
}

func TestTouchOutsideCells(t *testing.T) {
	t.Parallel()

	opts := Options{CellSpacing: 20, LeadingPadding: 10}
	s, sel := newStrip(t, widths{50, 50}, opts, 200)

	s.TouchBegan(65, 10) // in the gap between cells
	_, ok := s.TouchIndex()
	require.False(t, ok)
	s.TouchEnded(65, 10)

	s.TouchBegan(20, 10)
	s.TouchEnded(20, 99) // below the strip
	require.Empty(t, sel.got)
}

func TestTouchEndWithoutBegin(t *testing.T) {
	t.Parallel()

	s, sel := newStrip(t, widths{50, 50}, Options{}, 100)
	s.TouchEnded(10, 10)
	require.Empty(t, sel.got)
}

func TestTouchCancelled(t *testing.T) {
	t.Parallel()

	s, sel := newStrip(t, widths{50, 50}, Options{}, 100)
	s.TouchBegan(10, 10)
	s.TouchCancelled()
	s.TouchEnded(10, 10)
	require.Empty(t, sel.got)
}

func TestTouchSharedEdgeHitsRightCell(t *testing.T) {
	t.Parallel()

	s, sel := newStrip(t, widths{50, 50}, Options{}, 100)
	s.TouchBegan(50, 10)
	s.TouchEnded(50, 10)
	require.Equal(t, []int{1}, sel.got)
}

func TestTouchAccountsForContentOffset(t *testing.T) {
	t.Parallel()

	s, sel := newStrip(t, widths{100, 100, 100, 100}, Options{}, 100)
	require.NoError(t, s.ScrollItemTo(3, false, nil))
	require.Equal(t, 300.0, s.ContentOffset())

	s.TouchBegan(40, 10)
	s.TouchEnded(60, 10)
	require.Equal(t, []int{3}, sel.got)
}

func TestTouchWithoutDelegate(t *testing.T) {
	t.Parallel()

	s, _ := newStrip(t, widths{50, 50}, Options{}, 100)
	s.Delegate = nil
	s.TouchBegan(10, 10)
	s.TouchEnded(10, 10)
	_, ok := s.TouchIndex()
	require.False(t, ok)
}

func TestDelegateFunc(t *testing.T) {
	t.Parallel()

	var got []int
	s := New(widths{40, 40}, DelegateFunc(func(i int) { got = append(got, i) }), Options{})
	s.SetBounds(80, 20)
	s.LoadData()
	s.TouchBegan(45, 5)
	s.TouchEnded(70, 5)
	require.Equal(t, []int{1}, got)
}
