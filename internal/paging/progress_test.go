package paging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeftSideFractionRange(t *testing.T) {
	t.Parallel()

	for _, width := range []float64{1, 37.5, 100, 390} {
		for i := 0; i < 42; i++ {
			offset := float64(i) * width / 7
			f := LeftSideFraction(offset, width)
			require.GreaterOrEqual(t, f, 0.0, "offset %v width %v", offset, width)
			require.Less(t, f, 1.0, "offset %v width %v", offset, width)

			p := NormalizedPercent(f)
			require.GreaterOrEqual(t, p, -0.5)
			require.Less(t, p, 0.5)
		}
	}
}

func TestLeftSideFractionZeroWidth(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0.0, LeftSideFraction(120, 0))
	require.Equal(t, 0.0, LeftSideFraction(120, -5))
}

func TestNormalizedPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{0.49, 0.49},
		{0.5, -0.5},
		{0.75, -0.25},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, NormalizedPercent(tc.in), 1e-9, "in=%v", tc.in)
	}
}

func TestCurrentIndexJumpsOnceAtHalf(t *testing.T) {
	t.Parallel()

	prev := CurrentIndex(3, 0, 10)
	jumps := 0
	for f := 0.0; f < 1; f += 0.01 {
		got := CurrentIndex(3, f, 10)
		require.GreaterOrEqual(t, got, prev)
		if got != prev {
			jumps++
			require.GreaterOrEqual(t, f, 0.5)
		}
		prev = got
	}
	require.Equal(t, 1, jumps)
	require.Equal(t, 4, CurrentIndex(3, 0.5, 10))
}

func TestCurrentIndexClampsToMax(t *testing.T) {
	t.Parallel()
	require.Equal(t, 4, CurrentIndex(4, 0.9, 4))
}

func TestCorrectScrollTarget(t *testing.T) {
	t.Parallel()

	idx, p := CorrectScrollTarget(2, 0.3)
	require.Equal(t, 2, idx)
	require.Equal(t, 0.3, p)

	idx, p = CorrectScrollTarget(2, -0.3)
	require.Equal(t, 1, idx)
	require.InDelta(t, 0.7, p, 1e-9)

	idx, p = CorrectScrollTarget(0, -0.3)
	require.Equal(t, 0, idx)
	require.Equal(t, -0.3, p)

	for _, in := range []float64{-0.5, -0.25, -0.0001} {
		_, p = CorrectScrollTarget(5, in)
		require.GreaterOrEqual(t, p, 0.0)
		require.Less(t, p, 1.0)
	}
}

func TestDraggingToSixtyOfHundred(t *testing.T) {
	t.Parallel()

	frac := LeftSideFraction(60, 100)
	require.InDelta(t, 0.6, frac, 1e-9)
	require.InDelta(t, -0.4, NormalizedPercent(frac), 1e-9)
	require.Equal(t, 1, CurrentIndex(LeftIndex(60, 100, 3), frac, 2))

	prog := ProgressAt(60, 100, 3)
	require.Equal(t, 1, prog.Index)
	require.InDelta(t, -0.4, prog.Percent, 1e-9)
}

func TestLeftIndexClamps(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, LeftIndex(-30, 100, 3))
	require.Equal(t, 1, LeftIndex(199, 100, 3))
	require.Equal(t, 2, LeftIndex(900, 100, 3))
	require.Equal(t, 0, LeftIndex(50, 100, 0))
}

func TestPageOffsetRoundTrip(t *testing.T) {
	t.Parallel()

	for k := 0; k < 8; k++ {
		prog := ProgressAt(PageOffset(k, 320), 320, 8)
		require.Equal(t, k, prog.Index)
		require.Equal(t, 0.0, prog.Percent)
	}
}
