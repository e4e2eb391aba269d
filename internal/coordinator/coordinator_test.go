package coordinator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/depeter/pagestrip/internal/menustrip"
	"github.com/depeter/pagestrip/internal/pager"
	"github.com/depeter/pagestrip/internal/scroll"
)

type source int

func (s source) PageCount() int              { return int(s) }
func (s source) PageAt(index int) pager.Page { return index }
func (s source) ItemCount() int              { return int(s) }
func (s source) CellAt(index int) any        { return index }
func (s source) WidthAt(int) float64         { return 50 }

func setup(t *testing.T, n int) (*Coordinator, *scroll.Animator, *scroll.Animator) {
	t.Helper()
	pageAnim := scroll.NewAnimator()
	stripAnim := &scroll.Animator{Speed: 0.5, Epsilon: 0.001}

	p := pager.New(source(n), nil, pageAnim)
	s := menustrip.New(source(n), nil, menustrip.Options{})
	s.Animator = stripAnim
	s.RegisterFocusIndicator(nil, 20, 3)

	c := Bind(p, s)
	p.SetBounds(100, 100)
	s.SetBounds(100, 40)
	c.Reload()
	return c, pageAnim, stripAnim
}

func settle(anims ...*scroll.Animator) {
	for i := 0; i < 500; i++ {
		running := false
		for _, a := range anims {
			a.Step()
			running = running || a.Running()
		}
		if !running {
			return
		}
	}
}

func TestDragMovesIndicator(t *testing.T) {
	t.Parallel()

	c, pa, sa := setup(t, 4)
	c.Pager.WillBeginDragging()
	c.Pager.DidScroll(60)
	require.Equal(t, 1, c.Strip.SelectedIndex())
	require.InDelta(t, 55.0, c.Strip.Indicator().CenterX, 1e-9)

	c.Pager.DidScroll(100)
	c.Pager.DidEndDragging(false)
	settle(pa, sa)

	require.Equal(t, 1, c.Strip.SelectedIndex())
	require.InDelta(t, 75.0, c.Strip.Indicator().CenterX, 1e-9)
}

func TestTapScrollsPager(t *testing.T) {
	t.Parallel()

	c, pa, sa := setup(t, 4)
	var settled []int
	c.OnPageChange = func(i int) { settled = append(settled, i) }

	c.Strip.ScrollBy(100)
	c.Strip.TouchBegan(80, 10) // content x 180, cell 3
	c.Strip.TouchEnded(85, 10)
	require.Equal(t, 3, c.Strip.SelectedIndex())

	settle(pa, sa)
	require.Equal(t, 3, c.Pager.LeftIndex())
	require.Equal(t, 300.0, c.Pager.Offset())
	require.Equal(t, []int{3}, settled)
}

func TestStepClamps(t *testing.T) {
	t.Parallel()

	c, pa, sa := setup(t, 3)
	c.Step(-1)
	settle(pa, sa)
	require.Equal(t, 0, c.Pager.LeftIndex())

	c.Step(5)
	settle(pa, sa)
	require.Equal(t, 2, c.Pager.LeftIndex())
	require.Equal(t, 2, c.Strip.SelectedIndex())
}

func TestSelectOutOfRange(t *testing.T) {
	t.Parallel()

	c, _, _ := setup(t, 2)
	c.Select(7)
	require.Equal(t, 0, c.Strip.SelectedIndex())
	require.Equal(t, 0, c.Pager.LeftIndex())
}

func TestReloadEmpty(t *testing.T) {
	t.Parallel()

	c, _, _ := setup(t, 3)
	called := false
	c.OnPageChange = func(int) { called = true }
	c.Pager.DataSource = source(0)
	c.Strip.DataSource = source(0)
	c.Reload()
	c.Step(1)
	require.False(t, called)
	require.True(t, c.Strip.Indicator().Hidden)
}
