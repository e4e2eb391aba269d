package pager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/depeter/pagestrip/internal/scroll"
)

type stubPages int

func (s stubPages) PageCount() int        { return int(s) }
func (s stubPages) PageAt(index int) Page { return fmt.Sprintf("page-%d", index) }

type recorder struct {
	events []string
}

func (r *recorder) WillBeginManualScroll(index int) {
	r.events = append(r.events, fmt.Sprintf("begin %d", index))
}

func (r *recorder) DidManualScroll(index int, percent float64) {
	r.events = append(r.events, fmt.Sprintf("scroll %d %.2f", index, percent))
}

func (r *recorder) DidEndManualScroll(index int) {
	r.events = append(r.events, fmt.Sprintf("end %d", index))
}

// manualAnimator holds the completion until the test fires it.
type manualAnimator struct {
	to   float64
	step func(float64)
	done func(bool)
}

func (m *manualAnimator) Start(_, to float64, step func(float64), done func(bool)) {
	m.to, m.step, m.done = to, step, done
}

func (m *manualAnimator) complete(finished bool) {
	m.step(m.to)
	done := m.done
	m.done = nil
	done(finished)
}

func newPager(t *testing.T, pages int) (*Pager, *recorder) {
	t.Helper()
	rec := &recorder{}
	p := New(stubPages(pages), rec, nil)
	p.SetBounds(100, 50)
	p.LoadData()
	return p, rec
}

func TestLoadDataPositionsPages(t *testing.T) {
	t.Parallel()

	p, _ := newPager(t, 4)
	require.Equal(t, 4, p.PageCount())
	require.Equal(t, 400.0, p.ContentWidth())
	for i := 0; i < 4; i++ {
		require.Equal(t, Rect{X: float64(i) * 100, W: 100, H: 50}, p.PageFrame(i))
	}

	vis := p.VisiblePages()
	require.Len(t, vis, 1)
	require.Equal(t, "page-0", vis[0].Page)
}

func TestLoadDataEmptyAndReload(t *testing.T) {
	t.Parallel()

	p, _ := newPager(t, 3)
	require.NoError(t, p.ScrollItemTo(2, false, nil))

	p.DataSource = stubPages(0)
	p.LoadData()
	require.Equal(t, 0, p.PageCount())
	require.Equal(t, 0, p.LeftIndex())
	require.Equal(t, 0.0, p.Offset())
	require.Empty(t, p.VisiblePages())
}

func TestLoadDataWithoutSourceIsNoop(t *testing.T) {
	t.Parallel()

	p, _ := newPager(t, 3)
	p.DataSource = nil
	p.LoadData()
	require.Equal(t, 3, p.PageCount())
}

func TestScrollItemToRoundTrip(t *testing.T) {
	t.Parallel()

	p, rec := newPager(t, 5)
	for k := 0; k < 5; k++ {
		var got []bool
		require.NoError(t, p.ScrollItemTo(k, false, func(ok bool) { got = append(got, ok) }))
		require.Equal(t, []bool{true}, got)
		require.Equal(t, k, p.CurrentPageIndex())
		require.Equal(t, 0.0, p.CurrentPagePercent())
		require.Equal(t, k, p.LeftIndex())
	}
	require.Empty(t, rec.events)
}

func TestScrollItemToOutOfRange(t *testing.T) {
	t.Parallel()

	p, _ := newPager(t, 2)
	called := false
	err := p.ScrollItemTo(2, false, func(bool) { called = true })
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.ErrorIs(t, p.ScrollItemTo(-1, true, nil), ErrIndexOutOfRange)
	require.False(t, called)
	require.Equal(t, 0.0, p.Offset())
}

func TestScrollItemToAnimatedCommitsInCompletion(t *testing.T) {
	t.Parallel()

	anim := &manualAnimator{}
	p, _ := newPager(t, 4)
	p.Animator = anim

	var result []bool
	require.NoError(t, p.ScrollItemTo(3, true, func(ok bool) { result = append(result, ok) }))
	require.Empty(t, result)
	require.Equal(t, 0, p.LeftIndex())

	anim.step(150)
	require.Equal(t, 2, p.CurrentPageIndex())
	require.Equal(t, 0, p.LeftIndex())

	anim.complete(true)
	require.Equal(t, []bool{true}, result)
	require.Equal(t, 3, p.LeftIndex())
	require.Equal(t, 300.0, p.Offset())
}

func TestDragLifecycleWithoutDeceleration(t *testing.T) {
	t.Parallel()

	p, rec := newPager(t, 3)
	p.DidScroll(10)
	require.Empty(t, rec.events, "idle scrolls are not reported")

	p.DidScroll(0)
	p.WillBeginDragging()
	require.Equal(t, StateDragging, p.State())
	p.DidScroll(60)
	p.DidScroll(100)
	p.DidEndDragging(false)

	require.Equal(t, StateIdle, p.State())
	require.Equal(t, []string{
		"begin 0",
		"scroll 1 -0.40",
		"scroll 1 0.00",
		"end 1",
	}, rec.events)
}

func TestDragLifecycleWithDeceleration(t *testing.T) {
	t.Parallel()

	p, rec := newPager(t, 3)
	require.NoError(t, p.ScrollItemTo(1, false, nil))

	p.WillBeginDragging()
	p.DidScroll(130)
	p.DidEndDragging(true)
	require.Equal(t, StateDecelerating, p.State())
	p.DidScroll(170)
	p.DidScroll(200)
	p.DidEndDecelerating()

	require.Equal(t, StateIdle, p.State())
	require.Equal(t, []string{
		"begin 1",
		"scroll 1 0.30",
		"scroll 2 -0.30",
		"scroll 2 0.00",
		"end 2",
	}, rec.events)
}

func TestRegrabDuringDecelerationIsNotReportedTwice(t *testing.T) {
	t.Parallel()

	p, rec := newPager(t, 3)
	p.WillBeginDragging()
	p.DidScroll(40)
	p.DidEndDragging(true)
	p.WillBeginDragging()
	require.Equal(t, StateDragging, p.State())
	p.DidScroll(20)
	p.DidScroll(0)
	p.DidEndDragging(false)

	require.Equal(t, []string{
		"begin 0",
		"scroll 0 0.40",
		"scroll 0 0.20",
		"scroll 0 0.00",
		"end 0",
	}, rec.events)
}

func TestDecelerationEndOutOfBoundsIgnored(t *testing.T) {
	t.Parallel()

	p, rec := newPager(t, 2)
	p.WillBeginDragging()
	p.DidEndDragging(true)
	p.DidScroll(-12)
	p.DidEndDecelerating()
	require.Equal(t, StateDecelerating, p.State())

	p.DidScroll(200)
	p.DidEndDecelerating()
	require.Equal(t, StateDecelerating, p.State())

	p.DidScroll(100)
	p.DidEndDecelerating()
	require.Equal(t, StateIdle, p.State())
	require.Equal(t, "end 1", rec.events[len(rec.events)-1])
}

func TestDecelerationEndWhileIdleEmitsNothing(t *testing.T) {
	t.Parallel()

	p, rec := newPager(t, 2)
	p.DidEndDecelerating()
	p.DidEndDragging(false)
	require.Empty(t, rec.events)
}

func TestSetBoundsKeepsPageAligned(t *testing.T) {
	t.Parallel()

	p, _ := newPager(t, 4)
	require.NoError(t, p.ScrollItemTo(2, false, nil))
	p.SetBounds(320, 200)
	require.Equal(t, 640.0, p.Offset())
	require.Equal(t, 2, p.CurrentPageIndex())
	require.Equal(t, Rect{X: 960, W: 320, H: 200}, p.PageFrame(3))
}

func TestNilDelegateTolerated(t *testing.T) {
	t.Parallel()

	p := New(stubPages(2), nil, nil)
	p.SetBounds(100, 100)
	p.LoadData()
	p.WillBeginDragging()
	p.DidScroll(50)
	p.DidEndDragging(false)
	require.Equal(t, StateIdle, p.State())
}

func TestVisiblePagesMidDrag(t *testing.T) {
	t.Parallel()

	p, _ := newPager(t, 3)
	p.WillBeginDragging()
	p.DidScroll(150)
	vis := p.VisiblePages()
	require.Len(t, vis, 2)
	require.Equal(t, 1, vis[0].Index)
	require.Equal(t, 2, vis[1].Index)
}

func TestLoadDataStopsDeceleration(t *testing.T) {
	t.Parallel()

	anim := scroll.NewAnimator()
	p, rec := newPager(t, 4)
	p.Animator = anim
	g := &Gesture{Pager: p, Animator: anim, Slop: 8, FlickVelocity: 12}
	g.Press(300)
	g.Move(290)
	g.Move(260)
	g.Release()
	require.True(t, anim.Running())

	p.DataSource = stubPages(2)
	p.LoadData()

	require.False(t, anim.Running())
	require.Equal(t, StateIdle, p.State())
	require.Equal(t, 0, p.LeftIndex())
	require.Equal(t, 0.0, p.Offset())

	rec.events = nil
	anim.Step()
	require.Empty(t, rec.events)
}

func TestScrollItemToWhileDraggingReturnsToIdle(t *testing.T) {
	t.Parallel()

	p, rec := newPager(t, 3)
	p.WillBeginDragging()
	p.DidScroll(30)
	require.NoError(t, p.ScrollItemTo(2, false, nil))

	require.Equal(t, StateIdle, p.State())
	require.Equal(t, 2, p.LeftIndex())
	require.Equal(t, []string{"begin 0", "scroll 0 0.30"}, rec.events)

	rec.events = nil
	p.WillBeginDragging()
	require.Equal(t, []string{"begin 2"}, rec.events)
}
