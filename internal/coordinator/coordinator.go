// Package coordinator relays events between a pager and a menu strip so the
// two stay in step.
package coordinator

import (
	"log/slog"

	"github.com/depeter/pagestrip/internal/menustrip"
	"github.com/depeter/pagestrip/internal/pager"
)

// Coordinator is the pager's Delegate and the strip's Delegate.
type Coordinator struct {
	Pager  *pager.Pager
	Strip  *menustrip.Strip
	Logger *slog.Logger

	// OnPageChange, if set, is called when a page settles.
	OnPageChange func(index int)
}

// Bind creates a Coordinator and installs it as both components' delegate.
func Bind(p *pager.Pager, s *menustrip.Strip) *Coordinator {
	c := &Coordinator{Pager: p, Strip: s}
	p.Delegate = c
	s.Delegate = c
	return c
}

func (c *Coordinator) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Coordinator) WillBeginManualScroll(index int) {
	c.log().Debug("coordinator: manual scroll began", "index", index)
}

func (c *Coordinator) DidManualScroll(index int, percent float64) {
	c.Strip.ScrollItemToPercent(index, percent)
}

func (c *Coordinator) DidEndManualScroll(index int) {
	if err := c.Strip.ScrollItemTo(index, true, nil); err != nil {
		c.log().Warn("coordinator: strip out of step with pager", "index", index, "error", err)
		return
	}
	c.settled(index)
}

// DidSelectItem scrolls the pager to the tapped cell.
func (c *Coordinator) DidSelectItem(index int) {
	c.Select(index)
}

// Select moves both components to index with animation.
func (c *Coordinator) Select(index int) {
	if err := c.Strip.ScrollItemTo(index, true, nil); err != nil {
		c.log().Warn("coordinator: select rejected", "index", index, "error", err)
		return
	}
	err := c.Pager.ScrollItemTo(index, true, func(finished bool) {
		if finished {
			c.settled(index)
		}
	})
	if err != nil {
		c.log().Warn("coordinator: pager rejected selection", "index", index, "error", err)
	}
}

// Step moves the selection by delta, clamped to the available pages.
func (c *Coordinator) Step(delta int) {
	n := c.Pager.PageCount()
	if n == 0 {
		return
	}
	target := max(0, min(n-1, c.Strip.SelectedIndex()+delta))
	if target == c.Strip.SelectedIndex() && target == c.Pager.LeftIndex() {
		return
	}
	c.Select(target)
}

// Reload reloads both components from their data sources.
func (c *Coordinator) Reload() {
	c.Pager.LoadData()
	c.Strip.LoadData()
	if c.Pager.PageCount() > 0 {
		c.settled(0)
	}
}

func (c *Coordinator) settled(index int) {
	if c.OnPageChange != nil {
		c.OnPageChange(index)
	}
}
