package ui

import (
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// RemoteAction is a tab navigation command from a remote control.
type RemoteAction int

const (
	RemoteNext RemoteAction = iota
	RemotePrev
	RemoteFirst
	remoteActionCount
)

const recentEventsMax = 8

// RemoteEvent is a captured key press from an input device.
type RemoteEvent struct {
	Time   time.Time
	Device string // e.g. "event3"
	Code   uint16
}

// Remote collects key presses from media remotes, which ebiten does not
// see, and hands them to the UI loop as pending actions.
type Remote struct {
	Logger *slog.Logger

	pending [remoteActionCount]atomic.Int32

	mu     sync.Mutex
	recent []RemoteEvent
}

func (r *Remote) log() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Remote) press(device string, code uint16, action RemoteAction, mapped bool) {
	r.mu.Lock()
	r.recent = append(r.recent, RemoteEvent{Time: time.Now(), Device: device, Code: code})
	if len(r.recent) > recentEventsMax {
		r.recent = r.recent[len(r.recent)-recentEventsMax:]
	}
	r.mu.Unlock()

	r.log().Debug("remote: key press", "device", device, "code", code, "mapped", mapped)
	if mapped {
		r.pending[action].Inc()
	}
}

// Take consumes one pending press of action.
func (r *Remote) Take(action RemoteAction) bool {
	c := &r.pending[action]
	for {
		n := c.Load()
		if n <= 0 {
			return false
		}
		if c.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

// Recent returns a snapshot of the most recent key presses.
func (r *Remote) Recent() []RemoteEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RemoteEvent, len(r.recent))
	copy(out, r.recent)
	return out
}
