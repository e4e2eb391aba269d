package jellyfin

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/atomic"
)

const loadTimeout = 20 * time.Second

type libraryFetcher interface {
	LoadLibraries(ctx context.Context, limit int) ([]Library, error)
}

// LoadResult is one finished library load.
type LoadResult struct {
	Libraries []Library
	Err       error
}

// Loader fetches libraries off the UI goroutine. The UI polls Take once per
// frame and applies a result when one is ready.
type Loader struct {
	fetch  libraryFetcher
	limit  int
	logger *slog.Logger

	result  atomic.Pointer[LoadResult]
	running atomic.Bool
	cancel  context.CancelFunc
}

func NewLoader(c *Client, limit int, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{fetch: c, limit: limit, logger: logger}
}

// Start begins a load unless one is already running.
func (l *Loader) Start(ctx context.Context) bool {
	if !l.running.CompareAndSwap(false, true) {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	l.cancel = cancel

	go func() {
		defer cancel()
		start := time.Now()
		libs, err := l.fetch.LoadLibraries(ctx, l.limit)
		if err != nil {
			l.logger.Warn("jellyfin: library load failed", "error", err)
		} else {
			l.logger.Info("jellyfin: libraries loaded", "count", len(libs), "took", time.Since(start).Round(time.Millisecond))
		}
		l.result.Store(&LoadResult{Libraries: libs, Err: err})
		l.running.Store(false)
	}()
	return true
}

// Take returns the latest finished load, once.
func (l *Loader) Take() (*LoadResult, bool) {
	r := l.result.Swap(nil)
	return r, r != nil
}

func (l *Loader) Loading() bool {
	return l.running.Load()
}

// Stop cancels a running load.
func (l *Loader) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
}
