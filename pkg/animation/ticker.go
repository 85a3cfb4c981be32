// Package animation provides the timing primitives that drive shimmer
// sweeps: a replaceable clock, frame tickers stepped by the host, and an
// [AnimationController] that repeats indefinitely.
//
// Tickers never run on their own goroutine. The host calls [StepTickers]
// once per frame; every active ticker then receives the time elapsed since
// it started.
package animation

import (
	"sync"
	"time"
)

// tickerMu guards activeTickers and every ticker's active flag, so tickers
// may be started and stopped on one goroutine while another steps them.
var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	start := Now()
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = start
	activeTickers[t] = struct{}{}
}

// Stop deactivates the ticker. A step already in progress may still deliver
// one last callback.
func (t *Ticker) Stop() {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if !t.isActive {
		return
	}
	t.isActive = false
	delete(activeTickers, t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return t.isActive
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host.
func StepTickers() {
	now := Now()
	type due struct {
		callback func(time.Duration)
		elapsed  time.Duration
	}
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Callbacks run without the lock so they may start or stop tickers.
	pending := make([]due, 0, len(activeTickers))
	for t := range activeTickers {
		if t.callback != nil {
			pending = append(pending, due{callback: t.callback, elapsed: now.Sub(t.start)})
		}
	}
	tickerMu.Unlock()

	for _, d := range pending {
		d.callback(d.elapsed)
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
