// Package bridge synchronizes the in-memory workspace with the host's
// read/write channels. It is a pass-through timing layer: outbound emissions
// are trailing-edge debounced so high-frequency gestures do not flood the
// host, and inbound replacements are validated wholesale before adoption.
// No business rules live here.
package bridge

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"prism/internal/jsonutil"
	"prism/internal/workspace"
)

// DefaultInterval is the outbound debounce quiet period.
const DefaultInterval = 250 * time.Millisecond

// Options configures a Bridge. Emit receives the debounced workspace on the
// host's read channel; OnError surfaces rejected inbound updates without
// throwing into the event that carried them.
type Options struct {
	Interval time.Duration
	MaxTabs  int
	Emit     func(*workspace.Workspace)
	OnError  func(error)
	Logger   *log.Logger
}

// Bridge debounces outbound workspace emissions and validates inbound ones.
type Bridge struct {
	mu       sync.Mutex
	interval time.Duration
	maxTabs  int
	emit     func(*workspace.Workspace)
	onError  func(error)
	logger   *log.Logger

	timer   *time.Timer
	pending *workspace.Workspace
	stopped bool
}

// New creates a Bridge. A zero Interval uses DefaultInterval; a nil Logger
// logs nowhere.
func New(opts Options) *Bridge {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bridge{
		interval: opts.Interval,
		maxTabs:  opts.MaxTabs,
		emit:     opts.Emit,
		onError:  opts.OnError,
		logger:   logger,
	}
}

// Schedule queues w for emission after the quiet period. Each call replaces
// the pending snapshot and restarts the timer (trailing-edge debounce), so a
// burst of changes produces one emission carrying the last state.
func (b *Bridge) Schedule(w *workspace.Workspace) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped || b.emit == nil {
		return
	}
	b.pending = w.Clone()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.interval, b.fire)
}

func (b *Bridge) fire() {
	b.mu.Lock()
	w := b.pending
	b.pending = nil
	b.timer = nil
	stopped := b.stopped
	b.mu.Unlock()
	if w == nil || stopped || b.emit == nil {
		return
	}
	b.emit(w)
}

// Flush emits any pending snapshot immediately, canceling the timer.
// Used on shutdown so the last state is never lost to the debounce window.
func (b *Bridge) Flush() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	w := b.pending
	b.pending = nil
	b.mu.Unlock()
	if w != nil && b.emit != nil {
		b.emit(w)
	}
}

// Stop cancels any pending emission. The bridge ignores Schedule afterwards.
func (b *Bridge) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.pending = nil
}

// Accept validates an inbound replacement workspace. On success it returns
// a deep clone safe to commit. On failure the current state is retained by
// the caller; the error is logged and surfaced through OnError.
func (b *Bridge) Accept(w *workspace.Workspace) (*workspace.Workspace, error) {
	if err := workspace.Validate(w, b.maxTabs); err != nil {
		b.logger.Warn("rejected inbound workspace", "err", err)
		if b.onError != nil {
			b.onError(err)
		}
		return nil, err
	}
	return w.Clone(), nil
}

// AcceptJSON decodes an inbound update from the host's write channel and
// validates it like Accept.
func (b *Bridge) AcceptJSON(data []byte) (*workspace.Workspace, error) {
	var w workspace.Workspace
	if err := jsonutil.UnmarshalWithContext(data, &w, "decode inbound workspace"); err != nil {
		b.logger.Warn("rejected inbound workspace", "err", err)
		if b.onError != nil {
			b.onError(err)
		}
		return nil, err
	}
	return b.Accept(&w)
}

// Initial resolves the first-mount state. Valid persisted state is adopted
// verbatim, bypassing initialLayout; otherwise a fresh single-tab workspace
// is built and initialLayout (if any) is bound to that first tab only.
func Initial(persisted *workspace.Workspace, initialLayout string, maxTabs int) *workspace.Workspace {
	if persisted != nil {
		if err := workspace.Validate(persisted, maxTabs); err == nil {
			return persisted.Clone()
		}
	}
	return workspace.New(initialLayout)
}

// InitialJSON is Initial for hosts that hand over raw persisted bytes.
// Undecodable or invalid bytes fall back to a fresh workspace, with the
// reason reported through onError.
func InitialJSON(data []byte, initialLayout string, maxTabs int, onError func(error)) *workspace.Workspace {
	if len(data) == 0 {
		return workspace.New(initialLayout)
	}
	var w workspace.Workspace
	if err := jsonutil.UnmarshalWithContext(data, &w, "decode persisted workspace"); err != nil {
		if onError != nil {
			onError(fmt.Errorf("persisted state unreadable: %w", err))
		}
		return workspace.New(initialLayout)
	}
	if err := workspace.Validate(&w, maxTabs); err != nil {
		if onError != nil {
			onError(err)
		}
		return workspace.New(initialLayout)
	}
	return w.Clone()
}
