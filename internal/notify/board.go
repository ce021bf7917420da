// Package notify holds the transient notice shown after an export settles.
package notify

import (
	"sync"
	"time"

	"litedata/internal/log"
	"litedata/pkg/types"
)

// DefaultTTL is how long a notice stays visible unless dismissed.
const DefaultTTL = 6 * time.Second

// Board keeps at most one notice. A newer notice replaces the older one.
type Board struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	current   *types.Notice
	listeners map[int]func(types.Notice, bool)
	nextID    int
}

// Option configures a Board.
type Option func(*Board)

// WithTTL sets how long notices stay visible. Zero or less keeps them until
// dismissed.
func WithTTL(ttl time.Duration) Option {
	return func(b *Board) { b.ttl = ttl }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// NewBoard creates an empty board.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		ttl:       DefaultTTL,
		now:       time.Now,
		listeners: make(map[int]func(types.Notice, bool)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// TTL returns the configured visibility period.
func (b *Board) TTL() time.Duration {
	return b.ttl
}

// Post shows a new notice.
func (b *Board) Post(level types.NoticeLevel, message, detail string) types.Notice {
	n := types.Notice{
		Level:     level,
		Message:   message,
		Detail:    detail,
		CreatedAt: b.now(),
	}

	b.mu.Lock()
	b.current = &n
	listeners := b.snapshotListeners()
	b.mu.Unlock()

	log.LogWithFields(
		log.F("level", level.String()),
		log.F("detail", detail),
	).Info(message)

	for _, fn := range listeners {
		fn(n, true)
	}
	return n
}

// Success posts a success notice.
func (b *Board) Success(message, detail string) types.Notice {
	return b.Post(types.NoticeSuccess, message, detail)
}

// Failure posts an error notice.
func (b *Board) Failure(message, detail string) types.Notice {
	return b.Post(types.NoticeError, message, detail)
}

// Current returns the visible notice. Expired notices are cleared.
func (b *Board) Current() (types.Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return types.Notice{}, false
	}
	if b.expired(*b.current) {
		b.current = nil
		return types.Notice{}, false
	}
	return *b.current, true
}

// Dismiss hides the current notice.
func (b *Board) Dismiss() {
	b.mu.Lock()
	had := b.current != nil
	b.current = nil
	listeners := b.snapshotListeners()
	b.mu.Unlock()

	if !had {
		return
	}
	for _, fn := range listeners {
		fn(types.Notice{}, false)
	}
}

// Subscribe registers fn for posts and dismissals. visible is false on
// dismissal.
func (b *Board) Subscribe(fn func(n types.Notice, visible bool)) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

func (b *Board) expired(n types.Notice) bool {
	return b.ttl > 0 && !b.now().Before(n.CreatedAt.Add(b.ttl))
}

func (b *Board) snapshotListeners() []func(types.Notice, bool) {
	out := make([]func(types.Notice, bool), 0, len(b.listeners))
	for _, fn := range b.listeners {
		out = append(out, fn)
	}
	return out
}
