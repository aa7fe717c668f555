// Package notify implements the bounded queue of transient user-facing
// toasts. Toasts are ephemeral session feedback and are never persisted.
package notify

import (
	"sync"
	"time"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/ident"
)

const (
	// DefaultCapacity bounds how many toasts are retained at once.
	DefaultCapacity = 5
	// DefaultTTL is how long a toast survives before the next push evicts it.
	DefaultTTL = 8 * time.Second
)

// Queue keeps the most recent toasts, newest first. Pushing beyond capacity
// drops the oldest entries; stale entries are evicted lazily on the next
// push rather than by timers.
type Queue struct {
	mu       sync.Mutex
	toasts   []domain.ToastMessage
	capacity int
	ttl      time.Duration
	now      func() time.Time
	newID    ident.Generator
}

// Option customises queue construction.
type Option func(*Queue)

// WithCapacity overrides the retained toast count. Non-positive values keep
// the default.
func WithCapacity(capacity int) Option {
	return func(q *Queue) {
		if capacity > 0 {
			q.capacity = capacity
		}
	}
}

// WithTTL overrides how long a toast survives. Non-positive values keep the
// default.
func WithTTL(ttl time.Duration) Option {
	return func(q *Queue) {
		if ttl > 0 {
			q.ttl = ttl
		}
	}
}

// WithClock overrides time acquisition, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		if now != nil {
			q.now = now
		}
	}
}

// WithIDGenerator overrides toast id generation, primarily for tests.
func WithIDGenerator(generate ident.Generator) Option {
	return func(q *Queue) {
		if generate != nil {
			q.newID = generate
		}
	}
}

// NewQueue constructs an empty toast queue.
func NewQueue(opts ...Option) *Queue {
	queue := &Queue{
		capacity: DefaultCapacity,
		ttl:      DefaultTTL,
		now:      time.Now,
		newID:    ident.New,
	}
	for _, opt := range opts {
		opt(queue)
	}
	return queue
}

// Push enqueues a toast and returns it with id and timestamp assigned.
// Entries older than the TTL are evicted first, then the queue is trimmed to
// capacity with the newest entries winning.
func (q *Queue) Push(title, description string, status domain.ToastStatus) domain.ToastMessage {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	toast := domain.ToastMessage{
		ID:          q.newID("toast"),
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
	}

	kept := make([]domain.ToastMessage, 0, len(q.toasts)+1)
	kept = append(kept, toast)
	for _, existing := range q.toasts {
		if now.Sub(existing.CreatedAt) >= q.ttl {
			continue
		}
		kept = append(kept, existing)
	}
	if len(kept) > q.capacity {
		kept = kept[:q.capacity]
	}
	q.toasts = kept

	return toast
}

// Success enqueues a success toast.
func (q *Queue) Success(title, description string) domain.ToastMessage {
	return q.Push(title, description, domain.ToastSuccess)
}

// Info enqueues an informational toast.
func (q *Queue) Info(title, description string) domain.ToastMessage {
	return q.Push(title, description, domain.ToastInfo)
}

// Warning enqueues a warning toast.
func (q *Queue) Warning(title, description string) domain.ToastMessage {
	return q.Push(title, description, domain.ToastWarning)
}

// Error enqueues an error toast.
func (q *Queue) Error(title, description string) domain.ToastMessage {
	return q.Push(title, description, domain.ToastError)
}

// Dismiss removes the toast with the given id. Dismissing an unknown id is a
// no-op.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, toast := range q.toasts {
		if toast.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

// List returns the current toasts, newest first.
func (q *Queue) List() []domain.ToastMessage {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.ToastMessage, len(q.toasts))
	copy(out, q.toasts)
	return out
}
