// Package notify implements the ephemeral in-app notification queue. Every
// loader and action pushes status messages here; entries expire on their own
// after a fixed TTL and can be dismissed early. Nothing is persisted,
// deduplicated, or prioritized.
package notify

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible unless dismissed.
const DefaultTTL = 5 * time.Second

// Kind classifies a notification for styling.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notification is a single user-facing status message.
type Notification struct {
	ID        string
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

// Queue holds the currently visible notifications.
type Queue struct {
	mu      sync.Mutex
	entries []Notification
	timers  map[string]*time.Timer
	ttl     time.Duration

	onChange func([]Notification) // callback for UI updates
}

// NewQueue creates a queue with the default TTL.
func NewQueue() *Queue {
	return NewQueueWithTTL(DefaultTTL)
}

// NewQueueWithTTL creates a queue whose entries expire after ttl. Tests use
// a short ttl to exercise expiry without waiting.
func NewQueueWithTTL(ttl time.Duration) *Queue {
	return &Queue{
		timers: make(map[string]*time.Timer),
		ttl:    ttl,
	}
}

// SetChangeCallback sets the function invoked with a snapshot of the
// visible entries whenever the queue changes.
func (q *Queue) SetChangeCallback(callback func([]Notification)) {
	q.mu.Lock()
	q.onChange = callback
	q.mu.Unlock()
}

// Push appends a notification and schedules its removal after the TTL.
func (q *Queue) Push(message string, kind Kind) Notification {
	n := Notification{
		ID:        generateNotificationID(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	q.mu.Lock()
	q.entries = append(q.entries, n)
	q.timers[n.ID] = time.AfterFunc(q.ttl, func() {
		q.Dismiss(n.ID)
	})
	q.notifyChangeLocked()
	q.mu.Unlock()

	return n
}

// Dismiss removes a notification immediately by id. Dismissing an unknown
// or already-expired id is a no-op.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			q.notifyChangeLocked()
			break
		}
	}
	q.mu.Unlock()
}

// Entries returns a snapshot of the visible notifications, oldest first.
func (q *Queue) Entries() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Close stops all pending expiry timers. Called on app shutdown.
func (q *Queue) Close() {
	q.mu.Lock()
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.entries = nil
	q.mu.Unlock()
}

func (q *Queue) snapshotLocked() []Notification {
	out := make([]Notification, len(q.entries))
	copy(out, q.entries)
	return out
}

// notifyChangeLocked calls the change callback if set. The caller holds the
// lock; the callback receives a copy so it may run UI work asynchronously.
func (q *Queue) notifyChangeLocked() {
	if q.onChange != nil {
		q.onChange(q.snapshotLocked())
	}
}

// generateNotificationID generates a unique, timestamp-derived id.
func generateNotificationID() string {
	return fmt.Sprintf("note-%d", time.Now().UnixNano())
}
