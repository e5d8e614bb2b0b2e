package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Capacity is the hard cap on the notification log. Entries beyond it
// are evicted immediately and never resurrected.
const Capacity = 20

// Notification is a single log entry. The read flag moves one way,
// unread to read; the only other mutation is removal.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Center is a bounded, newest-first log of system messages. All
// operations are total and idempotent where applicable: dismissing an
// absent ID or re-marking a read notification is a no-op.
type Center struct {
	mu            sync.RWMutex
	notifications []Notification
}

func NewCenter() *Center {
	return &Center{}
}

// Push inserts a new unread notification at the front and drops the
// oldest entries beyond Capacity.
func (c *Center) Push(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Timestamp: time.Now(),
	}
	c.notifications = append([]Notification{n}, c.notifications...)
	if len(c.notifications) > Capacity {
		c.notifications = c.notifications[:Capacity]
	}
}

// Dismiss removes the notification with the given ID.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return
		}
	}
}

// MarkRead marks a single notification as read.
func (c *Center) MarkRead(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].Read = true
			return
		}
	}
}

// MarkAllRead marks every notification as read.
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.notifications {
		c.notifications[i].Read = true
	}
}

// ClearAll removes every notification.
func (c *Center) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notifications = nil
}

// All returns a copy of the log, newest first.
func (c *Center) All() []Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// UnreadCount returns the number of unread notifications.
func (c *Center) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, n := range c.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
