package cart

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/domain/book"
	"github.com/example/bookshop/internal/infrastructure/store"
)

const AggregateType = "Cart"

// AggregateID identifies the single storefront cart.
const AggregateID = "cart"

// Line is a cart line item: a book and a quantity of at least 1.
type Line struct {
	Book     book.Book `json:"book"`
	Quantity int       `json:"quantity"`
}

// Ledger owns the cart line items. At most one line exists per book ID;
// lines keep their append order across quantity changes; a quantity of
// zero never persists. All operations are total: invalid inputs are
// no-ops, never errors.
type Ledger struct {
	mu         sync.Mutex
	lines      []Line
	eventStore store.EventStoreInterface
}

func NewLedger(es store.EventStoreInterface) *Ledger {
	return &Ledger{eventStore: es}
}

// Add inserts a new line at quantity 1, or increments the existing line
// for the same book. Only the insert path emits an ItemAdded event; an
// increment emits QuantityIncreased so downstream consumers never
// notify twice for the same book.
func (l *Ledger) Add(ctx context.Context, b book.Book) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Book.ID == b.ID {
			l.lines[i].Quantity++
			l.append(ctx, EventQuantityIncreased, QuantityIncreased{
				BookID:      b.ID,
				Quantity:    l.lines[i].Quantity,
				IncreasedAt: time.Now(),
			})
			return
		}
	}

	l.lines = append(l.lines, Line{Book: b, Quantity: 1})
	l.append(ctx, EventItemAdded, ItemAdded{
		BookID:  b.ID,
		Title:   b.Title,
		AddedAt: time.Now(),
	})
}

// Remove deletes the line entirely regardless of quantity. Absent ID is
// a no-op.
func (l *Ledger) Remove(ctx context.Context, bookID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Book.ID == bookID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			l.append(ctx, EventItemRemoved, ItemRemoved{
				BookID:    bookID,
				RemovedAt: time.Now(),
			})
			return
		}
	}
}

// Increase increments the line's quantity by 1. Absent ID is a no-op.
func (l *Ledger) Increase(ctx context.Context, bookID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Book.ID == bookID {
			l.lines[i].Quantity++
			l.append(ctx, EventQuantityIncreased, QuantityIncreased{
				BookID:      bookID,
				Quantity:    l.lines[i].Quantity,
				IncreasedAt: time.Now(),
			})
			return
		}
	}
}

// Decrease decrements the line's quantity by 1, removing the line
// entirely when the quantity would reach zero. Absent ID is a no-op.
func (l *Ledger) Decrease(ctx context.Context, bookID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Book.ID != bookID {
			continue
		}
		if l.lines[i].Quantity > 1 {
			l.lines[i].Quantity--
			l.append(ctx, EventQuantityDecreased, QuantityDecreased{
				BookID:      bookID,
				Quantity:    l.lines[i].Quantity,
				DecreasedAt: time.Now(),
			})
		} else {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			l.append(ctx, EventItemRemoved, ItemRemoved{
				BookID:    bookID,
				RemovedAt: time.Now(),
			})
		}
		return
	}
}

// Clear empties the cart.
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
	l.append(ctx, EventCartCleared, CartCleared{ClearedAt: time.Now()})
}

// TotalItemCount returns the sum of all line quantities (unit count,
// not line count). Recomputed on every read.
func (l *Ledger) TotalItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// Lines returns a copy of the cart lines in append order.
func (l *Ledger) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) append(ctx context.Context, eventType string, data any) {
	if l.eventStore == nil {
		return
	}
	if _, err := l.eventStore.Append(ctx, AggregateID, AggregateType, eventType, data); err != nil {
		logrus.WithError(err).WithField("event_type", eventType).Error("[Cart] failed to append event")
	}
}
