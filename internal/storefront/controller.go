package storefront

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/catalog"
	"github.com/example/bookshop/internal/domain/book"
	"github.com/example/bookshop/internal/domain/cart"
	"github.com/example/bookshop/internal/domain/sales"
	"github.com/example/bookshop/internal/notification"
	"github.com/example/bookshop/internal/recommend"
)

// Controller composes the storefront: it routes prompts to the
// ingestor, cart actions to the ledger, checkout to the sales
// aggregator, and exposes read-only snapshots of every collection.
// The displayed list, sales log and current screen are owned here;
// nothing else mutates them.
type Controller struct {
	mu sync.Mutex

	ingestor  *recommend.Ingestor
	ledger    *cart.Ledger
	sales     *sales.Aggregator
	center    *notification.Center
	inventory *catalog.Inventory

	displayed []book.Book
	salesLog  []sales.Record
	screen    Screen
	admin     bool

	// searchToken supersedes in-flight searches: only callbacks
	// carrying the current token may touch the displayed list.
	searchToken uint64
	searching   bool
}

func NewController(
	ingestor *recommend.Ingestor,
	ledger *cart.Ledger,
	aggregator *sales.Aggregator,
	center *notification.Center,
	inventory *catalog.Inventory,
) *Controller {
	c := &Controller{
		ingestor:  ingestor,
		ledger:    ledger,
		sales:     aggregator,
		center:    center,
		inventory: inventory,
		displayed: catalog.Fallback(),
		screen:    ScreenStore,
	}
	inventory.Merge(c.displayed)
	return c
}

// Search runs one recommendation request. The displayed list is
// replaced immediately and grows item by item as the stream arrives.
// Starting a new search supersedes the previous one: its remaining
// callbacks become inert for display, though a superseded stream that
// completes still merges into the inventory. On stream failure the
// display falls back to the default catalog; the error is logged, not
// surfaced.
func (c *Controller) Search(ctx context.Context, prompt string) {
	c.mu.Lock()
	c.searchToken++
	token := c.searchToken
	c.searching = true
	c.displayed = nil
	c.mu.Unlock()

	books, err := c.ingestor.Ingest(ctx, prompt, func(b book.Book) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.searchToken == token {
			c.displayed = append(c.displayed, b)
		}
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("prompt", prompt).Warn("[Store] recommendation stream failed")
		if c.searchToken == token {
			c.displayed = catalog.Fallback()
			c.searching = false
		}
		return
	}

	c.inventory.Merge(books)
	if c.searchToken == token {
		c.searching = false
	}
}

// AddToCart resolves a book by ID from the inventory or the current
// displayed list and adds it to the cart. Returns false if the ID is
// unknown.
func (c *Controller) AddToCart(ctx context.Context, bookID string) bool {
	c.mu.Lock()
	b, ok := c.inventory.Get(bookID)
	if !ok {
		for _, d := range c.displayed {
			if d.ID == bookID {
				b, ok = d, true
				break
			}
		}
	}
	c.mu.Unlock()

	if !ok {
		return false
	}
	c.ledger.Add(ctx, b)
	return true
}

// RemoveFromCart deletes the line for bookID entirely.
func (c *Controller) RemoveFromCart(ctx context.Context, bookID string) {
	c.ledger.Remove(ctx, bookID)
}

// IncreaseQuantity increments the line's quantity.
func (c *Controller) IncreaseQuantity(ctx context.Context, bookID string) {
	c.ledger.Increase(ctx, bookID)
}

// DecreaseQuantity decrements the line's quantity, removing the line at
// quantity 1.
func (c *Controller) DecreaseQuantity(ctx context.Context, bookID string) {
	c.ledger.Decrease(ctx, bookID)
}

// ClearCart empties the cart.
func (c *Controller) ClearCart(ctx context.Context) {
	c.ledger.Clear(ctx)
}

// Checkout records one sale per unit in the cart and clears it. Both
// happen under the controller lock: no other caller can observe sales
// recorded with the cart still full.
func (c *Controller) Checkout(ctx context.Context) []sales.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := c.ledger.Lines()
	if len(lines) == 0 {
		return nil
	}

	records := c.sales.RecordPurchase(ctx, lines)
	c.salesLog = append(c.salesLog, records...)
	c.ledger.Clear(ctx)
	return records
}

// Navigate switches the current screen. Unknown screens are ignored.
func (c *Controller) Navigate(s Screen) {
	if !s.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = s
}

// CurrentScreen returns the screen the presentation layer should render.
func (c *Controller) CurrentScreen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// Login toggles the admin capability on and moves to the admin screen.
func (c *Controller) Login() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.admin = true
	c.screen = ScreenAdmin
}

// Logout drops the admin capability and returns to the store.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.admin = false
	c.screen = ScreenStore
}

// IsAdmin reports whether the admin capability is active.
func (c *Controller) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.admin
}

// Displayed returns a copy of the current displayed list.
func (c *Controller) Displayed() []book.Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]book.Book, len(c.displayed))
	copy(out, c.displayed)
	return out
}

// Searching reports whether a recommendation stream is in flight.
func (c *Controller) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searching
}

// CartLines returns a copy of the cart lines in append order.
func (c *Controller) CartLines() []cart.Line {
	return c.ledger.Lines()
}

// TotalItemCount returns the cart's unit count for the UI badge.
func (c *Controller) TotalItemCount() int {
	return c.ledger.TotalItemCount()
}

// Sales returns a copy of the sales log.
func (c *Controller) Sales() []sales.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]sales.Record, len(c.salesLog))
	copy(out, c.salesLog)
	return out
}

// Inventory returns every book the shop has ever shown.
func (c *Controller) Inventory() []book.Book {
	return c.inventory.All()
}

// Notifications returns the notification log, newest first.
func (c *Controller) Notifications() []notification.Notification {
	return c.center.All()
}
