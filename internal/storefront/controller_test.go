package storefront

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bookshop/internal/catalog"
	"github.com/example/bookshop/internal/domain/book"
	"github.com/example/bookshop/internal/domain/cart"
	"github.com/example/bookshop/internal/domain/sales"
	"github.com/example/bookshop/internal/infrastructure/store"
	"github.com/example/bookshop/internal/notification"
	"github.com/example/bookshop/internal/projection"
	"github.com/example/bookshop/internal/query"
	"github.com/example/bookshop/internal/recommend"
)

// recvResult lets a test stream block until the test feeds it.
type recvResult struct {
	rec book.Record
	err error
}

type chanStream struct {
	ch chan recvResult
}

func newChanStream() *chanStream {
	return &chanStream{ch: make(chan recvResult)}
}

func (s *chanStream) Recv() (book.Record, error) {
	res := <-s.ch
	return res.rec, res.err
}

func (s *chanStream) feed(rec book.Record) { s.ch <- recvResult{rec: rec} }
func (s *chanStream) fail(err error)       { s.ch <- recvResult{err: err} }
func (s *chanStream) finish()              { s.ch <- recvResult{err: io.EOF} }

// queueGenerator hands out one prepared stream per Recommend call.
type queueGenerator struct {
	mu      sync.Mutex
	streams []recommend.Stream
	calls   int
}

func (g *queueGenerator) Recommend(context.Context, string, string) (recommend.Stream, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.calls >= len(g.streams) {
		return nil, errors.New("no stream prepared")
	}
	s := g.streams[g.calls]
	g.calls++
	return s, nil
}

type testEnv struct {
	controller *Controller
	center     *notification.Center
	query      *query.Handler
}

func newTestEnv(gen recommend.Generator) *testEnv {
	eventStore := store.NewEventStore(nil)
	readStore := store.NewReadStore()
	center := notification.NewCenter()
	eventStore.Subscribe(notification.NewHandler(center).Apply)
	eventStore.Subscribe(projection.NewProjector(readStore).Apply)

	ingestor := recommend.NewIngestor(gen, recommend.NewSynthesizer(rand.New(rand.NewSource(1))))
	controller := NewController(
		ingestor,
		cart.NewLedger(eventStore),
		sales.NewAggregator(eventStore),
		center,
		catalog.NewInventory(),
	)
	return &testEnv{
		controller: controller,
		center:     center,
		query:      query.NewHandler(readStore),
	}
}

func record(title string) book.Record {
	return book.Record{
		Title:           title,
		Author:          "Author",
		Summary:         "Summary",
		Category:        "Fiction",
		PublicationDate: "2001-01-01",
		Pages:           300,
	}
}

func titles(books []book.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

// ============================================
// Startup & Search Tests
// ============================================

func TestController_StartsWithFallbackCatalog(t *testing.T) {
	env := newTestEnv(&queueGenerator{})

	displayed := env.controller.Displayed()
	assert.Equal(t, titles(catalog.Fallback()), titles(displayed))
	assert.False(t, env.controller.Searching())
	// Everything ever shown is in the inventory, fallback included.
	assert.Len(t, env.controller.Inventory(), len(catalog.Fallback()))
}

func TestController_Search_PopulatesDisplayedAndInventory(t *testing.T) {
	stream := newChanStream()
	env := newTestEnv(&queueGenerator{streams: []recommend.Stream{stream}})

	done := make(chan struct{})
	go func() {
		env.controller.Search(context.Background(), "space operas")
		close(done)
	}()

	stream.feed(record("Dune"))
	stream.feed(record("Hyperion"))

	// Partial progress is visible while the stream is open.
	require.Eventually(t, func() bool {
		return len(env.controller.Displayed()) == 2
	}, time.Second, time.Millisecond)
	assert.True(t, env.controller.Searching())

	stream.finish()
	<-done

	assert.Equal(t, []string{"Dune", "Hyperion"}, titles(env.controller.Displayed()))
	assert.False(t, env.controller.Searching())
	// Fallback plus the two new books.
	assert.Len(t, env.controller.Inventory(), len(catalog.Fallback())+2)
}

func TestController_Search_FailureFallsBackAfterPartialDisplay(t *testing.T) {
	stream := newChanStream()
	env := newTestEnv(&queueGenerator{streams: []recommend.Stream{stream}})

	done := make(chan struct{})
	go func() {
		env.controller.Search(context.Background(), "space operas")
		close(done)
	}()

	stream.feed(record("Dune"))
	stream.feed(record("Hyperion"))
	require.Eventually(t, func() bool {
		return len(env.controller.Displayed()) == 2
	}, time.Second, time.Millisecond)

	stream.fail(errors.New("connection reset"))
	<-done

	// Not the two partial items and not empty: the fixed catalog.
	assert.Equal(t, titles(catalog.Fallback()), titles(env.controller.Displayed()))
	assert.False(t, env.controller.Searching())
	// The failed stream's items never reach the inventory.
	assert.Len(t, env.controller.Inventory(), len(catalog.Fallback()))
}

func TestController_Search_SecondSearchSupersedesFirst(t *testing.T) {
	first := newChanStream()
	second := newChanStream()
	env := newTestEnv(&queueGenerator{streams: []recommend.Stream{first, second}})

	firstDone := make(chan struct{})
	go func() {
		env.controller.Search(context.Background(), "first")
		close(firstDone)
	}()
	first.feed(record("Stale One"))
	require.Eventually(t, func() bool {
		return len(env.controller.Displayed()) == 1
	}, time.Second, time.Millisecond)

	secondDone := make(chan struct{})
	go func() {
		env.controller.Search(context.Background(), "second")
		close(secondDone)
	}()
	second.feed(record("Fresh One"))
	second.feed(record("Fresh Two"))
	second.finish()
	<-secondDone

	// The first stream keeps producing after being superseded; its
	// callbacks must be inert for display.
	first.feed(record("Stale Two"))
	first.finish()
	<-firstDone

	assert.Equal(t, []string{"Fresh One", "Fresh Two"}, titles(env.controller.Displayed()))
	assert.False(t, env.controller.Searching())

	// A superseded stream that completes still merges into the
	// inventory; entries are never overwritten, so order is moot.
	assert.Len(t, env.controller.Inventory(), len(catalog.Fallback())+4)
}

// ============================================
// Cart & Checkout Tests
// ============================================

func seedInventory(env *testEnv, books ...book.Book) {
	// Route through a completed search so the books land in the
	// inventory the same way real recommendations do.
	env.controller.inventory.Merge(books)
}

func TestController_AddToCart_FromInventory(t *testing.T) {
	env := newTestEnv(&queueGenerator{})
	seedInventory(env, book.Book{ID: "b1", Title: "Dune", Price: "$9.99"})

	ok := env.controller.AddToCart(context.Background(), "b1")

	require.True(t, ok)
	lines := env.controller.CartLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Dune", lines[0].Book.Title)
	assert.Equal(t, 1, env.controller.TotalItemCount())
}

func TestController_AddToCart_UnknownID(t *testing.T) {
	env := newTestEnv(&queueGenerator{})

	ok := env.controller.AddToCart(context.Background(), "missing")

	assert.False(t, ok)
	assert.Empty(t, env.controller.CartLines())
}

func TestController_AddToCart_EmitsOneNotificationPerDistinctBook(t *testing.T) {
	env := newTestEnv(&queueGenerator{})
	seedInventory(env, book.Book{ID: "b1", Title: "Dune"})
	ctx := context.Background()

	env.controller.AddToCart(ctx, "b1")
	env.controller.AddToCart(ctx, "b1") // increment, no second notification

	all := env.center.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Dune added to cart", all[0].Message)
	assert.Equal(t, 2, env.controller.TotalItemCount())
}

func TestController_Checkout(t *testing.T) {
	env := newTestEnv(&queueGenerator{})
	seedInventory(env,
		book.Book{ID: "book-a", Title: "Dune", Price: "$9.99"},
		book.Book{ID: "book-b", Title: "Hyperion", Price: "$12.99"},
	)
	ctx := context.Background()

	env.controller.AddToCart(ctx, "book-a")
	env.controller.AddToCart(ctx, "book-a")
	env.controller.AddToCart(ctx, "book-b")

	records := env.controller.Checkout(ctx)

	// (A, qty 2) + (B, qty 1) -> exactly 3 records.
	require.Len(t, records, 3)
	assert.Equal(t, "book-a", records[0].BookID)
	assert.Equal(t, "book-a", records[1].BookID)
	assert.Equal(t, "book-b", records[2].BookID)

	// Cart cleared atomically with the sale.
	assert.Empty(t, env.controller.CartLines())
	assert.Equal(t, 0, env.controller.TotalItemCount())

	// Sales log holds the records.
	assert.Len(t, env.controller.Sales(), 3)

	// Exactly one sale notification per distinct book, plus the two
	// add notifications, newest first.
	all := env.center.All()
	require.Len(t, all, 4)
	assert.Equal(t, "Sold 1 x Hyperion", all[0].Message)
	assert.Equal(t, "Sold 2 x Dune", all[1].Message)

	// Admin read models aggregate the same purchase.
	summary := env.query.BookSales()
	require.Len(t, summary, 2)
	assert.Equal(t, "Dune", summary[0].Title)
	assert.Equal(t, 2, summary[0].UnitsSold)
	assert.Equal(t, 3, env.query.TotalUnitsSold())
}

func TestController_Checkout_EmptyCart(t *testing.T) {
	env := newTestEnv(&queueGenerator{})

	records := env.controller.Checkout(context.Background())

	assert.Nil(t, records)
	assert.Empty(t, env.controller.Sales())
	assert.Empty(t, env.center.All())
}

// ============================================
// Screen & Login Tests
// ============================================

func TestController_Navigate(t *testing.T) {
	env := newTestEnv(&queueGenerator{})

	assert.Equal(t, ScreenStore, env.controller.CurrentScreen())

	env.controller.Navigate(ScreenCart)
	assert.Equal(t, ScreenCart, env.controller.CurrentScreen())

	env.controller.Navigate(Screen("bogus"))
	assert.Equal(t, ScreenCart, env.controller.CurrentScreen())
}

func TestController_LoginLogout(t *testing.T) {
	env := newTestEnv(&queueGenerator{})

	assert.False(t, env.controller.IsAdmin())

	env.controller.Login()
	assert.True(t, env.controller.IsAdmin())
	assert.Equal(t, ScreenAdmin, env.controller.CurrentScreen())

	env.controller.Logout()
	assert.False(t, env.controller.IsAdmin())
	assert.Equal(t, ScreenStore, env.controller.CurrentScreen())
}
