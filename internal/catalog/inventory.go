package catalog

import (
	"sync"

	"github.com/example/bookshop/internal/domain/book"
)

// Inventory is the cumulative set of every book the shop has ever
// shown, keyed by ID. It is append-only: merging never overwrites an
// existing entry.
type Inventory struct {
	mu    sync.RWMutex
	books map[string]book.Book
}

func NewInventory() *Inventory {
	return &Inventory{books: make(map[string]book.Book)}
}

// Merge adds books whose IDs are not yet present and returns the number
// actually added.
func (inv *Inventory) Merge(books []book.Book) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	added := 0
	for _, b := range books {
		if _, ok := inv.books[b.ID]; ok {
			continue
		}
		inv.books[b.ID] = b
		added++
	}
	return added
}

// Get looks up a book by ID.
func (inv *Inventory) Get(id string) (book.Book, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	b, ok := inv.books[id]
	return b, ok
}

// All returns every book in the inventory. Order is unspecified.
func (inv *Inventory) All() []book.Book {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]book.Book, 0, len(inv.books))
	for _, b := range inv.books {
		out = append(out, b)
	}
	return out
}

// Len returns the number of books in the inventory.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.books)
}
