package cart

import "time"

const (
	EventItemAdded         = "CartItemAdded"
	EventItemRemoved       = "CartItemRemoved"
	EventQuantityIncreased = "CartQuantityIncreased"
	EventQuantityDecreased = "CartQuantityDecreased"
	EventCartCleared       = "CartCleared"
)

// ItemAdded is emitted only when a new line is created, never when an
// existing line's quantity is incremented.
type ItemAdded struct {
	BookID  string    `json:"book_id"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"added_at"`
}

type ItemRemoved struct {
	BookID    string    `json:"book_id"`
	RemovedAt time.Time `json:"removed_at"`
}

// QuantityIncreased carries the quantity after the increment.
type QuantityIncreased struct {
	BookID      string    `json:"book_id"`
	Quantity    int       `json:"quantity"`
	IncreasedAt time.Time `json:"increased_at"`
}

// QuantityDecreased carries the quantity after the decrement.
type QuantityDecreased struct {
	BookID      string    `json:"book_id"`
	Quantity    int       `json:"quantity"`
	DecreasedAt time.Time `json:"decreased_at"`
}

type CartCleared struct {
	ClearedAt time.Time `json:"cleared_at"`
}
