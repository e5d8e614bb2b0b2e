package sales

import "time"

const (
	EventSaleRecorded = "SaleRecorded"
)

// SaleRecorded is emitted once per distinct book at checkout, carrying
// the quantity of units sold for that book.
type SaleRecorded struct {
	BookID   string    `json:"book_id"`
	Title    string    `json:"title"`
	Quantity int       `json:"quantity"`
	Price    string    `json:"price"`
	SoldAt   time.Time `json:"sold_at"`
}
