package readmodel

import "time"

// BookSalesReadModel aggregates sales per book for the admin view.
type BookSalesReadModel struct {
	BookID     string    `json:"book_id"`
	Title      string    `json:"title"`
	UnitsSold  int       `json:"units_sold"`
	LastSoldAt time.Time `json:"last_sold_at"`
}

// CartActivityReadModel tracks cart churn per book for the admin view.
type CartActivityReadModel struct {
	BookID      string    `json:"book_id"`
	Title       string    `json:"title"`
	TimesAdded  int       `json:"times_added"`
	LastAddedAt time.Time `json:"last_added_at"`
}
