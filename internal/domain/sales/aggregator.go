package sales

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/domain/cart"
	"github.com/example/bookshop/internal/infrastructure/store"
)

const AggregateType = "Sales"

// AggregateID identifies the single storefront sales log.
const AggregateID = "sales"

// Record is one purchased unit. A line with quantity N yields N records
// sharing the book ID, each with its own capture time. Records are
// immutable and append-only.
type Record struct {
	BookID    string    `json:"book_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Aggregator converts checked-out cart lines into sale records and
// emits one SaleRecorded event per distinct book.
type Aggregator struct {
	eventStore store.EventStoreInterface
	now        func() time.Time
}

func NewAggregator(es store.EventStoreInterface) *Aggregator {
	return &Aggregator{eventStore: es, now: time.Now}
}

// RecordPurchase produces exactly quantity records per line, each
// timestamped at call time. It does not clear the cart; the caller is
// responsible for doing that atomically with this call.
func (a *Aggregator) RecordPurchase(ctx context.Context, lines []cart.Line) []Record {
	var records []Record
	for _, line := range lines {
		for i := 0; i < line.Quantity; i++ {
			records = append(records, Record{
				BookID:    line.Book.ID,
				Timestamp: a.now(),
			})
		}

		if a.eventStore == nil {
			continue
		}
		event := SaleRecorded{
			BookID:   line.Book.ID,
			Title:    line.Book.Title,
			Quantity: line.Quantity,
			Price:    line.Book.Price,
			SoldAt:   a.now(),
		}
		if _, err := a.eventStore.Append(ctx, AggregateID, AggregateType, EventSaleRecorded, event); err != nil {
			logrus.WithError(err).WithField("book_id", line.Book.ID).Error("[Sales] failed to append event")
		}
	}
	return records
}
