package projection

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/domain/cart"
	"github.com/example/bookshop/internal/domain/sales"
	"github.com/example/bookshop/internal/infrastructure/store"
	"github.com/example/bookshop/internal/readmodel"
)

const (
	CollectionBookSales    = "book_sales"
	CollectionCartActivity = "cart_activity"
)

// Projector builds the admin read models from domain events. It serves
// both the in-process event store subscription and the Kafka consumer
// path.
type Projector struct {
	readStore store.ReadStoreInterface
}

func NewProjector(readStore store.ReadStoreInterface) *Projector {
	return &Projector{readStore: readStore}
}

// HandleEvent processes a raw event from Kafka.
func (p *Projector) HandleEvent(ctx context.Context, key, value []byte) error {
	var event store.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return err
	}
	p.Apply(ctx, event)
	return nil
}

// Apply processes a stored event.
func (p *Projector) Apply(_ context.Context, event store.Event) {
	switch event.AggregateType {
	case sales.AggregateType:
		p.applySalesEvent(event)
	case cart.AggregateType:
		p.applyCartEvent(event)
	}
}

func (p *Projector) applySalesEvent(event store.Event) {
	if event.EventType != sales.EventSaleRecorded {
		return
	}

	var e sales.SaleRecorded
	if err := json.Unmarshal(event.Data, &e); err != nil {
		logrus.WithError(err).Error("[Projector] failed to unmarshal SaleRecorded event")
		return
	}

	updated := p.readStore.Update(CollectionBookSales, e.BookID, func(current any) any {
		m := current.(*readmodel.BookSalesReadModel)
		m.UnitsSold += e.Quantity
		m.LastSoldAt = e.SoldAt
		return m
	})
	if !updated {
		p.readStore.Set(CollectionBookSales, e.BookID, &readmodel.BookSalesReadModel{
			BookID:     e.BookID,
			Title:      e.Title,
			UnitsSold:  e.Quantity,
			LastSoldAt: e.SoldAt,
		})
	}
}

func (p *Projector) applyCartEvent(event store.Event) {
	if event.EventType != cart.EventItemAdded {
		return
	}

	var e cart.ItemAdded
	if err := json.Unmarshal(event.Data, &e); err != nil {
		logrus.WithError(err).Error("[Projector] failed to unmarshal ItemAdded event")
		return
	}

	updated := p.readStore.Update(CollectionCartActivity, e.BookID, func(current any) any {
		m := current.(*readmodel.CartActivityReadModel)
		m.TimesAdded++
		m.LastAddedAt = e.AddedAt
		return m
	})
	if !updated {
		p.readStore.Set(CollectionCartActivity, e.BookID, &readmodel.CartActivityReadModel{
			BookID:      e.BookID,
			Title:       e.Title,
			TimesAdded:  1,
			LastAddedAt: e.AddedAt,
		})
	}
}
