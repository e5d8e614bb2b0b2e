package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/domain/cart"
	"github.com/example/bookshop/internal/domain/sales"
	"github.com/example/bookshop/internal/infrastructure/store"
)

// Handler turns domain events into notification log entries. A new cart
// line and a sale each produce one message; quantity changes on an
// existing line produce none. The same handler serves the in-process
// subscription and the standalone Kafka notifier.
type Handler struct {
	center *Center
}

func NewHandler(center *Center) *Handler {
	return &Handler{center: center}
}

// HandleEvent processes a raw event from Kafka.
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var event store.Event
	if err := json.Unmarshal(value, &event); err != nil {
		logrus.WithError(err).Error("[Notifier] failed to unmarshal event")
		return err
	}
	h.Apply(ctx, event)
	return nil
}

// Apply processes a stored event.
func (h *Handler) Apply(_ context.Context, event store.Event) {
	switch event.EventType {
	case cart.EventItemAdded:
		var e cart.ItemAdded
		if err := json.Unmarshal(event.Data, &e); err != nil {
			logrus.WithError(err).Error("[Notifier] failed to unmarshal ItemAdded event")
			return
		}
		h.center.Push(fmt.Sprintf("%s added to cart", e.Title))

	case sales.EventSaleRecorded:
		var e sales.SaleRecorded
		if err := json.Unmarshal(event.Data, &e); err != nil {
			logrus.WithError(err).Error("[Notifier] failed to unmarshal SaleRecorded event")
			return
		}
		h.center.Push(fmt.Sprintf("Sold %d x %s", e.Quantity, e.Title))
	}
}
