package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bookshop/internal/domain/cart"
	"github.com/example/bookshop/internal/domain/sales"
	"github.com/example/bookshop/internal/infrastructure/store"
)

func makeEvent(t *testing.T, aggregateType, eventType string, data any) store.Event {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return store.Event{
		ID:            "evt-1",
		AggregateID:   "agg-1",
		AggregateType: aggregateType,
		EventType:     eventType,
		Data:          raw,
		Timestamp:     time.Now(),
		Version:       1,
	}
}

func TestHandler_Apply_ItemAdded(t *testing.T) {
	center := NewCenter()
	handler := NewHandler(center)

	handler.Apply(context.Background(), makeEvent(t, cart.AggregateType, cart.EventItemAdded, cart.ItemAdded{
		BookID:  "book-1",
		Title:   "Dune",
		AddedAt: time.Now(),
	}))

	all := center.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Dune added to cart", all[0].Message)
}

func TestHandler_Apply_QuantityIncreasedIsSilent(t *testing.T) {
	center := NewCenter()
	handler := NewHandler(center)

	handler.Apply(context.Background(), makeEvent(t, cart.AggregateType, cart.EventQuantityIncreased, cart.QuantityIncreased{
		BookID:   "book-1",
		Quantity: 2,
	}))

	assert.Empty(t, center.All())
}

func TestHandler_Apply_SaleRecorded(t *testing.T) {
	center := NewCenter()
	handler := NewHandler(center)

	handler.Apply(context.Background(), makeEvent(t, sales.AggregateType, sales.EventSaleRecorded, sales.SaleRecorded{
		BookID:   "book-1",
		Title:    "Dune",
		Quantity: 2,
	}))

	all := center.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Sold 2 x Dune", all[0].Message)
}

func TestHandler_HandleEvent_FromWire(t *testing.T) {
	center := NewCenter()
	handler := NewHandler(center)

	event := makeEvent(t, cart.AggregateType, cart.EventItemAdded, cart.ItemAdded{
		BookID: "book-1",
		Title:  "Hyperion",
	})
	raw, err := event.MarshalJSON()
	require.NoError(t, err)

	err = handler.HandleEvent(context.Background(), []byte(event.AggregateID), raw)

	require.NoError(t, err)
	require.Len(t, center.All(), 1)
	assert.Equal(t, "Hyperion added to cart", center.All()[0].Message)
}

func TestHandler_HandleEvent_MalformedPayload(t *testing.T) {
	center := NewCenter()
	handler := NewHandler(center)

	err := handler.HandleEvent(context.Background(), []byte("key"), []byte("not json"))

	assert.Error(t, err)
	assert.Empty(t, center.All())
}
