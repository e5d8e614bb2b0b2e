package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/bookshop/internal/infrastructure/kafka"
)

// Event represents a domain event
type Event struct {
	ID            string          `json:"id"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	EventType     string          `json:"event_type"`
	Data          json.RawMessage `json:"data"`
	Timestamp     time.Time       `json:"timestamp"`
	Version       int             `json:"version"`
}

// MarshalJSON returns the JSON encoding of the event
func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	return json.Marshal(&struct{ Alias }{Alias: Alias(e)})
}

// Subscriber receives every stored event synchronously, in append order.
type Subscriber func(ctx context.Context, event Event)

// EventStore stores domain events in memory and fans them out to
// in-process subscribers and, when configured, to Kafka. Nothing
// survives process restart.
type EventStore struct {
	mu          sync.RWMutex
	events      map[string][]Event // aggregateID -> events
	subscribers []Subscriber
	producer    *kafka.Producer
}

func NewEventStore(producer *kafka.Producer) *EventStore {
	return &EventStore{
		events:   make(map[string][]Event),
		producer: producer,
	}
}

// Subscribe registers an in-process subscriber. Wire subscribers at
// startup; Subscribe is not safe to call concurrently with Append.
func (es *EventStore) Subscribe(fn Subscriber) {
	es.subscribers = append(es.subscribers, fn)
}

// Append stores an event, notifies subscribers and publishes it to Kafka
func (es *EventStore) Append(ctx context.Context, aggregateID, aggregateType, eventType string, data any) (*Event, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	es.mu.Lock()
	version := len(es.events[aggregateID]) + 1
	event := Event{
		ID:            uuid.New().String(),
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Data:          jsonData,
		Timestamp:     time.Now(),
		Version:       version,
	}
	es.events[aggregateID] = append(es.events[aggregateID], event)
	es.mu.Unlock()

	for _, fn := range es.subscribers {
		fn(ctx, event)
	}

	if es.producer != nil {
		if err := es.producer.Publish(ctx, aggregateID, event); err != nil {
			return nil, err
		}
	}

	return &event, nil
}

// GetEvents returns all events for an aggregate
func (es *EventStore) GetEvents(aggregateID string) []Event {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.events[aggregateID]
}

// GetAllEvents returns all events
func (es *EventStore) GetAllEvents() []Event {
	es.mu.RLock()
	defer es.mu.RUnlock()

	var all []Event
	for _, events := range es.events {
		all = append(all, events...)
	}
	return all
}
