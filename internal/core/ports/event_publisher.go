package ports

import (
	"context"
	"fmt"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"

	"github.com/google/uuid"
)

// Event names delivered to staff subscribers over the realtime channel.
const (
	// EventConnectionStatus is sent once, to a single session, when it
	// connects.
	EventConnectionStatus = "connection_status"

	// EventNewCollection tells staff a customer is waiting at the
	// collection point.
	EventNewCollection = "new_collection"

	// EventCollectionCompleted tells staff to clear a customer from the
	// waiting display.
	EventCollectionCompleted = "collection_completed"
)

// Event is the envelope published to every connected staff subscriber.
// Delivery is best-effort and at-most-once: there is no retry, no replay, and
// no per-session filtering beyond the connection acknowledgement.
type Event struct {
	EventID    uuid.UUID `json:"event_id"`
	Name       string    `json:"event"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"data"`
}

// ConnectionStatusPayload acknowledges a newly connected staff device.
type ConnectionStatusPayload struct {
	Message string `json:"message"`
}

// NewCollectionPayload describes a customer waiting for collection.
type NewCollectionPayload struct {
	ID           int64             `json:"id"`
	CustomerName string            `json:"customer_name"`
	Barcode      string            `json:"barcode"`
	OrderNumber  string            `json:"order_number"`
	Items        []collection.Item `json:"items"`
	Timestamp    time.Time         `json:"timestamp"`
	Message      string            `json:"message"`
}

// CollectionCompletedPayload tells staff which customer to clear from the
// waiting display.
type CollectionCompletedPayload struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	OrderNumber  string `json:"order_number"`
}

// NewConnectionStatusEvent builds the acknowledgement sent to a session on
// connect.
func NewConnectionStatusEvent() Event {
	return newEvent(EventConnectionStatus, ConnectionStatusPayload{
		Message: "Connected to notification system",
	})
}

// NewCollectionEvent builds the new_collection event for a collection that
// just passed the submitCollection guard.
func NewCollectionEvent(c *collection.Collection) Event {
	return newEvent(EventNewCollection, NewCollectionPayload{
		ID:           c.ID(),
		CustomerName: c.CustomerName(),
		Barcode:      c.Barcode().String(),
		OrderNumber:  c.OrderNumber().String(),
		Items:        c.Items(),
		Timestamp:    c.UpdatedAt(),
		Message:      fmt.Sprintf("%s is waiting for collection", c.CustomerName()),
	})
}

// NewCollectionCompletedEvent builds the collection_completed event for an
// administratively completed collection.
func NewCollectionCompletedEvent(c *collection.Collection) Event {
	return newEvent(EventCollectionCompleted, CollectionCompletedPayload{
		ID:           c.ID(),
		CustomerName: c.CustomerName(),
		OrderNumber:  c.OrderNumber().String(),
	})
}

func newEvent(name string, payload any) Event {
	return Event{
		EventID:    uuid.New(),
		Name:       name,
		OccurredAt: time.Now(),
		Payload:    payload,
	}
}

// EventPublisher delivers lifecycle events to every currently connected staff
// subscriber. Publishing never fails from the caller's perspective: an empty
// subscriber set or a dropped session is a no-op, not an error.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}
