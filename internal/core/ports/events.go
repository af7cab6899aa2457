package ports

import (
	"errors"

	"orderboard/internal/core/domain/model/order"
)

// Event names carried on the stream.
const (
	EventHello          = "hello"
	EventOrdersSnapshot = "orders:snapshot"
	EventOrderCreated   = "orders:created"
	EventOrderUpdated   = "orders:updated"
	EventOrderDeleted   = "orders:deleted"
)

// ErrHubClosed is returned by Subscribe once the hub has been shut down.
var ErrHubClosed = errors.New("broadcast hub is closed")

// Event is one encoded notification. An event with an empty Name and a
// non-empty Comment is a keepalive that carries no data.
type Event struct {
	Name    string
	Data    []byte
	Comment string
}

// IsKeepAlive reports whether the event is a keepalive comment.
func (e Event) IsKeepAlive() bool {
	return e.Name == "" && e.Comment != ""
}

// EventPublisher fans a named payload out to every active subscriber.
// Publish never blocks on, and never fails because of, a subscriber.
type EventPublisher interface {
	Publish(name string, payload any)
}

// EventSubscriber registers new observers.
type EventSubscriber interface {
	Subscribe() (Subscription, error)
}

// Subscription is one observer's registration with the hub.
type Subscription interface {
	ID() string

	// Events yields events in publish order. The channel is closed when the
	// subscription is closed, evicted for falling behind, or the hub shuts down.
	Events() <-chan Event

	// Close unregisters the subscription. Safe to call more than once.
	Close()
}

// OrderPayload is the JSON shape of an order on the stream.
type OrderPayload struct {
	ID        string `json:"id"`
	Items     string `json:"items"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// NewOrderPayload renders an order for publication.
func NewOrderPayload(o *order.Order) OrderPayload {
	return OrderPayload{
		ID:        o.ID(),
		Items:     o.Items(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt().UnixMilli(),
		UpdatedAt: o.UpdatedAt().UnixMilli(),
	}
}

// NewOrderPayloads renders a list of orders, preserving order. Never nil, so
// an empty snapshot encodes as [].
func NewOrderPayloads(orders []*order.Order) []OrderPayload {
	out := make([]OrderPayload, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderPayload(o))
	}
	return out
}

// DeletedPayload is the JSON shape of an orders:deleted event.
type DeletedPayload struct {
	ID string `json:"id"`
}
