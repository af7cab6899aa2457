// Package broadcast fans order change events out to stream subscribers.
package broadcast

import (
	"encoding/json"
	"log/slog"
	"sync"

	"orderboard/internal/core/ports"

	"github.com/google/uuid"
)

// DefaultBuffer is the per-subscriber queue length used when none is given.
const DefaultBuffer = 64

const keepAliveComment = "keepalive"

// Hub is an in-process publish/subscribe registry.
//
// Every subscriber owns a bounded queue. Publish never blocks: a subscriber
// whose queue is full is evicted and its channel closed, so a slow consumer
// reconnects and resynchronizes from a fresh snapshot instead of silently
// missing deltas.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]*subscription
	buffer int
	closed bool
	logger *slog.Logger
}

var (
	_ ports.EventPublisher  = (*Hub)(nil)
	_ ports.EventSubscriber = (*Hub)(nil)
)

// NewHub creates a hub whose subscribers buffer up to buffer events.
func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Hub{
		subs:   make(map[string]*subscription),
		buffer: buffer,
		logger: logger.With("component", "broadcast_hub"),
	}
}

// Subscribe registers a new subscriber. Events published after Subscribe
// returns are delivered in publish order.
func (h *Hub) Subscribe() (ports.Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ports.ErrHubClosed
	}

	sub := &subscription{
		id:  uuid.NewString(),
		ch:  make(chan ports.Event, h.buffer),
		hub: h,
	}
	h.subs[sub.id] = sub

	h.logger.Debug("subscriber added", "subscriber_id", sub.id, "subscribers", len(h.subs))
	return sub, nil
}

// Unsubscribe removes the subscriber and closes its channel. Unknown ids are
// ignored.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.remove(id) {
		h.logger.Debug("subscriber removed", "subscriber_id", id, "subscribers", len(h.subs))
	}
}

// Publish encodes payload once and queues it for every subscriber.
func (h *Hub) Publish(name string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode event", "event", name, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	event := ports.Event{Name: name, Data: data}
	for id, sub := range h.subs {
		select {
		case sub.ch <- event:
		default:
			h.remove(id)
			h.logger.Warn("evicted slow subscriber", "subscriber_id", id, "event", name)
		}
	}
}

// Ping queues a keepalive comment for every subscriber. A subscriber with a
// full queue simply misses the keepalive.
func (h *Hub) Ping() {
	h.mu.Lock()
	defer h.mu.Unlock()

	event := ports.Event{Comment: keepAliveComment}
	for _, sub := range h.subs {
		select {
		case sub.ch <- event:
		default:
		}
	}
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

// Close closes every subscriber channel and rejects further subscriptions.
// Safe to call more than once.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id := range h.subs {
		h.remove(id)
	}
	h.logger.Info("broadcast hub closed")
}

// remove must be called with h.mu held.
func (h *Hub) remove(id string) bool {
	sub, ok := h.subs[id]
	if !ok {
		return false
	}
	delete(h.subs, id)
	close(sub.ch)
	return true
}

type subscription struct {
	id  string
	ch  chan ports.Event
	hub *Hub
}

func (s *subscription) ID() string {
	return s.id
}

func (s *subscription) Events() <-chan ports.Event {
	return s.ch
}

func (s *subscription) Close() {
	s.hub.Unsubscribe(s.id)
}
