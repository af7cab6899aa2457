// Package sessions implements the observer side of the order board: a
// session first receives a hello, then a snapshot of every order, then each
// later change as a delta until the connection goes away.
package sessions

import (
	"context"
	"encoding/json"
	"log/slog"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/ports"
)

// OpenSessionHandler registers new observers.
//
// The snapshot read and the hub registration happen under the same Sequencer
// lock the command handlers hold while they commit and publish. A mutation is
// therefore either fully reflected in the snapshot or delivered afterwards as
// a delta, never both and never neither.
type OpenSessionHandler struct {
	sequencer  *commands.Sequencer
	reader     ports.OrderReader
	subscriber ports.EventSubscriber
	logger     *slog.Logger
}

// NewOpenSessionHandler creates a handler for opening streaming sessions.
func NewOpenSessionHandler(
	sequencer *commands.Sequencer,
	reader ports.OrderReader,
	subscriber ports.EventSubscriber,
	logger *slog.Logger,
) OpenSessionHandler {
	return OpenSessionHandler{
		sequencer:  sequencer,
		reader:     reader,
		subscriber: subscriber,
		logger:     logger.With("component", "stream_session"),
	}
}

// Handle captures the snapshot and subscribes. The returned session is in the
// Connecting state; the caller must Run or Close it.
func (h OpenSessionHandler) Handle(ctx context.Context) (*Session, error) {
	var (
		snapshot []byte
		sub      ports.Subscription
	)

	err := h.sequencer.Do(func() error {
		orders, err := h.reader.List(ctx, ports.ListFilter{})
		if err != nil {
			return err
		}

		snapshot, err = json.Marshal(ports.NewOrderPayloads(orders))
		if err != nil {
			return err
		}

		sub, err = h.subscriber.Subscribe()
		return err
	})
	if err != nil {
		return nil, err
	}

	h.logger.DebugContext(ctx, "session opened", "session_id", sub.ID())
	return newSession(sub, snapshot, h.logger), nil
}
