package sessions

import (
	"context"
	"log/slog"
	"sync"

	"orderboard/internal/core/ports"
)

var helloPayload = []byte(`{"ok":true}`)

// EventWriter is the transport a session streams to.
type EventWriter interface {
	WriteEvent(name string, data []byte) error
	WriteComment(text string) error
}

// Session is one observer's stream.
type Session struct {
	sub      ports.Subscription
	snapshot []byte
	logger   *slog.Logger

	mu    sync.Mutex
	state State
}

func newSession(sub ports.Subscription, snapshot []byte, logger *slog.Logger) *Session {
	return &Session{
		sub:      sub,
		snapshot: snapshot,
		logger:   logger,
		state:    Connecting,
	}
}

// ID returns the hub subscription id of the session.
func (s *Session) ID() string {
	return s.sub.ID()
}

// State returns the current lifecycle stage.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Snapshot returns the encoded order list captured when the session opened.
func (s *Session) Snapshot() []byte {
	return s.snapshot
}

// Run writes hello and the snapshot, then forwards hub events until ctx is
// done, the hub closes the subscription, or a write fails. The session is
// Closed when Run returns. Only a write failure is reported.
func (s *Session) Run(ctx context.Context, w EventWriter) error {
	defer s.Close()

	if err := w.WriteEvent(ports.EventHello, helloPayload); err != nil {
		return err
	}
	if err := w.WriteEvent(ports.EventOrdersSnapshot, s.snapshot); err != nil {
		return err
	}

	if !s.transition(Connecting, Streaming) {
		return nil
	}

	events := s.sub.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}

			var err error
			if event.IsKeepAlive() {
				err = w.WriteComment(event.Comment)
			} else {
				err = w.WriteEvent(event.Name, event.Data)
			}
			if err != nil {
				return err
			}
		}
	}
}

// Close unregisters the session from the hub. Safe to call more than once
// and from any goroutine.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()
		return
	}
	s.state = Closed
	s.mu.Unlock()

	s.sub.Close()
	s.logger.DebugContext(context.Background(), "session closed", "session_id", s.sub.ID())
}

func (s *Session) transition(from, to State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != from {
		return false
	}
	s.state = to
	return true
}
