package http

import (
	"errors"
	"fmt"
	"net/http"

	"orderboard/internal/core/ports"
	"orderboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// StreamEvents handles GET /api/events - the Server-Sent Events stream.
func (s *Server) StreamEvents(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	session, err := s.openSessionHandler.Handle(reqCtx)
	if err != nil {
		if errors.Is(err, ports.ErrHubClosed) {
			return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
				Code:    http.StatusServiceUnavailable,
				Message: "Server is shutting down",
			})
		}
		return s.fail(ctx, err)
	}
	defer session.Close()

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	if err = session.Run(reqCtx, &eventStream{res: res}); err != nil {
		s.logger.DebugContext(reqCtx, "stream write failed", "session_id", session.ID(), "error", err)
	}

	return nil
}

// eventStream writes SSE frames to an echo response, flushing after each
// frame.
type eventStream struct {
	res *echo.Response
}

func (w *eventStream) WriteEvent(name string, data []byte) error {
	if _, err := fmt.Fprintf(w.res, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	w.res.Flush()
	return nil
}

func (w *eventStream) WriteComment(text string) error {
	if _, err := fmt.Fprintf(w.res, ": %s\n\n", text); err != nil {
		return err
	}
	w.res.Flush()
	return nil
}
