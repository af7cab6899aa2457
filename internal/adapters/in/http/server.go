// Package http exposes the order board over HTTP: JSON endpoints for the
// order lifecycle and a Server-Sent Events stream for observers.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/application/usecases/sessions"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/generated/servers"
	"orderboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler

	// Stream handlers
	openSessionHandler sessions.OpenSessionHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	openSessionHandler sessions.OpenSessionHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		completeOrderHandler: completeOrderHandler,
		deleteOrderHandler:   deleteOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		openSessionHandler:   openSessionHandler,
		logger:               logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/orders - lists orders, oldest first.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	status := ""
	if params.Status != nil {
		status = string(*params.Status)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery(status))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:        o.ID,
			Items:     o.Items,
			Status:    servers.OrderStatus(o.Status.String()),
			CreatedAt: o.CreatedAt.UnixMilli(),
			UpdatedAt: o.UpdatedAt.UnixMilli(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - registers a new waiting order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.Id, newOrder.Items)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// CompleteOrder handles PATCH /api/orders/{id}/complete - marks an order completed.
// Completing a completed order returns it unchanged.
func (s *Server) CompleteOrder(ctx echo.Context, id servers.OrderId) error {
	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return s.fail(ctx, errs.NewObjectNotFoundErrorWithCause("order", id, err))
	}

	completed, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(completed))
}

// DeleteOrder handles DELETE /api/orders/{id} - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context, id servers.OrderId) error {
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.fail(ctx, errs.NewObjectNotFoundErrorWithCause("order", id, err))
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeletedOrder{Id: cmd.OrderID()})
}

// GetHealth handles GET /api/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Ok: true})
}

// fail writes the error response matching the error's classification.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errs.IsInvalidInput(err):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func toOrder(o *order.Order) servers.Order {
	return servers.Order{
		Id:        o.ID(),
		Items:     o.Items(),
		Status:    servers.OrderStatus(o.Status().String()),
		CreatedAt: o.CreatedAt().UnixMilli(),
		UpdatedAt: o.UpdatedAt().UnixMilli(),
	}
}
