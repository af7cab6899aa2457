// Package queries contains read-only operations over the order board.
package queries

import (
	"errors"
	"strings"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders, optionally restricted to one status.
//
// Example:
//
//	query := NewListOrdersQuery("waiting")
//	handler := NewListOrdersQueryHandler(store)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query from the raw status filter.
// An empty or unrecognized filter lists every order.
func NewListOrdersQuery(status string) ListOrdersQuery {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(status) != "" {
		if parsed, err := order.ParseStatus(status); err == nil {
			q.status = parsed
		}
	}

	return q
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the requested filter; order.Unknown means all orders.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// ListOrdersQueryResponse is the read model of one order.
type ListOrdersQueryResponse struct {
	ID        string
	Items     string
	Status    order.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
