package ports

import (
	"context"

	"orderboard/internal/core/domain/model/order"
)

// ListFilter narrows List results. The zero value lists every order.
type ListFilter struct {
	// Status restricts results to one status; order.Unknown means no restriction.
	Status order.Status
}

// OrderReader is the read side of the record store.
type OrderReader interface {
	// Get retrieves an order by id. Returns a copy the caller may freely mutate.
	// Fails with errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id string) (*order.Order, error)

	// List returns orders ordered by createdAt ascending, ties broken by
	// insertion order.
	List(ctx context.Context, filter ListFilter) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// Implementations never retain references to aggregates passed in or handed out.
type OrderRepository interface {
	OrderReader

	// Add persists a new order. Fails with errs.ErrObjectAlreadyExists when an
	// order with the same id exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// Fails with errs.ErrObjectNotFound when absent.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order entirely; its id may be reused afterwards.
	// Fails with errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id string) error
}
