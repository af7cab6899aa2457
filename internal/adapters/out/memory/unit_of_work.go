package memory

import (
	"context"
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

type changeKind int

const (
	changeAdd changeKind = iota + 1
	changeUpdate
	changeDelete
)

type change struct {
	kind  changeKind
	id    string
	order *order.Order
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work with nothing staged.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages repository writes and applies them on Commit. Without an
// active transaction every write is applied immediately.
type UnitOfWork struct {
	store   *Store
	active  bool
	changes []change
}

// Begin starts staging. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit applies all staged changes atomically.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	changes := uow.changes
	uow.active = false
	uow.changes = nil
	return uow.store.apply(changes)
}

// Rollback discards all staged changes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	uow.changes = nil
	return nil
}

// OrderRepository returns a repository that reads through staged changes.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) stage(c change) error {
	if !uow.active {
		return uow.store.apply([]change{c})
	}
	uow.changes = append(uow.changes, c)
	return nil
}

// OrderRepository implements ports.OrderRepository for a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	row, ok := r.uow.store.view(r.uow.changes)[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return row.order.Clone(), nil
}

func (r *OrderRepository) List(_ context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	view := r.uow.store.view(r.uow.changes)
	rows := make([]row, 0, len(view))
	for _, rw := range view {
		rows = append(rows, rw)
	}
	return sortAndFilter(rows, filter), nil
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, ok := r.uow.store.view(r.uow.changes)[aggregate.ID()]; ok {
		return errs.NewObjectAlreadyExistsError("order", aggregate.ID())
	}
	return r.uow.stage(change{kind: changeAdd, id: aggregate.ID(), order: aggregate.Clone()})
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, ok := r.uow.store.view(r.uow.changes)[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	return r.uow.stage(change{kind: changeUpdate, id: aggregate.ID(), order: aggregate.Clone()})
}

func (r *OrderRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.uow.store.view(r.uow.changes)[id]; !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	return r.uow.stage(change{kind: changeDelete, id: id})
}
