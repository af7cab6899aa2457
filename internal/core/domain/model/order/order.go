package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a tracked work item with an externally supplied id, a free-form
// description and a two-state lifecycle.
//
// Order follows these invariants:
//   - id and items are non-empty after trimming and never change
//   - status only moves Waiting -> Completed
//   - updatedAt >= createdAt, and updatedAt == createdAt until the first transition
//   - timestamps carry millisecond precision
type Order struct {
	id        string
	items     string
	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a Waiting order stamped with now. Both id and items are
// trimmed; blank values are rejected with errs.ErrValueIsRequired.
//
// Example:
//
//	o, err := order.NewOrder(" A1 ", "flat white", clk.Now())
//	if err != nil {
//	    // blank id or items
//	}
//	fmt.Println(o.ID()) // "A1"
func NewOrder(id string, items string, now time.Time) (*Order, error) {
	ts := toMillis(now)
	o := &Order{
		status:        Waiting,
		createdAt:     ts,
		updatedAt:     ts,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state.
func RestoreOrder(id string, items string, status Status, createdAt, updatedAt time.Time) (*Order, error) {
	o := &Order{
		createdAt:     toMillis(createdAt),
		updatedAt:     toMillis(updatedAt),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setStatus(status),
		o.checkTimestamps(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// Items returns the order description.
func (o *Order) Items() string {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last accepted transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Clone returns an independent copy. Stores hand out clones so callers can
// never mutate store-owned state.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// Complete marks a Waiting order as Completed and stamps updatedAt.
//
// Returns:
//   - (true, nil) when the transition was applied
//   - (false, nil) when the order was already Completed; nothing changes
//   - (false, error) when the order is in an invalid status
//
// updatedAt is forced strictly after createdAt, so a completion landing in the
// same millisecond as the creation is stamped one millisecond later.
func (o *Order) Complete(now time.Time) (bool, error) {
	next, applied, err := o.status.Complete()
	if err != nil || !applied {
		return false, err
	}

	ts := toMillis(now)
	if !ts.After(o.createdAt) {
		ts = o.createdAt.Add(time.Millisecond)
	}

	o.status = next
	o.updatedAt = ts
	return true, nil
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items string) error {
	items = strings.TrimSpace(items)
	if items == "" {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) checkTimestamps() error {
	if o.updatedAt.Before(o.createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("%d is before createdAt %d", o.updatedAt.UnixMilli(), o.createdAt.UnixMilli()),
		)
	}
	return nil
}

func toMillis(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli()).UTC()
}
