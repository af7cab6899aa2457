package commands

import (
	"errors"
	"strings"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new Waiting order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("A1", "flat white, croissant")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // the id is taken
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	items   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an order.
// Both fields are trimmed and must be non-empty afterwards.
func NewCreateOrderCommand(orderID string, items string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller supplied identifier.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// Items returns the order description.
func (c CreateOrderCommand) Items() string {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return errs.NewValueIsRequiredError("id")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items string) error {
	items = strings.TrimSpace(items)
	if items == "" {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
