package commands

import (
	"errors"
	"strings"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to move an order to Completed.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a completion request for the trimmed id.
func NewCompleteOrderCommand(orderID string) (CompleteOrderCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredError("id")
	}

	return CompleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order id.
func (c CompleteOrderCommand) OrderID() string {
	return c.orderID
}
