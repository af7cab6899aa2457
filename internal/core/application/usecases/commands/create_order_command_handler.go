package commands

import (
	"context"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/clock"
)

// CreateOrderCommandHandler inserts a new Waiting order and announces it with
// an orders:created event.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, hub, sequencer, clock.NewSystem())
//	cmd, _ := NewCreateOrderCommand("A1", "latte")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	sequencer  *Sequencer
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	sequencer *Sequencer,
	clk clock.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		sequencer:  sequencer,
		clock:      clk,
	}
}

// Handle stores the order and publishes it after commit. A taken id fails
// with errs.ErrObjectAlreadyExists and publishes nothing.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *order.Order
	err := h.sequencer.Do(func() error {
		o, err := order.NewOrder(cmd.OrderID(), cmd.Items(), h.clock.Now())
		if err != nil {
			return err
		}

		uow := h.uowFactory.Create()
		if err = uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		h.publisher.Publish(ports.EventOrderCreated, ports.NewOrderPayload(o))
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
