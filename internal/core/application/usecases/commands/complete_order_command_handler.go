package commands

import (
	"context"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/clock"
)

// CompleteOrderCommandHandler moves an order to Completed.
//
// The operation is idempotent: completing an already Completed order returns
// the stored record unchanged, and only an applied transition is persisted and
// announced with an orders:updated event.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	sequencer  *Sequencer
	clock      clock.Clock
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	sequencer *Sequencer,
	clk clock.Clock,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		sequencer:  sequencer,
		clock:      clk,
	}
}

// Handle returns the order as stored after the call. An unknown id fails with
// errs.ErrObjectNotFound.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *order.Order
	err := h.sequencer.Do(func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		o, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		applied, err := o.Complete(h.clock.Now())
		if err != nil {
			return err
		}

		if !applied {
			result = o
			return nil
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		h.publisher.Publish(ports.EventOrderUpdated, ports.NewOrderPayload(o))
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
