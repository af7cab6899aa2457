package commands

import (
	"context"

	"orderboard/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order and announces the id with an
// orders:deleted event. The id becomes free for reuse.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	sequencer  *Sequencer
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	sequencer *Sequencer,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		sequencer:  sequencer,
	}
}

// Handle deletes the order. An unknown id fails with errs.ErrObjectNotFound
// and publishes nothing.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sequencer.Do(func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
			return err
		}

		if err := uow.Commit(ctx); err != nil {
			return err
		}

		h.publisher.Publish(ports.EventOrderDeleted, ports.DeletedPayload{ID: cmd.OrderID()})
		return nil
	})
}
