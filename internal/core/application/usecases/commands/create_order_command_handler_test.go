package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/clock"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("A1", "latte")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := &recordingPublisher{}

	h := commands.NewCreateOrderCommandHandler(factory, publisher, commands.NewSequencer(), clock.NewManual(baseTime))
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "A1", created.ID())
	assert.Equal(t, order.Waiting, created.Status())
	assert.True(t, created.CreatedAt().Equal(baseTime))
	require.Len(t, publisher.Events(), 1)
	assert.Equal(t, ports.EventOrderCreated, publisher.Events()[0].Name)
	assert.Equal(t, ports.NewOrderPayload(created), publisher.Events()[0].Payload)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	publisher := &recordingPublisher{}

	h := commands.NewCreateOrderCommandHandler(factory, publisher, commands.NewSequencer(), clock.NewSystem())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.Events())
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("A1", "latte")

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)
	publisher := &recordingPublisher{}

	h := commands.NewCreateOrderCommandHandler(factory, publisher, commands.NewSequencer(), clock.NewSystem())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.Events())
}

func TestCreateOrderCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("A1", "latte")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errs.NewObjectAlreadyExistsError("order", "A1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := &recordingPublisher{}

	h := commands.NewCreateOrderCommandHandler(factory, publisher, commands.NewSequencer(), clock.NewSystem())
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Nil(t, created)
	assert.Empty(t, publisher.Events())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("A1", "latte")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := &recordingPublisher{}

	h := commands.NewCreateOrderCommandHandler(factory, publisher, commands.NewSequencer(), clock.NewSystem())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.Events())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
