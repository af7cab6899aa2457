package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderboard/internal/adapters/out/memory"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var baseTime = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	store   *memory.Store
	handler queries.ListOrdersQueryHandler
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.handler = queries.NewListOrdersQueryHandler(suite.store)
}

func (suite *ListOrdersQueryHandlerTestSuite) add(id string, at time.Time, completed bool) {
	o, err := order.NewOrder(id, "latte", at)
	suite.Require().NoError(err)
	if completed {
		_, err = o.Complete(at.Add(time.Minute))
		suite.Require().NoError(err)
	}
	uow := memory.NewUnitOfWorkFactory(suite.store).Create()
	suite.Require().NoError(uow.OrderRepository().Add(context.Background(), o))
}

func (suite *ListOrdersQueryHandlerTestSuite) ids(result []queries.ListOrdersQueryResponse) []string {
	ids := make([]string, 0, len(result))
	for _, r := range result {
		ids = append(ids, r.ID)
	}
	return ids
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyStore() {
	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery(""))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_AllOrdersByCreatedAt() {
	suite.add("B", baseTime.Add(time.Second), false)
	suite.add("A", baseTime, true)
	suite.add("C", baseTime.Add(2*time.Second), false)

	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery(""))

	suite.Require().NoError(err)
	suite.Equal([]string{"A", "B", "C"}, suite.ids(result))
	suite.Equal(order.Completed, result[0].Status)
	suite.True(result[0].CreatedAt.Equal(baseTime))
	suite.True(result[0].UpdatedAt.Equal(baseTime.Add(time.Minute)))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_FilterByStatus() {
	suite.add("A", baseTime, true)
	suite.add("B", baseTime.Add(time.Second), false)

	waiting, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery("waiting"))
	suite.Require().NoError(err)
	suite.Equal([]string{"B"}, suite.ids(waiting))

	completed, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery("completed"))
	suite.Require().NoError(err)
	suite.Equal([]string{"A"}, suite.ids(completed))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidFilterListsEverything() {
	suite.add("A", baseTime, true)
	suite.add("B", baseTime.Add(time.Second), false)

	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery("archived"))

	suite.Require().NoError(err)
	suite.Equal([]string{"A", "B"}, suite.ids(result))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_NotConstructed() {
	_, err := suite.handler.Handle(context.Background(), queries.ListOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockOrderReader) List(ctx context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListOrdersQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("List", ctx, ports.ListFilter{Status: order.Waiting}).Return(nil, errors.New("boom")).Once()

	_, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, queries.NewListOrdersQuery("waiting"))

	require.EqualError(t, err, "boom")
	reader.AssertExpectations(t)
}
