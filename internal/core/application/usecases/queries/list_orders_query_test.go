package queries_test

import (
	"testing"

	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestNewListOrdersQuery(t *testing.T) {
	testCases := []struct {
		raw      string
		expected order.Status
	}{
		{"", order.Unknown},
		{"waiting", order.Waiting},
		{"completed", order.Completed},
		{" Completed ", order.Completed},
		{"done", order.Unknown},
		{"unknown", order.Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			q := queries.NewListOrdersQuery(tc.raw)

			assert.NoError(t, q.Validate())
			assert.Equal(t, tc.expected, q.Status())
		})
	}
}

func TestListOrdersQuery_ZeroValueIsNotConstructed(t *testing.T) {
	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}
