package queries

import (
	"context"

	"orderboard/internal/core/ports"
)

// ListOrdersQueryHandler reads orders straight from the record store. Reads
// never take the mutation lock; the store itself guarantees each read sees a
// committed state.
type ListOrdersQueryHandler struct {
	reader ports.OrderReader
}

// NewListOrdersQueryHandler creates a handler backed by reader.
func NewListOrdersQueryHandler(reader ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns matching orders ordered by createdAt ascending. The result is
// never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.List(ctx, ports.ListFilter{Status: query.Status()})
	if err != nil {
		return nil, err
	}

	result := make([]ListOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, ListOrdersQueryResponse{
			ID:        o.ID(),
			Items:     o.Items(),
			Status:    o.Status(),
			CreatedAt: o.CreatedAt(),
			UpdatedAt: o.UpdatedAt(),
		})
	}

	return result, nil
}
