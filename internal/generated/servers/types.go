// Package servers holds the HTTP contract described by api/openapi.yml:
// wire models, the ServerInterface every implementation satisfies and the
// echo bindings that decode parameters before dispatching to it.
package servers

// Defines values for OrderStatus.
const (
	Completed OrderStatus = "completed"
	Waiting   OrderStatus = "waiting"
)

// DeletedOrder defines model for DeletedOrder.
type DeletedOrder struct {
	Id string `json:"id"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

// Health defines model for Health.
type Health struct {
	Ok bool `json:"ok"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Id    string `json:"id"`
	Items string `json:"items"`
}

// Order defines model for Order.
type Order struct {
	// CreatedAt Milliseconds since the Unix epoch.
	CreatedAt int64       `json:"createdAt"`
	Id        string      `json:"id"`
	Items     string      `json:"items"`
	Status    OrderStatus `json:"status"`

	// UpdatedAt Milliseconds since the Unix epoch.
	UpdatedAt int64 `json:"updatedAt"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderId defines model for OrderId.
type OrderId = string

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder
