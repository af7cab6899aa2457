// Package orderrepo provides data transfer objects and the GORM repository for
// order persistence, handling the conversion between domain entities and
// database rows.
package orderrepo

import (
	"time"

	"orderboard/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
//
// Timestamps are stored as milliseconds since the epoch. Seq is a monotonic
// insertion counter used only to break createdAt ties when listing. The
// (status, created_at) index serves the filtered, ordered list query.
type OrderDTO struct {
	ID          string `gorm:"column:id;type:varchar(191);primaryKey"`
	Items       string `gorm:"column:items;type:text;not null"`
	Status      string `gorm:"column:status;type:varchar(16);not null;index:idx_orders_status_created,priority:1;check:chk_orders_status,status IN ('waiting','completed')"`
	CreatedAtMs int64  `gorm:"column:created_at;not null;index:idx_orders_status_created,priority:2;index:idx_orders_created_seq,priority:1"`
	UpdatedAtMs int64  `gorm:"column:updated_at;not null"`
	Seq         int64  `gorm:"column:seq;not null;index:idx_orders_created_seq,priority:2"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID(),
		Items:       o.Items(),
		Status:      o.Status().String(),
		CreatedAtMs: o.CreatedAt().UnixMilli(),
		UpdatedAtMs: o.UpdatedAt().UnixMilli(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(
		dto.ID,
		dto.Items,
		status,
		time.UnixMilli(dto.CreatedAtMs),
		time.UnixMilli(dto.UpdatedAtMs),
	)
}
