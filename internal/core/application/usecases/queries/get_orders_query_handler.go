package queries

import (
	"context"
	"time"

	"nexye/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads terminal order records straight from the
// database, bypassing the aggregate. The history view only needs the
// flat record, not the domain behavior.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the history query.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns all order records, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			sender_name,
			receiver_name,
			receiver_pincode,
			weight,
			declared_value,
			service_type,
			status,
			awb_code,
			courier_name,
			failure_reason,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			record GetOrdersQueryResponse
			status int
			at     time.Time
		)

		err = rows.Scan(
			&record.OrderID,
			&record.SenderName,
			&record.ReceiverName,
			&record.ReceiverPincode,
			&record.Weight,
			&record.DeclaredValue,
			&record.ServiceType,
			&status,
			&record.AWBCode,
			&record.CourierName,
			&record.FailureReason,
			&at,
		)
		if err != nil {
			return nil, err
		}

		record.Status = order.Status(status).String()
		record.CreatedAt = at
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
