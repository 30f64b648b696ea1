package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierActiveOrdersQueryHandler retrieves a courier's claimed,
// not-yet-completed orders and annotates each with its allowed next actions.
type GetCourierActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetCourierActiveOrdersQueryHandler(db *gorm.DB) GetCourierActiveOrdersQueryHandler {
	return GetCourierActiveOrdersQueryHandler{db: db}
}

// Handle executes the query for the courier's in-flight orders.
// Returns orders bound to the courier in any status before "completed",
// sorted by creation time, oldest first.
func (h GetCourierActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierActiveOrdersQuery,
) ([]GetCourierActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := make([]GetCourierActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			origin_lat,
			origin_lon,
			destination_lat,
			destination_lon,
			comment,
			price
		FROM orders
		WHERE courier_id = ? AND status != ?
		ORDER BY created_at
	`, query.CourierID().Bytes(), order.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCourierActiveOrdersQueryResponse
		var id uuid.UUID
		var status string
		var originLat, originLon, destinationLat, destinationLon float64

		err = rows.Scan(
			&id,
			&status,
			&originLat,
			&originLon,
			&destinationLat,
			&destinationLon,
			&resp.Comment,
			&resp.Price,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = orderStatus
		resp.NextActions = order.NextActions(orderStatus)

		origin, locErr := kernel.NewLocation(originLat, originLon)
		if locErr != nil {
			return nil, locErr
		}
		destination, locErr := kernel.NewLocation(destinationLat, destinationLon)
		if locErr != nil {
			return nil, locErr
		}
		resp.Origin = origin
		resp.Destination = destination

		active = append(active, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return active, nil
}
