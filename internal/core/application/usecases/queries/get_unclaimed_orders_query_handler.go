package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnclaimedOrdersQueryHandler retrieves the open offer board from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetUnclaimedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnclaimedOrdersQueryHandler creates a handler for offer board queries.
// Requires a GORM database connection for query execution.
func NewGetUnclaimedOrdersQueryHandler(db *gorm.DB) GetUnclaimedOrdersQueryHandler {
	return GetUnclaimedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unclaimed orders.
// Returns orders in "new" status sorted by creation time, oldest first.
func (h GetUnclaimedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnclaimedOrdersQuery,
) ([]GetUnclaimedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetUnclaimedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin_lat,
			origin_lon,
			destination_lat,
			destination_lon,
			comment,
			distance_km,
			price,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.New.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var offer GetUnclaimedOrdersQueryResponse
		var id uuid.UUID
		var originLat, originLon, destinationLat, destinationLon float64

		err = rows.Scan(
			&id,
			&originLat,
			&originLon,
			&destinationLat,
			&destinationLon,
			&offer.Comment,
			&offer.DistanceKm,
			&offer.Price,
			&offer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		offer.ID = orderID

		origin, locErr := kernel.NewLocation(originLat, originLon)
		if locErr != nil {
			return nil, locErr
		}
		destination, locErr := kernel.NewLocation(destinationLat, destinationLon)
		if locErr != nil {
			return nil, locErr
		}
		offer.Origin = origin
		offer.Destination = destination

		offers = append(offers, offer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
