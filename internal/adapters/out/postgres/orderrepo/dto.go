// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by its wire name ("new", "to_a", ...) so the read-side SQL
// and operators inspecting the table see the same vocabulary the domain uses.
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID   `gorm:"type:uuid;index"`
	CourierID   *uuid.UUID  `gorm:"type:uuid;index"`
	Origin      GeoPointDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination GeoPointDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Comment     string
	DistanceKm  float64
	Price       float64
	Status      string `gorm:"type:varchar(16);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents an embedded coordinate pair within the order table.
type GeoPointDTO struct {
	Lat float64
	Lon float64
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		ClientID:  aggregate.ClientID().Bytes(),
		CourierID: courierID,
		Origin: GeoPointDTO{
			Lat: aggregate.Origin().Latitude(),
			Lon: aggregate.Origin().Longitude(),
		},
		Destination: GeoPointDTO{
			Lat: aggregate.Destination().Latitude(),
			Lon: aggregate.Destination().Longitude(),
		},
		Comment:    aggregate.Comment(),
		DistanceKm: aggregate.DistanceKm(),
		Price:      aggregate.Price(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder, which re-validates
// the stored status and courier binding consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	origin, err := kernel.NewLocation(dto.Origin.Lat, dto.Origin.Lon)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewLocation(dto.Destination.Lat, dto.Destination.Lon)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, clientID, courierID,
		origin, destination,
		dto.Comment, dto.DistanceKm, dto.Price,
		status, dto.CreatedAt, dto.UpdatedAt,
	)
}
