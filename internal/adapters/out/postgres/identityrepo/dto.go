// Package identityrepo provides courier identity lookups for claim
// authorization. The dispatch core reads identities; registration and
// blocking are operator concerns handled through the same table.
package identityrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents one courier identity row.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalCode string    `gorm:"uniqueIndex"`
	Name         string
	Phone        string
	Blocked      bool
}

// TableName specifies the database table name for courier identities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier identity to its database representation.
func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           c.ID().Bytes(),
		ExternalCode: c.ExternalCode(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		Blocked:      c.IsBlocked(),
	}
}

// toDomain converts a database row into a courier identity.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.ExternalCode, dto.Name, dto.Phone, dto.Blocked)
}
