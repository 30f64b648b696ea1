package identityrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityResolver implements ports.IdentityResolver using GORM.
type GormIdentityResolver struct {
	db *gorm.DB
}

// NewGormIdentityResolver creates a new GORM identity resolver.
func NewGormIdentityResolver(db *gorm.DB) *GormIdentityResolver {
	return &GormIdentityResolver{db: db}
}

// Add registers a courier identity. Used by provisioning, not by the
// dispatch core itself.
func (r *GormIdentityResolver) Add(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to a courier identity, such as the blocked flag.
func (r *GormIdentityResolver) Update(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("external_code", "name", "phone", "blocked").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", c.ID().String())
	}

	return nil
}

// Resolve retrieves a courier identity by its internal identifier.
func (r *GormIdentityResolver) Resolve(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ResolveByCode retrieves a courier identity by its external code.
func (r *GormIdentityResolver) ResolveByCode(ctx context.Context, externalCode string) (*courier.Courier, error) {
	if externalCode == "" {
		return nil, errs.NewValueIsRequiredError("externalCode")
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "external_code = ?", externalCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", externalCode)
		}
		return nil, err
	}

	return toDomain(dto)
}
