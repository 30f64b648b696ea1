package tariffrepo

import (
	"context"

	"dispatch/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GormTariffRepository implements ports.TariffRepository using GORM.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// GetCurrent loads the effective tariff: every pricing rule plus the
// surcharges in their declared (position) order. An installation without
// pricing rows yields an empty tariff, which quotes zero.
func (r *GormTariffRepository) GetCurrent(ctx context.Context) (pricing.Tariff, error) {
	var ruleDTOs []RuleDTO
	if err := r.db.WithContext(ctx).Find(&ruleDTOs).Error; err != nil {
		return pricing.Tariff{}, err
	}

	rules := make([]pricing.Rule, 0, len(ruleDTOs))
	for _, dto := range ruleDTOs {
		rule, err := toDomainRule(dto)
		if err != nil {
			return pricing.Tariff{}, err
		}
		rules = append(rules, rule)
	}

	var surchargeDTOs []SurchargeDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&surchargeDTOs).Error; err != nil {
		return pricing.Tariff{}, err
	}

	surcharges := make([]pricing.Surcharge, 0, len(surchargeDTOs))
	for _, dto := range surchargeDTOs {
		surcharge, err := toDomainSurcharge(dto)
		if err != nil {
			return pricing.Tariff{}, err
		}
		surcharges = append(surcharges, surcharge)
	}

	return pricing.NewTariff(rules, surcharges)
}
