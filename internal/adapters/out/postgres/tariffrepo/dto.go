// Package tariffrepo provides read-only access to the pricing configuration.
// Tariffs are operator-managed rows, not domain aggregates: the dispatch core
// only ever loads the currently effective rule and surcharge sets.
package tariffrepo

import (
	"dispatch/internal/core/domain/model/pricing"
)

// RuleDTO represents one distance-bracket pricing rule row.
type RuleDTO struct {
	Name        string `gorm:"primaryKey"`
	MinDistance float64
	MaxDistance float64
	BasePrice   float64
	PerKmPrice  float64
	Multiplier  float64
}

// TableName specifies the database table name for pricing rules.
func (RuleDTO) TableName() string {
	return "pricing_rules"
}

// SurchargeDTO represents one time-of-day surcharge row. Position pins the
// declaration order, which is the order surcharges compose in.
type SurchargeDTO struct {
	Name        string `gorm:"primaryKey"`
	StartMinute int
	EndMinute   int
	Multiplier  float64
	Position    int `gorm:"index"`
}

// TableName specifies the database table name for surcharges.
func (SurchargeDTO) TableName() string {
	return "pricing_surcharges"
}

// toDomainRule converts a rule row into its domain value object, re-running
// the constructor validation so corrupted configuration fails loudly.
func toDomainRule(dto RuleDTO) (pricing.Rule, error) {
	return pricing.NewRule(
		dto.Name,
		dto.MinDistance, dto.MaxDistance,
		dto.BasePrice, dto.PerKmPrice,
		dto.Multiplier,
	)
}

// toDomainSurcharge converts a surcharge row into its domain value object.
func toDomainSurcharge(dto SurchargeDTO) (pricing.Surcharge, error) {
	return pricing.NewSurcharge(dto.Name, dto.StartMinute, dto.EndMinute, dto.Multiplier)
}
