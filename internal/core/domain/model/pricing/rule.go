package pricing

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrRuleIsNotConstructed is returned when a Rule was not built through NewRule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")

// Rule is one distance bracket of the tariff. A rule covers distances from
// MinDistance (inclusive) up to MaxDistance (exclusive); a MaxDistance of 0
// means the bracket is unbounded above. The bracket price is
// (BasePrice + distance * PerKmPrice) * Multiplier.
//
// Rule is an immutable value object; construct it with NewRule.
type Rule struct { //nolint:recvcheck //using for validation
	name        string
	minDistance float64
	maxDistance float64
	basePrice   float64
	perKmPrice  float64
	multiplier  float64

	guard guard.ConstructorGuard
}

// NewRule creates a pricing rule with validation.
// Name must be non-empty, distances and prices non-negative, the multiplier
// positive, and MaxDistance (when bounded) must exceed MinDistance.
func NewRule(name string, minDistance, maxDistance, basePrice, perKmPrice, multiplier float64) (Rule, error) {
	rule := Rule{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rule.setName(name),
		rule.setDistances(minDistance, maxDistance),
		rule.setPrices(basePrice, perKmPrice),
		rule.setMultiplier(multiplier),
	); err != nil {
		return Rule{}, err
	}

	return rule, nil
}

// Validate ensures the rule was created through NewRule.
func (r Rule) Validate() error {
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

// Name returns the rule's unique name within its tariff.
func (r Rule) Name() string {
	return r.name
}

// MinDistance returns the inclusive lower bound of the bracket in kilometers.
func (r Rule) MinDistance() float64 {
	return r.minDistance
}

// MaxDistance returns the exclusive upper bound of the bracket in kilometers.
// Zero means the bracket is unbounded above.
func (r Rule) MaxDistance() float64 {
	return r.maxDistance
}

// BasePrice returns the flat component of the bracket price.
func (r Rule) BasePrice() float64 {
	return r.basePrice
}

// PerKmPrice returns the per-kilometer component of the bracket price.
func (r Rule) PerKmPrice() float64 {
	return r.perKmPrice
}

// Multiplier returns the factor applied to the bracket price.
func (r Rule) Multiplier() float64 {
	return r.multiplier
}

// Matches reports whether the bracket covers the given distance:
// min ≤ distance < effective max, where a max of 0 is unbounded.
func (r Rule) Matches(distanceKm float64) bool {
	if distanceKm < r.minDistance {
		return false
	}
	if r.maxDistance == 0 {
		return true
	}
	return distanceKm < r.maxDistance
}

// Price returns the unrounded bracket price for the given distance:
// (base + distance * perKm) * multiplier.
func (r Rule) Price(distanceKm float64) float64 {
	return (r.basePrice + distanceKm*r.perKmPrice) * r.multiplier
}

func (r *Rule) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("rule name")
	}

	r.name = name
	return nil
}

func (r *Rule) setDistances(minDistance, maxDistance float64) error {
	if minDistance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("min distance",
			fmt.Errorf("%v is negative", minDistance))
	}
	if maxDistance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("max distance",
			fmt.Errorf("%v is negative", maxDistance))
	}
	if maxDistance != 0 && maxDistance <= minDistance {
		return errs.NewValueIsInvalidErrorWithCause("max distance",
			fmt.Errorf("%v is not greater than min distance %v", maxDistance, minDistance))
	}

	r.minDistance = minDistance
	r.maxDistance = maxDistance
	return nil
}

func (r *Rule) setPrices(basePrice, perKmPrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("base price",
			fmt.Errorf("%v is negative", basePrice))
	}
	if perKmPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("per km price",
			fmt.Errorf("%v is negative", perKmPrice))
	}

	r.basePrice = basePrice
	r.perKmPrice = perKmPrice
	return nil
}

func (r *Rule) setMultiplier(multiplier float64) error {
	if multiplier <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("multiplier",
			fmt.Errorf("%v is not greater than 0", multiplier))
	}

	r.multiplier = multiplier
	return nil
}
