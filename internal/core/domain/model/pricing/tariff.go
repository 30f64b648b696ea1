package pricing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrTariffIsNotConstructed is returned when a Tariff was not built through NewTariff.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// Tariff is the explicit pricing context for a quote: the distance-bracket
// rules in ascending MinDistance order and the surcharges in their declared
// order. Handlers read the current tariff from configuration storage once per
// quote and pass it in, which keeps Quote a pure function of its arguments.
//
// The surcharge slice is a list, not a set: declaration order is the
// composition order, so overlapping or duplicate windows have one pinned,
// reproducible outcome.
type Tariff struct { //nolint:recvcheck //using for validation
	rules      []Rule
	surcharges []Surcharge

	guard guard.ConstructorGuard
}

// NewTariff creates a tariff from the given rules and surcharges.
// Rules are sorted by ascending MinDistance (stable, so equal lower bounds
// keep their declared order); surcharges keep their declared order verbatim.
// Names must be unique within each list.
func NewTariff(rules []Rule, surcharges []Surcharge) (Tariff, error) {
	tariff := Tariff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tariff.setRules(rules),
		tariff.setSurcharges(surcharges),
	); err != nil {
		return Tariff{}, err
	}

	return tariff, nil
}

// Validate ensures the tariff was created through NewTariff.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// Rules returns the rules in ascending MinDistance order.
func (t Tariff) Rules() []Rule {
	return t.rules
}

// Surcharges returns the surcharges in declaration order.
func (t Tariff) Surcharges() []Surcharge {
	return t.surcharges
}

// IsEmpty reports whether the tariff has no rules, in which case every quote
// degenerates to zero. Callers log this as a probable misconfiguration.
func (t Tariff) IsEmpty() bool {
	return len(t.rules) == 0
}

// Quote computes the price for a distance quoted at the given wall-clock time:
// the first matching bracket (falling back to the last bracket when none
// matches), times every surcharge whose window contains the time, rounded to
// two decimal places. An empty tariff quotes 0.
//
// Quote is deterministic: identical tariff, distance, and time always produce
// the identical price.
func (t Tariff) Quote(distanceKm float64, at time.Time) float64 {
	rule, ok := t.matchRule(distanceKm)
	if !ok {
		return 0
	}

	price := rule.Price(distanceKm)
	for _, surcharge := range t.surcharges {
		if surcharge.AppliesAt(at) {
			price *= surcharge.Multiplier()
		}
	}

	return RoundPrice(price)
}

// matchRule selects the first bracket covering the distance, or the last
// bracket when none covers it. Returns false only for an empty tariff.
func (t Tariff) matchRule(distanceKm float64) (Rule, bool) {
	if len(t.rules) == 0 {
		return Rule{}, false
	}

	for _, rule := range t.rules {
		if rule.Matches(distanceKm) {
			return rule, true
		}
	}

	return t.rules[len(t.rules)-1], true
}

// RoundPrice rounds a monetary amount to two decimal places, the precision
// quoted to clients and stored on the order record.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

func (t *Tariff) setRules(rules []Rule) error {
	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return err
		}
		if _, ok := seen[rule.Name()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("rules",
				fmt.Errorf("duplicate rule name %q", rule.Name()))
		}
		seen[rule.Name()] = struct{}{}
	}

	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MinDistance() < ordered[j].MinDistance()
	})

	t.rules = ordered
	return nil
}

func (t *Tariff) setSurcharges(surcharges []Surcharge) error {
	seen := make(map[string]struct{}, len(surcharges))
	for _, surcharge := range surcharges {
		if err := surcharge.Validate(); err != nil {
			return err
		}
		if _, ok := seen[surcharge.Name()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("surcharges",
				fmt.Errorf("duplicate surcharge name %q", surcharge.Name()))
		}
		seen[surcharge.Name()] = struct{}{}
	}

	t.surcharges = make([]Surcharge, len(surcharges))
	copy(t.surcharges, surcharges)
	return nil
}
