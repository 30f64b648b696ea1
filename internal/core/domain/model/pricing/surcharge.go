package pricing

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// MinutesPerDay is the number of minutes in a day; surcharge window bounds are
// expressed as minutes since midnight in [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// ErrSurchargeIsNotConstructed is returned when a Surcharge was not built
// through NewSurcharge.
var ErrSurchargeIsNotConstructed = errors.New("Surcharge must be created via NewSurcharge constructor")

// Surcharge is a time-of-day multiplicative price adjustment, e.g. a night
// tariff. The window [start, end) is half-open in minutes since midnight.
// When start ≥ end the window wraps past midnight: a time t is inside when
// t ≥ start or t < end. Equal bounds therefore cover the whole day.
//
// Surcharge is an immutable value object; construct it with NewSurcharge.
type Surcharge struct { //nolint:recvcheck //using for validation
	name        string
	startMinute int
	endMinute   int
	multiplier  float64

	guard guard.ConstructorGuard
}

// NewSurcharge creates a surcharge with validation. Name must be non-empty,
// both window bounds must lie in [0, MinutesPerDay), and the multiplier must
// be positive.
func NewSurcharge(name string, startMinute, endMinute int, multiplier float64) (Surcharge, error) {
	surcharge := Surcharge{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		surcharge.setName(name),
		surcharge.setWindow(startMinute, endMinute),
		surcharge.setMultiplier(multiplier),
	); err != nil {
		return Surcharge{}, err
	}

	return surcharge, nil
}

// Validate ensures the surcharge was created through NewSurcharge.
func (s Surcharge) Validate() error {
	return s.guard.Validate(ErrSurchargeIsNotConstructed)
}

// Name returns the surcharge's unique name within its tariff.
func (s Surcharge) Name() string {
	return s.name
}

// StartMinute returns the inclusive window start in minutes since midnight.
func (s Surcharge) StartMinute() int {
	return s.startMinute
}

// EndMinute returns the exclusive window end in minutes since midnight.
func (s Surcharge) EndMinute() int {
	return s.endMinute
}

// Multiplier returns the factor applied to the price inside the window.
func (s Surcharge) Multiplier() float64 {
	return s.multiplier
}

// AppliesAt reports whether the quote time falls inside the window.
// Only the wall-clock time of day of t is considered.
func (s Surcharge) AppliesAt(t time.Time) bool {
	minute := MinuteOfDay(t)
	if s.startMinute < s.endMinute {
		return minute >= s.startMinute && minute < s.endMinute
	}
	// Window wraps past midnight.
	return minute >= s.startMinute || minute < s.endMinute
}

// MinuteOfDay returns t's wall-clock time as minutes since midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func (s *Surcharge) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("surcharge name")
	}

	s.name = name
	return nil
}

func (s *Surcharge) setWindow(startMinute, endMinute int) error {
	if startMinute < 0 || startMinute >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("start minute", startMinute, 0, MinutesPerDay-1)
	}
	if endMinute < 0 || endMinute >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("end minute", endMinute, 0, MinutesPerDay-1)
	}

	s.startMinute = startMinute
	s.endMinute = endMinute
	return nil
}

func (s *Surcharge) setMultiplier(multiplier float64) error {
	if multiplier <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("multiplier",
			fmt.Errorf("%v is not greater than 0", multiplier))
	}

	s.multiplier = multiplier
	return nil
}
