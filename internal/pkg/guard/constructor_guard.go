// Package guard provides a small defensive-construction primitive shared by
// value objects, entities, commands, and queries across the application.
//
// Domain objects in this codebase keep their fields private and are only valid
// when built through their constructor functions. Embedding a ConstructorGuard
// lets an object detect the difference between a constructor-built instance and
// a zero value, so Validate() can reject the latter before any business logic runs.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller did not
// supply a more specific construction error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its constructor.
// The zero value is "not constructed" and fails validation, which is exactly
// what makes the pattern work: a struct literal or an uninitialized variable
// carries a zero-value guard and is rejected.
//
// Example:
//
//	type Tariff struct {
//	    rules []PricingRule
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTariff(rules []PricingRule) (Tariff, error) {
//	    // ...validation...
//	    return Tariff{rules: rules, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Tariff) Validate() error {
//	    return t.guard.Validate(ErrTariffIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the "constructed" state.
// Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructor-built guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
