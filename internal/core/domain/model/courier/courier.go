package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrExternalCodeIsRequired is returned when attempting to create a courier
	// without the external identity code used by the inbound channel.
	ErrExternalCodeIsRequired = errs.NewValueIsRequiredError("externalCode")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a courier identity in the dispatch system.
//
// Key responsibilities:
//   - Carrying the identity fields shown in notifications (name, phone)
//   - Mapping the inbound channel's external code to the internal UUID
//   - Gating claim eligibility through the blocked flag
//
// Business rules:
//   - A courier must have a valid UUID, an external code and a display name
//   - Blocking is reversible and never touches orders already claimed
type Courier struct {
	id           kernel.UUID
	externalCode string
	name         string
	phone        string
	blocked      bool

	guard guard.ConstructorGuard
}

// NewCourier creates a new, unblocked Courier.
//
// Parameters:
//   - id: unique internal identifier
//   - externalCode: the identity code the inbound channel presents (must be non-empty)
//   - name: human-readable display name (must be non-empty)
//   - phone: contact phone, optional
func NewCourier(id kernel.UUID, externalCode, name, phone string) (*Courier, error) {
	c := &Courier{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setExternalCode(externalCode),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage, including the
// stored blocked flag.
func RestoreCourier(id kernel.UUID, externalCode, name, phone string, blocked bool) (*Courier, error) {
	c, err := NewCourier(id, externalCode, name, phone)
	if err != nil {
		return nil, err
	}

	c.blocked = blocked
	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}

	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// ExternalCode returns the inbound channel's identity code.
func (c *Courier) ExternalCode() string {
	return c.externalCode
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact phone, empty when unknown.
func (c *Courier) Phone() string {
	return c.phone
}

// IsBlocked reports whether the courier is barred from claiming new offers.
func (c *Courier) IsBlocked() bool {
	return c.blocked
}

// Block bars the courier from claiming new offers. Orders already claimed are
// unaffected and may still be advanced and completed.
func (c *Courier) Block() {
	c.blocked = true
}

// Unblock restores the courier's claim eligibility.
func (c *Courier) Unblock() {
	c.blocked = false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setExternalCode(externalCode string) error {
	if externalCode == "" {
		return ErrExternalCodeIsRequired
	}
	c.externalCode = externalCode
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
