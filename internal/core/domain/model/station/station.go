package station

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrStationIsNotConstructed is returned when a Station instance was not created
	// through the NewStation or RestoreStation factory methods.
	ErrStationIsNotConstructed = errors.New("Station must be created via NewStation or RestoreStation")
)

// Type classifies a physical preparation station. An order item carries an
// optional Type that decides which station ticket the item lands on when the
// order is dispatched.
type Type string

const (
	// TypeKitchen is the main kitchen line.
	TypeKitchen Type = "kitchen"

	// TypeBar is the bar counter.
	TypeBar Type = "bar"

	// TypeDessert is the dessert station; its items ride on kitchen tickets.
	TypeDessert Type = "dessert"

	// TypeBeverage is the beverage station; its items ride on bar tickets.
	TypeBeverage Type = "beverage"
)

// getValidTypes returns the set of recognized station types.
func getValidTypes() map[Type]struct{} {
	return map[Type]struct{}{
		TypeKitchen:  {},
		TypeBar:      {},
		TypeDessert:  {},
		TypeBeverage: {},
	}
}

// Validate checks that the Type is one of the recognized station types.
func (t Type) Validate() error {
	if _, ok := getValidTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"station type is invalid",
			fmt.Errorf("%q is not a valid station type", string(t)),
		)
	}
	return nil
}

// String returns the wire representation of the station type.
func (t Type) String() string {
	return string(t)
}

// TypeFromString parses a station type from its wire representation.
func TypeFromString(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Family groups station types into the two operational views that receive
// tickets: the kitchen-side family (kitchen, dessert) and the bar-side
// family (bar, beverage). Rooms and station façades are keyed by family.
type Family string

const (
	// FamilyKitchen covers kitchen and dessert items.
	FamilyKitchen Family = "kitchen"

	// FamilyBar covers bar and beverage items.
	FamilyBar Family = "bar"
)

// Validate checks that the Family is one of the two operational families.
func (f Family) Validate() error {
	if f != FamilyKitchen && f != FamilyBar {
		return errs.NewValueIsInvalidErrorWithCause(
			"station family is invalid",
			fmt.Errorf("%q is not a valid station family", string(f)),
		)
	}
	return nil
}

// String returns the wire representation of the family.
func (f Family) String() string {
	return string(f)
}

// FamilyFromString parses a family from its wire representation.
func FamilyFromString(s string) (Family, error) {
	f := Family(s)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Types returns the station types belonging to the family.
func (f Family) Types() []Type {
	switch f {
	case FamilyKitchen:
		return []Type{TypeKitchen, TypeDessert}
	case FamilyBar:
		return []Type{TypeBar, TypeBeverage}
	default:
		return nil
	}
}

// Contains reports whether the station type belongs to the family.
func (f Family) Contains(t Type) bool {
	for _, member := range f.Types() {
		if member == t {
			return true
		}
	}
	return false
}

// FamilyOf maps a station type to its operational family. The second return
// value is false for unrecognized types; such items are not routed to any
// station ticket.
func FamilyOf(t Type) (Family, bool) {
	switch t {
	case TypeKitchen, TypeDessert:
		return FamilyKitchen, true
	case TypeBar, TypeBeverage:
		return FamilyBar, true
	default:
		return "", false
	}
}

// Station is an organization-scoped registry entry for a physical
// preparation station. It exists to validate dispatch targets and to list
// the active stations of an organization; the order flow never mutates it.
type Station struct {
	id          kernel.UUID
	orgID       kernel.UUID
	name        string
	stationType Type
	active      bool

	isConstructed bool
}

// NewStation creates an active station for an organization.
// The identifier, organization, name, and type must all be valid.
func NewStation(id, orgID kernel.UUID, name string, stationType Type) (*Station, error) {
	s := &Station{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrgID(orgID),
		s.setName(name),
		s.setType(stationType),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStation reconstructs a station from persistence, including its
// active flag.
func RestoreStation(id, orgID kernel.UUID, name string, stationType Type, active bool) (*Station, error) {
	s, err := NewStation(id, orgID, name, stationType)
	if err != nil {
		return nil, err
	}
	s.active = active
	return s, nil
}

// Validate ensures the Station instance was created through a factory method.
func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

// ID returns the station's unique identifier.
func (s *Station) ID() kernel.UUID {
	return s.id
}

// OrgID returns the owning organization's identifier.
func (s *Station) OrgID() kernel.UUID {
	return s.orgID
}

// Name returns the station's display name.
func (s *Station) Name() string {
	return s.name
}

// Type returns the station's type.
func (s *Station) Type() Type {
	return s.stationType
}

// Active reports whether the station is currently in service.
func (s *Station) Active() bool {
	return s.active
}

func (s *Station) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Station) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	s.orgID = orgID
	return nil
}

func (s *Station) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Station) setType(stationType Type) error {
	if err := stationType.Validate(); err != nil {
		return err
	}
	s.stationType = stationType
	return nil
}
