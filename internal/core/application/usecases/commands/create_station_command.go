package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateStationCommandIsNotConstructed = errors.New(
		"CreateStationCommand must be created via NewCreateStationCommand constructor",
	)
	ErrStationNameIsRequired = errors.New("station name is required")
)

// CreateStationCommand represents a request to register a preparation
// station in an organization's directory.
type CreateStationCommand struct { //nolint:recvcheck //using for validation
	stationID   kernel.UUID
	orgID       kernel.UUID
	name        string
	stationType station.Type

	guard guard.ConstructorGuard
}

// NewCreateStationCommand creates a command to register a station.
func NewCreateStationCommand(
	stationID, orgID kernel.UUID,
	name string,
	stationType station.Type,
) (CreateStationCommand, error) {
	cmd := CreateStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStationID(stationID),
		cmd.setOrgID(orgID),
		cmd.setName(name),
		cmd.setType(stationType),
	); err != nil {
		return CreateStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStationCommand) Validate() error {
	return c.guard.Validate(ErrCreateStationCommandIsNotConstructed)
}

// StationID returns the identifier assigned to the new station.
func (c CreateStationCommand) StationID() kernel.UUID {
	return c.stationID
}

// OrgID returns the owning organization.
func (c CreateStationCommand) OrgID() kernel.UUID {
	return c.orgID
}

// Name returns the station's display name.
func (c CreateStationCommand) Name() string {
	return c.name
}

// StationType returns the station's type.
func (c CreateStationCommand) StationType() station.Type {
	return c.stationType
}

func (c *CreateStationCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}
	c.stationID = stationID
	return nil
}

func (c *CreateStationCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CreateStationCommand) setName(name string) error {
	if name == "" {
		return ErrStationNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateStationCommand) setType(stationType station.Type) error {
	if err := stationType.Validate(); err != nil {
		return err
	}
	c.stationType = stationType
	return nil
}
