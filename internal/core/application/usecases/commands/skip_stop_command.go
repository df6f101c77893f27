package commands

import (
	"errors"
	"strings"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrSkipStopCommandIsNotConstructed = errors.New(
	"SkipStopCommand must be created via NewSkipStopCommand constructor",
)

// SkipStopCommand marks a stop as not served. Notes carry the driver's
// reason and may be empty.
type SkipStopCommand struct { //nolint:recvcheck //using for validation
	stopID       kernel.UUID
	driverUserID kernel.UUID
	notes        string

	guard guard.ConstructorGuard
}

func NewSkipStopCommand(stopID kernel.UUID, driverUserID kernel.UUID, notes string) (SkipStopCommand, error) {
	if err := errors.Join(stopID.Validate(), driverUserID.Validate()); err != nil {
		return SkipStopCommand{}, err
	}

	return SkipStopCommand{
		stopID:       stopID,
		driverUserID: driverUserID,
		notes:        strings.TrimSpace(notes),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SkipStopCommand) Validate() error {
	return c.guard.Validate(ErrSkipStopCommandIsNotConstructed)
}

func (c SkipStopCommand) StopID() kernel.UUID       { return c.stopID }
func (c SkipStopCommand) DriverUserID() kernel.UUID { return c.driverUserID }
func (c SkipStopCommand) Notes() string             { return c.notes }
