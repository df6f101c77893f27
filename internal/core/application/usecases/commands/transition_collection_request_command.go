package commands

import (
	"errors"
	"fmt"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrTransitionCollectionRequestCommandIsNotConstructed = errors.New(
	"TransitionCollectionRequestCommand must be created via NewTransitionCollectionRequestCommand constructor",
)

// TransitionCollectionRequestCommand moves a request to a target status
// given by name. When ownerID is set the request must belong to that
// resident; requests of other residents are reported as not found.
type TransitionCollectionRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	target    request.Status
	ownerID   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewTransitionCollectionRequestCommand(
	requestID kernel.UUID,
	status string,
	ownerID *kernel.UUID,
) (TransitionCollectionRequestCommand, error) {
	cmd := TransitionCollectionRequestCommand{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setTarget(status),
	); err != nil {
		return TransitionCollectionRequestCommand{}, err
	}

	return cmd, nil
}

func (c TransitionCollectionRequestCommand) Validate() error {
	return c.guard.Validate(ErrTransitionCollectionRequestCommandIsNotConstructed)
}

func (c TransitionCollectionRequestCommand) RequestID() kernel.UUID { return c.requestID }
func (c TransitionCollectionRequestCommand) Target() request.Status { return c.target }
func (c TransitionCollectionRequestCommand) OwnerID() *kernel.UUID  { return c.ownerID }

func (c *TransitionCollectionRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *TransitionCollectionRequestCommand) setTarget(status string) error {
	target, err := request.ParseStatus(status)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("invalid status value %q", status))
	}
	c.target = target
	return nil
}
