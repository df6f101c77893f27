package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/guard"
)

var ErrCreateCollectionRequestCommandIsNotConstructed = errors.New(
	"CreateCollectionRequestCommand must be created via NewCreateCollectionRequestCommand constructor",
)

// CreateCollectionRequestCommand files a new pickup request for a resident.
// The request id is chosen by the caller so it can be returned before the
// transaction commits.
//
// Example:
//
//	details, _ := request.NewDetails(request.General, 2, nil, date, request.Morning, "Bole 12", nil, "")
//	cmd, err := NewCreateCollectionRequestCommand(kernel.NewUUID(), residentID, details)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateCollectionRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	residentID kernel.UUID
	details    request.Details

	guard guard.ConstructorGuard
}

func NewCreateCollectionRequestCommand(
	requestID kernel.UUID,
	residentID kernel.UUID,
	details request.Details,
) (CreateCollectionRequestCommand, error) {
	cmd := CreateCollectionRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setResidentID(residentID),
		cmd.setDetails(details),
	); err != nil {
		return CreateCollectionRequestCommand{}, err
	}

	return cmd, nil
}

func (c CreateCollectionRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateCollectionRequestCommandIsNotConstructed)
}

func (c CreateCollectionRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreateCollectionRequestCommand) ResidentID() kernel.UUID {
	return c.residentID
}

func (c CreateCollectionRequestCommand) Details() request.Details {
	return c.details
}

func (c *CreateCollectionRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *CreateCollectionRequestCommand) setResidentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.residentID = id
	return nil
}

func (c *CreateCollectionRequestCommand) setDetails(d request.Details) error {
	if err := d.Validate(); err != nil {
		return err
	}
	c.details = d
	return nil
}
