package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/guard"
)

var ErrUpdateCollectionRequestCommandIsNotConstructed = errors.New(
	"UpdateCollectionRequestCommand must be created via NewUpdateCollectionRequestCommand constructor",
)

// UpdateCollectionRequestCommand edits a pending request on behalf of the
// resident who filed it.
type UpdateCollectionRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	ownerID   kernel.UUID
	change    request.DetailsChange

	guard guard.ConstructorGuard
}

func NewUpdateCollectionRequestCommand(
	requestID kernel.UUID,
	ownerID kernel.UUID,
	change request.DetailsChange,
) (UpdateCollectionRequestCommand, error) {
	if err := errors.Join(requestID.Validate(), ownerID.Validate()); err != nil {
		return UpdateCollectionRequestCommand{}, err
	}
	if change.Location != nil {
		if err := change.Location.Validate(); err != nil {
			return UpdateCollectionRequestCommand{}, err
		}
	}

	return UpdateCollectionRequestCommand{
		requestID: requestID,
		ownerID:   ownerID,
		change:    change,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCollectionRequestCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCollectionRequestCommandIsNotConstructed)
}

func (c UpdateCollectionRequestCommand) RequestID() kernel.UUID        { return c.requestID }
func (c UpdateCollectionRequestCommand) OwnerID() kernel.UUID          { return c.ownerID }
func (c UpdateCollectionRequestCommand) Change() request.DetailsChange { return c.change }
