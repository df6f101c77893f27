package commands

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrRateCollectionCommandIsNotConstructed = errors.New(
	"RateCollectionCommand must be created via NewRateCollectionCommand constructor",
)

// RateCollectionCommand records the resident's 1 to 5 rating of a finished
// collection.
type RateCollectionCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	residentID kernel.UUID
	rating     int
	feedback   string

	guard guard.ConstructorGuard
}

func NewRateCollectionCommand(
	requestID kernel.UUID,
	residentID kernel.UUID,
	rating int,
	feedback string,
) (RateCollectionCommand, error) {
	cmd := RateCollectionCommand{
		feedback: feedback,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		residentID.Validate(),
		cmd.setRating(rating),
	); err != nil {
		return RateCollectionCommand{}, err
	}
	cmd.requestID = requestID
	cmd.residentID = residentID

	return cmd, nil
}

func (c RateCollectionCommand) Validate() error {
	return c.guard.Validate(ErrRateCollectionCommandIsNotConstructed)
}

func (c RateCollectionCommand) RequestID() kernel.UUID  { return c.requestID }
func (c RateCollectionCommand) ResidentID() kernel.UUID { return c.residentID }
func (c RateCollectionCommand) Rating() int             { return c.rating }
func (c RateCollectionCommand) Feedback() string        { return c.feedback }

func (c *RateCollectionCommand) setRating(rating int) error {
	if rating < request.MinRating || rating > request.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, request.MinRating, request.MaxRating)
	}
	c.rating = rating
	return nil
}
