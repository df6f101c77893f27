package queries

import (
	"errors"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/guard"
)

var ErrTrackCollectionRequestQueryIsNotConstructed = errors.New(
	"TrackCollectionRequestQuery must be created via NewTrackCollectionRequestQuery constructor",
)

// TrackCollectionRequestQuery returns the progress of one of the resident's
// requests.
type TrackCollectionRequestQuery struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	residentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTrackCollectionRequestQuery(requestID, residentID kernel.UUID) (TrackCollectionRequestQuery, error) {
	if err := errors.Join(requestID.Validate(), residentID.Validate()); err != nil {
		return TrackCollectionRequestQuery{}, err
	}
	return TrackCollectionRequestQuery{
		requestID:  requestID,
		residentID: residentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q TrackCollectionRequestQuery) Validate() error {
	return q.guard.Validate(ErrTrackCollectionRequestQueryIsNotConstructed)
}

// TrackCollectionRequestQueryResponse adds the assigned vehicle and its last
// reported position to the request status.
type TrackCollectionRequestQueryResponse struct {
	Status           string
	StatusDisplay    string
	EstimatedArrival *time.Time
	CollectedAt      *time.Time
	VehiclePlate     string
	VehicleLatitude  *float64
	VehicleLongitude *float64
	VehicleSeenAt    *time.Time
}
