package request

import (
	"errors"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when a CollectionRequest was not
	// created through NewCollectionRequest or RestoreCollectionRequest.
	ErrRequestIsNotConstructed = errors.New("CollectionRequest must be created via NewCollectionRequest")
)

// CollectionRequest is the aggregate root of a resident's pickup request.
// It owns the request state machine (see Status) and raises the domain
// events that drive resident and company notifications.
//
// Invariants:
//   - status only changes through Assign, Start, Complete, Cancel or TransitionTo
//   - an assigned, in_progress or completed request carries an Assignment
//     unless it was restored that way from storage
//   - collectedAt is stamped exactly once, on the first move to Completed
//   - a request never goes back to Pending
type CollectionRequest struct {
	id         kernel.UUID
	residentID kernel.UUID
	zoneID     *kernel.UUID
	details    Details

	status           Status
	assignment       *Assignment
	estimatedArrival *time.Time
	collectedAt      *time.Time

	createdAt time.Time
	updatedAt time.Time

	events kernel.EventRecorder
	guard  guard.ConstructorGuard
}

// NewCollectionRequest creates a pending request and raises CreatedEvent.
//
// zoneID is the resident's zone at creation time; it may be nil for
// residents without a registered zone.
func NewCollectionRequest(
	id kernel.UUID,
	residentID kernel.UUID,
	zoneID *kernel.UUID,
	details Details,
	at time.Time,
) (*CollectionRequest, error) {
	r := &CollectionRequest{
		status:    Pending,
		createdAt: at,
		updatedAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setResidentID(residentID),
		r.setZoneID(zoneID),
		r.setDetails(details),
	); err != nil {
		return nil, err
	}

	r.events.Raise(CreatedEvent{
		BaseEvent:  kernel.NewBaseEvent(CreatedEventName, at),
		RequestID:  r.id,
		ResidentID: r.residentID,
		ZoneID:     r.zoneID,
		WasteType:  details.WasteType(),
		Address:    details.Address(),
	})

	return r, nil
}

// RestoreCollectionRequest rebuilds a request loaded from storage. It does
// not raise events.
func RestoreCollectionRequest(
	id kernel.UUID,
	residentID kernel.UUID,
	zoneID *kernel.UUID,
	details Details,
	status Status,
	assignment *Assignment,
	estimatedArrival *time.Time,
	collectedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*CollectionRequest, error) {
	r := &CollectionRequest{
		estimatedArrival: estimatedArrival,
		collectedAt:      collectedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setResidentID(residentID),
		r.setZoneID(zoneID),
		r.setDetails(details),
		r.setStatus(status),
		r.setAssignment(assignment),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *CollectionRequest) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r *CollectionRequest) IsEqual(other *CollectionRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *CollectionRequest) ID() kernel.UUID {
	return r.id
}

func (r *CollectionRequest) ResidentID() kernel.UUID {
	return r.residentID
}

// IsOwnedBy reports whether userID is the resident who filed the request.
func (r *CollectionRequest) IsOwnedBy(userID kernel.UUID) bool {
	return r.residentID.IsEqual(userID)
}

func (r *CollectionRequest) ZoneID() *kernel.UUID {
	return r.zoneID
}

func (r *CollectionRequest) Details() Details {
	return r.details
}

func (r *CollectionRequest) Status() Status {
	return r.status
}

func (r *CollectionRequest) Assignment() *Assignment {
	return r.assignment
}

func (r *CollectionRequest) EstimatedArrival() *time.Time {
	return r.estimatedArrival
}

func (r *CollectionRequest) CollectedAt() *time.Time {
	return r.collectedAt
}

func (r *CollectionRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *CollectionRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *CollectionRequest) DomainEvents() []kernel.DomainEvent {
	return r.events.DomainEvents()
}

func (r *CollectionRequest) ClearDomainEvents() {
	r.events.ClearDomainEvents()
}

// Assign binds the request to a. Reassigning an already assigned request
// replaces the previous assignment. The estimated arrival is derived from
// the resident's preferred date and time window.
func (r *CollectionRequest) Assign(a Assignment, at time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	eta := EstimateArrival(r.details.PreferredDate(), r.details.PreferredTime())
	r.status = newStatus
	r.assignment = &a
	r.estimatedArrival = &eta
	r.updatedAt = at

	r.events.Raise(AssignedEvent{
		BaseEvent:        kernel.NewBaseEvent(AssignedEventName, at),
		RequestID:        r.id,
		ResidentID:       r.residentID,
		CompanyID:        a.CompanyID(),
		VehicleID:        a.VehicleID(),
		DriverID:         a.DriverID(),
		EstimatedArrival: eta,
	})
	return nil
}

// UpdateDetails applies a resident's edit. Only pending requests can be
// edited; the zone stays the one captured at creation.
func (r *CollectionRequest) UpdateDetails(change DetailsChange, at time.Time) error {
	if r.status != Pending {
		return errs.NewTransitionRejectedErrorWithCause(entityName, r.status.String(), r.status.String(),
			errors.New("details can only change while pending"))
	}

	details, err := r.details.Apply(change)
	if err != nil {
		return err
	}
	r.details = details
	r.updatedAt = at
	return nil
}

// Start moves an assigned request to InProgress. Starting an in-progress
// request is a no-op.
func (r *CollectionRequest) Start(at time.Time) error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}
	if r.status == newStatus {
		return nil
	}

	r.status = newStatus
	r.updatedAt = at
	r.events.Raise(StartedEvent{
		BaseEvent:  kernel.NewBaseEvent(StartedEventName, at),
		RequestID:  r.id,
		ResidentID: r.residentID,
	})
	return nil
}

// Complete stamps collectedAt and raises CompletedEvent on the first call.
// Completing a completed request changes nothing and returns false.
func (r *CollectionRequest) Complete(at time.Time) (bool, error) {
	newStatus, err := r.status.Complete()
	if err != nil {
		return false, err
	}
	if r.status == newStatus {
		return false, nil
	}

	r.status = newStatus
	r.collectedAt = &at
	r.updatedAt = at
	r.events.Raise(CompletedEvent{
		BaseEvent:   kernel.NewBaseEvent(CompletedEventName, at),
		RequestID:   r.id,
		ResidentID:  r.residentID,
		CollectedAt: at,
	})
	return true, nil
}

// Cancel closes the request without collection. Cancelling a cancelled
// request is a no-op.
func (r *CollectionRequest) Cancel(at time.Time) error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}
	if r.status == newStatus {
		return nil
	}

	r.status = newStatus
	r.updatedAt = at
	r.events.Raise(CancelledEvent{
		BaseEvent:  kernel.NewBaseEvent(CancelledEventName, at),
		RequestID:  r.id,
		ResidentID: r.residentID,
	})
	return nil
}

// TransitionTo applies a generic status change requested by a caller that
// only knows the target status. Moving to Assigned never creates an
// assignment: it is a no-op for assigned requests and otherwise requires
// Assign.
func (r *CollectionRequest) TransitionTo(target Status, at time.Time) error {
	switch target {
	case Assigned:
		if _, err := r.status.Assign(); err != nil {
			return err
		}
		if r.assignment == nil {
			return errs.NewValueIsRequiredError("vehicle_id")
		}
		return nil
	case InProgress:
		return r.Start(at)
	case Completed:
		_, err := r.Complete(at)
		return err
	case Cancelled:
		return r.Cancel(at)
	default:
		return r.status.reject(target)
	}
}

func (r *CollectionRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *CollectionRequest) setResidentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("resident_id", err)
	}
	r.residentID = id
	return nil
}

func (r *CollectionRequest) setZoneID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("zone_id", err)
		}
	}
	r.zoneID = id
	return nil
}

func (r *CollectionRequest) setDetails(d Details) error {
	if err := d.Validate(); err != nil {
		return err
	}
	r.details = d
	return nil
}

func (r *CollectionRequest) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.status = s
	return nil
}

func (r *CollectionRequest) setAssignment(a *Assignment) error {
	if a != nil {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	r.assignment = a
	return nil
}
