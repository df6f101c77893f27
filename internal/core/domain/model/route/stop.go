package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// Stop is one visit on a route. It may point at the resident and the
// collection request it serves; those links are weak references.
type Stop struct {
	id             kernel.UUID
	sequenceNumber int
	address        string
	location       kernel.Location
	residentID     *kernel.UUID
	requestID      *kernel.UUID

	status        StopStatus
	arrivalTime   *time.Time
	departureTime *time.Time
	notes         string

	guard guard.ConstructorGuard
}

func NewStop(
	id kernel.UUID,
	sequenceNumber int,
	address string,
	location kernel.Location,
	residentID *kernel.UUID,
	requestID *kernel.UUID,
) (*Stop, error) {
	s := &Stop{
		status:     StopPending,
		residentID: residentID,
		requestID:  requestID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setSequenceNumber(sequenceNumber),
		s.setAddress(address),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func RestoreStop(
	id kernel.UUID,
	sequenceNumber int,
	address string,
	location kernel.Location,
	residentID *kernel.UUID,
	requestID *kernel.UUID,
	status StopStatus,
	arrivalTime *time.Time,
	departureTime *time.Time,
	notes string,
) (*Stop, error) {
	s := &Stop{
		residentID:    residentID,
		requestID:     requestID,
		arrivalTime:   arrivalTime,
		departureTime: departureTime,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setSequenceNumber(sequenceNumber),
		s.setAddress(address),
		s.setLocation(location),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

func (s *Stop) IsEqual(other *Stop) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Stop) ID() kernel.UUID           { return s.id }
func (s *Stop) SequenceNumber() int       { return s.sequenceNumber }
func (s *Stop) Address() string           { return s.address }
func (s *Stop) Location() kernel.Location { return s.location }
func (s *Stop) ResidentID() *kernel.UUID  { return s.residentID }
func (s *Stop) RequestID() *kernel.UUID   { return s.requestID }
func (s *Stop) Status() StopStatus        { return s.status }
func (s *Stop) ArrivalTime() *time.Time   { return s.arrivalTime }
func (s *Stop) DepartureTime() *time.Time { return s.departureTime }
func (s *Stop) Notes() string             { return s.notes }

func (s *Stop) arrive(at time.Time) error {
	newStatus, err := s.status.Arrive()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.arrivalTime = &at
	return nil
}

func (s *Stop) complete(at time.Time) error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.departureTime = &at
	return nil
}

func (s *Stop) skip(notes string, at time.Time) error {
	newStatus, err := s.status.Skip()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.departureTime = &at
	if notes = strings.TrimSpace(notes); notes != "" {
		s.notes = notes
	}
	return nil
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setSequenceNumber(n int) error {
	if n < 1 {
		return errs.NewValueIsInvalidErrorWithCause("sequence_number", fmt.Errorf("%d is less than 1", n))
	}
	s.sequenceNumber = n
	return nil
}

func (s *Stop) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}

func (s *Stop) setLocation(loc kernel.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	s.location = loc
	return nil
}

func (s *Stop) setStatus(status StopStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
