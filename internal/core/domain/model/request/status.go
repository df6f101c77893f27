package request

import (
	"fmt"

	"wasteflow/internal/pkg/errs"
)

const entityName = "collection request"

// Status is the lifecycle state of a CollectionRequest.
//
// Allowed moves (anything else is rejected with errs.ErrTransitionRejected):
//
//	pending     -> assigned | cancelled
//	assigned    -> assigned (reassignment) | in_progress | completed | cancelled
//	in_progress -> in_progress | completed | cancelled
//	completed   -> completed (no-op)
//	cancelled   -> cancelled (no-op)
type Status int

const (
	// Unknown is the zero value and never valid on a stored request.
	Unknown Status = iota

	// Pending requests wait for a company and vehicle.
	Pending

	// Assigned requests carry an Assignment and an estimated arrival.
	Assigned

	// InProgress requests are being collected by the crew.
	InProgress

	// Completed requests have a collected_at timestamp and a CollectionRecord.
	Completed

	// Cancelled requests are closed without collection.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getStatusDisplay() map[Status]string {
	return map[Status]string{
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "In Progress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus maps the wire slug ("in_progress") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, slug := range getStatusStrings() {
		if status != Unknown && slug == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Display is the human readable label used in tracking responses and
// notification texts.
func (s Status) Display() string {
	if str, ok := getStatusDisplay()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the request counts towards a vehicle's load.
func (s Status) IsActive() bool {
	return s == Assigned || s == InProgress
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

func (s Status) Assign() (Status, error) {
	if s != Pending && s != Assigned {
		return Unknown, s.reject(Assigned)
	}
	return Assigned, nil
}

func (s Status) Start() (Status, error) {
	if s != Assigned && s != InProgress {
		return Unknown, s.reject(InProgress)
	}
	return InProgress, nil
}

func (s Status) Complete() (Status, error) {
	if s != Assigned && s != InProgress && s != Completed {
		return Unknown, s.reject(Completed)
	}
	return Completed, nil
}

func (s Status) Cancel() (Status, error) {
	if s == Completed {
		return Unknown, s.reject(Cancelled)
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}

func (s Status) reject(target Status) error {
	return errs.NewTransitionRejectedError(entityName, s.String(), target.String())
}
