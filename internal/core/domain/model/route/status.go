package route

import (
	"fmt"

	"wasteflow/internal/pkg/errs"
)

// Status is the lifecycle state of a Route.
type Status int

const (
	Unknown Status = iota
	Scheduled
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Scheduled:  "scheduled",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, slug := range getStatusStrings() {
		if status != Unknown && slug == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known route status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid route status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Start() (Status, error) {
	if s != Scheduled {
		return Unknown, errs.NewTransitionRejectedError("route", s.String(), InProgress.String())
	}
	return InProgress, nil
}

func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewTransitionRejectedError("route", s.String(), Completed.String())
	}
	return Completed, nil
}

func (s Status) Cancel() (Status, error) {
	if s != Scheduled && s != InProgress {
		return Unknown, errs.NewTransitionRejectedError("route", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// StopStatus is the lifecycle state of a Stop.
type StopStatus int

const (
	StopUnknown StopStatus = iota
	StopPending
	StopInProgress
	StopCompleted
	StopSkipped
)

func getStopStatusStrings() map[StopStatus]string {
	return map[StopStatus]string{
		StopUnknown:    "unknown",
		StopPending:    "pending",
		StopInProgress: "in_progress",
		StopCompleted:  "completed",
		StopSkipped:    "skipped",
	}
}

func ParseStopStatus(s string) (StopStatus, error) {
	for status, slug := range getStopStatusStrings() {
		if status != StopUnknown && slug == s {
			return status, nil
		}
	}
	return StopUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known stop status", s))
}

func (s StopStatus) Validate() error {
	if s <= StopUnknown || s > StopSkipped {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid stop status", s))
	}
	return nil
}

func (s StopStatus) String() string {
	if str, ok := getStopStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpen reports whether the crew still has to visit the stop.
func (s StopStatus) IsOpen() bool {
	return s == StopPending || s == StopInProgress
}

// Arrive accepts repeated arrivals so a driver can re-report a stop.
func (s StopStatus) Arrive() (StopStatus, error) {
	if !s.IsOpen() {
		return StopUnknown, errs.NewTransitionRejectedError("route stop", s.String(), StopInProgress.String())
	}
	return StopInProgress, nil
}

// Complete accepts an already completed stop; the caller re-stamps the
// departure time.
func (s StopStatus) Complete() (StopStatus, error) {
	if !s.IsOpen() && s != StopCompleted {
		return StopUnknown, errs.NewTransitionRejectedError("route stop", s.String(), StopCompleted.String())
	}
	return StopCompleted, nil
}

func (s StopStatus) Skip() (StopStatus, error) {
	if !s.IsOpen() && s != StopSkipped {
		return StopUnknown, errs.NewTransitionRejectedError("route stop", s.String(), StopSkipped.String())
	}
	return StopSkipped, nil
}
