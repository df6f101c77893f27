package complaint

import (
	"fmt"
	"slices"

	"wasteflow/internal/pkg/errs"
)

const entityName = "waste report"

// Status is the handling state of a waste report.
//
//	open          -> investigating | escalated | resolved | closed
//	investigating -> escalated | resolved | closed
//	escalated     -> investigating | resolved | closed
//	resolved      -> closed
//	closed        (terminal)
//
// Staying in the current status is always allowed.
type Status int

const (
	Unknown Status = iota
	Open
	Investigating
	Escalated
	Resolved
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Open:          "open",
		Investigating: "investigating",
		Escalated:     "escalated",
		Resolved:      "resolved",
		Closed:        "closed",
	}
}

func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Open:          {Investigating, Escalated, Resolved, Closed},
		Investigating: {Escalated, Resolved, Closed},
		Escalated:     {Investigating, Resolved, Closed},
		Resolved:      {Closed},
		Closed:        {},
	}
}

func ParseStatus(s string) (Status, error) {
	for status, slug := range getStatusStrings() {
		if status != Unknown && slug == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known report status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Closed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid report status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TransitionTo returns target when the move is allowed.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s == target || slices.Contains(allowedTransitions()[s], target) {
		return target, nil
	}
	return Unknown, errs.NewTransitionRejectedError(entityName, s.String(), target.String())
}

type Priority string

const (
	Low       Priority = "low"
	Medium    Priority = "medium"
	High      Priority = "high"
	Emergency Priority = "emergency"
)

func (p Priority) Validate() error {
	switch p {
	case Low, Medium, High, Emergency:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a known priority", string(p)))
}

type ReportType string

const (
	MissedCollection ReportType = "missed_collection"
	LatePickup       ReportType = "late_pickup"
	ServiceQuality   ReportType = "service_quality"
	IllegalDumping   ReportType = "illegal_dumping"
	HazardousSpill   ReportType = "hazardous_spill"
	MedicalWaste     ReportType = "medical_waste"
	Other            ReportType = "other"
)

func (t ReportType) Validate() error {
	switch t {
	case MissedCollection, LatePickup, ServiceQuality, IllegalDumping, HazardousSpill, MedicalWaste, Other:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("report_type", fmt.Errorf("%q is not a known report type", string(t)))
}
