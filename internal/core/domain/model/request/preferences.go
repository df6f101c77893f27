package request

import (
	"fmt"
	"time"

	"wasteflow/internal/pkg/errs"
)

// WasteType classifies what the resident puts out for collection.
type WasteType string

const (
	General    WasteType = "general"
	Recyclable WasteType = "recyclable"
	Hazardous  WasteType = "hazardous"
	Organic    WasteType = "organic"
	Bulky      WasteType = "bulky"
)

func ParseWasteType(s string) (WasteType, error) {
	wt := WasteType(s)
	if err := wt.Validate(); err != nil {
		return "", err
	}
	return wt, nil
}

func (w WasteType) Validate() error {
	switch w {
	case General, Recyclable, Hazardous, Organic, Bulky:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("waste_type", fmt.Errorf("%q is not a known waste type", string(w)))
}

// TimeWindow is the part of the day the resident prefers for pickup.
type TimeWindow string

const (
	Morning   TimeWindow = "morning"
	Afternoon TimeWindow = "afternoon"
	Evening   TimeWindow = "evening"
)

func ParseTimeWindow(s string) (TimeWindow, error) {
	tw := TimeWindow(s)
	if err := tw.Validate(); err != nil {
		return "", err
	}
	return tw, nil
}

func (w TimeWindow) Validate() error {
	if _, ok := windowStartHours()[w]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("preferred_time", fmt.Errorf("%q is not a known time window", string(w)))
	}
	return nil
}

func windowStartHours() map[TimeWindow]int {
	return map[TimeWindow]int{
		Morning:   6,
		Afternoon: 12,
		Evening:   18,
	}
}

// ServiceTimeZone is the local time of the serviced city (UTC+3, no DST).
var ServiceTimeZone = time.FixedZone("EAT", 3*60*60)

// EstimateArrival returns the start of window on date's calendar day in
// ServiceTimeZone.
func EstimateArrival(date time.Time, window TimeWindow) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, windowStartHours()[window], 0, 0, 0, ServiceTimeZone)
}
