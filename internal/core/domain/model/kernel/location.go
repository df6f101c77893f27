package kernel

import (
	"errors"
	"fmt"
	"math"

	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ServiceArea is the bounding box every stored coordinate must fall into.
// orb points are ordered [lng, lat].
var ServiceArea = orb.Bound{
	Min: orb.Point{38.6, 8.8},
	Max: orb.Point{39.0, 9.1},
}

var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation")

// Location is a WGS84 coordinate inside ServiceArea.
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

func NewLocation(lat float64, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewOptionalLocation builds a location from a nullable coordinate pair.
// Both absent yields nil. Exactly one present is a validation error.
func NewOptionalLocation(lat *float64, lng *float64) (*Location, error) {
	switch {
	case lat == nil && lng == nil:
		return nil, nil
	case lat == nil:
		return nil, errs.NewValueIsRequiredError("latitude")
	case lng == nil:
		return nil, errs.NewValueIsRequiredError("longitude")
	}

	loc, err := NewLocation(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Lat() float64 {
	return l.lat
}

func (l Location) Lng() float64 {
	return l.lng
}

// Point returns the orb representation used by the geo helpers.
func (l Location) Point() orb.Point {
	return orb.Point{l.lng, l.lat}
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.lat, l.lng)
}

func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lng == other.lng, nil
}

// DistanceMeters is the great-circle distance between two locations.
func (l Location) DistanceMeters(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return geo.Distance(l.Point(), other.Point()), nil
}

func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < ServiceArea.Min.Lat() || lat > ServiceArea.Max.Lat() {
		return errs.NewValueIsOutOfRangeError("latitude", lat, ServiceArea.Min.Lat(), ServiceArea.Max.Lat())
	}

	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < ServiceArea.Min.Lon() || lng > ServiceArea.Max.Lon() {
		return errs.NewValueIsOutOfRangeError("longitude", lng, ServiceArea.Min.Lon(), ServiceArea.Max.Lon())
	}

	l.lng = lng
	return nil
}
