// Package pgtypes holds column types and conversions shared by the GORM
// repositories.
package pgtypes

import (
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// NullableLocationDTO stores an optional coordinate as two nullable columns.
// Embed it with an embeddedPrefix.
type NullableLocationDTO struct {
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
}

// LocationDTO stores a mandatory coordinate.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func FromLocation(loc kernel.Location) LocationDTO {
	return LocationDTO{Latitude: loc.Lat(), Longitude: loc.Lng()}
}

func (d LocationDTO) ToDomain() (kernel.Location, error) {
	return kernel.NewLocation(d.Latitude, d.Longitude)
}

func FromOptionalLocation(loc *kernel.Location) NullableLocationDTO {
	if loc == nil {
		return NullableLocationDTO{}
	}
	lat, lng := loc.Lat(), loc.Lng()
	return NullableLocationDTO{Latitude: &lat, Longitude: &lng}
}

func (d NullableLocationDTO) ToDomain() (*kernel.Location, error) {
	return kernel.NewOptionalLocation(d.Latitude, d.Longitude)
}

func FromUUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func ToUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

func ToUUIDPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ToUUIDs converts a list of raw ids, failing on the first invalid one.
func ToUUIDs(raws []uuid.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(raws))
	for _, raw := range raws {
		id, err := ToUUID(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// ToUUIDStrings converts text[] values, as stored by pq.StringArray.
func ToUUIDStrings(values []string) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(values))
	var errList []error
	for _, v := range values {
		id, err := kernel.UUIDFromString(v)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("uuid", err))
			continue
		}
		out = append(out, id)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return out, nil
}
