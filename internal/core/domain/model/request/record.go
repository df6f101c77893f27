package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrRecordIsNotConstructed = errors.New("CollectionRecord must be created via NewRecord")

// Record is the proof of a completed collection. There is at most one per
// request; the store enforces it with a unique key on requestID.
type Record struct {
	id          kernel.UUID
	requestID   kernel.UUID
	vehicleID   *kernel.UUID
	driverID    *kernel.UUID
	collectedAt time.Time

	actualWeightKg    *decimal.Decimal
	photoProofURL     string
	residentSignature string
	driverNotes       string

	rating   *int
	feedback string

	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewRecord snapshots the assignment and collection time of a completed
// request.
func NewRecord(id kernel.UUID, req *CollectionRequest, at time.Time) (*Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if req.Status() != Completed || req.CollectedAt() == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("collection_request",
			fmt.Errorf("request %s is %s, not completed", req.ID(), req.Status()))
	}

	rec := &Record{
		id:          id,
		requestID:   req.ID(),
		collectedAt: *req.CollectedAt(),
		createdAt:   at,
		guard:       guard.NewConstructorGuard(),
	}
	if a := req.Assignment(); a != nil {
		rec.vehicleID = a.VehicleID()
		rec.driverID = a.DriverID()
	}
	return rec, nil
}

func RestoreRecord(
	id kernel.UUID,
	requestID kernel.UUID,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
	collectedAt time.Time,
	actualWeightKg *decimal.Decimal,
	photoProofURL string,
	residentSignature string,
	driverNotes string,
	rating *int,
	feedback string,
	createdAt time.Time,
) (*Record, error) {
	if err := errors.Join(id.Validate(), requestID.Validate()); err != nil {
		return nil, err
	}
	return &Record{
		id:                id,
		requestID:         requestID,
		vehicleID:         vehicleID,
		driverID:          driverID,
		collectedAt:       collectedAt,
		actualWeightKg:    actualWeightKg,
		photoProofURL:     photoProofURL,
		residentSignature: residentSignature,
		driverNotes:       driverNotes,
		rating:            rating,
		feedback:          feedback,
		createdAt:         createdAt,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() kernel.UUID                  { return r.id }
func (r *Record) RequestID() kernel.UUID           { return r.requestID }
func (r *Record) VehicleID() *kernel.UUID          { return r.vehicleID }
func (r *Record) DriverID() *kernel.UUID           { return r.driverID }
func (r *Record) CollectedAt() time.Time           { return r.collectedAt }
func (r *Record) ActualWeightKg() *decimal.Decimal { return r.actualWeightKg }
func (r *Record) PhotoProofURL() string            { return r.photoProofURL }
func (r *Record) ResidentSignature() string        { return r.residentSignature }
func (r *Record) DriverNotes() string              { return r.driverNotes }
func (r *Record) Rating() *int                     { return r.rating }
func (r *Record) Feedback() string                 { return r.feedback }
func (r *Record) CreatedAt() time.Time             { return r.createdAt }

// RecordProof stores the crew's evidence. Empty strings leave the previous
// value untouched; a nil weight keeps the stored weight.
func (r *Record) RecordProof(actualWeightKg *decimal.Decimal, photoProofURL, residentSignature, driverNotes string) error {
	if actualWeightKg != nil {
		if actualWeightKg.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause("actual_weight_kg",
				fmt.Errorf("%s is negative", actualWeightKg))
		}
		w := *actualWeightKg
		r.actualWeightKg = &w
	}
	if v := strings.TrimSpace(photoProofURL); v != "" {
		r.photoProofURL = v
	}
	if v := strings.TrimSpace(residentSignature); v != "" {
		r.residentSignature = v
	}
	if v := strings.TrimSpace(driverNotes); v != "" {
		r.driverNotes = v
	}
	return nil
}

// Rate stores the resident's satisfaction score. A later rating replaces an
// earlier one.
func (r *Record) Rate(rating int, feedback string) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = &rating
	r.feedback = strings.TrimSpace(feedback)
	return nil
}
