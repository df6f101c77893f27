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

var ErrDetailsAreNotConstructed = errs.NewValueIsRequiredError("request details must be created via NewDetails")

// Details is what the resident asked for. Values are immutable; edits build
// a new Details through Apply.
type Details struct {
	wasteType           WasteType
	quantityBags        int
	estimatedWeightKg   *decimal.Decimal
	preferredDate       time.Time
	preferredTime       TimeWindow
	address             string
	location            *kernel.Location
	specialInstructions string
	guard               guard.ConstructorGuard
}

func NewDetails(
	wasteType WasteType,
	quantityBags int,
	estimatedWeightKg *decimal.Decimal,
	preferredDate time.Time,
	preferredTime TimeWindow,
	address string,
	location *kernel.Location,
	specialInstructions string,
) (Details, error) {
	d := Details{
		specialInstructions: strings.TrimSpace(specialInstructions),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setWasteType(wasteType),
		d.setQuantityBags(quantityBags),
		d.setEstimatedWeight(estimatedWeightKg),
		d.setPreferred(preferredDate, preferredTime),
		d.setAddress(address),
		d.setLocation(location),
	); err != nil {
		return Details{}, err
	}

	return d, nil
}

// DetailsChange lists the fields a resident edits. Nil fields keep their
// current value.
type DetailsChange struct {
	WasteType           *WasteType
	QuantityBags        *int
	EstimatedWeightKg   *decimal.Decimal
	PreferredDate       *time.Time
	PreferredTime       *TimeWindow
	Address             *string
	Location            *kernel.Location
	SpecialInstructions *string
}

// Apply returns d with c merged in, validated as NewDetails would.
func (d Details) Apply(c DetailsChange) (Details, error) {
	wasteType, bags, weight := d.wasteType, d.quantityBags, d.estimatedWeightKg
	date, window, address := d.preferredDate, d.preferredTime, d.address
	location, instructions := d.location, d.specialInstructions

	if c.WasteType != nil {
		wasteType = *c.WasteType
	}
	if c.QuantityBags != nil {
		bags = *c.QuantityBags
	}
	if c.EstimatedWeightKg != nil {
		weight = c.EstimatedWeightKg
	}
	if c.PreferredDate != nil {
		date = *c.PreferredDate
	}
	if c.PreferredTime != nil {
		window = *c.PreferredTime
	}
	if c.Address != nil {
		address = *c.Address
	}
	if c.Location != nil {
		location = c.Location
	}
	if c.SpecialInstructions != nil {
		instructions = *c.SpecialInstructions
	}

	return NewDetails(wasteType, bags, weight, date, window, address, location, instructions)
}

func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

func (d Details) WasteType() WasteType {
	return d.wasteType
}

func (d Details) QuantityBags() int {
	return d.quantityBags
}

func (d Details) EstimatedWeightKg() *decimal.Decimal {
	return d.estimatedWeightKg
}

func (d Details) PreferredDate() time.Time {
	return d.preferredDate
}

func (d Details) PreferredTime() TimeWindow {
	return d.preferredTime
}

func (d Details) Address() string {
	return d.address
}

func (d Details) Location() *kernel.Location {
	return d.location
}

func (d Details) SpecialInstructions() string {
	return d.specialInstructions
}

func (d *Details) setWasteType(wt WasteType) error {
	if err := wt.Validate(); err != nil {
		return err
	}
	d.wasteType = wt
	return nil
}

func (d *Details) setQuantityBags(n int) error {
	if n < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity_bags", fmt.Errorf("%d is less than 1", n))
	}
	d.quantityBags = n
	return nil
}

func (d *Details) setEstimatedWeight(w *decimal.Decimal) error {
	if w != nil && w.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("estimated_weight_kg", fmt.Errorf("%s is negative", w))
	}
	d.estimatedWeightKg = w
	return nil
}

func (d *Details) setPreferred(date time.Time, window TimeWindow) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("preferred_date")
	}
	if err := window.Validate(); err != nil {
		return err
	}
	y, m, day := date.Date()
	d.preferredDate = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	d.preferredTime = window
	return nil
}

func (d *Details) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Details) setLocation(loc *kernel.Location) error {
	if loc == nil {
		return nil
	}
	if err := loc.Validate(); err != nil {
		return err
	}
	d.location = loc
	return nil
}
