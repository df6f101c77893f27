package fleet

import (
	"errors"
	"fmt"
	"strings"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"
	"wasteflow/internal/pkg/guard"
)

var ErrCompanyIsNotConstructed = errors.New("Company must be created via RestoreCompany")

// Company is the read model of a licensed waste company: which zones it
// serves and the vehicles and drivers it can dispatch. Companies are
// registered elsewhere; this service only reads them.
type Company struct {
	id       kernel.UUID
	name     string
	status   CompanyStatus
	zoneIDs  []kernel.UUID
	vehicles []*Vehicle
	drivers  []*Driver
	guard    guard.ConstructorGuard
}

func RestoreCompany(
	id kernel.UUID,
	name string,
	status CompanyStatus,
	zoneIDs []kernel.UUID,
	vehicles []*Vehicle,
	drivers []*Driver,
) (*Company, error) {
	c := &Company{
		status:  status,
		zoneIDs: zoneIDs,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setVehicles(vehicles),
		c.setDrivers(drivers),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

func (c *Company) ID() kernel.UUID        { return c.id }
func (c *Company) Name() string           { return c.name }
func (c *Company) Status() CompanyStatus  { return c.status }
func (c *Company) ZoneIDs() []kernel.UUID { return c.zoneIDs }
func (c *Company) Vehicles() []*Vehicle   { return c.vehicles }
func (c *Company) Drivers() []*Driver     { return c.drivers }

func (c *Company) IsApproved() bool {
	return c.status == CompanyApproved
}

// ServesZone reports whether the company covers zoneID. A nil zone is
// served by every company.
func (c *Company) ServesZone(zoneID *kernel.UUID) bool {
	if zoneID == nil {
		return true
	}
	for _, z := range c.zoneIDs {
		if z.IsEqual(*zoneID) {
			return true
		}
	}
	return false
}

func (c *Company) Vehicle(vehicleID kernel.UUID) (*Vehicle, error) {
	for _, v := range c.vehicles {
		if v.id.IsEqual(vehicleID) {
			return v, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("vehicleId", vehicleID)
}

// DriverFor returns the driver bound to vehicleID, preferring one on duty.
func (c *Company) DriverFor(vehicleID kernel.UUID) *Driver {
	var fallback *Driver
	for _, d := range c.drivers {
		if !d.Drives(vehicleID) {
			continue
		}
		if d.IsOnDuty() {
			return d
		}
		if fallback == nil {
			fallback = d
		}
	}
	return fallback
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Company) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Company) setVehicles(vehicles []*Vehicle) error {
	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return err
		}
		if !v.companyID.IsEqual(c.id) {
			return errs.NewValueIsInvalidErrorWithCause("vehicles",
				fmt.Errorf("vehicle %s belongs to company %s", v.id, v.companyID))
		}
	}
	c.vehicles = vehicles
	return nil
}

func (c *Company) setDrivers(drivers []*Driver) error {
	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	c.drivers = drivers
	return nil
}
