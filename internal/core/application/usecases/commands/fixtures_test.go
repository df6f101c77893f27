package commands_test

import (
	"testing"
	"time"

	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/core/domain/model/route"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, 5, 10, 7, 30, 0, 0, time.UTC)

type testFleet struct {
	company *fleet.Company
	vehicle *fleet.Vehicle
	driver  *fleet.Driver
}

// newTestFleet builds an approved company with one active vehicle and an
// on-duty driver bound to it.
func newTestFleet(t *testing.T) testFleet {
	t.Helper()
	companyID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	vehicle, err := fleet.RestoreVehicle(vehicleID, companyID, "AA-3-12345",
		decimal.NewFromInt(5000), fleet.VehicleActive, nil, nil)
	require.NoError(t, err)
	driver, err := fleet.RestoreDriver(kernel.NewUUID(), kernel.NewUUID(), companyID,
		&vehicleID, fleet.DriverOnDuty)
	require.NoError(t, err)
	company, err := fleet.RestoreCompany(companyID, "Clean Addis", fleet.CompanyApproved,
		nil, []*fleet.Vehicle{vehicle}, []*fleet.Driver{driver})
	require.NoError(t, err)

	return testFleet{company: company, vehicle: vehicle, driver: driver}
}

func newTestDetails(t *testing.T) request.Details {
	t.Helper()
	loc, err := kernel.NewLocation(9.0, 38.75)
	require.NoError(t, err)
	d, err := request.NewDetails(request.General, 2, nil,
		time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), request.Morning,
		"Bole, house 12", &loc, "")
	require.NoError(t, err)
	return d
}

func newPendingRequest(t *testing.T) *request.CollectionRequest {
	t.Helper()
	r, err := request.NewCollectionRequest(kernel.NewUUID(), kernel.NewUUID(), nil, newTestDetails(t), testCreatedAt)
	require.NoError(t, err)
	r.ClearDomainEvents()
	return r
}

func newAssignedRequest(t *testing.T, f testFleet) *request.CollectionRequest {
	t.Helper()
	r := newPendingRequest(t)
	vehicleID := f.vehicle.ID()
	driverID := f.driver.ID()
	a, err := request.NewAssignment(f.company.ID(), &vehicleID, &driverID)
	require.NoError(t, err)
	require.NoError(t, r.Assign(a, testCreatedAt))
	r.ClearDomainEvents()
	return r
}

func newCompletedRequest(t *testing.T, f testFleet) *request.CollectionRequest {
	t.Helper()
	r := newAssignedRequest(t, f)
	_, err := r.Complete(testCreatedAt)
	require.NoError(t, err)
	r.ClearDomainEvents()
	return r
}

// newTestRoute plans a two-stop route of the fleet's company. The first
// stop is linked to requestID when it is not nil.
func newTestRoute(t *testing.T, f testFleet, requestID *kernel.UUID) *route.Route {
	t.Helper()
	first, err := kernel.NewLocation(9.01, 38.76)
	require.NoError(t, err)
	second, err := kernel.NewLocation(9.02, 38.77)
	require.NoError(t, err)

	s1, err := route.NewStop(kernel.NewUUID(), 1, "Stop one", first, nil, requestID)
	require.NoError(t, err)
	s2, err := route.NewStop(kernel.NewUUID(), 2, "Stop two", second, nil, nil)
	require.NoError(t, err)

	vehicleID := f.vehicle.ID()
	driverID := f.driver.ID()
	day := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	rt, err := route.NewRoute(kernel.NewUUID(), "Bole morning", f.company.ID(), nil,
		&vehicleID, &driverID, day, day.Add(6*time.Hour), []*route.Stop{s1, s2})
	require.NoError(t, err)
	return rt
}
