package request_test

import (
	"testing"
	"time"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

var (
	testNow  = time.Date(2026, 5, 10, 7, 30, 0, 0, time.UTC)
	testDate = time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
)

func newDetails(t *testing.T) request.Details {
	t.Helper()
	loc, err := kernel.NewLocation(9.0, 38.75)
	require.NoError(t, err)
	d, err := request.NewDetails(request.General, 2, nil, testDate, request.Morning,
		"Bole, house 12", &loc, "gate is blue")
	require.NoError(t, err)
	return d
}

func newPending(t *testing.T) *request.CollectionRequest {
	t.Helper()
	r, err := request.NewCollectionRequest(kernel.NewUUID(), kernel.NewUUID(), nil, newDetails(t), testNow)
	require.NoError(t, err)
	r.ClearDomainEvents()
	return r
}

func newAssignment(t *testing.T) request.Assignment {
	t.Helper()
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	a, err := request.NewAssignment(kernel.NewUUID(), &vehicleID, &driverID)
	require.NoError(t, err)
	return a
}

func newAssigned(t *testing.T) *request.CollectionRequest {
	t.Helper()
	r := newPending(t)
	require.NoError(t, r.Assign(newAssignment(t), testNow))
	r.ClearDomainEvents()
	return r
}

func restoreWithStatus(t *testing.T, status request.Status) *request.CollectionRequest {
	t.Helper()
	var a *request.Assignment
	if status != request.Pending {
		v := newAssignment(t)
		a = &v
	}
	var collectedAt *time.Time
	if status == request.Completed {
		collectedAt = &testNow
	}
	r, err := request.RestoreCollectionRequest(kernel.NewUUID(), kernel.NewUUID(), nil, newDetails(t),
		status, a, nil, collectedAt, testNow, testNow)
	require.NoError(t, err)
	return r
}
