package commands_test

import (
	"context"
	"time"

	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/notification"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/core/domain/model/route"
	"wasteflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.CollectionRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.CollectionRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.CollectionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.CollectionRequest), args.Error(1)
}

func (m *MockRequestRepository) GetFirstPending(ctx context.Context) (*request.CollectionRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.CollectionRequest), args.Error(1)
}

func (m *MockRequestRepository) CountActiveByVehicle(ctx context.Context) (map[kernel.UUID]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

type MockRecordRepository struct{ mock.Mock }

func (m *MockRecordRepository) AddIfAbsent(ctx context.Context, r *request.Record) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepository) Update(ctx context.Context, r *request.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecordRepository) GetByRequestID(ctx context.Context, requestID kernel.UUID) (*request.Record, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Record), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetInStatus(ctx context.Context, id kernel.UUID, status route.Status) (*route.Route, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByStopID(ctx context.Context, stopID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, stopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetFirstForDriver(
	ctx context.Context,
	driverID kernel.UUID,
	status route.Status,
) (*route.Route, error) {
	args := m.Called(ctx, driverID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetByOwner(ctx context.Context, userID kernel.UUID) (*fleet.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetByVehicle(ctx context.Context, vehicleID kernel.UUID) (*fleet.Company, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListApproved(ctx context.Context) ([]*fleet.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fleet.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetDriverByUserID(ctx context.Context, userID kernel.UUID) (*fleet.Driver, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Driver), args.Error(1)
}

func (m *MockCompanyRepository) UpdateVehicleLocation(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) AddBatch(ctx context.Context, ns []*notification.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID, at time.Time) (int64, error) {
	args := m.Called(ctx, userID, at)
	return args.Get(0).(int64), args.Error(1)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *complaint.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Update(ctx context.Context, r *complaint.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaint.Report), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) GetProfile(ctx context.Context, userID kernel.UUID) (ports.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.UserProfile), args.Error(1)
}

func (m *MockUserDirectory) ListActiveIDsByType(ctx context.Context, userType ports.UserType) ([]kernel.UUID, error) {
	args := m.Called(ctx, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockUserDirectory) ListActiveIDsByRole(ctx context.Context, roleSlug string) ([]kernel.UUID, error) {
	args := m.Called(ctx, roleSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CollectionRequestRepository() ports.CollectionRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.CollectionRequestRepository)
}

func (m *MockUoW) CollectionRecordRepository() ports.CollectionRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.CollectionRecordRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) WasteReportRepository() ports.WasteReportRepository {
	args := m.Called()
	return args.Get(0).(ports.WasteReportRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockReportUoWFactory struct{ mock.Mock }

func (m *MockReportUoWFactory) Create() commands.ReportUoW {
	args := m.Called()
	return args.Get(0).(commands.ReportUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

// testRepos bundles the repository mocks a MockUoW hands out.
type testRepos struct {
	requests      *MockRequestRepository
	records       *MockRecordRepository
	routes        *MockRouteRepository
	companies     *MockCompanyRepository
	notifications *MockNotificationRepository
	reports       *MockReportRepository
}

// newTestUoW wires fresh repository mocks into a MockUoW. Repository
// accessors may be called any number of times; tests order the calls that
// matter with mock.InOrder.
func newTestUoW() (*MockUoW, testRepos) {
	repos := testRepos{
		requests:      new(MockRequestRepository),
		records:       new(MockRecordRepository),
		routes:        new(MockRouteRepository),
		companies:     new(MockCompanyRepository),
		notifications: new(MockNotificationRepository),
		reports:       new(MockReportRepository),
	}
	uow := new(MockUoW)
	uow.On("CollectionRequestRepository").Return(repos.requests).Maybe()
	uow.On("CollectionRecordRepository").Return(repos.records).Maybe()
	uow.On("RouteRepository").Return(repos.routes).Maybe()
	uow.On("CompanyRepository").Return(repos.companies).Maybe()
	uow.On("NotificationRepository").Return(repos.notifications).Maybe()
	uow.On("WasteReportRepository").Return(repos.reports).Maybe()
	return uow, repos
}

func (r testRepos) assertExpectations(t mock.TestingT) {
	r.requests.AssertExpectations(t)
	r.records.AssertExpectations(t)
	r.routes.AssertExpectations(t)
	r.companies.AssertExpectations(t)
	r.notifications.AssertExpectations(t)
	r.reports.AssertExpectations(t)
}
