package reportrepo_test

import (
	"context"
	"testing"
	"time"

	"wasteflow/internal/adapters/out/postgres/pgtest"
	"wasteflow/internal/adapters/out/postgres/reportrepo"
	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type WasteReportRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reportrepo.GormWasteReportRepository
	tracker    *MockAggregateTracker
}

func (suite *WasteReportRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &reportrepo.WasteReportDTO{})
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *WasteReportRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "waste_reports"))
	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = reportrepo.NewGormWasteReportRepository(suite.db, suite.tracker)
}

func (suite *WasteReportRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func TestWasteReportRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WasteReportRepositoryIntegrationTestSuite))
}

func (suite *WasteReportRepositoryIntegrationTestSuite) TestAddApplyAndGet() {
	ctx := context.Background()
	loc, err := kernel.NewLocation(8.98, 38.79)
	suite.Require().NoError(err)
	now := time.Now().UTC().Truncate(time.Microsecond)

	report, err := complaint.NewReport(kernel.NewUUID(), kernel.NewUUID(), complaint.IllegalDumping, "",
		"Pile of rubble by the river", "Akaki bridge", &loc, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, report))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", report.ID(), report)

	got, err := suite.repository.Get(ctx, report.ID())
	suite.Require().NoError(err)
	suite.Equal(complaint.Open, got.Status())
	suite.Equal(complaint.Medium, got.Priority())
	suite.Require().NotNil(got.Location())
	suite.InDelta(8.98, got.Location().Lat(), 1e-9)

	resolved := complaint.Resolved
	response := "Cleared by the sub-city crew"
	companyID := kernel.NewUUID()
	suite.Require().NoError(got.Apply(complaint.Update{
		Status:            &resolved,
		Response:          &response,
		AssignedCompanyID: &companyID,
	}, now.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, got))

	reloaded, err := suite.repository.Get(ctx, report.ID())
	suite.Require().NoError(err)
	suite.Equal(complaint.Resolved, reloaded.Status())
	suite.Equal(response, reloaded.Response())
	suite.True(kernel.OptionalUUIDEqual(&companyID, reloaded.AssignedCompanyID()))
	suite.Require().NotNil(reloaded.ResolvedAt())
	suite.True(reloaded.ResolvedAt().Equal(now.Add(time.Hour)))
	suite.True(reloaded.ReportedAt().Equal(now))
}

func (suite *WasteReportRepositoryIntegrationTestSuite) TestGetUnknown() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}
