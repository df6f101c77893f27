package queries_test

import (
	"context"
	"testing"
	"time"

	"wasteflow/internal/adapters/out/postgres"
	"wasteflow/internal/adapters/out/postgres/companyrepo"
	"wasteflow/internal/adapters/out/postgres/notificationrepo"
	"wasteflow/internal/adapters/out/postgres/pgtest"
	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/adapters/out/postgres/recordrepo"
	"wasteflow/internal/adapters/out/postgres/reportrepo"
	"wasteflow/internal/adapters/out/postgres/requestrepo"
	"wasteflow/internal/adapters/out/postgres/routerepo"
	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

type ReadModelsIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB

	companyID   uuid.UUID
	companyUser uuid.UUID
	vehicleID   uuid.UUID
	driverID    uuid.UUID
	driverUser  uuid.UUID
	zoneID      uuid.UUID
}

func (suite *ReadModelsIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), postgres.Models()...)
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *ReadModelsIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db,
		"waste_reports", "notifications", "collection_records", "route_stops", "routes",
		"collection_requests", "drivers", "vehicles", "companies"))

	suite.companyID, suite.companyUser = uuid.New(), uuid.New()
	suite.vehicleID, suite.driverID, suite.driverUser = uuid.New(), uuid.New(), uuid.New()
	suite.zoneID = uuid.New()

	lat, lng := 9.03, 38.74
	seen := baseTime
	company := companyrepo.CompanyDTO{
		ID:          suite.companyID,
		Name:        "Green Addis",
		OwnerUserID: suite.companyUser,
		Status:      "approved",
		ZoneIDs:     pq.StringArray{suite.zoneID.String()},
		Vehicles: []companyrepo.VehicleDTO{{
			ID:             suite.vehicleID,
			PlateNumber:    "AA-12345",
			CapacityKg:     decimal.NewFromInt(5000),
			Status:         "active",
			LastLocation:   pgtypes.NullableLocationDTO{Latitude: &lat, Longitude: &lng},
			LastLocationAt: &seen,
		}},
		Drivers: []companyrepo.DriverDTO{{
			ID:                suite.driverID,
			UserID:            suite.driverUser,
			AssignedVehicleID: &suite.vehicleID,
			Status:            "on_duty",
		}},
	}
	suite.Require().NoError(suite.db.Create(&company).Error)
}

func (suite *ReadModelsIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func TestReadModelsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelsIntegrationTestSuite))
}

func (suite *ReadModelsIntegrationTestSuite) insertRequest(
	residentID uuid.UUID,
	zoneID *uuid.UUID,
	status string,
	companyID *uuid.UUID,
	createdAt time.Time,
) uuid.UUID {
	dto := requestrepo.CollectionRequestDTO{
		ID:                uuid.New(),
		ResidentID:        residentID,
		ZoneID:            zoneID,
		WasteType:         "general",
		QuantityBags:      2,
		EstimatedWeightKg: decimal.NewNullDecimal(decimal.RequireFromString("12.5")),
		PreferredDate:     time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		PreferredTime:     "morning",
		Address:           "Bole Road 12",
		Status:            status,
		AssignedCompanyID: companyID,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
	if companyID != nil {
		dto.AssignedVehicleID = &suite.vehicleID
		dto.AssignedDriverID = &suite.driverID
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *ReadModelsIntegrationTestSuite) TestTrackCollectionRequestShowsVehiclePosition() {
	ctx := context.Background()
	resident := uuid.New()
	id := suite.insertRequest(resident, &suite.zoneID, "assigned", &suite.companyID, baseTime)

	query, err := queries.NewTrackCollectionRequestQuery(kernel.UUIDFromGoogle(id), kernel.UUIDFromGoogle(resident))
	suite.Require().NoError(err)
	got, err := queries.NewTrackCollectionRequestQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("assigned", got.Status)
	suite.Equal("Assigned", got.StatusDisplay)
	suite.Equal("AA-12345", got.VehiclePlate)
	suite.Require().NotNil(got.VehicleLatitude)
	suite.InDelta(9.03, *got.VehicleLatitude, 1e-9)
}

func (suite *ReadModelsIntegrationTestSuite) TestTrackCollectionRequestOfAnotherResidentIsNotFound() {
	ctx := context.Background()
	id := suite.insertRequest(uuid.New(), nil, "pending", nil, baseTime)

	query, err := queries.NewTrackCollectionRequestQuery(kernel.UUIDFromGoogle(id), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewTrackCollectionRequestQueryHandler(suite.db).Handle(ctx, query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) TestListResidentRequestsNewestFirstWithFilter() {
	ctx := context.Background()
	resident := uuid.New()
	older := suite.insertRequest(resident, nil, "pending", nil, baseTime)
	newer := suite.insertRequest(resident, nil, "cancelled", nil, baseTime.Add(time.Hour))
	suite.insertRequest(uuid.New(), nil, "pending", nil, baseTime)

	handler := queries.NewListResidentRequestsQueryHandler(suite.db)

	all, err := queries.NewListResidentRequestsQuery(kernel.UUIDFromGoogle(resident), "")
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(newer, got[0].ID.Bytes())
	suite.Equal(older, got[1].ID.Bytes())
	suite.Require().NotNil(got[0].EstimatedWeightKg)
	suite.Equal("12.5", got[0].EstimatedWeightKg.String())

	pending, err := queries.NewListResidentRequestsQuery(kernel.UUIDFromGoogle(resident), "pending")
	suite.Require().NoError(err)
	got, err = handler.Handle(ctx, pending)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(older, got[0].ID.Bytes())
}

func (suite *ReadModelsIntegrationTestSuite) TestListResidentRequestsRejectsUnknownStatus() {
	_, err := queries.NewListResidentRequestsQuery(kernel.NewUUID(), "lost")
	suite.Error(err)
}

func (suite *ReadModelsIntegrationTestSuite) TestListCompanyRequestsCoversOwnAndServedPending() {
	ctx := context.Background()
	otherZone := uuid.New()
	other, err := pgtest.SeedFleet(suite.db)
	suite.Require().NoError(err)
	otherCompany := other.CompanyID

	own := suite.insertRequest(uuid.New(), &otherZone, "assigned", &suite.companyID, baseTime)
	served := suite.insertRequest(uuid.New(), &suite.zoneID, "pending", nil, baseTime.Add(time.Minute))
	unzoned := suite.insertRequest(uuid.New(), nil, "pending", nil, baseTime.Add(2*time.Minute))
	suite.insertRequest(uuid.New(), &otherZone, "pending", nil, baseTime)
	suite.insertRequest(uuid.New(), &suite.zoneID, "assigned", &otherCompany, baseTime)

	query, err := queries.NewListCompanyRequestsQuery(kernel.UUIDFromGoogle(suite.companyUser), "")
	suite.Require().NoError(err)
	got, err := queries.NewListCompanyRequestsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	ids := make([]uuid.UUID, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID.Bytes())
	}
	suite.Equal([]uuid.UUID{own, served, unzoned}, ids)
}

func (suite *ReadModelsIntegrationTestSuite) TestListCompanyRequestsUnknownCompanyIsNotFound() {
	query, err := queries.NewListCompanyRequestsQuery(kernel.NewUUID(), "")
	suite.Require().NoError(err)
	_, err = queries.NewListCompanyRequestsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) insertRoute(status string, date time.Time) routerepo.RouteDTO {
	routeID := uuid.New()
	dto := routerepo.RouteDTO{
		ID:                 routeID,
		Name:               "Bole " + status,
		CompanyID:          suite.companyID,
		VehicleID:          &suite.vehicleID,
		DriverID:           &suite.driverID,
		Status:             status,
		ScheduledDate:      date,
		ScheduledStartTime: date.Add(8 * time.Hour),
		TotalStops:         2,
		Stops: []routerepo.StopDTO{
			{
				ID:             uuid.New(),
				RouteID:        routeID,
				SequenceNumber: 2,
				Address:        "Stop B",
				Location:       pgtypes.LocationDTO{Latitude: 9.01, Longitude: 38.75},
				Status:         "pending",
			},
			{
				ID:             uuid.New(),
				RouteID:        routeID,
				SequenceNumber: 1,
				Address:        "Stop A",
				Location:       pgtypes.LocationDTO{Latitude: 9.02, Longitude: 38.76},
				Status:         "pending",
			},
		},
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto
}

func (suite *ReadModelsIntegrationTestSuite) TestGetDriverRouteReturnsEarliestOpenRoute() {
	ctx := context.Background()
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	suite.insertRoute("completed", day.AddDate(0, 0, -2))
	earliest := suite.insertRoute("scheduled", day)
	suite.insertRoute("scheduled", day.AddDate(0, 0, 1))

	query, err := queries.NewGetDriverRouteQuery(kernel.UUIDFromGoogle(suite.driverUser))
	suite.Require().NoError(err)
	got, err := queries.NewGetDriverRouteQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(earliest.ID, got.ID.Bytes())
	suite.Equal("scheduled", got.Status)
	suite.Require().Len(got.Stops, 2)
	suite.Equal("Stop A", got.Stops[0].Address)
	suite.Equal("Stop B", got.Stops[1].Address)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetDriverRouteWithoutOpenRouteIsNotFound() {
	suite.insertRoute("cancelled", baseTime)

	query, err := queries.NewGetDriverRouteQuery(kernel.UUIDFromGoogle(suite.driverUser))
	suite.Require().NoError(err)
	_, err = queries.NewGetDriverRouteQueryHandler(suite.db).Handle(context.Background(), query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) TestListRouteStopsChecksCompany() {
	ctx := context.Background()
	rt := suite.insertRoute("scheduled", baseTime)
	handler := queries.NewListRouteStopsQueryHandler(suite.db)

	own, err := queries.NewListRouteStopsQuery(kernel.UUIDFromGoogle(rt.ID), kernel.UUIDFromGoogle(suite.companyUser))
	suite.Require().NoError(err)
	stops, err := handler.Handle(ctx, own)
	suite.Require().NoError(err)
	suite.Require().Len(stops, 2)
	suite.Equal(1, stops[0].SequenceNumber)

	foreign, err := queries.NewListRouteStopsQuery(kernel.UUIDFromGoogle(rt.ID), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, foreign)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) TestListNotificationsUnreadOnlyAndLimit() {
	ctx := context.Background()
	user := uuid.New()
	readAt := baseTime.Add(time.Hour)
	for i, isRead := range []bool{false, true, false} {
		dto := notificationrepo.NotificationDTO{
			ID:        uuid.New(),
			UserID:    user,
			Type:      "request_update",
			Title:     "Update",
			Message:   "Your request changed",
			Data:      datatypes.JSONMap{"index": i},
			IsRead:    isRead,
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
		}
		if isRead {
			dto.ReadAt = &readAt
		}
		suite.Require().NoError(suite.db.Create(&dto).Error)
	}
	handler := queries.NewListNotificationsQueryHandler(suite.db)

	unread, err := queries.NewListNotificationsQuery(kernel.UUIDFromGoogle(user), true, 0)
	suite.Require().NoError(err)
	page, err := handler.Handle(ctx, unread)
	suite.Require().NoError(err)
	suite.Len(page.Items, 2)
	suite.Equal(int64(2), page.UnreadCount)
	suite.EqualValues(2, page.Items[0].Data["index"])

	limited, err := queries.NewListNotificationsQuery(kernel.UUIDFromGoogle(user), false, 1)
	suite.Require().NoError(err)
	page, err = handler.Handle(ctx, limited)
	suite.Require().NoError(err)
	suite.Len(page.Items, 1)
	suite.Equal(int64(2), page.UnreadCount)
}

func (suite *ReadModelsIntegrationTestSuite) TestListNotificationsRejectsLimitOutOfRange() {
	_, err := queries.NewListNotificationsQuery(kernel.NewUUID(), false, queries.MaxNotificationsLimit+1)
	suite.ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetCollectionReceipt() {
	ctx := context.Background()
	requestID := suite.insertRequest(uuid.New(), &suite.zoneID, "completed", &suite.companyID, baseTime)
	rating := 5
	record := recordrepo.CollectionRecordDTO{
		ID:                  uuid.New(),
		CollectionRequestID: requestID,
		VehicleID:           &suite.vehicleID,
		DriverID:            &suite.driverID,
		CollectedAt:         baseTime.Add(2 * time.Hour),
		ActualWeightKg:      decimal.NewNullDecimal(decimal.RequireFromString("14.25")),
		DriverNotes:         "Left at the gate",
		Rating:              &rating,
		CreatedAt:           baseTime.Add(2 * time.Hour),
	}
	suite.Require().NoError(suite.db.Create(&record).Error)
	handler := queries.NewGetCollectionReceiptQueryHandler(suite.db)

	query, err := queries.NewGetCollectionReceiptQuery(
		kernel.UUIDFromGoogle(requestID), kernel.UUIDFromGoogle(suite.companyUser))
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(record.ID, got.RecordID.Bytes())
	suite.Equal("Green Addis", got.CompanyName)
	suite.Equal("AA-12345", got.VehiclePlate)
	suite.Require().NotNil(got.ActualWeightKg)
	suite.Equal("14.25", got.ActualWeightKg.String())
	suite.Require().NotNil(got.Rating)
	suite.Equal(5, *got.Rating)

	foreign, err := queries.NewGetCollectionReceiptQuery(kernel.UUIDFromGoogle(requestID), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, foreign)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetCollectionRequestIncludesRecordOnceCollected() {
	ctx := context.Background()
	handler := queries.NewGetCollectionRequestQueryHandler(suite.db)

	pendingID := suite.insertRequest(uuid.New(), nil, "pending", nil, baseTime)
	query, err := queries.NewGetCollectionRequestQuery(kernel.UUIDFromGoogle(pendingID))
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(pendingID, got.Request.ID.Bytes())
	suite.Equal("Pending", got.Request.StatusDisplay)
	suite.True(got.Request.UpdatedAt.Equal(baseTime))
	suite.Nil(got.Record)

	completedID := suite.insertRequest(uuid.New(), &suite.zoneID, "completed", &suite.companyID, baseTime)
	record := recordrepo.CollectionRecordDTO{
		ID:                  uuid.New(),
		CollectionRequestID: completedID,
		VehicleID:           &suite.vehicleID,
		DriverID:            &suite.driverID,
		CollectedAt:         baseTime.Add(time.Hour),
		ActualWeightKg:      decimal.NewNullDecimal(decimal.RequireFromString("9.75")),
		PhotoProofURL:       "https://cdn.example.org/proof.jpg",
		CreatedAt:           baseTime.Add(time.Hour),
	}
	suite.Require().NoError(suite.db.Create(&record).Error)

	query, err = queries.NewGetCollectionRequestQuery(kernel.UUIDFromGoogle(completedID))
	suite.Require().NoError(err)
	got, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Record)
	suite.Equal(record.ID, got.Record.ID.Bytes())
	suite.Equal("https://cdn.example.org/proof.jpg", got.Record.PhotoProofURL)
	suite.Require().NotNil(got.Record.ActualWeightKg)
	suite.Equal("9.75", got.Record.ActualWeightKg.String())

	missing, err := queries.NewGetCollectionRequestQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetRouteAndStop() {
	ctx := context.Background()
	rt := suite.insertRoute("in_progress", baseTime)

	routeQuery, err := queries.NewGetRouteQuery(kernel.UUIDFromGoogle(rt.ID))
	suite.Require().NoError(err)
	gotRoute, err := queries.NewGetRouteQueryHandler(suite.db).Handle(ctx, routeQuery)
	suite.Require().NoError(err)
	suite.Equal("in_progress", gotRoute.Status)
	suite.Equal(suite.companyID, gotRoute.CompanyID.Bytes())
	suite.Require().Len(gotRoute.Stops, 2)
	suite.Equal(rt.ID, gotRoute.Stops[0].RouteID.Bytes())

	stopQuery, err := queries.NewGetRouteStopQuery(kernel.UUIDFromGoogle(rt.Stops[0].ID))
	suite.Require().NoError(err)
	gotStop, err := queries.NewGetRouteStopQueryHandler(suite.db).Handle(ctx, stopQuery)
	suite.Require().NoError(err)
	suite.Equal("Stop B", gotStop.Address)
	suite.Equal(2, gotStop.SequenceNumber)
	suite.Equal(rt.ID, gotStop.RouteID.Bytes())

	missing, err := queries.NewGetRouteStopQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetRouteStopQueryHandler(suite.db).Handle(ctx, missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) TestListDriverRoutesForOneDayInStartOrder() {
	ctx := context.Background()
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	later := suite.insertRoute("completed", day)
	earlier := suite.insertRoute("scheduled", day)
	suite.Require().NoError(suite.db.Model(&routerepo.RouteDTO{}).
		Where("id = ?", earlier.ID).
		Update("scheduled_start_time", day.Add(6*time.Hour)).Error)
	suite.insertRoute("scheduled", day.AddDate(0, 0, 1))

	// 23:30 UTC on the 9th is already the 10th in Addis Ababa.
	query, err := queries.NewListDriverRoutesQuery(
		kernel.UUIDFromGoogle(suite.driverUser), time.Date(2026, 4, 9, 23, 30, 0, 0, time.UTC))
	suite.Require().NoError(err)
	got, err := queries.NewListDriverRoutesQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(got, 2)
	suite.Equal(earlier.ID, got[0].ID.Bytes())
	suite.Equal(later.ID, got[1].ID.Bytes())
	suite.Len(got[0].Stops, 2)

	other, err := queries.NewListDriverRoutesQuery(kernel.NewUUID(), day)
	suite.Require().NoError(err)
	got, err = queries.NewListDriverRoutesQueryHandler(suite.db).Handle(ctx, other)
	suite.Require().NoError(err)
	suite.Empty(got)
}

func (suite *ReadModelsIntegrationTestSuite) insertReport(residentID *uuid.UUID, reportedAt time.Time) uuid.UUID {
	lat, lng := 9.02, 38.76
	dto := reportrepo.WasteReportDTO{
		ID:              uuid.New(),
		ResidentID:      residentID,
		ReportType:      "illegal_dumping",
		Priority:        "high",
		Description:     "Pile of rubble by the bridge",
		LocationAddress: "Kirkos, near the bridge",
		Location:        pgtypes.NullableLocationDTO{Latitude: &lat, Longitude: &lng},
		Status:          "open",
		ReportedAt:      reportedAt,
		UpdatedAt:       reportedAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *ReadModelsIntegrationTestSuite) TestResidentSeesOnlyOwnReports() {
	ctx := context.Background()
	resident := uuid.New()
	older := suite.insertReport(&resident, baseTime)
	newer := suite.insertReport(&resident, baseTime.Add(time.Hour))
	foreign := suite.insertReport(nil, baseTime)

	list, err := queries.NewListResidentReportsQuery(kernel.UUIDFromGoogle(resident))
	suite.Require().NoError(err)
	got, err := queries.NewListResidentReportsQueryHandler(suite.db).Handle(ctx, list)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(newer, got[0].ID.Bytes())
	suite.Equal(older, got[1].ID.Bytes())
	suite.Equal("open", got[0].Status)
	suite.Require().NotNil(got[0].Latitude)
	suite.InDelta(9.02, *got[0].Latitude, 1e-9)

	handler := queries.NewGetWasteReportQueryHandler(suite.db)
	owner := kernel.UUIDFromGoogle(resident)
	own, err := queries.NewGetWasteReportQuery(kernel.UUIDFromGoogle(older), &owner)
	suite.Require().NoError(err)
	report, err := handler.Handle(ctx, own)
	suite.Require().NoError(err)
	suite.Equal("illegal_dumping", report.ReportType)

	other, err := queries.NewGetWasteReportQuery(kernel.UUIDFromGoogle(foreign), &owner)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, other)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	unscoped, err := queries.NewGetWasteReportQuery(kernel.UUIDFromGoogle(foreign), nil)
	suite.Require().NoError(err)
	report, err = handler.Handle(ctx, unscoped)
	suite.Require().NoError(err)
	suite.Equal(foreign, report.ID.Bytes())
}
