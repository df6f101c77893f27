package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wasteflow/internal/adapters/in/http/api"
	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/core/domain/services"
	"wasteflow/internal/core/ports"
	"wasteflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	echo *echo.Echo

	createRequest     *MockCommandHandler[commands.CreateCollectionRequestCommand]
	updateRequest     *MockCommandHandler[commands.UpdateCollectionRequestCommand]
	assignRequest     *MockCommandHandler[commands.AssignCollectionRequestCommand]
	transitionRequest *MockCommandHandler[commands.TransitionCollectionRequestCommand]
	recordProof       *MockCommandHandler[commands.RecordCollectionProofCommand]
	rateCollection    *MockCommandHandler[commands.RateCollectionCommand]
	startRoute        *MockCommandHandlerWithResult[commands.StartRouteCommand, kernel.UUID]
	completeRoute     *MockCommandHandlerWithResult[commands.CompleteRouteCommand, kernel.UUID]
	cancelRoute       *MockCommandHandler[commands.CancelRouteCommand]
	arriveAtStop      *MockCommandHandler[commands.ArriveAtStopCommand]
	completeStop      *MockCommandHandler[commands.CompleteStopCommand]
	skipStop          *MockCommandHandler[commands.SkipStopCommand]
	updateReport      *MockCommandHandler[commands.UpdateWasteReportCommand]
	markAllRead       *MockCommandHandlerWithResult[commands.MarkAllNotificationsReadCommand, int64]
	getRequest        *MockQueryHandler[queries.GetCollectionRequestQuery, queries.CollectionRequestDetail]
	listResident      *MockQueryHandler[queries.ListResidentRequestsQuery, []queries.CollectionRequestView]
	getReceipt        *MockQueryHandler[queries.GetCollectionReceiptQuery, queries.CollectionReceipt]
	getRoute          *MockQueryHandler[queries.GetRouteQuery, queries.RouteView]
	getStop           *MockQueryHandler[queries.GetRouteStopQuery, queries.StopView]
	getDriverRoute    *MockQueryHandler[queries.GetDriverRouteQuery, queries.RouteView]
	listDriverRoutes  *MockQueryHandler[queries.ListDriverRoutesQuery, []queries.RouteView]
	listReports       *MockQueryHandler[queries.ListResidentReportsQuery, []queries.WasteReportView]
	getReport         *MockQueryHandler[queries.GetWasteReportQuery, queries.WasteReportView]
	listNotifications *MockQueryHandler[queries.ListNotificationsQuery, queries.NotificationsPage]
	receipts          *MockReceiptRenderer
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	suite.createRequest = &MockCommandHandler[commands.CreateCollectionRequestCommand]{}
	suite.updateRequest = &MockCommandHandler[commands.UpdateCollectionRequestCommand]{}
	suite.assignRequest = &MockCommandHandler[commands.AssignCollectionRequestCommand]{}
	suite.transitionRequest = &MockCommandHandler[commands.TransitionCollectionRequestCommand]{}
	suite.recordProof = &MockCommandHandler[commands.RecordCollectionProofCommand]{}
	suite.rateCollection = &MockCommandHandler[commands.RateCollectionCommand]{}
	suite.startRoute = &MockCommandHandlerWithResult[commands.StartRouteCommand, kernel.UUID]{}
	suite.completeRoute = &MockCommandHandlerWithResult[commands.CompleteRouteCommand, kernel.UUID]{}
	suite.cancelRoute = &MockCommandHandler[commands.CancelRouteCommand]{}
	suite.arriveAtStop = &MockCommandHandler[commands.ArriveAtStopCommand]{}
	suite.completeStop = &MockCommandHandler[commands.CompleteStopCommand]{}
	suite.skipStop = &MockCommandHandler[commands.SkipStopCommand]{}
	suite.updateReport = &MockCommandHandler[commands.UpdateWasteReportCommand]{}
	suite.markAllRead = &MockCommandHandlerWithResult[commands.MarkAllNotificationsReadCommand, int64]{}
	suite.getRequest = &MockQueryHandler[queries.GetCollectionRequestQuery, queries.CollectionRequestDetail]{}
	suite.listResident = &MockQueryHandler[queries.ListResidentRequestsQuery, []queries.CollectionRequestView]{}
	suite.getReceipt = &MockQueryHandler[queries.GetCollectionReceiptQuery, queries.CollectionReceipt]{}
	suite.getRoute = &MockQueryHandler[queries.GetRouteQuery, queries.RouteView]{}
	suite.getStop = &MockQueryHandler[queries.GetRouteStopQuery, queries.StopView]{}
	suite.getDriverRoute = &MockQueryHandler[queries.GetDriverRouteQuery, queries.RouteView]{}
	suite.listDriverRoutes = &MockQueryHandler[queries.ListDriverRoutesQuery, []queries.RouteView]{}
	suite.listReports = &MockQueryHandler[queries.ListResidentReportsQuery, []queries.WasteReportView]{}
	suite.getReport = &MockQueryHandler[queries.GetWasteReportQuery, queries.WasteReportView]{}
	suite.listNotifications = &MockQueryHandler[queries.ListNotificationsQuery, queries.NotificationsPage]{}
	suite.receipts = &MockReceiptRenderer{}

	doc, err := api.Load(context.Background())
	suite.Require().NoError(err)
	validator, err := NewRequestValidator(doc)
	suite.Require().NoError(err)
	gate, err := NewAccessGate(testSecret)
	suite.Require().NoError(err)

	server := NewServer(Handlers{
		CreateRequest:        suite.createRequest,
		UpdateRequest:        suite.updateRequest,
		AssignRequest:        suite.assignRequest,
		TransitionRequest:    suite.transitionRequest,
		RecordProof:          suite.recordProof,
		RateCollection:       suite.rateCollection,
		StartRoute:           suite.startRoute,
		CompleteRoute:        suite.completeRoute,
		CancelRoute:          suite.cancelRoute,
		ArriveAtStop:         suite.arriveAtStop,
		CompleteStop:         suite.completeStop,
		SkipStop:             suite.skipStop,
		UpdateReport:         suite.updateReport,
		MarkAllRead:          suite.markAllRead,
		GetRequest:           suite.getRequest,
		ListResidentRequests: suite.listResident,
		GetReceipt:           suite.getReceipt,
		GetRoute:             suite.getRoute,
		GetStop:              suite.getStop,
		GetDriverRoute:       suite.getDriverRoute,
		ListDriverRoutes:     suite.listDriverRoutes,
		ListResidentReports:  suite.listReports,
		GetReport:            suite.getReport,
		ListNotifications:    suite.listNotifications,
	}, suite.receipts)

	suite.echo = echo.New()
	suite.echo.HTTPErrorHandler = NewErrorHandler(discardLogger())
	server.Register(suite.echo, gate, validator)
}

func (suite *ServerTestSuite) TearDownTest() {
	for _, m := range []interface{ AssertExpectations(mock.TestingT) bool }{
		suite.createRequest, suite.updateRequest, suite.assignRequest, suite.transitionRequest,
		suite.recordProof, suite.rateCollection, suite.startRoute, suite.completeRoute, suite.cancelRoute,
		suite.arriveAtStop, suite.completeStop, suite.skipStop, suite.updateReport,
		suite.markAllRead, suite.getRequest, suite.listResident, suite.getReceipt,
		suite.getRoute, suite.getStop, suite.getDriverRoute, suite.listDriverRoutes,
		suite.listReports, suite.getReport, suite.listNotifications, suite.receipts,
	} {
		m.AssertExpectations(suite.T())
	}
}

type caller struct {
	id       kernel.UUID
	userType ports.UserType
	role     string
}

func resident() caller { return caller{id: kernel.NewUUID(), userType: ports.Resident} }
func company() caller  { return caller{id: kernel.NewUUID(), userType: ports.WasteCompany} }
func driver() caller {
	return caller{id: kernel.NewUUID(), userType: ports.WasteCompany, role: ports.RoleDriver}
}

func (suite *ServerTestSuite) do(who *caller, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if who != nil {
		token := signToken(suite.T(), testSecret, who.id.String(), who.userType, who.role, time.Hour)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t require.TestingT, rec *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (suite *ServerTestSuite) TestHealthIsPublic() {
	rec := suite.do(nil, http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerTestSuite) TestAnonymousCallerIsUnauthorized() {
	rec := suite.do(nil, http.MethodGet, "/api/v1/resident/requests", "")

	suite.Equal(http.StatusUnauthorized, rec.Code)
	body := decode[Error](suite.T(), rec)
	suite.Equal(http.StatusUnauthorized, body.Code)
}

func (suite *ServerTestSuite) TestCreateCollectionRequest() {
	who := resident()
	suite.createRequest.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCollectionRequestCommand) bool {
		d := cmd.Details()
		return cmd.ResidentID().IsEqual(who.id) &&
			d.WasteType() == request.Recyclable &&
			d.QuantityBags() == 1
	})).Return(nil).Once()

	rec := suite.do(&who, http.MethodPost, "/api/v1/resident/requests", `{
		"waste_type": "recyclable",
		"preferred_date": "2026-05-12",
		"preferred_time": "morning",
		"address": "Bole Road 12",
		"latitude": 9.01,
		"longitude": 38.76
	}`)

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[Created](suite.T(), rec)
	suite.NotEqual(uuid.Nil, created.ID)
}

func (suite *ServerTestSuite) TestCreateCollectionRequestRejectedBySchema() {
	who := resident()

	rec := suite.do(&who, http.MethodPost, "/api/v1/resident/requests", `{
		"waste_type": "plutonium",
		"preferred_date": "2026-05-12",
		"preferred_time": "morning",
		"address": "Bole Road 12"
	}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.createRequest.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestCreateCollectionRequestOutsideServiceArea() {
	who := resident()

	rec := suite.do(&who, http.MethodPost, "/api/v1/resident/requests", `{
		"waste_type": "general",
		"preferred_date": "2026-05-12",
		"preferred_time": "evening",
		"address": "Far away",
		"latitude": 40.0,
		"longitude": 38.76
	}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestCompanyCannotUseResidentRoutes() {
	who := company()
	rec := suite.do(&who, http.MethodGet, "/api/v1/resident/requests", "")
	suite.Equal(http.StatusForbidden, rec.Code)
}

func (suite *ServerTestSuite) TestListResidentRequests() {
	who := resident()
	view := queries.CollectionRequestView{
		ID:            kernel.NewUUID(),
		ResidentID:    who.id,
		WasteType:     "general",
		QuantityBags:  2,
		PreferredDate: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
		PreferredTime: "morning",
		Address:       "Bole Road 12",
		Status:        "pending",
		StatusDisplay: "Pending",
		CreatedAt:     time.Now().UTC(),
	}
	suite.listResident.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.CollectionRequestView{view}, nil).Once()

	rec := suite.do(&who, http.MethodGet, "/api/v1/resident/requests?status=pending", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[[]map[string]any](suite.T(), rec)
	suite.Require().Len(got, 1)
	suite.Equal("2026-05-12", got[0]["preferred_date"])
	suite.Equal("Pending", got[0]["status_display"])
}

func (suite *ServerTestSuite) TestListResidentRequestsUnknownStatusFilter() {
	who := resident()
	rec := suite.do(&who, http.MethodGet, "/api/v1/resident/requests?status=lost", "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestCancelUsesResidentAsOwner() {
	who := resident()
	requestID := kernel.NewUUID()
	suite.transitionRequest.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionCollectionRequestCommand) bool {
		return cmd.RequestID().IsEqual(requestID) &&
			cmd.Target() == request.Cancelled &&
			cmd.OwnerID() != nil && cmd.OwnerID().IsEqual(who.id)
	})).Return(nil).Once()

	suite.expectRequest(requestID, "cancelled", nil)

	rec := suite.do(&who, http.MethodPost, "/api/v1/resident/requests/"+requestID.String()+"/cancel", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CollectionRequestDetail](suite.T(), rec)
	suite.Equal(requestID.Bytes(), got.ID)
	suite.Equal("cancelled", got.Status)
	suite.Equal("Cancelled", got.StatusDisplay)
	suite.Nil(got.Record)
}

func (suite *ServerTestSuite) TestMalformedPathID() {
	who := resident()
	rec := suite.do(&who, http.MethodPost, "/api/v1/resident/requests/not-a-uuid/cancel", "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestAssignWithoutEligibleVehicle() {
	who := company()
	suite.assignRequest.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignCollectionRequestCommand) bool {
		return !cmd.IsExplicit() && cmd.CompanyUserID().IsEqual(who.id)
	})).Return(services.ErrNoEligibleAssignee).Once()

	rec := suite.do(&who, http.MethodPost, "/api/v1/company/requests/"+kernel.NewUUID().String()+"/assign", "")

	suite.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (suite *ServerTestSuite) TestTransitionRejected() {
	who := company()
	suite.transitionRequest.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewTransitionRejectedError("collection_request", "cancelled", "completed")).Once()

	rec := suite.do(&who, http.MethodPost, "/api/v1/company/requests/"+kernel.NewUUID().String()+"/complete", "")

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *ServerTestSuite) TestTransitionUnknownStatus() {
	who := company()
	rec := suite.do(&who, http.MethodPut, "/api/v1/company/requests/"+kernel.NewUUID().String()+"/status",
		`{"status":"lost"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestStartRouteOfOtherCompanyIsNotFound() {
	who := company()
	routeID := kernel.NewUUID()
	suite.startRoute.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.UUID{}, errs.NewObjectNotFoundError("routeId", routeID)).Once()

	rec := suite.do(&who, http.MethodPost, "/api/v1/company/routes/"+routeID.String()+"/start", "")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestDownloadReceipt() {
	who := company()
	requestID := kernel.NewUUID()
	receipt := queries.CollectionReceipt{RecordID: kernel.NewUUID(), RequestID: requestID, CompanyName: "Green Addis"}
	suite.getReceipt.On("Handle", mock.Anything, mock.Anything).Return(receipt, nil).Once()
	suite.receipts.On("Render", receipt).Return([]byte("%PDF-1.3"), nil).Once()

	rec := suite.do(&who, http.MethodGet, "/api/v1/company/requests/"+requestID.String()+"/receipt", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal("application/pdf", rec.Header().Get(echo.HeaderContentType))
	suite.Contains(rec.Header().Get(echo.HeaderContentDisposition), requestID.String())
	suite.Equal("%PDF-1.3", rec.Body.String())
}

func (suite *ServerTestSuite) TestDriverRoute() {
	who := driver()
	view := queries.RouteView{
		ID:            kernel.NewUUID(),
		Name:          "Bole morning",
		CompanyID:     kernel.NewUUID(),
		Status:        "scheduled",
		ScheduledDate: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
		TotalStops:    1,
		Stops: []queries.StopView{{
			ID: kernel.NewUUID(), SequenceNumber: 1, Address: "Stop A", Status: "pending",
		}},
	}
	suite.getDriverRoute.On("Handle", mock.Anything, mock.Anything).Return(view, nil).Once()

	rec := suite.do(&who, http.MethodGet, "/api/v1/driver/route", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	got := decode[Route](suite.T(), rec)
	suite.Equal("Bole morning", got.Name)
	suite.Require().Len(got.Stops, 1)
	suite.Equal("Stop A", got.Stops[0].Address)
}

func (suite *ServerTestSuite) TestResidentCannotUseDriverRoutes() {
	who := resident()
	rec := suite.do(&who, http.MethodPost, "/api/v1/driver/stops/"+kernel.NewUUID().String()+"/complete", "")
	suite.Equal(http.StatusForbidden, rec.Code)
}

func (suite *ServerTestSuite) TestCompleteStopPassesDriver() {
	who := driver()
	stopID := kernel.NewUUID()
	suite.completeStop.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CompleteStopCommand) bool {
		return cmd.StopID().IsEqual(stopID) && cmd.DriverUserID().IsEqual(who.id)
	})).Return(nil).Once()

	suite.expectStop(stopID, "completed")

	rec := suite.do(&who, http.MethodPost, "/api/v1/driver/stops/"+stopID.String()+"/complete", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[Stop](suite.T(), rec)
	suite.Equal(stopID.Bytes(), got.ID)
	suite.Equal("completed", got.Status)
	suite.NotEqual(uuid.Nil, got.RouteID)
	suite.NotNil(got.DepartureTime)
}

func (suite *ServerTestSuite) TestUpdateReportBySupervisor() {
	who := caller{id: kernel.NewUUID(), userType: ports.CentralAuthority, role: ports.RoleSupervisor}
	reportID := kernel.NewUUID()
	suite.updateReport.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	query, err := queries.NewGetWasteReportQuery(reportID, nil)
	suite.Require().NoError(err)
	suite.getReport.On("Handle", mock.Anything, query).Return(queries.WasteReportView{
		ID:              reportID,
		ReportType:      "illegal_dumping",
		Priority:        "high",
		Description:     "Rubble by the bridge",
		LocationAddress: "Kirkos",
		Status:          "investigating",
		Response:        "On it",
		ReportedAt:      time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}, nil).Once()

	rec := suite.do(&who, http.MethodPatch, "/api/v1/reports/"+reportID.String(),
		`{"status":"investigating","response":"On it"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[WasteReport](suite.T(), rec)
	suite.Equal(reportID.Bytes(), got.ID)
	suite.Equal("investigating", got.Status)
	suite.Equal("On it", got.Response)
}

func (suite *ServerTestSuite) TestUpdateReportRejectsEmptyPatch() {
	who := company()
	rec := suite.do(&who, http.MethodPatch, "/api/v1/reports/"+kernel.NewUUID().String(), `{}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestListNotifications() {
	who := resident()
	page := queries.NotificationsPage{
		Items: []queries.NotificationView{{
			ID:        kernel.NewUUID(),
			Type:      "collection_scheduled",
			Title:     "Collection scheduled",
			Data:      map[string]any{"status": "pending"},
			CreatedAt: time.Now().UTC(),
		}},
		UnreadCount: 1,
	}
	suite.listNotifications.On("Handle", mock.Anything, mock.Anything).Return(page, nil).Once()

	rec := suite.do(&who, http.MethodGet, "/api/v1/notifications?unread_only=true&limit=10", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	got := decode[NotificationPage](suite.T(), rec)
	suite.Equal(int64(1), got.UnreadCount)
	suite.Require().Len(got.Items, 1)
	suite.Equal("pending", got.Items[0].Data["status"])
}

func (suite *ServerTestSuite) TestListNotificationsLimitOutOfRange() {
	who := resident()
	rec := suite.do(&who, http.MethodGet, "/api/v1/notifications?limit=500", "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestMarkAllNotificationsRead() {
	who := driver()
	suite.markAllRead.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkAllNotificationsReadCommand) bool {
		return cmd.UserID().IsEqual(who.id)
	})).Return(int64(3), nil).Once()

	rec := suite.do(&who, http.MethodPost, "/api/v1/notifications/read-all", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal(int64(3), decode[MarkedRead](suite.T(), rec).Updated)
}

func TestToCollectionRequestsKeepsOptionalFields(t *testing.T) {
	zone := kernel.NewUUID()
	out := toCollectionRequests([]queries.CollectionRequestView{{ID: kernel.NewUUID(), ZoneID: &zone}})

	require.Len(t, out, 1)
	require.NotNil(t, out[0].ZoneID)
	assert.Equal(t, zone.Bytes(), *out[0].ZoneID)
	assert.Nil(t, out[0].AssignedCompanyID)
}

func (suite *ServerTestSuite) expectRequest(id kernel.UUID, status string, record *queries.CollectionRecordView) {
	query, err := queries.NewGetCollectionRequestQuery(id)
	suite.Require().NoError(err)
	display, err := request.ParseStatus(status)
	suite.Require().NoError(err)
	suite.getRequest.On("Handle", mock.Anything, query).Return(queries.CollectionRequestDetail{
		Request: queries.CollectionRequestView{
			ID:            id,
			ResidentID:    kernel.NewUUID(),
			WasteType:     "general",
			QuantityBags:  2,
			PreferredDate: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			PreferredTime: "morning",
			Address:       "Bole Road 12",
			Status:        status,
			StatusDisplay: display.Display(),
			CreatedAt:     time.Date(2026, 5, 10, 7, 30, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
		},
		Record: record,
	}, nil).Once()
}

func (suite *ServerTestSuite) expectRoute(id kernel.UUID, status string) {
	query, err := queries.NewGetRouteQuery(id)
	suite.Require().NoError(err)
	suite.getRoute.On("Handle", mock.Anything, query).Return(queries.RouteView{
		ID:            id,
		Name:          "Bole morning",
		CompanyID:     kernel.NewUUID(),
		Status:        status,
		ScheduledDate: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
		TotalStops:    1,
		Stops: []queries.StopView{{
			ID: kernel.NewUUID(), RouteID: id, SequenceNumber: 1, Address: "Stop A", Status: "pending",
		}},
	}, nil).Once()
}

func (suite *ServerTestSuite) expectStop(id kernel.UUID, status string) {
	query, err := queries.NewGetRouteStopQuery(id)
	suite.Require().NoError(err)
	at := time.Date(2026, 5, 12, 8, 15, 0, 0, time.UTC)
	suite.getStop.On("Handle", mock.Anything, query).Return(queries.StopView{
		ID:             id,
		RouteID:        kernel.NewUUID(),
		SequenceNumber: 1,
		Address:        "Stop A",
		Latitude:       9.01,
		Longitude:      38.76,
		Status:         status,
		ArrivalTime:    &at,
		DepartureTime:  &at,
		Notes:          "gate locked",
	}, nil).Once()
}

func (suite *ServerTestSuite) TestAssignReturnsAssignedRequest() {
	who := company()
	requestID := kernel.NewUUID()
	suite.assignRequest.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	suite.expectRequest(requestID, "assigned", nil)

	rec := suite.do(&who, http.MethodPost, "/api/v1/company/requests/"+requestID.String()+"/assign", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[map[string]any](suite.T(), rec)
	suite.Equal(requestID.String(), got["id"])
	suite.Equal("assigned", got["status"])
	suite.Equal("Assigned", got["status_display"])
	suite.Equal("2026-05-12", got["preferred_date"])
	suite.Equal("2026-05-10T09:00:00Z", got["updated_at"])
	suite.NotContains(got, "record")
}

func (suite *ServerTestSuite) TestTransitionReturnsRequest() {
	who := company()
	requestID := kernel.NewUUID()
	suite.transitionRequest.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionCollectionRequestCommand) bool {
		return cmd.Target() == request.InProgress && cmd.OwnerID() == nil
	})).Return(nil).Once()
	suite.expectRequest(requestID, "in_progress", nil)

	rec := suite.do(&who, http.MethodPut, "/api/v1/company/requests/"+requestID.String()+"/status",
		`{"status":"in_progress"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CollectionRequestDetail](suite.T(), rec)
	suite.Equal("in_progress", got.Status)
	suite.Equal("In Progress", got.StatusDisplay)
}

func (suite *ServerTestSuite) TestCompleteRequestIncludesRecord() {
	who := company()
	requestID := kernel.NewUUID()
	weight := decimal.RequireFromString("12.5")
	collectedAt := time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)
	suite.transitionRequest.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionCollectionRequestCommand) bool {
		return cmd.RequestID().IsEqual(requestID) && cmd.Target() == request.Completed
	})).Return(nil).Once()
	suite.expectRequest(requestID, "completed", &queries.CollectionRecordView{
		ID:             kernel.NewUUID(),
		CollectedAt:    collectedAt,
		ActualWeightKg: &weight,
		DriverNotes:    "Left at the gate",
	})

	rec := suite.do(&who, http.MethodPost, "/api/v1/company/requests/"+requestID.String()+"/complete", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CollectionRequestDetail](suite.T(), rec)
	suite.Equal("completed", got.Status)
	suite.Require().NotNil(got.Record)
	suite.True(collectedAt.Equal(got.Record.CollectedAt))
	suite.Require().NotNil(got.Record.ActualWeightKg)
	suite.Equal("12.5", got.Record.ActualWeightKg.String())
	suite.Equal("Left at the gate", got.Record.DriverNotes)
}

func (suite *ServerTestSuite) TestRateCollectionReturnsRecord() {
	who := resident()
	requestID := kernel.NewUUID()
	rating := 4
	suite.rateCollection.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RateCollectionCommand) bool {
		return cmd.RequestID().IsEqual(requestID) && cmd.ResidentID().IsEqual(who.id) && cmd.Rating() == 4
	})).Return(nil).Once()
	suite.expectRequest(requestID, "completed", &queries.CollectionRecordView{
		ID:          kernel.NewUUID(),
		CollectedAt: time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC),
		Rating:      &rating,
		Feedback:    "Quick and tidy",
	})

	rec := suite.do(&who, http.MethodPost, "/api/v1/resident/requests/"+requestID.String()+"/rating",
		`{"rating":4,"feedback":"Quick and tidy"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CollectionRequestDetail](suite.T(), rec)
	suite.Require().NotNil(got.Record)
	suite.Require().NotNil(got.Record.Rating)
	suite.Equal(4, *got.Record.Rating)
	suite.Equal("Quick and tidy", got.Record.Feedback)
}

func (suite *ServerTestSuite) TestRecordProofReturnsRecord() {
	who := driver()
	requestID := kernel.NewUUID()
	suite.recordProof.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RecordCollectionProofCommand) bool {
		return cmd.RequestID().IsEqual(requestID) && cmd.DriverUserID().IsEqual(who.id)
	})).Return(nil).Once()
	suite.expectRequest(requestID, "completed", &queries.CollectionRecordView{
		ID:            kernel.NewUUID(),
		CollectedAt:   time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC),
		PhotoProofURL: "https://cdn.example.org/p.jpg",
	})

	rec := suite.do(&who, http.MethodPost, "/api/v1/driver/requests/"+requestID.String()+"/proof",
		`{"photo_proof_url":"https://cdn.example.org/p.jpg"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CollectionRequestDetail](suite.T(), rec)
	suite.Require().NotNil(got.Record)
	suite.Equal("https://cdn.example.org/p.jpg", got.Record.PhotoProofURL)
}

func (suite *ServerTestSuite) TestCompanyRouteLifecycleReturnsRoute() {
	who := company()
	routeID := kernel.NewUUID()
	suite.startRoute.On("Handle", mock.Anything, mock.Anything).Return(routeID, nil).Once()
	suite.completeRoute.On("Handle", mock.Anything, mock.Anything).Return(routeID, nil).Once()
	suite.cancelRoute.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	suite.expectRoute(routeID, "in_progress")
	suite.expectRoute(routeID, "completed")
	suite.expectRoute(routeID, "cancelled")

	for _, action := range []string{"start", "complete", "cancel"} {
		rec := suite.do(&who, http.MethodPost, "/api/v1/company/routes/"+routeID.String()+"/"+action, "")

		suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		got := decode[Route](suite.T(), rec)
		suite.Equal(routeID.Bytes(), got.ID, action)
		suite.Require().Len(got.Stops, 1)
		suite.Equal(routeID.Bytes(), got.Stops[0].RouteID)
	}
}

func (suite *ServerTestSuite) TestDriverRouteStartReturnsRouteResolvedByHandler() {
	who := driver()
	routeID := kernel.NewUUID()
	suite.startRoute.On("Handle", mock.Anything, mock.Anything).Return(routeID, nil).Once()
	suite.expectRoute(routeID, "in_progress")

	rec := suite.do(&who, http.MethodPost, "/api/v1/driver/route/start", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[Route](suite.T(), rec)
	suite.Equal(routeID.Bytes(), got.ID)
	suite.Equal("in_progress", got.Status)
}

func (suite *ServerTestSuite) TestDriverRouteCompleteReturnsRoute() {
	who := driver()
	routeID := kernel.NewUUID()
	suite.completeRoute.On("Handle", mock.Anything, mock.Anything).Return(routeID, nil).Once()
	suite.expectRoute(routeID, "completed")

	rec := suite.do(&who, http.MethodPost, "/api/v1/driver/route/complete", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal("completed", decode[Route](suite.T(), rec).Status)
}

func (suite *ServerTestSuite) TestArriveAndSkipReturnStop() {
	who := driver()
	arrived, skipped := kernel.NewUUID(), kernel.NewUUID()
	suite.arriveAtStop.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	suite.skipStop.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SkipStopCommand) bool {
		return cmd.StopID().IsEqual(skipped) && cmd.Notes() == "gate locked"
	})).Return(nil).Once()
	suite.expectStop(arrived, "arrived")
	suite.expectStop(skipped, "skipped")

	rec := suite.do(&who, http.MethodPost, "/api/v1/driver/stops/"+arrived.String()+"/arrive", "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal("arrived", decode[Stop](suite.T(), rec).Status)

	rec = suite.do(&who, http.MethodPost, "/api/v1/driver/stops/"+skipped.String()+"/skip", `{"notes":"gate locked"}`)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[Stop](suite.T(), rec)
	suite.Equal("skipped", got.Status)
	suite.Equal("gate locked", got.Notes)
}

func (suite *ServerTestSuite) TestUpdateCollectionRequest() {
	who := resident()
	requestID := kernel.NewUUID()
	suite.updateRequest.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateCollectionRequestCommand) bool {
		change := cmd.Change()
		return cmd.RequestID().IsEqual(requestID) &&
			cmd.OwnerID().IsEqual(who.id) &&
			change.QuantityBags != nil && *change.QuantityBags == 3 &&
			change.PreferredTime != nil && *change.PreferredTime == request.Afternoon &&
			change.Location != nil && change.Location.Lat() == 9.02 &&
			change.Address == nil && change.WasteType == nil
	})).Return(nil).Once()
	suite.expectRequest(requestID, "pending", nil)

	rec := suite.do(&who, http.MethodPatch, "/api/v1/resident/requests/"+requestID.String(), `{
		"quantity_bags": 3,
		"preferred_time": "afternoon",
		"latitude": 9.02,
		"longitude": 38.77
	}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CollectionRequestDetail](suite.T(), rec)
	suite.Equal(requestID.Bytes(), got.ID)
	suite.Equal("pending", got.Status)
}

func (suite *ServerTestSuite) TestUpdateCollectionRequestOutsideServiceArea() {
	who := resident()

	rec := suite.do(&who, http.MethodPatch, "/api/v1/resident/requests/"+kernel.NewUUID().String(),
		`{"latitude": 10.0, "longitude": 38.8}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), "latitude")
	suite.updateRequest.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestUpdateCollectionRequestNeedsBothCoordinates() {
	who := resident()

	rec := suite.do(&who, http.MethodPatch, "/api/v1/resident/requests/"+kernel.NewUUID().String(),
		`{"latitude": 9.02}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.updateRequest.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestUpdateCollectionRequestRejectsEmptyPatch() {
	who := resident()
	rec := suite.do(&who, http.MethodPatch, "/api/v1/resident/requests/"+kernel.NewUUID().String(), `{}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestUpdateCollectionRequestNoLongerPending() {
	who := resident()
	suite.updateRequest.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewTransitionRejectedError("collection request", "assigned", "assigned")).Once()

	rec := suite.do(&who, http.MethodPatch, "/api/v1/resident/requests/"+kernel.NewUUID().String(),
		`{"address": "Piassa"}`)

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *ServerTestSuite) TestListDriverRoutesToday() {
	who := driver()
	first, second := kernel.NewUUID(), kernel.NewUUID()
	suite.listDriverRoutes.On("Handle", mock.Anything, mock.Anything).Return([]queries.RouteView{
		{ID: first, Name: "Early", Status: "completed", CompanyID: kernel.NewUUID()},
		{ID: second, Name: "Late", Status: "scheduled", CompanyID: kernel.NewUUID()},
	}, nil).Once()

	rec := suite.do(&who, http.MethodGet, "/api/v1/driver/routes/today", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	got := decode[[]Route](suite.T(), rec)
	suite.Require().Len(got, 2)
	suite.Equal(first.Bytes(), got[0].ID)
	suite.Equal(second.Bytes(), got[1].ID)
	suite.NotNil(got[0].Stops)
}

func (suite *ServerTestSuite) TestResidentReports() {
	who := resident()
	reportID := kernel.NewUUID()
	view := queries.WasteReportView{
		ID:              reportID,
		ReportType:      "missed_collection",
		Priority:        "medium",
		Description:     "Truck never came",
		LocationAddress: "Bole Road 12",
		Status:          "open",
		ReportedAt:      time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	list, err := queries.NewListResidentReportsQuery(who.id)
	suite.Require().NoError(err)
	suite.listReports.On("Handle", mock.Anything, list).Return([]queries.WasteReportView{view}, nil).Once()
	owner := who.id
	one, err := queries.NewGetWasteReportQuery(reportID, &owner)
	suite.Require().NoError(err)
	suite.getReport.On("Handle", mock.Anything, one).Return(view, nil).Once()

	rec := suite.do(&who, http.MethodGet, "/api/v1/resident/reports", "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	reports := decode[[]WasteReport](suite.T(), rec)
	suite.Require().Len(reports, 1)
	suite.Equal("missed_collection", reports[0].ReportType)

	rec = suite.do(&who, http.MethodGet, "/api/v1/resident/reports/"+reportID.String(), "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal(reportID.Bytes(), decode[WasteReport](suite.T(), rec).ID)
}

func (suite *ServerTestSuite) TestResidentReportOfSomeoneElseIsNotFound() {
	who := resident()
	suite.getReport.On("Handle", mock.Anything, mock.Anything).
		Return(queries.WasteReportView{}, errs.NewObjectNotFoundError("reportId", "x")).Once()

	rec := suite.do(&who, http.MethodGet, "/api/v1/resident/reports/"+kernel.NewUUID().String(), "")

	suite.Equal(http.StatusNotFound, rec.Code)
}
