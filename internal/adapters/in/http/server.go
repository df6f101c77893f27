package http

import (
	"context"
	"net/http"

	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/ports"
	"wasteflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// CommandHandlerWithResult is a command handler that reports something back,
// such as the id of the route it acted on or a count of updated rows.
type CommandHandlerWithResult[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// ReceiptRenderer turns a receipt read model into a printable document.
type ReceiptRenderer interface {
	Render(receipt queries.CollectionReceipt) ([]byte, error)
}

// Handlers are the use cases the HTTP surface dispatches to.
type Handlers struct {
	CreateRequest     CommandHandler[commands.CreateCollectionRequestCommand]
	UpdateRequest     CommandHandler[commands.UpdateCollectionRequestCommand]
	AssignRequest     CommandHandler[commands.AssignCollectionRequestCommand]
	TransitionRequest CommandHandler[commands.TransitionCollectionRequestCommand]
	RecordProof       CommandHandler[commands.RecordCollectionProofCommand]
	RateCollection    CommandHandler[commands.RateCollectionCommand]
	ScheduleRoute     CommandHandler[commands.ScheduleRouteCommand]
	StartRoute        CommandHandlerWithResult[commands.StartRouteCommand, kernel.UUID]
	CompleteRoute     CommandHandlerWithResult[commands.CompleteRouteCommand, kernel.UUID]
	CancelRoute       CommandHandler[commands.CancelRouteCommand]
	ArriveAtStop      CommandHandler[commands.ArriveAtStopCommand]
	CompleteStop      CommandHandler[commands.CompleteStopCommand]
	SkipStop          CommandHandler[commands.SkipStopCommand]
	UpdateLocation    CommandHandler[commands.UpdateVehicleLocationCommand]
	CreateReport      CommandHandler[commands.CreateWasteReportCommand]
	UpdateReport      CommandHandler[commands.UpdateWasteReportCommand]
	MarkRead          CommandHandler[commands.MarkNotificationReadCommand]
	MarkAllRead       CommandHandlerWithResult[commands.MarkAllNotificationsReadCommand, int64]

	GetRequest           QueryHandler[queries.GetCollectionRequestQuery, queries.CollectionRequestDetail]
	TrackRequest         QueryHandler[queries.TrackCollectionRequestQuery, queries.TrackCollectionRequestQueryResponse]
	ListResidentRequests QueryHandler[queries.ListResidentRequestsQuery, []queries.CollectionRequestView]
	ListCompanyRequests  QueryHandler[queries.ListCompanyRequestsQuery, []queries.CollectionRequestView]
	GetReceipt           QueryHandler[queries.GetCollectionReceiptQuery, queries.CollectionReceipt]
	GetRoute             QueryHandler[queries.GetRouteQuery, queries.RouteView]
	GetStop              QueryHandler[queries.GetRouteStopQuery, queries.StopView]
	GetDriverRoute       QueryHandler[queries.GetDriverRouteQuery, queries.RouteView]
	ListDriverRoutes     QueryHandler[queries.ListDriverRoutesQuery, []queries.RouteView]
	ListRouteStops       QueryHandler[queries.ListRouteStopsQuery, []queries.StopView]
	ListResidentReports  QueryHandler[queries.ListResidentReportsQuery, []queries.WasteReportView]
	GetReport            QueryHandler[queries.GetWasteReportQuery, queries.WasteReportView]
	ListNotifications    QueryHandler[queries.ListNotificationsQuery, queries.NotificationsPage]
}

// Server maps the REST surface onto commands and queries. Handlers return
// errors; the status code is chosen by NewErrorHandler. Lifecycle endpoints
// answer with the entity as read back after the command committed.
type Server struct {
	h        Handlers
	receipts ReceiptRenderer
}

func NewServer(handlers Handlers, receipts ReceiptRenderer) *Server {
	return &Server{
		h:        handlers,
		receipts: receipts,
	}
}

// Register mounts every route on e. Authentication runs before request
// validation, so anonymous callers get 401 rather than 400.
func (s *Server) Register(e *echo.Echo, gate *AccessGate, validator *RequestValidator) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1", gate.Authenticate, validator.Middleware)

	resident := v1.Group("/resident", Allow(UserTypeIs(ports.Resident)))
	resident.POST("/requests", s.CreateCollectionRequest)
	resident.GET("/requests", s.ListResidentRequests)
	resident.PATCH("/requests/:id", s.UpdateCollectionRequest)
	resident.GET("/requests/:id/track", s.TrackCollectionRequest)
	resident.POST("/requests/:id/cancel", s.CancelCollectionRequest)
	resident.POST("/requests/:id/rating", s.RateCollection)
	resident.POST("/reports", s.CreateWasteReport)
	resident.GET("/reports", s.ListResidentReports)
	resident.GET("/reports/:id", s.GetResidentReport)

	company := v1.Group("/company", Allow(UserTypeIs(ports.WasteCompany)))
	company.GET("/requests", s.ListCompanyRequests)
	company.POST("/requests/:id/assign", s.AssignCollectionRequest)
	company.PUT("/requests/:id/status", s.TransitionCollectionRequest)
	company.POST("/requests/:id/complete", s.CompleteCollectionRequest)
	company.GET("/requests/:id/receipt", s.DownloadCollectionReceipt)
	company.POST("/routes", s.ScheduleRoute)
	company.POST("/routes/:id/start", s.StartRoute)
	company.POST("/routes/:id/complete", s.CompleteRoute)
	company.POST("/routes/:id/cancel", s.CancelRoute)
	company.GET("/routes/:id/stops", s.ListRouteStops)

	driver := v1.Group("/driver", Allow(RoleIs(ports.RoleDriver)))
	driver.GET("/route", s.GetDriverRoute)
	driver.GET("/routes/today", s.ListDriverRoutesToday)
	driver.POST("/route/start", s.StartDriverRoute)
	driver.POST("/route/complete", s.CompleteDriverRoute)
	driver.POST("/stops/:id/arrive", s.ArriveAtStop)
	driver.POST("/stops/:id/complete", s.CompleteStop)
	driver.POST("/stops/:id/skip", s.SkipStop)
	driver.POST("/requests/:id/proof", s.RecordCollectionProof)
	driver.POST("/location", s.UpdateVehicleLocation)

	v1.PATCH("/reports/:id", s.UpdateWasteReport,
		Allow(RoleIs(ports.RoleSupervisor), UserTypeIs(ports.WasteCompany)))

	v1.GET("/notifications", s.ListNotifications)
	v1.PUT("/notifications/:id/read", s.MarkNotificationRead)
	v1.POST("/notifications/read-all", s.MarkAllNotificationsRead)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func (s *Server) requestDetail(c echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetCollectionRequestQuery(id)
	if err != nil {
		return err
	}
	detail, err := s.h.GetRequest.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCollectionRequestDetail(detail))
}

func (s *Server) route(c echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetRoute.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoute(view))
}

func (s *Server) stop(c echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetRouteStopQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetStop.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStop(view))
}

func pathID(c echo.Context) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromGoogle(id), nil
}

func queryParam(c echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

func bindBody(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return nil
}
