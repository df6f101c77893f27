package cmd

import (
	"context"
	"log/slog"

	httpadapter "wasteflow/internal/adapters/in/http"
	"wasteflow/internal/adapters/out/eventbus"
	"wasteflow/internal/adapters/out/postgres"
	"wasteflow/internal/adapters/out/postgres/userrepo"
	"wasteflow/internal/core/application/eventhandlers"
	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/services"
	"wasteflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	bus        *eventbus.ChannelBus
	uowFactory *postgres.GormUnitOfWorkFactory
	users      *userrepo.GormUserDirectory
	dispatcher services.RequestDispatcher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	bufferSize := config.EventBufferSize
	if bufferSize <= 0 {
		bufferSize = eventbus.DefaultBufferSize
	}
	bus := eventbus.NewChannelBus(bufferSize, logger)

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		bus:        bus,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, bus, logger),
		users:      userrepo.NewGormUserDirectory(gormDB),
		dispatcher: services.NewRequestDispatcher(services.NewZoneLoadAssignmentPolicy()),
	}
	c.subscribeEventHandlers()
	return c
}

func (c *CompositionRoot) subscribeEventHandlers() {
	var f eventhandlers.NotificationUoWFactory = FuncEventNotificationUoWFactory(func() eventhandlers.NotificationUoW {
		return c.uowFactory.Create()
	})
	dispatcher := eventhandlers.NewNotificationDispatcher(f, c.users, services.NewNotificationFanout(), c.logger)
	for _, name := range dispatcher.SubscribedEvents() {
		c.bus.Subscribe(name, dispatcher)
	}
}

// RunEventBus dispatches committed events until ctx is cancelled. The
// returned channel is closed once the queue is drained.
func (c *CompositionRoot) RunEventBus(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.bus.Run(ctx)
	}()
	return done
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reportUoWFactory() commands.ReportUoWFactory {
	return FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCollectionRequestCommandHandler() commands.CreateCollectionRequestCommandHandler {
	return commands.NewCreateCollectionRequestCommandHandler(c.requestUoWFactory(), c.users)
}

func (c *CompositionRoot) CreateUpdateCollectionRequestCommandHandler() commands.UpdateCollectionRequestCommandHandler {
	return commands.NewUpdateCollectionRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateAssignCollectionRequestCommandHandler() commands.AssignCollectionRequestCommandHandler {
	return commands.NewAssignCollectionRequestCommandHandler(c.requestUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAssignPendingRequestCommandHandler() commands.AssignPendingRequestCommandHandler {
	return commands.NewAssignPendingRequestCommandHandler(c.requestUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateTransitionCollectionRequestCommandHandler() commands.TransitionCollectionRequestCommandHandler {
	return commands.NewTransitionCollectionRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateRecordCollectionProofCommandHandler() commands.RecordCollectionProofCommandHandler {
	return commands.NewRecordCollectionProofCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateRateCollectionCommandHandler() commands.RateCollectionCommandHandler {
	return commands.NewRateCollectionCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateScheduleRouteCommandHandler() commands.ScheduleRouteCommandHandler {
	return commands.NewScheduleRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	return commands.NewStartRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	return commands.NewCompleteRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCancelRouteCommandHandler() commands.CancelRouteCommandHandler {
	return commands.NewCancelRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateArriveAtStopCommandHandler() commands.ArriveAtStopCommandHandler {
	return commands.NewArriveAtStopCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCompleteStopCommandHandler() commands.CompleteStopCommandHandler {
	return commands.NewCompleteStopCommandHandler(c.routeUoWFactory(), c.config.RouteStrictStopOrder)
}

func (c *CompositionRoot) CreateSkipStopCommandHandler() commands.SkipStopCommandHandler {
	return commands.NewSkipStopCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateVehicleLocationCommandHandler() commands.UpdateVehicleLocationCommandHandler {
	return commands.NewUpdateVehicleLocationCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateWasteReportCommandHandler() commands.CreateWasteReportCommandHandler {
	return commands.NewCreateWasteReportCommandHandler(c.reportUoWFactory())
}

func (c *CompositionRoot) CreateUpdateWasteReportCommandHandler() commands.UpdateWasteReportCommandHandler {
	return commands.NewUpdateWasteReportCommandHandler(c.reportUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateGetCollectionRequestQueryHandler() queries.GetCollectionRequestQueryHandler {
	return queries.NewGetCollectionRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackCollectionRequestQueryHandler() queries.TrackCollectionRequestQueryHandler {
	return queries.NewTrackCollectionRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListResidentRequestsQueryHandler() queries.ListResidentRequestsQueryHandler {
	return queries.NewListResidentRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCompanyRequestsQueryHandler() queries.ListCompanyRequestsQueryHandler {
	return queries.NewListCompanyRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCollectionReceiptQueryHandler() queries.GetCollectionReceiptQueryHandler {
	return queries.NewGetCollectionReceiptQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverRouteQueryHandler() queries.GetDriverRouteQueryHandler {
	return queries.NewGetDriverRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteStopQueryHandler() queries.GetRouteStopQueryHandler {
	return queries.NewGetRouteStopQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriverRoutesQueryHandler() queries.ListDriverRoutesQueryHandler {
	return queries.NewListDriverRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListResidentReportsQueryHandler() queries.ListResidentReportsQueryHandler {
	return queries.NewListResidentReportsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWasteReportQueryHandler() queries.GetWasteReportQueryHandler {
	return queries.NewGetWasteReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRouteStopsQueryHandler() queries.ListRouteStopsQueryHandler {
	return queries.NewListRouteStopsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateRequest:     c.CreateCreateCollectionRequestCommandHandler(),
		UpdateRequest:     c.CreateUpdateCollectionRequestCommandHandler(),
		AssignRequest:     c.CreateAssignCollectionRequestCommandHandler(),
		TransitionRequest: c.CreateTransitionCollectionRequestCommandHandler(),
		RecordProof:       c.CreateRecordCollectionProofCommandHandler(),
		RateCollection:    c.CreateRateCollectionCommandHandler(),
		ScheduleRoute:     c.CreateScheduleRouteCommandHandler(),
		StartRoute:        c.CreateStartRouteCommandHandler(),
		CompleteRoute:     c.CreateCompleteRouteCommandHandler(),
		CancelRoute:       c.CreateCancelRouteCommandHandler(),
		ArriveAtStop:      c.CreateArriveAtStopCommandHandler(),
		CompleteStop:      c.CreateCompleteStopCommandHandler(),
		SkipStop:          c.CreateSkipStopCommandHandler(),
		UpdateLocation:    c.CreateUpdateVehicleLocationCommandHandler(),
		CreateReport:      c.CreateCreateWasteReportCommandHandler(),
		UpdateReport:      c.CreateUpdateWasteReportCommandHandler(),
		MarkRead:          c.CreateMarkNotificationReadCommandHandler(),
		MarkAllRead:       c.CreateMarkAllNotificationsReadCommandHandler(),

		GetRequest:           c.CreateGetCollectionRequestQueryHandler(),
		TrackRequest:         c.CreateTrackCollectionRequestQueryHandler(),
		ListResidentRequests: c.CreateListResidentRequestsQueryHandler(),
		ListCompanyRequests:  c.CreateListCompanyRequestsQueryHandler(),
		GetReceipt:           c.CreateGetCollectionReceiptQueryHandler(),
		GetRoute:             c.CreateGetRouteQueryHandler(),
		GetStop:              c.CreateGetRouteStopQueryHandler(),
		GetDriverRoute:       c.CreateGetDriverRouteQueryHandler(),
		ListDriverRoutes:     c.CreateListDriverRoutesQueryHandler(),
		ListRouteStops:       c.CreateListRouteStopsQueryHandler(),
		ListResidentReports:  c.CreateListResidentReportsQueryHandler(),
		GetReport:            c.CreateGetWasteReportQueryHandler(),
		ListNotifications:    c.CreateListNotificationsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignPendingRequestCommandHandler(),
		c.config.AutoAssignSchedule,
		c.logger,
	)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncReportUoWFactory func() commands.ReportUoW

func (f FuncReportUoWFactory) Create() commands.ReportUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncEventNotificationUoWFactory func() eventhandlers.NotificationUoW

func (f FuncEventNotificationUoWFactory) Create() eventhandlers.NotificationUoW {
	return f()
}
