package http

import (
	"net/http"
	"time"

	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetDriverRoute handles GET /api/v1/driver/route.
func (s *Server) GetDriverRoute(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDriverRouteQuery(principal.UserID)
	if err != nil {
		return err
	}
	view, err := s.h.GetDriverRoute.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoute(view))
}

// ListDriverRoutesToday handles GET /api/v1/driver/routes/today. Today is
// the calendar day in the service time zone.
func (s *Server) ListDriverRoutesToday(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListDriverRoutesQuery(principal.UserID, time.Now())
	if err != nil {
		return err
	}
	views, err := s.h.ListDriverRoutes.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	routes := make([]Route, 0, len(views))
	for _, v := range views {
		routes = append(routes, toRoute(v))
	}
	return c.JSON(http.StatusOK, routes)
}

// StartDriverRoute handles POST /api/v1/driver/route/start.
func (s *Server) StartDriverRoute(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewStartRouteCommand(commands.RouteOfDriver(principal.UserID))
	if err != nil {
		return err
	}
	routeID, err := s.h.StartRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.route(c, routeID)
}

// CompleteDriverRoute handles POST /api/v1/driver/route/complete.
func (s *Server) CompleteDriverRoute(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteRouteCommand(commands.RouteOfDriver(principal.UserID))
	if err != nil {
		return err
	}
	routeID, err := s.h.CompleteRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.route(c, routeID)
}

// ArriveAtStop handles POST /api/v1/driver/stops/{id}/arrive.
func (s *Server) ArriveAtStop(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewArriveAtStopCommand(id, principal.UserID)
	if err != nil {
		return err
	}
	if err := s.h.ArriveAtStop.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.stop(c, id)
}

// CompleteStop handles POST /api/v1/driver/stops/{id}/complete.
func (s *Server) CompleteStop(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteStopCommand(id, principal.UserID)
	if err != nil {
		return err
	}
	if err := s.h.CompleteStop.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.stop(c, id)
}

// SkipStop handles POST /api/v1/driver/stops/{id}/skip.
func (s *Server) SkipStop(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body SkipStop
	if err := bindBody(c, &body); err != nil {
		return err
	}
	cmd, err := commands.NewSkipStopCommand(id, principal.UserID, body.Notes)
	if err != nil {
		return err
	}
	if err := s.h.SkipStop.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.stop(c, id)
}

// RecordCollectionProof handles POST /api/v1/driver/requests/{id}/proof.
func (s *Server) RecordCollectionProof(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body CollectionProof
	if err := bindBody(c, &body); err != nil {
		return err
	}
	cmd, err := commands.NewRecordCollectionProofCommand(
		id,
		principal.UserID,
		body.ActualWeightKg,
		body.PhotoProofURL,
		body.ResidentSignature,
		body.DriverNotes,
	)
	if err != nil {
		return err
	}
	if err := s.h.RecordProof.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.requestDetail(c, id)
}

// UpdateVehicleLocation handles POST /api/v1/driver/location.
func (s *Server) UpdateVehicleLocation(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	var body Coordinates
	if err := bindBody(c, &body); err != nil {
		return err
	}
	location, err := kernel.NewLocation(body.Latitude, body.Longitude)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateVehicleLocationCommand(principal.UserID, location)
	if err != nil {
		return err
	}
	if err := s.h.UpdateLocation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
