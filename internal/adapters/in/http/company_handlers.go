package http

import (
	"fmt"
	"net/http"

	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"

	"github.com/labstack/echo/v4"
)

// ListCompanyRequests handles GET /api/v1/company/requests.
func (s *Server) ListCompanyRequests(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	var status string
	if err := queryParam(c, "status", &status); err != nil {
		return err
	}

	query, err := queries.NewListCompanyRequestsQuery(principal.UserID, status)
	if err != nil {
		return err
	}
	views, err := s.h.ListCompanyRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCollectionRequests(views))
}

// AssignCollectionRequest handles POST /api/v1/company/requests/{id}/assign.
// Without a vehicle in the body the assignment policy picks one from the
// company's fleet.
func (s *Server) AssignCollectionRequest(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body Assignment
	if err := bindBody(c, &body); err != nil {
		return err
	}

	companyUser := principal.UserID
	cmd, err := commands.NewAssignCollectionRequestCommand(
		id,
		&companyUser,
		fromAPIUUID(body.VehicleID),
		fromAPIUUID(body.DriverID),
	)
	if err != nil {
		return err
	}
	if err := s.h.AssignRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.requestDetail(c, id)
}

// TransitionCollectionRequest handles PUT /api/v1/company/requests/{id}/status.
func (s *Server) TransitionCollectionRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body StatusChange
	if err := bindBody(c, &body); err != nil {
		return err
	}
	return s.transition(c, id, body.Status)
}

// CompleteCollectionRequest handles POST /api/v1/company/requests/{id}/complete.
func (s *Server) CompleteCollectionRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.transition(c, id, request.Completed.String())
}

func (s *Server) transition(c echo.Context, id kernel.UUID, status string) error {
	cmd, err := commands.NewTransitionCollectionRequestCommand(id, status, nil)
	if err != nil {
		return err
	}
	if err := s.h.TransitionRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.requestDetail(c, id)
}

// DownloadCollectionReceipt handles GET /api/v1/company/requests/{id}/receipt.
func (s *Server) DownloadCollectionReceipt(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCollectionReceiptQuery(id, principal.UserID)
	if err != nil {
		return err
	}
	receipt, err := s.h.GetReceipt.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	pdf, err := s.receipts.Render(receipt)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, id.String()))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// ScheduleRoute handles POST /api/v1/company/routes.
func (s *Server) ScheduleRoute(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	var body NewRoute
	if err := bindBody(c, &body); err != nil {
		return err
	}

	stops := make([]commands.PlannedStop, 0, len(body.Stops))
	for _, st := range body.Stops {
		location, err := kernel.NewLocation(st.Latitude, st.Longitude)
		if err != nil {
			return err
		}
		stops = append(stops, commands.PlannedStop{
			SequenceNumber: st.SequenceNumber,
			Address:        st.Address,
			Location:       location,
			ResidentID:     fromAPIUUID(st.ResidentID),
			RequestID:      fromAPIUUID(st.RequestID),
		})
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewScheduleRouteCommand(
		id,
		principal.UserID,
		body.Name,
		fromAPIUUID(body.ZoneID),
		fromAPIUUID(body.VehicleID),
		fromAPIUUID(body.DriverID),
		body.ScheduledDate.Time,
		body.ScheduledStartTime,
		stops,
	)
	if err != nil {
		return err
	}
	if err := s.h.ScheduleRoute.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// StartRoute handles POST /api/v1/company/routes/{id}/start.
func (s *Server) StartRoute(c echo.Context) error {
	target, _, err := companyRoute(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewStartRouteCommand(target)
	if err != nil {
		return err
	}
	routeID, err := s.h.StartRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.route(c, routeID)
}

// CompleteRoute handles POST /api/v1/company/routes/{id}/complete.
func (s *Server) CompleteRoute(c echo.Context) error {
	target, _, err := companyRoute(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteRouteCommand(target)
	if err != nil {
		return err
	}
	routeID, err := s.h.CompleteRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.route(c, routeID)
}

// CancelRoute handles POST /api/v1/company/routes/{id}/cancel.
func (s *Server) CancelRoute(c echo.Context) error {
	target, id, err := companyRoute(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelRouteCommand(target)
	if err != nil {
		return err
	}
	if err := s.h.CancelRoute.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.route(c, id)
}

// ListRouteStops handles GET /api/v1/company/routes/{id}/stops.
func (s *Server) ListRouteStops(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListRouteStopsQuery(id, principal.UserID)
	if err != nil {
		return err
	}
	stops, err := s.h.ListRouteStops.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStops(stops))
}

func companyRoute(c echo.Context) (commands.RouteTarget, kernel.UUID, error) {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return commands.RouteTarget{}, kernel.UUID{}, err
	}
	id, err := pathID(c)
	if err != nil {
		return commands.RouteTarget{}, kernel.UUID{}, err
	}
	return commands.RouteByID(id, principal.UserID), id, nil
}
