package http

import (
	"errors"
	"net/http"

	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"

	"github.com/labstack/echo/v4"
)

// CreateCollectionRequest handles POST /api/v1/resident/requests.
func (s *Server) CreateCollectionRequest(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	var body NewCollectionRequest
	if err := bindBody(c, &body); err != nil {
		return err
	}

	wasteType, wasteErr := request.ParseWasteType(body.WasteType)
	window, windowErr := request.ParseTimeWindow(body.PreferredTime)
	location, locationErr := kernel.NewOptionalLocation(body.Latitude, body.Longitude)
	if err := errors.Join(wasteErr, windowErr, locationErr); err != nil {
		return err
	}

	bags := 1
	if body.QuantityBags != nil {
		bags = *body.QuantityBags
	}
	details, err := request.NewDetails(
		wasteType,
		bags,
		body.EstimatedWeightKg,
		body.PreferredDate.Time,
		window,
		body.Address,
		location,
		body.SpecialInstructions,
	)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCollectionRequestCommand(id, principal.UserID, details)
	if err != nil {
		return err
	}
	if err := s.h.CreateRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// UpdateCollectionRequest handles PATCH /api/v1/resident/requests/{id}.
// Omitted fields keep their value; only pending requests can be edited.
func (s *Server) UpdateCollectionRequest(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body CollectionRequestUpdate
	if err := bindBody(c, &body); err != nil {
		return err
	}

	change, err := body.toChange()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateCollectionRequestCommand(id, principal.UserID, change)
	if err != nil {
		return err
	}
	if err := s.h.UpdateRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.requestDetail(c, id)
}

// ListResidentRequests handles GET /api/v1/resident/requests.
func (s *Server) ListResidentRequests(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	var status string
	if err := queryParam(c, "status", &status); err != nil {
		return err
	}

	query, err := queries.NewListResidentRequestsQuery(principal.UserID, status)
	if err != nil {
		return err
	}
	views, err := s.h.ListResidentRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCollectionRequests(views))
}

// TrackCollectionRequest handles GET /api/v1/resident/requests/{id}/track.
func (s *Server) TrackCollectionRequest(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewTrackCollectionRequestQuery(id, principal.UserID)
	if err != nil {
		return err
	}
	t, err := s.h.TrackRequest.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Tracking{
		Status:           t.Status,
		StatusDisplay:    t.StatusDisplay,
		EstimatedArrival: t.EstimatedArrival,
		CollectedAt:      t.CollectedAt,
		VehiclePlate:     t.VehiclePlate,
		VehicleLatitude:  t.VehicleLatitude,
		VehicleLongitude: t.VehicleLongitude,
		VehicleSeenAt:    t.VehicleSeenAt,
	})
}

// CancelCollectionRequest handles POST /api/v1/resident/requests/{id}/cancel.
// Residents can only cancel their own requests.
func (s *Server) CancelCollectionRequest(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	owner := principal.UserID
	cmd, err := commands.NewTransitionCollectionRequestCommand(id, request.Cancelled.String(), &owner)
	if err != nil {
		return err
	}
	if err := s.h.TransitionRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.requestDetail(c, id)
}

// RateCollection handles POST /api/v1/resident/requests/{id}/rating.
func (s *Server) RateCollection(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body Rating
	if err := bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRateCollectionCommand(id, principal.UserID, body.Rating, body.Feedback)
	if err != nil {
		return err
	}
	if err := s.h.RateCollection.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.requestDetail(c, id)
}

// CreateWasteReport handles POST /api/v1/resident/reports.
func (s *Server) CreateWasteReport(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	var body NewWasteReport
	if err := bindBody(c, &body); err != nil {
		return err
	}

	location, err := kernel.NewOptionalLocation(body.Latitude, body.Longitude)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateWasteReportCommand(
		id,
		principal.UserID,
		complaint.ReportType(body.ReportType),
		complaint.Priority(body.Priority),
		body.Description,
		body.LocationAddress,
		location,
	)
	if err != nil {
		return err
	}
	if err := s.h.CreateReport.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// ListResidentReports handles GET /api/v1/resident/reports.
func (s *Server) ListResidentReports(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListResidentReportsQuery(principal.UserID)
	if err != nil {
		return err
	}
	views, err := s.h.ListResidentReports.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	reports := make([]WasteReport, 0, len(views))
	for _, v := range views {
		reports = append(reports, toWasteReport(v))
	}
	return c.JSON(http.StatusOK, reports)
}

// GetResidentReport handles GET /api/v1/resident/reports/{id}.
func (s *Server) GetResidentReport(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	owner := principal.UserID
	query, err := queries.NewGetWasteReportQuery(id, &owner)
	if err != nil {
		return err
	}
	view, err := s.h.GetReport.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWasteReport(view))
}
