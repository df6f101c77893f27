package http

import (
	"net/http"

	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/application/usecases/queries"
	"wasteflow/internal/core/domain/model/complaint"

	"github.com/labstack/echo/v4"
)

// UpdateWasteReport handles PATCH /api/v1/reports/{id}.
func (s *Server) UpdateWasteReport(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body WasteReportUpdate
	if err := bindBody(c, &body); err != nil {
		return err
	}

	update := complaint.Update{
		Response:          body.Response,
		AssignedCompanyID: fromAPIUUID(body.AssignedCompanyID),
	}
	if body.Status != nil {
		status, err := complaint.ParseStatus(*body.Status)
		if err != nil {
			return err
		}
		update.Status = &status
	}

	cmd, err := commands.NewUpdateWasteReportCommand(id, update)
	if err != nil {
		return err
	}
	if err := s.h.UpdateReport.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	query, err := queries.NewGetWasteReportQuery(id, nil)
	if err != nil {
		return err
	}
	view, err := s.h.GetReport.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWasteReport(view))
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	var unreadOnly bool
	var limit int
	if err := queryParam(c, "unread_only", &unreadOnly); err != nil {
		return err
	}
	if err := queryParam(c, "limit", &limit); err != nil {
		return err
	}

	query, err := queries.NewListNotificationsQuery(principal.UserID, unreadOnly, limit)
	if err != nil {
		return err
	}
	page, err := s.h.ListNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNotificationPage(page))
}

// MarkNotificationRead handles PUT /api/v1/notifications/{id}/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkNotificationReadCommand(id, principal.UserID)
	if err != nil {
		return err
	}
	if err := s.h.MarkRead.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c echo.Context) error {
	principal, err := PrincipalFrom(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkAllNotificationsReadCommand(principal.UserID)
	if err != nil {
		return err
	}
	updated, err := s.h.MarkAllRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MarkedRead{Updated: updated})
}
