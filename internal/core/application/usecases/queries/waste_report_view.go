package queries

import (
	"time"

	"wasteflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type WasteReportView struct {
	ID                kernel.UUID
	ReportType        string
	Priority          string
	Description       string
	LocationAddress   string
	Latitude          *float64
	Longitude         *float64
	Status            string
	AssignedCompanyID *kernel.UUID
	Response          string
	ResolvedAt        *time.Time
	ReportedAt        time.Time
	UpdatedAt         time.Time
}

const selectWasteReports = `
	SELECT
		id, report_type, priority, description, location_address, latitude,
		longitude, status, assigned_company_id, response, resolved_at,
		reported_at, updated_at
	FROM waste_reports`

type wasteReportRow struct {
	ID                uuid.UUID
	ReportType        string
	Priority          string
	Description       string
	LocationAddress   string
	Latitude          *float64
	Longitude         *float64
	Status            string
	AssignedCompanyID *uuid.UUID
	Response          string
	ResolvedAt        *time.Time
	ReportedAt        time.Time
	UpdatedAt         time.Time
}

func (r wasteReportRow) toView() WasteReportView {
	return WasteReportView{
		ID:                kernel.UUIDFromGoogle(r.ID),
		ReportType:        r.ReportType,
		Priority:          r.Priority,
		Description:       r.Description,
		LocationAddress:   r.LocationAddress,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		Status:            r.Status,
		AssignedCompanyID: optionalUUID(r.AssignedCompanyID),
		Response:          r.Response,
		ResolvedAt:        r.ResolvedAt,
		ReportedAt:        r.ReportedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
