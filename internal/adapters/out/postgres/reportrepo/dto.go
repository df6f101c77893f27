package reportrepo

import (
	"time"

	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/core/domain/model/complaint"

	"github.com/google/uuid"
)

type WasteReportDTO struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	ResidentID        *uuid.UUID                  `gorm:"type:uuid;index"`
	ReportType        string                      `gorm:"type:varchar(30);not null"`
	Priority          string                      `gorm:"type:varchar(20);not null;default:'medium'"`
	Description       string                      `gorm:"type:text;not null"`
	LocationAddress   string                      `gorm:"type:text;not null"`
	Location          pgtypes.NullableLocationDTO `gorm:"embedded"`
	Status            string                      `gorm:"type:varchar(20);not null;index"`
	AssignedCompanyID *uuid.UUID                  `gorm:"type:uuid;index"`
	Response          string                      `gorm:"type:text"`
	ResolvedAt        *time.Time
	ReportedAt        time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (WasteReportDTO) TableName() string {
	return "waste_reports"
}

func fromDomain(r *complaint.Report) WasteReportDTO {
	return WasteReportDTO{
		ID:                r.ID().Bytes(),
		ResidentID:        pgtypes.FromUUIDPtr(r.ResidentID()),
		ReportType:        string(r.ReportType()),
		Priority:          string(r.Priority()),
		Description:       r.Description(),
		LocationAddress:   r.Address(),
		Location:          pgtypes.FromOptionalLocation(r.Location()),
		Status:            r.Status().String(),
		AssignedCompanyID: pgtypes.FromUUIDPtr(r.AssignedCompanyID()),
		Response:          r.Response(),
		ResolvedAt:        r.ResolvedAt(),
		ReportedAt:        r.ReportedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func toDomain(dto WasteReportDTO) (*complaint.Report, error) {
	id, err := pgtypes.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	residentID, err := pgtypes.ToUUIDPtr(dto.ResidentID)
	if err != nil {
		return nil, err
	}
	companyID, err := pgtypes.ToUUIDPtr(dto.AssignedCompanyID)
	if err != nil {
		return nil, err
	}
	loc, err := dto.Location.ToDomain()
	if err != nil {
		return nil, err
	}
	status, err := complaint.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return complaint.RestoreReport(
		id,
		residentID,
		complaint.ReportType(dto.ReportType),
		complaint.Priority(dto.Priority),
		dto.Description,
		dto.LocationAddress,
		loc,
		status,
		companyID,
		dto.Response,
		dto.ResolvedAt,
		dto.ReportedAt,
		dto.UpdatedAt,
	)
}
