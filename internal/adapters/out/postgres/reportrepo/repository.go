// Package reportrepo persists resident waste reports.
package reportrepo

import (
	"context"
	"errors"

	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormWasteReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWasteReportRepository(db *gorm.DB, tracker aggregateTracker) *GormWasteReportRepository {
	return &GormWasteReportRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWasteReportRepository) Add(ctx context.Context, aggregate *complaint.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWasteReportRepository) Update(ctx context.Context, aggregate *complaint.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WasteReportDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "reported_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reportId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWasteReportRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WasteReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reportId", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
