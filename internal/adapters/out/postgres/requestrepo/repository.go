// Package requestrepo persists collection requests with GORM.
package requestrepo

import (
	"context"
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCollectionRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCollectionRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormCollectionRequestRepository {
	return &GormCollectionRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCollectionRequestRepository) Add(ctx context.Context, aggregate *request.CollectionRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCollectionRequestRepository) Update(ctx context.Context, aggregate *request.CollectionRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CollectionRequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("collectionRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCollectionRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.CollectionRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CollectionRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collectionRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCollectionRequestRepository) GetFirstPending(ctx context.Context) (*request.CollectionRequest, error) {
	var dto CollectionRequestDTO
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&dto, "status = ?", request.Pending.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collectionRequest", "first in pending status")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCollectionRequestRepository) CountActiveByVehicle(ctx context.Context) (map[kernel.UUID]int, error) {
	var rows []struct {
		VehicleID uuid.UUID
		Total     int
	}
	if err := r.db.WithContext(ctx).
		Model(&CollectionRequestDTO{}).
		Select("assigned_vehicle_id AS vehicle_id, COUNT(*) AS total").
		Where("assigned_vehicle_id IS NOT NULL AND status IN ?",
			[]string{request.Assigned.String(), request.InProgress.String()}).
		Group("assigned_vehicle_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	load := make(map[kernel.UUID]int, len(rows))
	for _, row := range rows {
		load[kernel.UUIDFromGoogle(row.VehicleID)] = row.Total
	}
	return load, nil
}
