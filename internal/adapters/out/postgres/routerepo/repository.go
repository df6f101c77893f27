// Package routerepo persists routes and their stops as one aggregate.
package routerepo

import (
	"context"
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/route"
	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
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

func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var exists int64
	if err := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return errs.NewObjectNotFoundError("routeId", aggregate.ID().String())
	}

	// stops are children of the route; save them in the same statement set
	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, id.String(), "id = ?", id.Bytes())
}

func (r *GormRouteRepository) GetInStatus(ctx context.Context, id kernel.UUID, status route.Status) (*route.Route, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return r.first(ctx, id.String(), "id = ? AND status = ?", id.Bytes(), status.String())
}

func (r *GormRouteRepository) GetByStopID(ctx context.Context, stopID kernel.UUID) (*route.Route, error) {
	if err := stopID.Validate(); err != nil {
		return nil, err
	}

	owner := r.db.Model(&StopDTO{}).Select("route_id").Where("id = ?", stopID.Bytes())
	rt, err := r.first(ctx, stopID.String(), "id = (?)", owner)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundError("stopId", stopID.String())
	}
	return rt, err
}

func (r *GormRouteRepository) GetFirstForDriver(ctx context.Context, driverID kernel.UUID, status route.Status) (*route.Route, error) {
	if err := errors.Join(driverID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).
		Preload("Stops", orderedStops).
		Order("scheduled_date ASC, scheduled_start_time ASC").
		First(&dto, "driver_id = ? AND status = ?", driverID.Bytes(), status.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", "driver "+driverID.String()+" has no "+status.String()+" route")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRouteRepository) first(ctx context.Context, notFoundID string, query any, args ...any) (*route.Route, error) {
	var dto RouteDTO
	if err := r.db.WithContext(ctx).
		Preload("Stops", orderedStops).
		Where(query, args...).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("routeId", notFoundID)
		}
		return nil, err
	}

	return toDomain(dto)
}

func orderedStops(db *gorm.DB) *gorm.DB {
	return db.Order("sequence_number ASC")
}
