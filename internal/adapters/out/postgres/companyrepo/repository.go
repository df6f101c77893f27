// Package companyrepo reads the company registry: companies, their vehicles
// and their drivers. The only write is the vehicle's last known location.
package companyrepo

import (
	"context"
	"errors"

	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/core/domain/model/fleet"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "companyId", id.String(), "id = ?", id.Bytes())
}

func (r *GormCompanyRepository) GetByOwner(ctx context.Context, userID kernel.UUID) (*fleet.Company, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "ownerUserId", userID.String(), "owner_user_id = ?", userID.Bytes())
}

func (r *GormCompanyRepository) GetByVehicle(ctx context.Context, vehicleID kernel.UUID) (*fleet.Company, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}
	owner := r.db.Model(&VehicleDTO{}).Select("company_id").Where("id = ?", vehicleID.Bytes())
	return r.first(ctx, "vehicleId", vehicleID.String(), "id = (?)", owner)
}

func (r *GormCompanyRepository) ListApproved(ctx context.Context) ([]*fleet.Company, error) {
	var dtos []CompanyDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Preload("Drivers").
		Where("status = ?", string(fleet.CompanyApproved)).
		Order("name ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	companies := make([]*fleet.Company, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}

func (r *GormCompanyRepository) GetDriverByUserID(ctx context.Context, userID kernel.UUID) (*fleet.Driver, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driverUserId", userID.String())
		}
		return nil, err
	}
	return driverToDomain(dto)
}

func (r *GormCompanyRepository) UpdateVehicleLocation(ctx context.Context, vehicle *fleet.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	loc := pgtypes.FromOptionalLocation(vehicle.LastLocation())
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ?", vehicle.ID().Bytes()).
		Updates(map[string]any{
			"last_latitude":    loc.Latitude,
			"last_longitude":   loc.Longitude,
			"last_location_at": vehicle.LastLocationAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicleId", vehicle.ID().String())
	}
	return nil
}

func (r *GormCompanyRepository) first(ctx context.Context, param string, id string, query any, args ...any) (*fleet.Company, error) {
	var dto CompanyDTO
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Preload("Drivers").
		Where(query, args...).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}
	return toDomain(dto)
}
