// Package userrepo is the read-only view of the identity service's users
// table.
package userrepo

import (
	"context"
	"errors"

	"wasteflow/internal/adapters/out/postgres/pgtypes"
	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/ports"
	"wasteflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserType string     `gorm:"type:varchar(30);not null;index"`
	RoleSlug string     `gorm:"type:varchar(50);index"`
	ZoneID   *uuid.UUID `gorm:"type:uuid"`
	IsActive bool       `gorm:"not null;default:true"`
}

func (UserDTO) TableName() string {
	return "users"
}

type GormUserDirectory struct {
	db *gorm.DB
}

var _ ports.UserDirectory = (*GormUserDirectory)(nil)

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

func (d *GormUserDirectory) GetProfile(ctx context.Context, userID kernel.UUID) (ports.UserProfile, error) {
	if err := userID.Validate(); err != nil {
		return ports.UserProfile{}, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserProfile{}, errs.NewObjectNotFoundError("userId", userID.String())
		}
		return ports.UserProfile{}, err
	}

	zoneID, err := pgtypes.ToUUIDPtr(dto.ZoneID)
	if err != nil {
		return ports.UserProfile{}, err
	}
	return ports.UserProfile{
		ID:       userID,
		UserType: ports.UserType(dto.UserType),
		RoleSlug: dto.RoleSlug,
		ZoneID:   zoneID,
		IsActive: dto.IsActive,
	}, nil
}

func (d *GormUserDirectory) ListActiveIDsByType(ctx context.Context, userType ports.UserType) ([]kernel.UUID, error) {
	return d.pluckIDs(ctx, "user_type = ? AND is_active", string(userType))
}

func (d *GormUserDirectory) ListActiveIDsByRole(ctx context.Context, roleSlug string) ([]kernel.UUID, error) {
	return d.pluckIDs(ctx, "role_slug = ? AND is_active", roleSlug)
}

func (d *GormUserDirectory) pluckIDs(ctx context.Context, query string, arg any) ([]kernel.UUID, error) {
	var ids []uuid.UUID
	if err := d.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where(query, arg).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return pgtypes.ToUUIDs(ids)
}
