package ports

import (
	"context"

	"wasteflow/internal/core/domain/model/kernel"
)

// UserType is the account kind issued by the identity service.
type UserType string

const (
	Resident         UserType = "resident"
	WasteCompany     UserType = "waste_company"
	CentralAuthority UserType = "central_authority"
)

// Role slugs used by the access gate and the notification fan-out.
const (
	RoleSupervisor = "supervisor"
	RoleDriver     = "driver"
)

// UserProfile is the part of an identity record this service needs.
type UserProfile struct {
	ID       kernel.UUID
	UserType UserType
	RoleSlug string
	ZoneID   *kernel.UUID
	IsActive bool
}

// UserDirectory is a read-only view of the identity service.
type UserDirectory interface {
	GetProfile(ctx context.Context, userID kernel.UUID) (UserProfile, error)

	// ListActiveIDsByType returns active users of the given type.
	ListActiveIDsByType(ctx context.Context, userType UserType) ([]kernel.UUID, error)

	// ListActiveIDsByRole returns active users holding the role slug.
	ListActiveIDsByRole(ctx context.Context, roleSlug string) ([]kernel.UUID, error)
}
