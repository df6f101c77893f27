package postgres

import (
	"wasteflow/internal/adapters/out/postgres/companyrepo"
	"wasteflow/internal/adapters/out/postgres/notificationrepo"
	"wasteflow/internal/adapters/out/postgres/recordrepo"
	"wasteflow/internal/adapters/out/postgres/reportrepo"
	"wasteflow/internal/adapters/out/postgres/requestrepo"
	"wasteflow/internal/adapters/out/postgres/routerepo"
	"wasteflow/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table the service reads or writes, parents first.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&companyrepo.CompanyDTO{},
		&companyrepo.VehicleDTO{},
		&companyrepo.DriverDTO{},
		&requestrepo.CollectionRequestDTO{},
		&recordrepo.CollectionRecordDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StopDTO{},
		&notificationrepo.NotificationDTO{},
		&reportrepo.WasteReportDTO{},
	}
}

// Migrate creates or alters the tables with GORM's AutoMigrate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
