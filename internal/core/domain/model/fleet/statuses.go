package fleet

type CompanyStatus string

const (
	CompanyPending   CompanyStatus = "pending"
	CompanyApproved  CompanyStatus = "approved"
	CompanySuspended CompanyStatus = "suspended"
	CompanyRejected  CompanyStatus = "rejected"
)

type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleInactive    VehicleStatus = "inactive"
	VehicleMaintenance VehicleStatus = "maintenance"
)

type DriverStatus string

const (
	DriverOnDuty  DriverStatus = "on_duty"
	DriverOffDuty DriverStatus = "off_duty"
	DriverOnLeave DriverStatus = "on_leave"
)
