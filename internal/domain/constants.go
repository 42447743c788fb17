package domain

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Vehicle validation constants
const (
	MinVehicleNameLength  = 2
	MaxVehicleNameLength  = 150
	MinVehicleBrandLength = 2
	MaxVehicleBrandLength = 100
	MinVehicleYear        = 1900
	MaxVehicleYear        = 2100
)

// Administrator validation constants
const (
	MaxEmailLength    = 255
	MinPasswordLength = 8
	MaxPasswordLength = 50
)
