package entity

type AircraftStatus string

const (
	AircraftStatusActive      AircraftStatus = "active"
	AircraftStatusMaintenance AircraftStatus = "maintenance"
	AircraftStatusRetired     AircraftStatus = "retired"
)

type Aircraft struct {
	Base
	Model              string         `db:"model"`
	RegistrationNumber string         `db:"registration_number"`
	Capacity           int            `db:"capacity"`
	Status             AircraftStatus `db:"status"`
}
