package request

// PassengerInput either references a saved passenger by id or describes a
// new one. SeatNumber is an optional client-side preselection.
type PassengerInput struct {
	PassengerID    *string `json:"passenger_id,omitempty" validate:"omitempty,uuid4"`
	FirstName      string  `json:"first_name" validate:"required_without=PassengerID,omitempty,min=1,max=100"`
	LastName       string  `json:"last_name" validate:"required_without=PassengerID,omitempty,min=1,max=100"`
	DateOfBirth    *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PassportNumber *string `json:"passport_number,omitempty" validate:"omitempty,min=5,max=20"`
	SeatNumber     *string `json:"seat_number,omitempty" validate:"omitempty,min=2,max=4"`
	SaveForLater   bool    `json:"save_for_later,omitempty"`
}

type CreateBookingRequest struct {
	FlightID   string           `json:"flight_id" validate:"required,uuid4"`
	FareClass  string           `json:"fare_class,omitempty" validate:"omitempty,oneof=economy business first"`
	Passengers []PassengerInput `json:"passengers" validate:"required,min=1,max=9,dive"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed missed"`
}
