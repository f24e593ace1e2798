package request

type CreateFlightRequest struct {
	FlightNumber  string  `json:"flight_number" validate:"required,min=3,max=10"`
	AircraftID    string  `json:"aircraft_id" validate:"required,uuid4"`
	Origin        string  `json:"origin" validate:"required,len=3,alpha"`
	Destination   string  `json:"destination" validate:"required,len=3,alpha"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	ArrivalTime   string  `json:"arrival_time" validate:"required"`
	EconomyPrice  float64 `json:"economy_price" validate:"required,gt=0"`
	BusinessPrice float64 `json:"business_price" validate:"required,gt=0"`
	FirstPrice    float64 `json:"first_price" validate:"required,gt=0"`
}

type UpdateFlightRequest struct {
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=scheduled boarding delayed cancelled completed"`
	DepartureTime *string  `json:"departure_time,omitempty"`
	ArrivalTime   *string  `json:"arrival_time,omitempty"`
	EconomyPrice  *float64 `json:"economy_price,omitempty" validate:"omitempty,gt=0"`
	BusinessPrice *float64 `json:"business_price,omitempty" validate:"omitempty,gt=0"`
	FirstPrice    *float64 `json:"first_price,omitempty" validate:"omitempty,gt=0"`
}

type CreateAircraftRequest struct {
	Model              string `json:"model" validate:"required,min=2,max=100"`
	RegistrationNumber string `json:"registration_number" validate:"required,min=3,max=20"`
	Capacity           int    `json:"capacity" validate:"required,min=1,max=1000"`
	Status             string `json:"status,omitempty" validate:"omitempty,oneof=active maintenance retired"`
}

type UpdateAircraftRequest struct {
	Model    *string `json:"model,omitempty" validate:"omitempty,min=2,max=100"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,min=1,max=1000"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=active maintenance retired"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}
