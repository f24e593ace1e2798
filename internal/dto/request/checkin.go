package request

type CheckInSearchRequest struct {
	BookingReference string `json:"booking_reference" validate:"required,min=6,max=30"`
	LastName         string `json:"last_name" validate:"required,min=1,max=100"`
}

type CheckInConfirmRequest struct {
	BookingID   string   `json:"booking_id" validate:"required,uuid4"`
	SeatNumbers []string `json:"seat_numbers" validate:"required,min=1,dive,required,min=2,max=4"`
	GateNumber  *string  `json:"gate_number,omitempty" validate:"omitempty,min=1,max=5"`
}
