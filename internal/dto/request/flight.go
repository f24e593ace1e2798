package request

// FlightSearchRequest is bound from query parameters
type FlightSearchRequest struct {
	From       string `json:"from" validate:"required,len=3,alpha"`
	To         string `json:"to" validate:"required,len=3,alpha"`
	Departure  string `json:"departure" validate:"required,datetime=2006-01-02"`
	Passengers int    `json:"passengers" validate:"min=1,max=9"`
	Class      string `json:"class,omitempty" validate:"omitempty,oneof=economy business first"`
}
