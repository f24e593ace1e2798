package response

import (
	"time"

	"airline-booking/internal/data/entity"
)

type FaresResponse struct {
	Economy  float64 `json:"economy"`
	Business float64 `json:"business"`
	First    float64 `json:"first"`
}

type FlightResponse struct {
	ID             string              `json:"id"`
	FlightNumber   string              `json:"flight_number"`
	Origin         string              `json:"origin"`
	Destination    string              `json:"destination"`
	DepartureTime  time.Time           `json:"departure_time"`
	ArrivalTime    time.Time           `json:"arrival_time"`
	Status         entity.FlightStatus `json:"status"`
	Fares          FaresResponse       `json:"fares"`
	Capacity       int                 `json:"capacity,omitempty"`
	AvailableSeats int                 `json:"available_seats"`
	// Derived for the requested passenger count and class, not persisted
	TotalPrice float64 `json:"total_price,omitempty"`
}

func FlightToResponse(fa *entity.FlightAvailability) FlightResponse {
	return FlightResponse{
		ID:             fa.ID.String(),
		FlightNumber:   fa.FlightNumber,
		Origin:         fa.Origin,
		Destination:    fa.Destination,
		DepartureTime:  fa.DepartureTime,
		ArrivalTime:    fa.ArrivalTime,
		Status:         fa.Status,
		Fares:          FaresResponse{Economy: fa.EconomyPrice, Business: fa.BusinessPrice, First: fa.FirstPrice},
		Capacity:       fa.Capacity,
		AvailableSeats: fa.AvailableSeats,
	}
}

type FlightStatusResponse struct {
	FlightNumber  string              `json:"flight_number"`
	Origin        string              `json:"origin"`
	Destination   string              `json:"destination"`
	DepartureTime time.Time           `json:"departure_time"`
	ArrivalTime   time.Time           `json:"arrival_time"`
	Status        entity.FlightStatus `json:"status"`
}

type AirportResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func AirportToResponse(a *entity.Airport) AirportResponse {
	return AirportResponse{Code: a.Code, Name: a.Name, City: a.City, Country: a.Country}
}
