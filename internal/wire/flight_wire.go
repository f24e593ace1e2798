package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	// ==================== PUBLIC ROUTES ====================
	// Flight catalog is read-only and needs no authentication
	r.Route("/api/flights", func(r chi.Router) {
		r.Get("/search", flightHandler.Search)
		r.Get("/airports", flightHandler.GetAirports)
		r.Get("/status/{flightNumber}", flightHandler.GetStatus)
		r.Get("/{id}", flightHandler.GetByID)
	})
}
