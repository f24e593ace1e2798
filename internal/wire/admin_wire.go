package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, bookingHandler *adaptor.BookingHandler, mw authMW) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(mw.authn)
		r.Use(mw.admin)

		r.Get("/stats", adminHandler.GetStats)
		r.Get("/hot-flights", adminHandler.GetHotFlights)

		r.Route("/flights", func(r chi.Router) {
			r.Get("/", adminHandler.GetAllFlights)
			r.Post("/", adminHandler.CreateFlight)
			r.Put("/{id}", adminHandler.UpdateFlight)
			r.Delete("/{id}", adminHandler.DeleteFlight)
		})

		r.Route("/aircraft", func(r chi.Router) {
			r.Get("/", adminHandler.GetAllAircraft)
			r.Post("/", adminHandler.CreateAircraft)
			r.Put("/{id}", adminHandler.UpdateAircraft)
			r.Delete("/{id}", adminHandler.DeleteAircraft)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", adminHandler.GetAllUsers)
			r.Put("/{id}/status", adminHandler.UpdateUserStatus)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", bookingHandler.GetAllBookings)
			r.Get("/{id}", bookingHandler.GetBookingByID)
		})
	})
}
