package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, mw authMW) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(mw.authn)

		r.Post("/create", bookingHandler.CreateBooking)
		r.Get("/list", bookingHandler.GetUserBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Post("/{id}/cancel", bookingHandler.CancelBooking)

		// Status override is admin-only
		r.With(mw.admin).Post("/{id}/update-status", bookingHandler.UpdateBookingStatus)
	})
}
