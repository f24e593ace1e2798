package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCheckIn(r chi.Router, checkInHandler *adaptor.CheckInHandler, mw authMW) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/checkin", func(r chi.Router) {
		r.Use(mw.authn)

		r.Post("/search", checkInHandler.Search)
		r.Post("/confirm", checkInHandler.Confirm)
	})
}
