package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, mw authMW) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/users", func(r chi.Router) {
		r.Use(mw.authn)

		r.Get("/profile", userHandler.GetProfile)
		r.Put("/profile", userHandler.UpdateProfile)
		r.Put("/password", userHandler.ChangePassword)
		r.Get("/passengers", userHandler.GetSavedPassengers)
		r.Post("/passengers", userHandler.CreateSavedPassenger)
	})
}
