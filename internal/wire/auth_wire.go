package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, mw authMW) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(mw.authn)

		r.Get("/api/auth/check", authHandler.Check)
		r.Post("/api/auth/logout", authHandler.Logout)
	})
}
