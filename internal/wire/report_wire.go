package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler, mw authMW) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/reports", func(r chi.Router) {
		r.Use(mw.authn)
		r.Use(mw.admin)

		r.Get("/overview", reportHandler.Overview)
		r.Get("/revenue", reportHandler.Revenue)
		r.Get("/bookings", reportHandler.Bookings)
		r.Get("/routes", reportHandler.Routes)
		r.Get("/performance", reportHandler.Performance)
	})
}
