// internal/wire/wire.go
package wire

import (
	"net/http"

	"airline-booking/internal/adaptor"
	"airline-booking/internal/cache"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/usecase"
	"airline-booking/pkg/database"
	"airline-booking/pkg/middleware"
	"airline-booking/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// authMW bundles the middleware shared across route groups
type authMW struct {
	authn func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	tx database.TxManager,
	tokenManager *token.Manager,
	flightCache *cache.FlightCache,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, tx, tokenManager, flightCache, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokenManager, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokenManager *token.Manager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	mw := authMW{
		authn: middleware.Auth(tokenManager, repo, logger),
		admin: middleware.Admin(logger),
	}

	// Apply routes
	wireAuth(r, handler.Auth, mw)
	wireUser(r, handler.User, mw)
	wireFlight(r, handler.Flight)
	wireBooking(r, handler.Booking, mw)
	wireCheckIn(r, handler.CheckIn, mw)
	wireAdmin(r, handler.Admin, handler.Booking, mw)
	wireReport(r, handler.Report, mw)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
