package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

const defaultRatePerMinute = 60

// NewRouter builds and returns the Chi router with all routes configured.
// The health endpoint is unauthenticated; every other route requires bearer auth.
// Rate limiting is applied globally per IP; ratePerMinute <= 0 means 60.
func NewRouter(handlers *Handlers, token string, ratePerMinute int, db, redis Pinger, log *slog.Logger) *chi.Mux {
	if ratePerMinute <= 0 {
		ratePerMinute = defaultRatePerMinute
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(ratePerMinute, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(db, redis, log))

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(token))

		r.Get("/api/v1/locations", handlers.ListLocations)
		r.Get("/api/v1/locations/resolve", handlers.ResolveLocation)
		r.Get("/api/v1/routes/classify", handlers.ClassifyRoute)

		r.Post("/api/v1/fares/rank", handlers.RankFares)
		r.Get("/api/v1/fares/search", handlers.SearchFares)
		r.Get("/api/v1/fares/searches", handlers.ListSearches)
		r.Get("/api/v1/fares/searches/{id}", handlers.GetSearch)

		r.Post("/api/v1/bookings", handlers.CreateBooking)
		r.Get("/api/v1/bookings/{id}", handlers.GetBooking)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
