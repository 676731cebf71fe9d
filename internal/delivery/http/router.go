package http

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"devevents/internal/delivery/http/controllers"
	"devevents/internal/delivery/http/middleware"
	"devevents/internal/domain"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Logger         *slog.Logger
	Events         *controllers.EventController
	Bookings       *controllers.BookingController
	Health         *controllers.HealthController
	Organizer      domain.TokenVerifier // nil leaves POST /events open
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and wraps it
// in recovery, access logging and CORS.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	requireOrganizer := middleware.RequireOrganizer(cfg.Organizer, cfg.Logger)

	// Events
	mux.HandleFunc("POST /events", requireOrganizer(cfg.Events.CreateEvent))
	mux.HandleFunc("GET /events", cfg.Events.ListEvents)
	mux.HandleFunc("GET /events/tags", cfg.Events.ListTags)
	mux.HandleFunc("GET /events/{slug}", cfg.Events.GetEventBySlug)

	// Bookings
	mux.HandleFunc("POST /bookings", cfg.Bookings.CreateBooking)
	mux.HandleFunc("GET /bookings", cfg.Bookings.ListBookings)
	mux.HandleFunc("GET /bookings/export", cfg.Bookings.ExportBookings)

	mux.HandleFunc("GET /healthz", cfg.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = chimw.Recoverer(handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	return handler
}
