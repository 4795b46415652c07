package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig — параметры HTTP-слоя.
type RouterConfig struct {
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

// NewRouter собирает chi-роутер со всеми маршрутами сервиса.
func NewRouter(
	cfg RouterConfig,
	bookings *BookingHandler,
	users *UserHandler,
	health *HealthHandler,
	limiter *RateLimiter,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestContext)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", health.Health)

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", bookings.CreateBooking)
			r.Get("/", bookings.ListBookings)
			r.Get("/{id}", bookings.GetBooking)
			r.Put("/{id}", bookings.UpdateBooking)
			r.Delete("/{id}", bookings.DeleteBooking)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", users.CreateUser)
			r.Get("/", users.ListUsers)
			r.Get("/{id}", users.GetUser)
			r.Patch("/{id}", users.UpdateUser)
			r.Delete("/{id}", users.DeleteUser)
		})
	})

	return r
}
