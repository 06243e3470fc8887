// Package router wires the admin API onto a chi router.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/chessacademy-server/internal/api/http/handler"
	"github.com/dtroode/chessacademy-server/internal/api/http/middleware"
	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

// MaxBodyBytes caps every request body.
const MaxBodyBytes = 1 << 20

// Limits are the per-IP rate limits of the public endpoints.
type Limits struct {
	LeadsPerMinute int
	AuthRequests   int
	AuthWindow     time.Duration
	// GlobalRequests per GlobalWindow applies to every /api route. Zero disables it.
	GlobalRequests int
	GlobalWindow   time.Duration
}

// Services are the dependencies the handlers call into.
type Services struct {
	Auth         handler.AuthService
	Sessions     handler.SessionService
	Tokens       middleware.TokenService
	Leads        handler.LeadService
	Availability handler.AvailabilityService
	Health       handler.HealthService
}

type Router struct {
	services       Services
	limits         Limits
	contextManager model.ContextManager
	logger         *logger.Logger
}

func New(services Services, limits Limits, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		limits:         limits,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)
	leadLimit := middleware.NewRateLimit(r.limits.LeadsPerMinute, time.Minute)
	authLimit := middleware.NewRateLimit(r.limits.AuthRequests, r.limits.AuthWindow, middleware.SkipSuccessful())

	authHandler := handler.NewAuth(r.services.Auth, r.services.Sessions, r.logger)
	leadHandler := handler.NewLead(r.services.Leads, r.contextManager, r.logger)
	userHandler := handler.NewUser(r.services.Auth, r.contextManager, r.logger)
	availabilityHandler := handler.NewAvailability(r.services.Availability, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.services.Health)

	mux := chi.NewRouter()
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chiMiddleware.Recoverer)
	mux.Use(chiMiddleware.RequestSize(MaxBodyBytes))

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteError(w, http.StatusNotFound, "Endpoint not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	mux.Route("/api", func(api chi.Router) {
		if r.limits.GlobalRequests > 0 {
			api.Use(middleware.NewRateLimit(r.limits.GlobalRequests, r.limits.GlobalWindow).Handle)
		}

		api.Get("/health", healthHandler.Check)

		api.Route("/auth", func(auth chi.Router) {
			auth.With(authLimit.Handle).Post("/login", authHandler.Login)
			auth.Post("/refresh", authHandler.Refresh)
			auth.With(authenticate.Handle).Post("/logout", authHandler.Logout)
		})

		api.With(leadLimit.Handle).Post("/leads", leadHandler.Create)

		api.Group(func(protected chi.Router) {
			protected.Use(authenticate.Handle)

			protected.Get("/leads", leadHandler.List)
			protected.Patch("/leads/{id}", leadHandler.UpdateStatus)
			protected.Delete("/leads/{id}", leadHandler.Delete)

			protected.Get("/users", userHandler.List)
			protected.Post("/users", userHandler.Add)

			protected.Get("/availability/{username}", availabilityHandler.Get)
			protected.Post("/availability", availabilityHandler.Save)
		})
	})

	return mux
}
