package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
)

type Router struct {
	ContactHandler *ContactHandler
	APIHandler     *APIHandler
	HealthHandler  *HealthHandler
	AppLogger      logger.LoggerInterface
}

func NewRouter(contactHandler *ContactHandler, apiHandler *APIHandler, healthHandler *HealthHandler, appLogger logger.LoggerInterface) *Router {
	return &Router{
		ContactHandler: contactHandler,
		APIHandler:     apiHandler,
		HealthHandler:  healthHandler,
		AppLogger:      appLogger,
	}
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	// Add middleware
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.Heartbeat("/ping"))

	// Health check endpoints
	router.Get("/health", r.HealthHandler.HealthCheckHandler)
	router.Get("/health/db", r.HealthHandler.DBHealthCheckHandler)

	// HTML form routes
	router.Get("/", r.ContactHandler.IndexHandler)
	router.Post("/", r.ContactHandler.CreateHandler)
	router.Post("/search", r.ContactHandler.SearchHandler)

	// JSON API routes
	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/contacts", func(contacts chi.Router) {
			contacts.Get("/", r.APIHandler.ListContactsHandler)
			contacts.Post("/", r.APIHandler.CreateContactHandler)
			contacts.Get("/search", r.APIHandler.SearchContactsHandler)
		})
	})

	return router
}
