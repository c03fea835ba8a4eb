package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/expenso-app/expenso/internal/event"
	"github.com/expenso-app/expenso/internal/expense"
	"github.com/expenso-app/expenso/internal/transport/middleware"
	"github.com/expenso-app/expenso/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes mounts the API under /api/v1.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, expenseHandler *expense.Handler, eventHandler *event.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec at root, Swagger UI alongside it
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if expenseHandler != nil {
			r.Route("/expenses", func(er chi.Router) {
				er.Get("/", expenseHandler.ListExpenses)
				er.Post("/", expenseHandler.CreateExpense)
				er.Put("/{id}", expenseHandler.UpdateExpense)
				er.Delete("/{id}", expenseHandler.DeleteExpense)
			})
		}

		if eventHandler != nil {
			r.Route("/shared-events", func(sr chi.Router) {
				sr.Get("/", eventHandler.ListEvents)
				sr.Post("/", eventHandler.CreateEvent)

				sr.Route("/{shareCode}", func(cr chi.Router) {
					cr.Get("/", eventHandler.GetEvent)
					cr.Patch("/deactivate", eventHandler.DeactivateEvent)
					cr.Get("/expenses", eventHandler.ListExpenses)
					cr.Post("/expenses", eventHandler.AddExpense)
				})
			})
		}
	})
}
