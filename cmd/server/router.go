package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/phrazzld/syllabus-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/curricula", app.handler.CreateCurriculum)
		r.Post("/curricula/async", app.handler.CreateCurriculumAsync)
		r.Get("/builds/{id}", app.handler.GetBuildStatus)

		r.Get("/curricula/{id}/export", app.handler.ExportCurriculum)
		r.Post("/curricula/{id}/push/notion", app.handler.PushToNotion)
		r.Post("/curricula/{id}/push/trello", app.handler.PushToTrello)
		r.Post("/curricula/{id}/push/github", app.handler.PushToGitHub)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
